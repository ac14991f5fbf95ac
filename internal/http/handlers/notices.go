package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hongminglow/campus-library/internal/audit"
	"github.com/hongminglow/campus-library/internal/http/respond"
	"github.com/hongminglow/campus-library/internal/middleware"
	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/workers"
)

const defaultAuditLimit = 50

// NoticeHandler exposes borrower reminders and the admin audit trail.
type NoticeHandler struct {
	board *workers.NoticeBoard
	audit *audit.Recorder
}

// NewNoticeHandler constructs the handler.
func NewNoticeHandler(board *workers.NoticeBoard, rec *audit.Recorder) *NoticeHandler {
	return &NoticeHandler{board: board, audit: rec}
}

// Register attaches notice and audit routes to the router.
func (h *NoticeHandler) Register(r *mux.Router, g Guard) {
	r.Handle("/notices", g.Authenticated(h.handleNotices)).Methods(http.MethodGet)
	r.Handle("/admin/audit", g.Role(h.handleAudit, models.RoleAdmin)).Methods(http.MethodGet)
}

func (h *NoticeHandler) handleNotices(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())
	respond.JSON(w, http.StatusOK, "ok", h.board.For(claims.UserID()))
}

func (h *NoticeHandler) handleAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.audit.Latest(r.Context(), limitParam(r, defaultAuditLimit))
	if err != nil {
		slog.ErrorContext(r.Context(), "audit: list failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list audit entries")
		return
	}
	respond.JSON(w, http.StatusOK, "ok", entries)
}

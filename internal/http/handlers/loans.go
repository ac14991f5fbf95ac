package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/hongminglow/campus-library/internal/audit"
	"github.com/hongminglow/campus-library/internal/http/respond"
	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/middleware"
	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/models/dto"
	"github.com/hongminglow/campus-library/internal/storage"
)

const (
	loanStatusActive   = "active"
	loanStatusOverdue  = "overdue"
	loanStatusReturned = "returned"
)

// LoanHandler issues, returns and settles loans.
type LoanHandler struct {
	ledger *ledger.Ledger
	users  storage.UserStore
	audit  *audit.Recorder
}

// NewLoanHandler constructs the handler.
func NewLoanHandler(l *ledger.Ledger, users storage.UserStore, rec *audit.Recorder) *LoanHandler {
	return &LoanHandler{ledger: l, users: users, audit: rec}
}

// Register attaches loan routes to the router.
func (h *LoanHandler) Register(r *mux.Router, g Guard) {
	r.Handle("/loans", g.Authenticated(h.handleList)).Methods(http.MethodGet)
	r.Handle("/loans", g.Role(h.handleIssue, models.RoleAdmin)).Methods(http.MethodPost)
	r.Handle("/loans/{id}/return", g.Role(h.handleReturn, models.RoleAdmin)).Methods(http.MethodPost)
	r.Handle("/loans/{id}/pay", g.Authenticated(h.handlePay)).Methods(http.MethodPost)
}

// handleList shows admins every loan, optionally narrowed by ?userId, and
// students only their own. ?status selects active, overdue or returned loans.
func (h *LoanHandler) handleList(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())
	h.ledger.CheckOverdue()

	params := r.URL.Query()
	userID := params.Get("userId")
	if claims.Role != models.RoleAdmin {
		userID = claims.UserID()
	}

	var loans []models.Loan
	if userID != "" {
		loans = h.ledger.LoansByUser(userID)
	} else {
		loans = h.ledger.Loans()
	}

	status := strings.ToLower(params.Get("status"))
	filtered := make([]models.Loan, 0, len(loans))
	for _, loan := range loans {
		switch status {
		case loanStatusActive:
			if !loan.Active() {
				continue
			}
		case loanStatusOverdue:
			if !loan.Active() || !loan.IsOverdue {
				continue
			}
		case loanStatusReturned:
			if loan.Active() {
				continue
			}
		}
		filtered = append(filtered, loan)
	}
	respond.JSON(w, http.StatusOK, "ok", viewLoans(h.ledger, filtered))
}

func (h *LoanHandler) handleIssue(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueLoanRequest
	if err := respond.Decode(r.Body, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	req.BookID = strings.TrimSpace(req.BookID)
	req.UserID = strings.TrimSpace(req.UserID)
	if req.BookID == "" || req.UserID == "" {
		respond.Error(w, http.StatusBadRequest, "bookId and userId are required")
		return
	}

	var due time.Time
	if req.DueDate != "" {
		parsed, err := time.ParseInLocation(dto.DueDateLayout, req.DueDate, h.ledger.Location())
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "dueDate must be formatted as YYYY-MM-DD")
			return
		}
		due = parsed
	}

	borrower, err := h.users.FindByID(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		slog.ErrorContext(r.Context(), "issue: fetch user failed", "user", req.UserID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if borrower.IsAdmin() {
		respond.Error(w, http.StatusBadRequest, "books can only be issued to students")
		return
	}

	h.ledger.CheckOverdue()
	loan, err := h.ledger.Issue(req.BookID, req.UserID, due)
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}

	claims, _ := middleware.ClaimsFrom(r.Context())
	h.audit.Record(r.Context(), models.LoanEntity, models.ActionIssue, claims.UserID(), loan.ID, loan)
	respond.JSON(w, http.StatusCreated, "book issued", viewLoan(h.ledger, loan))
}

func (h *LoanHandler) handleReturn(w http.ResponseWriter, r *http.Request) {
	h.ledger.CheckOverdue()
	loan, err := h.ledger.Return(mux.Vars(r)["id"])
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}

	claims, _ := middleware.ClaimsFrom(r.Context())
	h.audit.Record(r.Context(), models.LoanEntity, models.ActionReturn, claims.UserID(), loan.ID, loan)
	respond.JSON(w, http.StatusOK, "book returned", viewLoan(h.ledger, loan))
}

// handlePay settles the fine of a loan. Students may only pay their own.
func (h *LoanHandler) handlePay(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())
	loanID := mux.Vars(r)["id"]

	owner, err := h.ledger.Loan(loanID)
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	if claims.Role != models.RoleAdmin && owner.UserID != claims.UserID() {
		respond.Error(w, http.StatusForbidden, "forbidden")
		return
	}

	h.ledger.CheckOverdue()
	loan, cleared, err := h.ledger.PayFine(loanID)
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}

	h.audit.Record(r.Context(), models.LoanEntity, models.ActionPayFine, claims.UserID(), loan.ID,
		map[string]any{"amount": cleared, "daysOverdue": loan.DaysOverdue})
	respond.JSON(w, http.StatusOK, "fine paid", viewLoan(h.ledger, loan))
}

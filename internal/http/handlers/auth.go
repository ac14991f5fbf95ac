package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hongminglow/campus-library/internal/auth"
	"github.com/hongminglow/campus-library/internal/http/respond"
	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/middleware"
	"github.com/hongminglow/campus-library/internal/models/dto"
	"github.com/hongminglow/campus-library/internal/storage"
)

// AuthHandler owns login and the current-user endpoint.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	ledger *ledger.Ledger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, l *ledger.Ledger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, ledger: l}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r *mux.Router, g Guard) {
	r.HandleFunc("/login", h.handleLogin).Methods(http.MethodPost)
	r.Handle("/me", g.Authenticated(h.handleMe)).Methods(http.MethodGet)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := respond.Decode(r.Body, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.ErrorContext(r.Context(), "login: fetch user failed", "email", email, "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		slog.ErrorContext(r.Context(), "login: generate token failed", "user", user.ID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{Token: token, User: user})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())
	user, err := h.store.FindByID(r.Context(), claims.UserID())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		slog.ErrorContext(r.Context(), "me: fetch user failed", "user", claims.UserID(), "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	h.ledger.CheckOverdue()
	respond.JSON(w, http.StatusOK, "ok", dto.MeResponse{User: user, CanBorrow: h.ledger.CanBorrow(user.ID)})
}

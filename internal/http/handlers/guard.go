package handlers

import (
	"net/http"

	"github.com/hongminglow/campus-library/internal/auth"
	"github.com/hongminglow/campus-library/internal/middleware"
)

// Guard wraps protected routes with bearer authentication and role checks.
type Guard struct {
	authenticate func(http.Handler) http.Handler
}

// NewGuard builds a Guard that validates tokens with tokens.
func NewGuard(tokens *auth.TokenManager) Guard {
	return Guard{authenticate: middleware.Authenticate(tokens)}
}

// Authenticated requires any signed-in user.
func (g Guard) Authenticated(h http.HandlerFunc) http.Handler {
	return g.authenticate(h)
}

// Role requires a signed-in user holding one of roles.
func (g Guard) Role(h http.HandlerFunc, roles ...string) http.Handler {
	return g.authenticate(middleware.RequireRole(roles...)(h))
}

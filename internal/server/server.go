package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hongminglow/campus-library/internal/audit"
	"github.com/hongminglow/campus-library/internal/auth"
	"github.com/hongminglow/campus-library/internal/config"
	"github.com/hongminglow/campus-library/internal/http/handlers"
	"github.com/hongminglow/campus-library/internal/http/respond"
	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/middleware"
	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/storage"
	"github.com/hongminglow/campus-library/internal/workers"
)

// Deps are the long-lived components the routes operate on.
type Deps struct {
	Ledger        *ledger.Ledger
	Store         storage.Store
	Notices       *workers.NoticeBoard
	Announcements []models.Announcement
	Logger        *slog.Logger
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, deps Deps) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// NewHandler builds the router wrapped in CORS and request logging.
func NewHandler(cfg config.Config, deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	guard := handlers.NewGuard(tokens)
	recorder := audit.NewRecorder(deps.Store, logger)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	handlers.NewHealthHandler(time.Now()).Register(r)
	handlers.NewAuthHandler(deps.Store, tokens, deps.Ledger).Register(r, guard)
	handlers.NewBookHandler(deps.Ledger, recorder, deps.Announcements).Register(r, guard)
	handlers.NewLoanHandler(deps.Ledger, deps.Store, recorder).Register(r, guard)
	handlers.NewDashboardHandler(deps.Ledger, deps.Store).Register(r, guard)
	handlers.NewNoticeHandler(deps.Notices, recorder).Register(r, guard)

	return middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, r))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}

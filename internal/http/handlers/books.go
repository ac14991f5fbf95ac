package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/hongminglow/campus-library/internal/audit"
	"github.com/hongminglow/campus-library/internal/catalog"
	"github.com/hongminglow/campus-library/internal/http/respond"
	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/middleware"
	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/models/dto"
)

const (
	defaultListLimit = 8
	recentWindow     = 30 * 24 * time.Hour
)

// BookHandler serves the catalog and lets admins maintain it.
type BookHandler struct {
	ledger        *ledger.Ledger
	audit         *audit.Recorder
	announcements []models.Announcement
	now           func() time.Time
}

// NewBookHandler constructs the handler.
func NewBookHandler(l *ledger.Ledger, rec *audit.Recorder, announcements []models.Announcement) *BookHandler {
	return &BookHandler{ledger: l, audit: rec, announcements: announcements, now: time.Now}
}

// Register attaches catalog routes. Fixed paths go before /books/{id}.
func (h *BookHandler) Register(r *mux.Router, g Guard) {
	r.HandleFunc("/books", h.handleSearch).Methods(http.MethodGet)
	r.Handle("/books", g.Role(h.handleCreate, models.RoleAdmin)).Methods(http.MethodPost)
	r.HandleFunc("/books/facets", h.handleFacets).Methods(http.MethodGet)
	r.HandleFunc("/books/popular", h.handlePopular).Methods(http.MethodGet)
	r.HandleFunc("/books/recent", h.handleRecent).Methods(http.MethodGet)
	r.HandleFunc("/books/featured", h.handleFeatured).Methods(http.MethodGet)
	r.HandleFunc("/books/{id}", h.handleGet).Methods(http.MethodGet)
	r.Handle("/books/{id}", g.Role(h.handleUpdate, models.RoleAdmin)).Methods(http.MethodPut)
	r.HandleFunc("/collections/{name}", h.handleCollection).Methods(http.MethodGet)
	r.HandleFunc("/announcements", h.handleAnnouncements).Methods(http.MethodGet)
}

func (h *BookHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := catalog.Query{
		Text:         params.Get("q"),
		Categories:   params["category"],
		Authors:      params["author"],
		Years:        catalog.ParseYears(params["year"]),
		Availability: params.Get("availability"),
		Type:         params.Get("type"),
		Collection:   params.Get("collection"),
		Sort:         params.Get("sort"),
	}
	respond.JSON(w, http.StatusOK, "ok", dto.NewSearchResponse(catalog.Search(h.ledger.Books(), q)))
}

func (h *BookHandler) handleFacets(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", catalog.BuildFacets(h.ledger.Books()))
}

func (h *BookHandler) handlePopular(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", catalog.Popular(h.ledger.Books(), limitParam(r, defaultListLimit)))
}

func (h *BookHandler) handleRecent(w http.ResponseWriter, r *http.Request) {
	since := h.now().Add(-recentWindow)
	respond.JSON(w, http.StatusOK, "ok", catalog.RecentlyAdded(h.ledger.Books(), since, limitParam(r, defaultListLimit)))
}

func (h *BookHandler) handleFeatured(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", catalog.Featured(h.ledger.Books()))
}

func (h *BookHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	book, err := h.ledger.Book(mux.Vars(r)["id"])
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", book)
}

func (h *BookHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.BookRequest
	if err := respond.Decode(r.Body, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if msg := validateBook(req, true); msg != "" {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	book, err := h.ledger.AddBook(req.ToBook())
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	claims, _ := middleware.ClaimsFrom(r.Context())
	h.audit.Record(r.Context(), models.BookEntity, models.ActionCreate, claims.UserID(), book.ID, book)
	respond.JSON(w, http.StatusCreated, "book added", book)
}

func (h *BookHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.BookRequest
	if err := respond.Decode(r.Body, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if msg := validateBook(req, false); msg != "" {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	book, err := h.ledger.UpdateBook(mux.Vars(r)["id"], req.ToBook())
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	claims, _ := middleware.ClaimsFrom(r.Context())
	h.audit.Record(r.Context(), models.BookEntity, models.ActionUpdate, claims.UserID(), book.ID, book)
	respond.JSON(w, http.StatusOK, "book updated", book)
}

func (h *BookHandler) handleCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !models.IsValidCollection(name) {
		respond.Error(w, http.StatusNotFound, "collection not found")
		return
	}
	respond.JSON(w, http.StatusOK, "ok", catalog.InCollection(h.ledger.Books(), models.Collection(name)))
}

func (h *BookHandler) handleAnnouncements(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.announcements)
}

func validateBook(req dto.BookRequest, requireCollection bool) string {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		return "title and author are required"
	}
	if !models.IsValidBookType(req.Type) {
		return "type must be hardcopy or ebook"
	}
	if req.Collection == "" && !requireCollection {
		return ""
	}
	if !models.IsValidCollection(req.Collection) {
		return "unknown collection"
	}
	return ""
}

// limitParam reads ?limit, falling back to def for missing or invalid values.
func limitParam(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

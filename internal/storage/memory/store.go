package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store keeps users and audit entries in process memory.
type Store struct {
	mu    sync.RWMutex
	users []models.User
	audit []models.AuditEntry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Close is a no-op; memory holds no external resources.
func (s *Store) Close() {}

// SeedUsers inserts users, skipping ids already present.
func (s *Store) SeedUsers(_ context.Context, users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range users {
		if !models.IsValidRole(u.Role) {
			return fmt.Errorf("seed user %s: unknown role %q", u.ID, u.Role)
		}
		if slices.ContainsFunc(s.users, func(existing models.User) bool { return existing.ID == u.ID }) {
			continue
		}
		if s.emailTaken(u.Email) {
			return storage.ErrAlreadyExists
		}
		s.users = append(s.users, u)
	}
	return nil
}

func (s *Store) emailTaken(email string) bool {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// ListUsers returns every user in insertion order.
func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users), nil
}

// FindByID fetches a user by id.
func (s *Store) FindByID(_ context.Context, id string) (models.User, error) {
	return s.find(func(u models.User) bool { return u.ID == id })
}

// FindByEmail fetches a user by email, ignoring case.
func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	email = strings.TrimSpace(email)
	return s.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *Store) find(match func(models.User) bool) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// Record appends an audit entry. Entry ids are unique.
func (s *Store) Record(_ context.Context, entry models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.audit, func(existing models.AuditEntry) bool { return existing.ID == entry.ID }) {
		return storage.ErrAlreadyExists
	}
	s.audit = append(s.audit, entry)
	return nil
}

// ListAudit returns up to limit entries, newest first.
func (s *Store) ListAudit(_ context.Context, limit int) ([]models.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AuditEntry, 0, len(s.audit))
	for i := len(s.audit) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.audit[i])
	}
	return out, nil
}

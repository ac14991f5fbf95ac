package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/campus-library/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore serves the read-only patron reference data.
type UserStore interface {
	SeedUsers(ctx context.Context, users []models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// AuditStore keeps the trail of ledger mutations.
type AuditStore interface {
	Record(ctx context.Context, entry models.AuditEntry) error
	ListAudit(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

// Store is everything the HTTP layer persists or looks up.
type Store interface {
	UserStore
	AuditStore
	Close()
}

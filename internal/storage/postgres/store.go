package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users and the audit trail.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS library_users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'student',
			department TEXT NOT NULL DEFAULT '',
			roll_number TEXT NOT NULL DEFAULT '',
			staff_id TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS library_users_email_unique_idx ON library_users (lower(email));`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id TEXT PRIMARY KEY,
			occurred_at TIMESTAMPTZ NOT NULL,
			entity TEXT NOT NULL,
			action TEXT NOT NULL,
			actor TEXT NOT NULL DEFAULT '',
			subject_id TEXT NOT NULL DEFAULT '',
			data JSONB
		);`,
		`CREATE INDEX IF NOT EXISTS audit_log_occurred_at_idx ON audit_log (occurred_at DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// SeedUsers inserts the reference users in one transaction, leaving rows
// that already exist untouched.
func (s *Store) SeedUsers(ctx context.Context, users []models.User) error {
	const query = `
		INSERT INTO library_users (id, name, email, role, department, roll_number, staff_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING;
	`
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for _, u := range users {
		if !models.IsValidRole(u.Role) {
			return fmt.Errorf("seed user %s: unknown role %q", u.ID, u.Role)
		}
		_, err := tx.Exec(ctx, query, u.ID, u.Name, u.Email, u.Role, u.Department, u.RollNumber, u.StaffID, u.PasswordHash, u.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	return tx.Commit(ctx)
}

const selectUsers = `
	SELECT id, name, email, role, department, roll_number, staff_id, password_hash, created_at
	FROM library_users
`

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx, selectUsers+` ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// FindByID fetches a user by id.
func (s *Store) FindByID(ctx context.Context, id string) (models.User, error) {
	row := s.pool.QueryRow(ctx, selectUsers+` WHERE id = $1;`, id)
	return scanUser(row)
}

// FindByEmail fetches a user by email address, ignoring case.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.pool.QueryRow(ctx, selectUsers+` WHERE lower(email) = lower($1);`, email)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Department, &user.RollNumber, &user.StaffID, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Record inserts one audit entry.
func (s *Store) Record(ctx context.Context, entry models.AuditEntry) error {
	const query = `
		INSERT INTO audit_log (id, occurred_at, entity, action, actor, subject_id, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var data any
	if len(entry.Data) > 0 {
		data = string(entry.Data)
	}
	_, err := s.pool.Exec(ctx, query, entry.ID, entry.Timestamp, entry.Entity, entry.Action, entry.Actor, entry.SubjectID, data)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

// ListAudit returns up to limit entries, newest first. A non-positive limit returns all.
func (s *Store) ListAudit(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	query := `
		SELECT id, occurred_at, entity, action, actor, subject_id, COALESCE(data::text, '')
		FROM audit_log
		ORDER BY occurred_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0)
	for rows.Next() {
		var e models.AuditEntry
		var data string
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Entity, &e.Action, &e.Actor, &e.SubjectID, &data); err != nil {
			return nil, err
		}
		if data != "" {
			e.Data = []byte(data)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

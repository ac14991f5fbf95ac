package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Recorder appends ledger mutations to the audit trail. Failures are logged
// and never fail the mutation that triggered them.
type Recorder struct {
	store  storage.AuditStore
	logger *slog.Logger
	now    func() time.Time
}

// NewRecorder builds a Recorder writing to store.
func NewRecorder(store storage.AuditStore, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{store: store, logger: logger, now: time.Now}
}

// Record stores one entry; data is marshalled as the entry payload.
func (r *Recorder) Record(ctx context.Context, entity, action, actor, subjectID string, data any) {
	entry := models.AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: r.now().UTC(),
		Entity:    entity,
		Action:    action,
		Actor:     actor,
		SubjectID: subjectID,
	}
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			r.logger.WarnContext(ctx, "audit: marshal payload failed", "action", action, "subject", subjectID, "error", err)
		} else {
			entry.Data = payload
		}
	}

	if err := r.store.Record(ctx, entry); err != nil {
		r.logger.ErrorContext(ctx, "audit: record failed", "action", action, "subject", subjectID, "error", err)
	}
}

// Latest returns up to limit entries, newest first.
func (r *Recorder) Latest(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	return r.store.ListAudit(ctx, limit)
}

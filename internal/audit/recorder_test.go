package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/storage/memory"
)

type failingStore struct{ calls int }

func (f *failingStore) Record(context.Context, models.AuditEntry) error {
	f.calls++
	return errors.New("disk full")
}

func (f *failingStore) ListAudit(context.Context, int) ([]models.AuditEntry, error) {
	return nil, nil
}

func TestRecorder_RecordsPayload(t *testing.T) {
	store := memory.NewStore()
	rec := NewRecorder(store, nil)
	rec.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	rec.Record(ctx, models.LoanEntity, models.ActionIssue, "user-3", "loan-9", map[string]string{"bookId": "book-4"})
	rec.Record(ctx, models.LoanEntity, models.ActionReturn, "user-3", "loan-9", nil)

	entries, err := rec.Latest(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	issue := entries[1]
	assert.Equal(t, models.ActionIssue, issue.Action)
	assert.Equal(t, "user-3", issue.Actor)
	assert.Equal(t, "loan-9", issue.SubjectID)
	assert.NotEmpty(t, issue.ID)
	assert.JSONEq(t, `{"bookId":"book-4"}`, string(issue.Data))
	assert.Empty(t, entries[0].Data)
}

func TestRecorder_StoreFailureIsSwallowed(t *testing.T) {
	store := &failingStore{}
	rec := NewRecorder(store, nil)

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), models.LoanEntity, models.ActionPayFine, "user-1", "loan-1", nil)
	})
	assert.Equal(t, 1, store.calls)
}

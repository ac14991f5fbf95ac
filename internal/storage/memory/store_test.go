package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/campus-library/internal/models"
	"github.com/hongminglow/campus-library/internal/storage"
)

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	users := []models.User{
		{ID: "user-1", Name: "Rahul Sharma", Email: "rahul.sharma@ccet.ac.in", Role: models.RoleStudent},
		{ID: "user-3", Name: "Dr. Amit Kumar", Email: "amit.kumar@ccet.ac.in", Role: models.RoleAdmin},
	}
	require.NoError(t, s.SeedUsers(ctx, users))
	require.NoError(t, s.SeedUsers(ctx, users), "reseeding is idempotent")

	all, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	u, err := s.FindByEmail(ctx, " RAHUL.SHARMA@ccet.ac.in ")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)

	u, err = s.FindByID(ctx, "user-3")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	_, err = s.FindByID(ctx, "user-9")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = s.SeedUsers(ctx, []models.User{{ID: "user-7", Email: "amit.kumar@ccet.ac.in", Role: models.RoleStudent}})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	err = s.SeedUsers(ctx, []models.User{{ID: "user-8", Email: "guest@ccet.ac.in", Role: "guest"}})
	assert.Error(t, err)
	_, err = s.FindByID(ctx, "user-8")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_AuditNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for i, action := range []string{models.ActionIssue, models.ActionReturn, models.ActionPayFine} {
		require.NoError(t, s.Record(ctx, models.AuditEntry{
			ID:        action,
			Timestamp: time.Date(2023, 4, 1+i, 0, 0, 0, 0, time.UTC),
			Entity:    models.LoanEntity,
			Action:    action,
		}))
	}

	latest, err := s.ListAudit(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, models.ActionPayFine, latest[0].Action)
	assert.Equal(t, models.ActionReturn, latest[1].Action)

	all, err := s.ListAudit(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_AuditRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	entry := models.AuditEntry{ID: "audit-1", Entity: models.LoanEntity, Action: models.ActionIssue}
	require.NoError(t, s.Record(ctx, entry))
	assert.ErrorIs(t, s.Record(ctx, entry), storage.ErrAlreadyExists)
}

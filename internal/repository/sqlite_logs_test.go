package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/repository"
	"github.com/nataliatalam/raimon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveDoRepo_SaveAndLatest(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteActiveDoRepo(database)
	ctx := context.Background()

	older := &domain.ActiveDo{
		ID:          uuid.New().String(),
		UserID:      "u-1",
		TaskID:      "t-1",
		ReasonCodes: []string{"constraints_fit", "time_fit"},
		Mode:        domain.ModeBalanced,
		CreatedAt:   time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
	newer := &domain.ActiveDo{
		ID:          uuid.New().String(),
		UserID:      "u-1",
		TaskID:      "t-2",
		ReasonCodes: []string{"fallback_best_overall"},
		Mode:        domain.ModeQuick,
		CreatedAt:   time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.LatestByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "t-2", got.TaskID)
	assert.Equal(t, []string{"fallback_best_overall"}, got.ReasonCodes)
	assert.Equal(t, domain.ModeQuick, got.Mode)
}

func TestActiveDoRepo_LatestByUser_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteActiveDoRepo(database)

	_, err := repo.LatestByUser(context.Background(), "nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActionRepo_ListRecentByUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteActionRepo(database)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	for i, kind := range []domain.ActionKind{domain.ActionDone, domain.ActionSkip, domain.ActionSkip, domain.ActionDefer} {
		a := testutil.NewTestAction("u-1", "t-1", kind,
			testutil.WithActionAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, a))
	}

	got, err := repo.ListRecentByUser(ctx, "u-1", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Newest first.
	assert.Equal(t, domain.ActionDefer, got[0].Action)
	assert.Equal(t, domain.ActionSkip, got[1].Action)
	assert.Equal(t, domain.ActionSkip, got[2].Action)
}

func TestEventRepo_Append(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteEventRepo(database)
	ctx := context.Background()

	event := &domain.EventLog{
		ID:        uuid.New().String(),
		UserID:    "u-1",
		Kind:      "DO_NEXT",
		Payload:   `{"task_id":"t-1"}`,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Append(ctx, event))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM event_logs WHERE user_id = ?`, "u-1").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestEventRepo_Append_EmptyPayloadDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteEventRepo(database)

	event := &domain.EventLog{
		ID:        uuid.New().String(),
		UserID:    "u-1",
		Kind:      "APP_OPEN",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Append(context.Background(), event))

	var payload string
	require.NoError(t, database.QueryRow(`SELECT payload FROM event_logs WHERE id = ?`, event.ID).Scan(&payload))
	assert.Equal(t, "{}", payload)
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/repository"
	"github.com/nataliatalam/raimon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStatsRepo_UpsertInsertsThenUpdates(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserStatsRepo(database)
	ctx := context.Background()

	stats := &domain.UserStats{
		UserID:           "u-1",
		StreakDays:       1,
		TotalCompleted:   1,
		LastCompletedDay: "2026-08-29",
		UpdatedAt:        time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, stats))

	stats.StreakDays = 2
	stats.TotalCompleted = 2
	stats.LastCompletedDay = "2026-08-30"
	require.NoError(t, repo.Upsert(ctx, stats))

	got, err := repo.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.StreakDays)
	assert.Equal(t, 2, got.TotalCompleted)
	assert.Equal(t, "2026-08-30", got.LastCompletedDay)
}

func TestUserStatsRepo_Get_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserStatsRepo(database)

	_, err := repo.Get(context.Background(), "nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

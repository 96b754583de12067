package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/nataliatalam/raimon/internal/repository"
	"github.com/nataliatalam/raimon/internal/service"
	"github.com/nataliatalam/raimon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsService(t *testing.T) service.StatsService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return service.NewStatsService(
		repository.NewSQLiteActionRepo(database),
		repository.NewSQLiteUserStatsRepo(database),
	)
}

func TestRecordAction_FirstDoneStartsStreak(t *testing.T) {
	svc := newStatsService(t)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	stats, err := svc.RecordAction(context.Background(), "u-1", "t-1", domain.ActionDone, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.StreakDays)
	assert.Equal(t, 1, stats.TotalCompleted)
	assert.Equal(t, "2026-08-30", stats.LastCompletedDay)
}

func TestRecordAction_ConsecutiveDaysExtendStreak(t *testing.T) {
	svc := newStatsService(t)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	_, err := svc.RecordAction(ctx, "u-1", "t-1", domain.ActionDone, day1)
	require.NoError(t, err)
	stats, err := svc.RecordAction(ctx, "u-1", "t-2", domain.ActionDone, day2)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.StreakDays)
	assert.Equal(t, 2, stats.TotalCompleted)
}

func TestRecordAction_SameDayDoesNotDoubleCountStreak(t *testing.T) {
	svc := newStatsService(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	_, err := svc.RecordAction(ctx, "u-1", "t-1", domain.ActionDone, now)
	require.NoError(t, err)
	stats, err := svc.RecordAction(ctx, "u-1", "t-2", domain.ActionDone, now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.StreakDays)
	assert.Equal(t, 2, stats.TotalCompleted)
}

func TestRecordAction_GapResetsStreak(t *testing.T) {
	svc := newStatsService(t)
	ctx := context.Background()

	_, err := svc.RecordAction(ctx, "u-1", "t-1", domain.ActionDone, time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	stats, err := svc.RecordAction(ctx, "u-1", "t-2", domain.ActionDone, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.StreakDays)
	assert.Equal(t, 2, stats.TotalCompleted)
}

func TestRecordAction_SkipCountsButLeavesStreak(t *testing.T) {
	svc := newStatsService(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	_, err := svc.RecordAction(ctx, "u-1", "t-1", domain.ActionDone, now)
	require.NoError(t, err)
	stats, err := svc.RecordAction(ctx, "u-1", "t-2", domain.ActionSkip, now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.StreakDays)
	assert.Equal(t, 1, stats.TotalSkipped)
}

func TestRecordAction_UnknownKindRejected(t *testing.T) {
	svc := newStatsService(t)

	_, err := svc.RecordAction(context.Background(), "u-1", "t-1", domain.ActionKind("snooze"), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action kind")
}

func TestCloseDay_NoCompletionBreaksStreak(t *testing.T) {
	svc := newStatsService(t)
	ctx := context.Background()

	_, err := svc.RecordAction(ctx, "u-1", "t-1", domain.ActionDone, time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	stats, err := svc.CloseDay(ctx, "u-1", time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.StreakDays)
}

func TestCloseDay_CompletionTodayKeepsStreak(t *testing.T) {
	svc := newStatsService(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	_, err := svc.RecordAction(ctx, "u-1", "t-1", domain.ActionDone, now)
	require.NoError(t, err)

	stats, err := svc.CloseDay(ctx, "u-1", now.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.StreakDays)
}

func TestGet_UnknownUserReturnsZeroStats(t *testing.T) {
	svc := newStatsService(t)

	stats, err := svc.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.StreakDays)
	assert.Equal(t, 0, stats.TotalCompleted)
}

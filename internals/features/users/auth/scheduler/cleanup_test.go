package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authRepo "timetable_backend/internals/features/users/auth/repository"
)

func TestRunBlacklistCleanup_RemovesOnlyOldEntries(t *testing.T) {
	ctx := context.Background()
	bl := authRepo.NewMemoryBlacklist("cleanup-secret")
	now := time.Now()

	require.NoError(t, bl.Add(ctx, "token-old", now.Add(-10*24*time.Hour)))
	require.NoError(t, bl.Add(ctx, "token-recent", now.Add(-24*time.Hour)))
	require.NoError(t, bl.Add(ctx, "token-live", now.Add(time.Hour)))

	n, err := RunBlacklistCleanup(ctx, bl, 7, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = RunBlacklistCleanup(ctx, bl, -3, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	live, err := bl.IsBlacklisted(ctx, "token-live")
	require.NoError(t, err)
	assert.True(t, live)
}

func TestStartBlacklistCleanupScheduler(t *testing.T) {
	bl := authRepo.NewMemoryBlacklist("cleanup-secret")

	c, err := StartBlacklistCleanupScheduler(bl, CleanupConfig{})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	_, err = StartBlacklistCleanupScheduler(bl, CleanupConfig{CronSchedule: "not a schedule"})
	assert.Error(t, err)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminder_Lifecycle(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	jan10 := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	due, err := r.reminderService(jan10).Check(ctx)
	require.NoError(t, err)
	assert.False(t, due, "nothing to back up")

	item := testutil.NewTestItem("Flour", domain.CategoryFood, 1, domain.UnitKilograms)
	require.NoError(t, r.inventoryService(jan10).Add(ctx, &item))

	due, err = r.reminderService(jan10).Check(ctx)
	require.NoError(t, err)
	assert.True(t, due, "never backed up")

	until, err := r.reminderService(jan10).Dismiss(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), until)

	due, err = r.reminderService(jan10.AddDate(0, 0, 5)).Check(ctx)
	require.NoError(t, err)
	assert.False(t, due, "dismissed for the rest of the month")

	due, err = r.reminderService(until).Check(ctx)
	require.NoError(t, err)
	assert.True(t, due, "dismissal lapses on the first of next month")

	require.NoError(t, r.reminderService(until).RecordBackup(ctx))
	due, err = r.reminderService(until).Check(ctx)
	require.NoError(t, err)
	assert.False(t, due)

	// a later change goes stale after 30 days
	feb3 := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	require.NoError(t, r.inventoryService(feb3).SetQuantity(ctx, item.ID, 2))

	due, err = r.reminderService(feb3.AddDate(0, 0, 29)).Check(ctx)
	require.NoError(t, err)
	assert.False(t, due)

	due, err = r.reminderService(feb3.AddDate(0, 0, 30)).Check(ctx)
	require.NoError(t, err)
	assert.True(t, due)
}

func TestReminder_DismissInDecember(t *testing.T) {
	r := setupRepos(t)
	until, err := r.reminderService(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)).Dismiss(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), until)

	state, err := r.reminders.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state.DismissedUntil)
	assert.Equal(t, until, *state.DismissedUntil)
}

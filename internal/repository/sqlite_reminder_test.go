package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderRepo_EmptyByDefault(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteReminderRepo(db)

	state, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BackupReminderState{}, state)
}

func TestReminderRepo_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteReminderRepo(db)
	ctx := context.Background()

	backup := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	modified := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	want := domain.BackupReminderState{LastBackupDate: &backup, LastModifiedDate: &modified}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var raw string
	require.NoError(t, db.QueryRow(`SELECT last_modified_date FROM backup_reminder`).Scan(&raw))
	assert.Equal(t, "2025-01-16", raw)
}

func TestReminderRepo_MalformedDateReadsAsAbsent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteReminderRepo(db)

	_, err := db.Exec(`UPDATE backup_reminder SET last_backup_date = '01/02/2025', dismissed_until = '2025-02-01'`)
	require.NoError(t, err)

	state, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state.LastBackupDate)
	require.NotNil(t, state.DismissedUntil)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), *state.DismissedUntil)
}

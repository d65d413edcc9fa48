package reminder

import (
	"testing"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestShouldShow_ThirtyDayBoundary(t *testing.T) {
	now := time.Date(2025, 2, 15, 14, 45, 0, 0, time.UTC)

	state := domain.BackupReminderState{
		LastBackupDate:   day(2025, 1, 1),
		LastModifiedDate: day(2025, 1, 16),
	}
	assert.True(t, ShouldShow(state, 10, now), "30 days since modification")

	state.LastModifiedDate = day(2025, 1, 17)
	assert.False(t, ShouldShow(state, 10, now), "29 days since modification")
}

func TestShouldShow(t *testing.T) {
	now := time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		state     domain.BackupReminderState
		itemCount int
		want      bool
	}{
		{
			name:      "never backed up with items",
			itemCount: 3,
			want:      true,
		},
		{
			name:      "never backed up and empty",
			itemCount: 0,
			want:      false,
		},
		{
			name:      "dismissed until future",
			state:     domain.BackupReminderState{DismissedUntil: day(2025, 7, 1)},
			itemCount: 3,
			want:      false,
		},
		{
			name:      "dismissal ends on its day",
			state:     domain.BackupReminderState{DismissedUntil: day(2025, 6, 20)},
			itemCount: 3,
			want:      true,
		},
		{
			name: "modified same day as backup",
			state: domain.BackupReminderState{
				LastBackupDate:   day(2025, 1, 1),
				LastModifiedDate: day(2025, 1, 1),
			},
			itemCount: 3,
			want:      false,
		},
		{
			name: "modified before backup",
			state: domain.BackupReminderState{
				LastBackupDate:   day(2025, 3, 1),
				LastModifiedDate: day(2025, 1, 1),
			},
			itemCount: 3,
			want:      false,
		},
		{
			name: "backed up but never modified",
			state: domain.BackupReminderState{
				LastBackupDate: day(2025, 1, 1),
			},
			itemCount: 3,
			want:      false,
		},
		{
			name: "stale changes",
			state: domain.BackupReminderState{
				LastBackupDate:   day(2025, 1, 1),
				LastModifiedDate: day(2025, 2, 1),
			},
			itemCount: 0,
			want:      true,
		},
		{
			name: "dismissal wins over stale changes",
			state: domain.BackupReminderState{
				LastBackupDate:   day(2025, 1, 1),
				LastModifiedDate: day(2025, 2, 1),
				DismissedUntil:   day(2025, 7, 1),
			},
			itemCount: 3,
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldShow(tt.state, tt.itemCount, now))
		})
	}
}

func TestShouldShow_IgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2025, 1, 16, 23, 59, 0, 0, time.UTC)
	state := domain.BackupReminderState{
		LastBackupDate:   day(2025, 1, 1),
		LastModifiedDate: &lateEvening,
	}
	assert.True(t, ShouldShow(state, 1, time.Date(2025, 2, 15, 0, 1, 0, 0, time.UTC)))
}

func TestDismiss(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"mid month", time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC), *day(2025, 6, 1)},
		{"first of month", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), *day(2025, 6, 1)},
		{"last day of month", time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC), *day(2025, 2, 1)},
		{"december rolls over", time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC), *day(2026, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dismiss(domain.BackupReminderState{}, tt.now)
			if assert.NotNil(t, got.DismissedUntil) {
				assert.Equal(t, tt.want, *got.DismissedUntil)
			}
		})
	}
}

func TestDismiss_HidesReminderUntilNextMonth(t *testing.T) {
	now := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	state := Dismiss(domain.BackupReminderState{}, now)

	assert.False(t, ShouldShow(state, 5, now))
	assert.False(t, ShouldShow(state, 5, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.True(t, ShouldShow(state, 5, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRecordBackup(t *testing.T) {
	now := time.Date(2025, 3, 9, 17, 30, 0, 0, time.UTC)
	state := domain.BackupReminderState{LastModifiedDate: day(2025, 3, 9)}

	state = RecordBackup(state, now)
	assert.Equal(t, *day(2025, 3, 9), *state.LastBackupDate)
	assert.False(t, ShouldShow(state, 5, now.AddDate(0, 2, 0)))
}

func TestMarkModified(t *testing.T) {
	now := time.Date(2025, 3, 9, 17, 30, 0, 0, time.UTC)
	state := MarkModified(domain.BackupReminderState{LastBackupDate: day(2025, 3, 1)}, now)

	assert.Equal(t, *day(2025, 3, 9), *state.LastModifiedDate)
	assert.Equal(t, *day(2025, 3, 1), *state.LastBackupDate)
}

func TestCalendarDay_KeepsLocalDate(t *testing.T) {
	zone := time.FixedZone("UTC+9", 9*3600)
	local := time.Date(2025, 4, 2, 1, 0, 0, 0, zone) // 2025-04-01 16:00 UTC
	assert.Equal(t, *day(2025, 4, 2), CalendarDay(local))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 30, DaysBetween(*day(2025, 1, 16), *day(2025, 2, 15)))
	assert.Equal(t, 0, DaysBetween(time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysBetween(*day(2025, 1, 2), *day(2025, 1, 1)))
	assert.Equal(t, 366, DaysBetween(*day(2024, 1, 1), *day(2025, 1, 1)))
}

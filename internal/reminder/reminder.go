// Package reminder decides when to nudge the user to back up their data.
// Everything here is calendar-day arithmetic over domain.BackupReminderState;
// loading and storing that state is the caller's job.
package reminder

import (
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// StaleAfterDays is how long unsaved changes may sit before the reminder shows.
const StaleAfterDays = 30

// ShouldShow reports whether the backup reminder is due at now.
func ShouldShow(state domain.BackupReminderState, itemCount int, now time.Time) bool {
	today := CalendarDay(now)

	if state.DismissedUntil != nil && today.Before(CalendarDay(*state.DismissedUntil)) {
		return false
	}
	if state.LastBackupDate == nil {
		return itemCount > 0
	}
	if state.LastModifiedDate == nil {
		return false
	}

	modified := CalendarDay(*state.LastModifiedDate)
	if !modified.After(CalendarDay(*state.LastBackupDate)) {
		return false
	}
	return DaysBetween(modified, today) >= StaleAfterDays
}

// Dismiss hides the reminder until the first day of the month after now.
func Dismiss(state domain.BackupReminderState, now time.Time) domain.BackupReminderState {
	until := FirstOfNextMonth(now)
	state.DismissedUntil = &until
	return state
}

// RecordBackup stamps today as the last backup day.
func RecordBackup(state domain.BackupReminderState, now time.Time) domain.BackupReminderState {
	today := CalendarDay(now)
	state.LastBackupDate = &today
	return state
}

// MarkModified stamps today as the last day the inventory changed.
func MarkModified(state domain.BackupReminderState, now time.Time) domain.BackupReminderState {
	today := CalendarDay(now)
	state.LastModifiedDate = &today
	return state
}

// CalendarDay strips the time of day, keeping t's local date, and returns
// it as midnight UTC so days compare independently of zone.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FirstOfNextMonth returns the first calendar day of the month after t.
func FirstOfNextMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	// time.Date normalizes month 13 into January of the next year.
	return time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(CalendarDay(b).Sub(CalendarDay(a)).Hours() / 24)
}

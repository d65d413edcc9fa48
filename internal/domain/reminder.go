package domain

import "time"

// BackupReminderState holds the persisted reminder dates. Each is a
// calendar day; nil means never recorded.
type BackupReminderState struct {
	LastBackupDate   *time.Time
	LastModifiedDate *time.Time
	DismissedUntil   *time.Time
}

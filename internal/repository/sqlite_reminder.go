package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
)

// SQLiteReminderRepo persists the backup reminder dates as YYYY-MM-DD.
// A stored value that does not parse reads back as absent.
type SQLiteReminderRepo struct {
	db db.DBTX
}

func NewSQLiteReminderRepo(conn db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: conn}
}

func (r *SQLiteReminderRepo) Get(ctx context.Context) (domain.BackupReminderState, error) {
	query := `SELECT last_backup_date, last_modified_date, dismissed_until
		FROM backup_reminder WHERE id = 'default'`
	var backup, modified, dismissed sql.NullString
	err := r.db.QueryRowContext(ctx, query).Scan(&backup, &modified, &dismissed)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.BackupReminderState{}, nil
		}
		return domain.BackupReminderState{}, fmt.Errorf("scanning backup reminder: %w", err)
	}
	return domain.BackupReminderState{
		LastBackupDate:   parseNullableTime(backup, dateLayout),
		LastModifiedDate: parseNullableTime(modified, dateLayout),
		DismissedUntil:   parseNullableTime(dismissed, dateLayout),
	}, nil
}

func (r *SQLiteReminderRepo) Save(ctx context.Context, s domain.BackupReminderState) error {
	query := `INSERT OR REPLACE INTO backup_reminder (id, last_backup_date, last_modified_date, dismissed_until)
		VALUES ('default', ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(s.LastBackupDate, dateLayout),
		nullableTimeToString(s.LastModifiedDate, dateLayout),
		nullableTimeToString(s.DismissedUntil, dateLayout),
	)
	if err != nil {
		return fmt.Errorf("saving backup reminder: %w", err)
	}
	return nil
}

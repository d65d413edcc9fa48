package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
)

// SQLiteHouseholdRepo stores the single household profile.
type SQLiteHouseholdRepo struct {
	db db.DBTX
}

func NewSQLiteHouseholdRepo(conn db.DBTX) *SQLiteHouseholdRepo {
	return &SQLiteHouseholdRepo{db: conn}
}

func (r *SQLiteHouseholdRepo) Get(ctx context.Context) (domain.HouseholdConfig, error) {
	query := `SELECT adults, children, pets, supply_duration_days, use_freezer
		FROM household WHERE id = 'default'`
	var h domain.HouseholdConfig
	var freezer int
	err := r.db.QueryRowContext(ctx, query).Scan(
		&h.Adults,
		&h.Children,
		&h.Pets,
		&h.SupplyDurationDays,
		&freezer,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return h, fmt.Errorf("household: %w", ErrNotFound)
		}
		return h, fmt.Errorf("scanning household: %w", err)
	}
	h.UseFreezer = intToBool(freezer)
	return h, nil
}

func (r *SQLiteHouseholdRepo) Upsert(ctx context.Context, h domain.HouseholdConfig) error {
	query := `INSERT OR REPLACE INTO household (id, adults, children, pets, supply_duration_days, use_freezer)
		VALUES ('default', ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.Adults,
		h.Children,
		h.Pets,
		h.SupplyDurationDays,
		boolToInt(h.UseFreezer),
	)
	if err != nil {
		return fmt.Errorf("upserting household: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) ListDisabled(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT recommendation_id FROM disabled_recommendations ORDER BY recommendation_id`)
	if err != nil {
		return nil, fmt.Errorf("listing disabled recommendations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning disabled recommendation: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating disabled recommendations: %w", err)
	}
	return ids, nil
}

// Disable is idempotent.
func (r *SQLiteSettingsRepo) Disable(ctx context.Context, recommendationID string) error {
	query := `INSERT OR IGNORE INTO disabled_recommendations (recommendation_id, disabled_at) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, recommendationID, nowUTC()); err != nil {
		return fmt.Errorf("disabling recommendation: %w", err)
	}
	return nil
}

// Enable is idempotent.
func (r *SQLiteSettingsRepo) Enable(ctx context.Context, recommendationID string) error {
	query := `DELETE FROM disabled_recommendations WHERE recommendation_id = ?`
	if _, err := r.db.ExecContext(ctx, query, recommendationID); err != nil {
		return fmt.Errorf("enabling recommendation: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) GetOptions(ctx context.Context) (domain.CategoryCalculationOptions, error) {
	query := `SELECT children_multiplier, daily_calories_per_person, daily_water_per_person
		FROM calculation_options WHERE id = 'default'`
	var multiplier, calories, water sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query).Scan(&multiplier, &calories, &water)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.CategoryCalculationOptions{}, nil
		}
		return domain.CategoryCalculationOptions{}, fmt.Errorf("scanning calculation options: %w", err)
	}
	return domain.CategoryCalculationOptions{
		ChildrenMultiplier:     nullFloatPtr(multiplier),
		DailyCaloriesPerPerson: nullFloatPtr(calories),
		DailyWaterPerPerson:    nullFloatPtr(water),
	}, nil
}

func (r *SQLiteSettingsRepo) SaveOptions(ctx context.Context, opts domain.CategoryCalculationOptions) error {
	query := `INSERT OR REPLACE INTO calculation_options
		(id, children_multiplier, daily_calories_per_person, daily_water_per_person)
		VALUES ('default', ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		nullableFloatToValue(opts.ChildrenMultiplier),
		nullableFloatToValue(opts.DailyCaloriesPerPerson),
		nullableFloatToValue(opts.DailyWaterPerPerson),
	)
	if err != nil {
		return fmt.Errorf("saving calculation options: %w", err)
	}
	return nil
}

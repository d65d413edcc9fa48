package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

const catalogColumns = `id, name, category_id, base_quantity, unit, scale_with_people, scale_with_days,
	scale_with_pets, requires_freezer, calories_per_unit, water_liters_per_unit`

func (r *SQLiteCatalogRepo) List(ctx context.Context) ([]domain.RecommendedItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+catalogColumns+` FROM recommended_items ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing recommended items: %w", err)
	}
	defer rows.Close()

	var out []domain.RecommendedItem
	for rows.Next() {
		item, err := scanRecommendedItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recommended item: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommended items: %w", err)
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) GetByID(ctx context.Context, id string) (*domain.RecommendedItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+catalogColumns+` FROM recommended_items WHERE id = ?`, id)
	item, err := scanRecommendedItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recommended item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning recommended item: %w", err)
	}
	return &item, nil
}

// ReplaceAll swaps the whole catalog. Callers run it inside a UnitOfWork so
// a failed import leaves the previous kit in place.
func (r *SQLiteCatalogRepo) ReplaceAll(ctx context.Context, items []domain.RecommendedItem) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recommended_items`); err != nil {
		return fmt.Errorf("clearing recommended items: %w", err)
	}

	query := `INSERT INTO recommended_items (` + catalogColumns + `, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, item := range items {
		_, err := r.db.ExecContext(ctx, query,
			item.ID,
			item.Name,
			item.CategoryID,
			item.BaseQuantity,
			string(item.Unit),
			boolToInt(item.ScaleWithPeople),
			boolToInt(item.ScaleWithDays),
			boolToInt(item.ScaleWithPets),
			boolToInt(item.RequiresFreezer),
			nullableFloatToValue(item.CaloriesPerUnit),
			nullableFloatToValue(item.WaterLitersPerUnit),
			i,
		)
		if err != nil {
			return fmt.Errorf("inserting recommended item %s: %w", item.ID, err)
		}
	}
	return nil
}

func scanRecommendedItem(s rowScanner) (domain.RecommendedItem, error) {
	var item domain.RecommendedItem
	var unit string
	var people, days, pets, freezer int
	var calories, water sql.NullFloat64

	err := s.Scan(
		&item.ID,
		&item.Name,
		&item.CategoryID,
		&item.BaseQuantity,
		&unit,
		&people,
		&days,
		&pets,
		&freezer,
		&calories,
		&water,
	)
	if err != nil {
		return item, err
	}
	item.Unit = domain.Unit(unit)
	item.ScaleWithPeople = intToBool(people)
	item.ScaleWithDays = intToBool(days)
	item.ScaleWithPets = intToBool(pets)
	item.RequiresFreezer = intToBool(freezer)
	item.CaloriesPerUnit = nullFloatPtr(calories)
	item.WaterLitersPerUnit = nullFloatPtr(water)
	return item, nil
}

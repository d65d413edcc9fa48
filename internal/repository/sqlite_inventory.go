package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
)

// SQLiteInventoryRepo implements InventoryRepo using a SQLite database.
type SQLiteInventoryRepo struct {
	db db.DBTX
}

func NewSQLiteInventoryRepo(conn db.DBTX) *SQLiteInventoryRepo {
	return &SQLiteInventoryRepo{db: conn}
}

const inventoryColumns = `id, name, category_id, quantity, unit, item_type, product_template_id,
	calories_per_unit, water_liters_per_unit, marked_as_enough, expiration_date, never_expires,
	created_at, updated_at`

func (r *SQLiteInventoryRepo) Create(ctx context.Context, it *domain.InventoryItem) error {
	query := `INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.Name,
		it.CategoryID,
		it.Quantity,
		string(it.Unit),
		it.ItemType,
		it.ProductTemplateID,
		nullableFloatToValue(it.CaloriesPerUnit),
		nullableFloatToValue(it.WaterLitersPerUnit),
		boolToInt(it.MarkedAsEnough),
		nullableTimeToString(it.ExpirationDate, dateLayout),
		boolToInt(it.NeverExpires),
		it.CreatedAt.Format(time.RFC3339),
		it.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting inventory item: %w", err)
	}
	return nil
}

func (r *SQLiteInventoryRepo) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = ?`
	it, err := scanInventoryItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("inventory item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning inventory item: %w", err)
	}
	return &it, nil
}

func (r *SQLiteInventoryRepo) List(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY category_id, created_at, name`
	return r.query(ctx, query)
}

func (r *SQLiteInventoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE category_id = ? ORDER BY created_at, name`
	return r.query(ctx, query, categoryID)
}

func (r *SQLiteInventoryRepo) Update(ctx context.Context, it *domain.InventoryItem) error {
	query := `UPDATE inventory_items SET name = ?, category_id = ?, quantity = ?, unit = ?, item_type = ?,
		product_template_id = ?, calories_per_unit = ?, water_liters_per_unit = ?, marked_as_enough = ?,
		expiration_date = ?, never_expires = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.Name,
		it.CategoryID,
		it.Quantity,
		string(it.Unit),
		it.ItemType,
		it.ProductTemplateID,
		nullableFloatToValue(it.CaloriesPerUnit),
		nullableFloatToValue(it.WaterLitersPerUnit),
		boolToInt(it.MarkedAsEnough),
		nullableTimeToString(it.ExpirationDate, dateLayout),
		boolToInt(it.NeverExpires),
		it.UpdatedAt.Format(time.RFC3339),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating inventory item: %w", err)
	}
	return requireAffected(res, "inventory item "+it.ID)
}

func (r *SQLiteInventoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting inventory item: %w", err)
	}
	return requireAffected(res, "inventory item "+id)
}

func (r *SQLiteInventoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting inventory items: %w", err)
	}
	return n, nil
}

func (r *SQLiteInventoryRepo) query(ctx context.Context, query string, args ...any) ([]domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inventory item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inventory items: %w", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventoryItem(s rowScanner) (domain.InventoryItem, error) {
	var it domain.InventoryItem
	var unit, createdAt, updatedAt string
	var calories, water sql.NullFloat64
	var expiration sql.NullString
	var marked, neverExpires int

	err := s.Scan(
		&it.ID,
		&it.Name,
		&it.CategoryID,
		&it.Quantity,
		&unit,
		&it.ItemType,
		&it.ProductTemplateID,
		&calories,
		&water,
		&marked,
		&expiration,
		&neverExpires,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return it, err
	}

	it.Unit = domain.Unit(unit)
	it.CaloriesPerUnit = nullFloatPtr(calories)
	it.WaterLitersPerUnit = nullFloatPtr(water)
	it.MarkedAsEnough = intToBool(marked)
	it.ExpirationDate = parseNullableTime(expiration, dateLayout)
	it.NeverExpires = intToBool(neverExpires)
	it.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	it.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return it, nil
}

// requireAffected turns a no-op write into ErrNotFound.
func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are written to be
// re-runnable, so Migrate is safe on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Column additions are replayed on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		category_id         TEXT NOT NULL,
		quantity            REAL NOT NULL DEFAULT 0,
		unit                TEXT NOT NULL,
		item_type           TEXT NOT NULL DEFAULT 'custom',
		product_template_id TEXT NOT NULL DEFAULT '',
		calories_per_unit   REAL,
		marked_as_enough    INTEGER NOT NULL DEFAULT 0,
		expiration_date     TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_inventory_items_category ON inventory_items(category_id)`,

	`CREATE TABLE IF NOT EXISTS household (
		id                   TEXT PRIMARY KEY DEFAULT 'default',
		adults               INTEGER NOT NULL DEFAULT 2 CHECK(adults >= 0),
		children             INTEGER NOT NULL DEFAULT 0 CHECK(children >= 0),
		supply_duration_days INTEGER NOT NULL DEFAULT 3 CHECK(supply_duration_days >= 0)
	)`,

	`INSERT OR IGNORE INTO household (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS recommended_items (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL DEFAULT '',
		category_id           TEXT NOT NULL,
		base_quantity         REAL NOT NULL DEFAULT 0,
		unit                  TEXT NOT NULL,
		scale_with_people     INTEGER NOT NULL DEFAULT 0,
		scale_with_days       INTEGER NOT NULL DEFAULT 0,
		scale_with_pets       INTEGER NOT NULL DEFAULT 0,
		requires_freezer      INTEGER NOT NULL DEFAULT 0,
		calories_per_unit     REAL,
		water_liters_per_unit REAL,
		position              INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_recommended_items_position ON recommended_items(position)`,

	`CREATE TABLE IF NOT EXISTS disabled_recommendations (
		recommendation_id TEXT PRIMARY KEY,
		disabled_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS calculation_options (
		id                        TEXT PRIMARY KEY DEFAULT 'default',
		children_multiplier       REAL,
		daily_calories_per_person REAL,
		daily_water_per_person    REAL
	)`,

	`INSERT OR IGNORE INTO calculation_options (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS backup_reminder (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		last_backup_date   TEXT,
		last_modified_date TEXT,
		dismissed_until    TEXT
	)`,

	`INSERT OR IGNORE INTO backup_reminder (id) VALUES ('default')`,

	// Pet and freezer support
	`ALTER TABLE household ADD COLUMN pets INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE household ADD COLUMN use_freezer INTEGER NOT NULL DEFAULT 0`,

	// Preparation water and non-perishables
	`ALTER TABLE inventory_items ADD COLUMN water_liters_per_unit REAL`,
	`ALTER TABLE inventory_items ADD COLUMN never_expires INTEGER NOT NULL DEFAULT 0`,
}

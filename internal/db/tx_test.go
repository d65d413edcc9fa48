package db_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func readQuantity(t *testing.T, uow *db.SQLiteUnitOfWork, id string) (float64, bool) {
	t.Helper()
	var qty float64
	var found bool
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT quantity FROM inventory_items WHERE id = ?`, id).Scan(&qty); err != nil {
			return nil
		}
		found = true
		return nil
	})
	require.NoError(t, err)
	return qty, found
}

func insertItem(ctx context.Context, tx db.DBTX, id string, qty float64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO inventory_items (id, name, category_id, quantity, unit, created_at, updated_at)
		 VALUES (?, ?, 'food', ?, 'cans', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`,
		id, "item "+id, qty)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertItem(ctx, tx, "k1", 4)
	})
	require.NoError(t, err)

	qty, found := readQuantity(t, uow, "k1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, 4.0, qty)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertItem(ctx, tx, "k2", 1); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readQuantity(t, uow, "k2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertItem(ctx, tx, "k3", 1)
			panic("boom")
		})
	})

	_, found := readQuantity(t, uow, "k3")
	assert.False(t, found, "row should not exist after panic rollback")
}

// TestWithinTx_ReadModifyWriteIsSerialized increments one row from many
// goroutines against a file database; every increment must survive.
func TestWithinTx_ReadModifyWriteIsSerialized(t *testing.T) {
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "stockpile.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	uow := db.NewSQLiteUnitOfWork(database)

	ctx := context.Background()
	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return insertItem(ctx, tx, "counter", 0)
	}))

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				var qty float64
				if err := tx.QueryRowContext(ctx, `SELECT quantity FROM inventory_items WHERE id = 'counter'`).Scan(&qty); err != nil {
					return err
				}
				_, err := tx.ExecContext(ctx, `UPDATE inventory_items SET quantity = ? WHERE id = 'counter'`, qty+1)
				return err
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	qty, found := readQuantity(t, uow, "counter")
	require.True(t, found)
	assert.Equal(t, float64(workers), qty)
}

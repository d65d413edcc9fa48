package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/repository"
)

// snapshotSource reads everything one evaluation needs.
type snapshotSource struct {
	inventory repository.InventoryRepo
	household repository.HouseholdRepo
	catalog   repository.CatalogRepo
	settings  repository.SettingsRepo
}

// load returns the snapshot together with the calculation options stored
// for this household.
func (src snapshotSource) load(ctx context.Context, now time.Time) (readiness.Snapshot, domain.CategoryCalculationOptions, error) {
	var opts domain.CategoryCalculationOptions

	items, err := src.inventory.List(ctx)
	if err != nil {
		return readiness.Snapshot{}, opts, fmt.Errorf("loading inventory: %w", err)
	}
	household, err := src.household.Get(ctx)
	if err != nil {
		return readiness.Snapshot{}, opts, fmt.Errorf("loading household: %w", err)
	}
	catalog, err := src.catalog.List(ctx)
	if err != nil {
		return readiness.Snapshot{}, opts, fmt.Errorf("loading catalog: %w", err)
	}
	disabled, err := src.settings.ListDisabled(ctx)
	if err != nil {
		return readiness.Snapshot{}, opts, fmt.Errorf("loading disabled recommendations: %w", err)
	}
	opts, err = src.settings.GetOptions(ctx)
	if err != nil {
		return readiness.Snapshot{}, opts, fmt.Errorf("loading calculation options: %w", err)
	}

	return readiness.Snapshot{
		Items:       items,
		Household:   household,
		Catalog:     catalog,
		DisabledIDs: disabled,
		Now:         now,
	}, opts, nil
}

func resolveNow(req *time.Time, clock func() time.Time) time.Time {
	if req != nil {
		return *req
	}
	return clock()
}

func systemClock() time.Time {
	return time.Now()
}

func validQuantity(q float64) bool {
	return q >= 0 && !math.IsNaN(q) && !math.IsInf(q, 0)
}

func validOptional(v *float64) bool {
	return v == nil || validQuantity(*v)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

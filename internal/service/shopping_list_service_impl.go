package service

import (
	"context"
	"time"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/repository"
)

type shoppingListService struct {
	source   snapshotSource
	base     readiness.Config
	observer UseCaseObserver
	clock    func() time.Time
}

func NewShoppingListService(
	inventory repository.InventoryRepo,
	household repository.HouseholdRepo,
	catalog repository.CatalogRepo,
	settings repository.SettingsRepo,
	base readiness.Config,
	observers ...UseCaseObserver,
) ShoppingListService {
	return &shoppingListService{
		source: snapshotSource{
			inventory: inventory,
			household: household,
			catalog:   catalog,
			settings:  settings,
		},
		base:     base,
		observer: useCaseObserverOrNoop(observers),
		clock:    systemClock,
	}
}

func (s *shoppingListService) ShoppingList(ctx context.Context, req app.ShoppingListRequest) (resp *app.ShoppingListResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "shopping-list", startedAt, fields, &err)

	snap, opts, err := s.source.load(ctx, resolveNow(req.Now, s.clock))
	if err != nil {
		return nil, err
	}

	dash := readiness.NewEngine(s.base.WithOptions(opts)).Evaluate(snap)

	resp = &app.ShoppingListResponse{}
	for _, c := range dash.Categories {
		for _, sh := range c.Shortages {
			resp.Entries = append(resp.Entries, app.ShoppingListEntry{
				CategoryID:       c.CategoryID,
				CategoryName:     c.Name,
				CategoryShortage: sh,
			})
		}
	}
	fields["entries"] = len(resp.Entries)
	return resp, nil
}

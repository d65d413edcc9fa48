package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/repository"
)

type recommendationService struct {
	catalog   repository.CatalogRepo
	settings  repository.SettingsRepo
	household repository.HouseholdRepo
	uow       db.UnitOfWork
	base      readiness.Config
	observer  UseCaseObserver
}

func NewRecommendationService(
	catalog repository.CatalogRepo,
	settings repository.SettingsRepo,
	household repository.HouseholdRepo,
	uow db.UnitOfWork,
	base readiness.Config,
	observers ...UseCaseObserver,
) RecommendationService {
	return &recommendationService{
		catalog:   catalog,
		settings:  settings,
		household: household,
		uow:       uow,
		base:      base,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// List returns the catalog with each entry's scaled quantity for the
// current household.
func (s *recommendationService) List(ctx context.Context) ([]RecommendationView, error) {
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	disabledIDs, err := s.settings.ListDisabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading disabled recommendations: %w", err)
	}
	opts, err := s.settings.GetOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading calculation options: %w", err)
	}
	h, err := s.household.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading household: %w", err)
	}

	disabled := make(map[string]bool, len(disabledIDs))
	for _, id := range disabledIDs {
		disabled[id] = true
	}
	cfg := s.base.WithOptions(opts)

	views := make([]RecommendationView, 0, len(catalog))
	for _, entry := range catalog {
		views = append(views, RecommendationView{
			Item:        entry,
			Disabled:    disabled[entry.ID],
			Recommended: readiness.RecommendedQuantity(entry, h, cfg),
		})
	}
	return views, nil
}

// Disable hides a catalog entry from every calculation. Unknown ids fail
// with repository.ErrNotFound.
func (s *recommendationService) Disable(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "recommendation-disable", startedAt, map[string]any{"recommendation_id": id}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteCatalogRepo(tx).GetByID(ctx, id); err != nil {
			return err
		}
		return repository.NewSQLiteSettingsRepo(tx).Disable(ctx, id)
	})
}

func (s *recommendationService) Enable(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "recommendation-enable", startedAt, map[string]any{"recommendation_id": id}, &err)

	return s.settings.Enable(ctx, id)
}

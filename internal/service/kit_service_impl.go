package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/importer"
	"github.com/alexanderramin/stockpile/internal/repository"
)

type kitService struct {
	catalog  repository.CatalogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewKitService(catalog repository.CatalogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) KitService {
	return &kitService{catalog: catalog, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// InitDefault replaces the catalog with the built-in kit.
func (s *kitService) InitDefault(ctx context.Context) (*app.KitImportResult, error) {
	kit, err := importer.DefaultKit()
	if err != nil {
		return nil, fmt.Errorf("loading built-in kit: %w", err)
	}
	return s.ImportKitFromSchema(ctx, kit)
}

func (s *kitService) ImportKit(ctx context.Context, filePath string) (*app.KitImportResult, error) {
	kit, err := importer.LoadKit(filePath)
	if err != nil {
		return nil, err
	}
	return s.ImportKitFromSchema(ctx, kit)
}

// ImportKitFromSchema validates kit and swaps it in as the whole catalog.
// An invalid kit leaves the stored catalog untouched.
func (s *kitService) ImportKitFromSchema(ctx context.Context, kit *importer.KitSchema) (result *app.KitImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "kit-import", startedAt, fields, &err)

	if kit == nil {
		return nil, invalidf("kit is empty")
	}
	fields["kit"] = kit.Name

	if errs := importer.ValidateKit(kit); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, fmt.Errorf("%w: kit %q: %w", ErrInvalidInput, kit.Name, errors.Join(errs...))
	}

	items := importer.Convert(kit)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCatalogRepo(tx).ReplaceAll(ctx, items)
	})
	if err != nil {
		return nil, fmt.Errorf("replacing catalog: %w", err)
	}

	result = &app.KitImportResult{
		Name:          kit.Name,
		ItemCount:     len(items),
		CategoryCount: countCategories(items),
	}
	fields["items"] = result.ItemCount
	return result, nil
}

func (s *kitService) List(ctx context.Context) ([]domain.RecommendedItem, error) {
	return s.catalog.List(ctx)
}

func countCategories(items []domain.RecommendedItem) int {
	seen := make(map[string]bool)
	for _, it := range items {
		seen[it.CategoryID] = true
	}
	return len(seen)
}

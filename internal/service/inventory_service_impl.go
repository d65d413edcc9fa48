package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/reminder"
	"github.com/alexanderramin/stockpile/internal/repository"
	"github.com/google/uuid"
)

type inventoryService struct {
	items    repository.InventoryRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	clock    func() time.Time
}

func NewInventoryService(items repository.InventoryRepo, uow db.UnitOfWork, observers ...UseCaseObserver) InventoryService {
	return &inventoryService{
		items:    items,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		clock:    systemClock,
	}
}

// inventoryTx is the set of tx-scoped repositories an inventory mutation sees.
type inventoryTx struct {
	items   repository.InventoryRepo
	catalog repository.CatalogRepo
}

// mutate runs fn and stamps the reminder's last-modified day in one transaction.
func (s *inventoryService) mutate(ctx context.Context, now time.Time, fn func(ctx context.Context, tx inventoryTx) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, conn db.DBTX) error {
		if err := fn(ctx, inventoryTx{
			items:   repository.NewSQLiteInventoryRepo(conn),
			catalog: repository.NewSQLiteCatalogRepo(conn),
		}); err != nil {
			return err
		}

		reminders := repository.NewSQLiteReminderRepo(conn)
		state, err := reminders.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading reminder state: %w", err)
		}
		return reminders.Save(ctx, reminder.MarkModified(state, now))
	})
}

func (s *inventoryService) Add(ctx context.Context, item *domain.InventoryItem) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": item.CategoryID}
	defer observe(ctx, s.observer, "item-add", startedAt, fields, &err)

	item.Name = strings.TrimSpace(item.Name)
	if err = validateItem(item); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.ItemType == "" {
		item.ItemType = domain.ItemTypeCustom
		if item.ProductTemplateID != "" {
			item.ItemType = item.ProductTemplateID
		}
	}
	now := s.clock()
	item.CreatedAt = now.UTC()
	item.UpdatedAt = item.CreatedAt
	fields["item_id"] = item.ID

	return s.mutate(ctx, now, func(ctx context.Context, tx inventoryTx) error {
		if item.ProductTemplateID != "" {
			if _, err := tx.catalog.GetByID(ctx, item.ProductTemplateID); err != nil {
				return fmt.Errorf("linking item to recommendation: %w", err)
			}
		}
		return tx.items.Create(ctx, item)
	})
}

func (s *inventoryService) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *inventoryService) List(ctx context.Context, categoryID string) ([]domain.InventoryItem, error) {
	if categoryID == "" {
		return s.items.List(ctx)
	}
	return s.items.ListByCategory(ctx, categoryID)
}

func (s *inventoryService) SetQuantity(ctx context.Context, id string, quantity float64) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "item-quantity", startedAt, map[string]any{"item_id": id}, &err)

	if !validQuantity(quantity) {
		return invalidf("quantity must be a non-negative number, got %v", quantity)
	}
	now := s.clock()
	return s.mutate(ctx, now, func(ctx context.Context, tx inventoryTx) error {
		it, err := tx.items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		it.Quantity = quantity
		it.UpdatedAt = now.UTC()
		return tx.items.Update(ctx, it)
	})
}

func (s *inventoryService) SetMarkedAsEnough(ctx context.Context, id string, enough bool) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "item-enough", startedAt, map[string]any{"item_id": id, "enough": enough}, &err)

	now := s.clock()
	return s.mutate(ctx, now, func(ctx context.Context, tx inventoryTx) error {
		it, err := tx.items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		it.MarkedAsEnough = enough
		it.UpdatedAt = now.UTC()
		return tx.items.Update(ctx, it)
	})
}

func (s *inventoryService) Remove(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "item-remove", startedAt, map[string]any{"item_id": id}, &err)

	return s.mutate(ctx, s.clock(), func(ctx context.Context, tx inventoryTx) error {
		return tx.items.Delete(ctx, id)
	})
}

func validateItem(item *domain.InventoryItem) error {
	var errs []error
	if item.Name == "" {
		errs = append(errs, invalidf("name is required"))
	}
	if strings.TrimSpace(item.CategoryID) == "" {
		errs = append(errs, invalidf("category is required"))
	}
	if !domain.ValidUnits[item.Unit] {
		errs = append(errs, invalidf("unknown unit %q", item.Unit))
	}
	if !validQuantity(item.Quantity) {
		errs = append(errs, invalidf("quantity must be a non-negative number, got %v", item.Quantity))
	}
	if !validOptional(item.CaloriesPerUnit) {
		errs = append(errs, invalidf("calories per unit must be non-negative"))
	}
	if !validOptional(item.WaterLitersPerUnit) {
		errs = append(errs, invalidf("water per unit must be non-negative"))
	}
	if item.NeverExpires && item.ExpirationDate != nil {
		errs = append(errs, invalidf("an item cannot both expire and never expire"))
	}
	return errors.Join(errs...)
}

package repository

import (
	"context"

	"github.com/alexanderramin/stockpile/internal/domain"
)

type InventoryRepo interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type HouseholdRepo interface {
	Get(ctx context.Context) (domain.HouseholdConfig, error)
	Upsert(ctx context.Context, h domain.HouseholdConfig) error
}

// CatalogRepo stores the recommendation kit in display order.
type CatalogRepo interface {
	List(ctx context.Context) ([]domain.RecommendedItem, error)
	GetByID(ctx context.Context, id string) (*domain.RecommendedItem, error)
	ReplaceAll(ctx context.Context, items []domain.RecommendedItem) error
}

// SettingsRepo holds user choices layered over the catalog: which entries
// are disabled and which calculation defaults are overridden.
type SettingsRepo interface {
	ListDisabled(ctx context.Context) ([]string, error)
	Disable(ctx context.Context, recommendationID string) error
	Enable(ctx context.Context, recommendationID string) error
	GetOptions(ctx context.Context) (domain.CategoryCalculationOptions, error)
	SaveOptions(ctx context.Context, opts domain.CategoryCalculationOptions) error
}

type ReminderRepo interface {
	Get(ctx context.Context) (domain.BackupReminderState, error)
	Save(ctx context.Context, state domain.BackupReminderState) error
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/importer"
)

// ErrInvalidInput marks a request rejected before touching storage.
var ErrInvalidInput = errors.New("invalid input")

type StatusService interface {
	GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error)
}

type ShoppingListService interface {
	ShoppingList(ctx context.Context, req app.ShoppingListRequest) (*app.ShoppingListResponse, error)
}

// InventoryService mutates the inventory. Every mutation also stamps the
// backup reminder's last-modified day in the same transaction.
type InventoryService interface {
	Add(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context, categoryID string) ([]domain.InventoryItem, error)
	SetQuantity(ctx context.Context, id string, quantity float64) error
	SetMarkedAsEnough(ctx context.Context, id string, enough bool) error
	Remove(ctx context.Context, id string) error
}

type HouseholdService interface {
	Get(ctx context.Context) (domain.HouseholdConfig, error)
	Update(ctx context.Context, h domain.HouseholdConfig) error
}

type OptionsService interface {
	Get(ctx context.Context) (domain.CategoryCalculationOptions, error)
	Update(ctx context.Context, opts domain.CategoryCalculationOptions) error
}

type KitService interface {
	InitDefault(ctx context.Context) (*app.KitImportResult, error)
	ImportKit(ctx context.Context, filePath string) (*app.KitImportResult, error)
	ImportKitFromSchema(ctx context.Context, kit *importer.KitSchema) (*app.KitImportResult, error)
	List(ctx context.Context) ([]domain.RecommendedItem, error)
}

// RecommendationView is a catalog entry with its state for this household.
type RecommendationView struct {
	Item        domain.RecommendedItem
	Disabled    bool
	Recommended float64
}

type RecommendationService interface {
	List(ctx context.Context) ([]RecommendationView, error)
	Disable(ctx context.Context, id string) error
	Enable(ctx context.Context, id string) error
}

type ReminderService interface {
	Check(ctx context.Context) (bool, error)
	Dismiss(ctx context.Context) (time.Time, error)
	RecordBackup(ctx context.Context) error
}

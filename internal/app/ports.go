package app

import (
	"context"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/importer"
)

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type ShoppingListUseCase interface {
	ShoppingList(ctx context.Context, req ShoppingListRequest) (*ShoppingListResponse, error)
}

type AddItemUseCase interface {
	Add(ctx context.Context, item *domain.InventoryItem) error
}

type KitImportResult struct {
	Name          string
	ItemCount     int
	CategoryCount int
}

type ImportKitUseCase interface {
	ImportKit(ctx context.Context, filePath string) (*KitImportResult, error)
	ImportKitFromSchema(ctx context.Context, kit *importer.KitSchema) (*KitImportResult, error)
}

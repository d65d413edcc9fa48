package app

import (
	"time"

	"github.com/alexanderramin/stockpile/internal/readiness"
)

type ShoppingListRequest struct {
	Now *time.Time
}

// ShoppingListEntry is one shortage tagged with the category it belongs to.
type ShoppingListEntry struct {
	CategoryID   string
	CategoryName string
	readiness.CategoryShortage
}

// ShoppingListResponse lists shortages grouped in category display order,
// largest gap first within each category.
type ShoppingListResponse struct {
	Entries []ShoppingListEntry
}

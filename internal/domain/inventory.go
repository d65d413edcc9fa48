package domain

import "time"

// InventoryItem is one stocked record in the household's supplies.
type InventoryItem struct {
	ID         string
	Name       string
	CategoryID string
	Quantity   float64
	Unit       Unit

	// ItemType is ItemTypeCustom for hand-made items, otherwise a
	// recommendation id tag. ProductTemplateID is the explicit catalog link.
	ItemType          string
	ProductTemplateID string

	CaloriesPerUnit    *float64
	WaterLitersPerUnit *float64
	MarkedAsEnough     bool
	ExpirationDate     *time.Time
	NeverExpires       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCustom reports whether the item was created without a recommendation.
func (i InventoryItem) IsCustom() bool {
	return i.ProductTemplateID == "" && (i.ItemType == "" || i.ItemType == ItemTypeCustom)
}

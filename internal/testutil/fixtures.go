package testutil

import (
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/google/uuid"
)

// Recommendation options
type RecommendationOption func(*domain.RecommendedItem)

func ScalesWithPeople() RecommendationOption {
	return func(r *domain.RecommendedItem) { r.ScaleWithPeople = true }
}

func ScalesWithDays() RecommendationOption {
	return func(r *domain.RecommendedItem) { r.ScaleWithDays = true }
}

func ScalesWithPets() RecommendationOption {
	return func(r *domain.RecommendedItem) { r.ScaleWithPets = true }
}

func NeedsFreezer() RecommendationOption {
	return func(r *domain.RecommendedItem) { r.RequiresFreezer = true }
}

func WithEntryCalories(kcal float64) RecommendationOption {
	return func(r *domain.RecommendedItem) { r.CaloriesPerUnit = &kcal }
}

func WithEntryWater(liters float64) RecommendationOption {
	return func(r *domain.RecommendedItem) { r.WaterLitersPerUnit = &liters }
}

func WithEntryName(name string) RecommendationOption {
	return func(r *domain.RecommendedItem) { r.Name = name }
}

func NewTestRecommendation(id, categoryID string, base float64, unit domain.Unit, opts ...RecommendationOption) domain.RecommendedItem {
	r := domain.RecommendedItem{
		ID:           id,
		Name:         id,
		CategoryID:   categoryID,
		BaseQuantity: base,
		Unit:         unit,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Inventory options
type ItemOption func(*domain.InventoryItem)

// LinkedTo links the item to a catalog entry, the way items created from a
// recommendation are.
func LinkedTo(recommendationID string) ItemOption {
	return func(i *domain.InventoryItem) {
		i.ProductTemplateID = recommendationID
		i.ItemType = recommendationID
	}
}

// TaggedAs sets a type tag without a catalog link, as legacy records have.
func TaggedAs(tag string) ItemOption {
	return func(i *domain.InventoryItem) { i.ItemType = tag }
}

func MarkedEnough() ItemOption {
	return func(i *domain.InventoryItem) { i.MarkedAsEnough = true }
}

func WithCalories(kcal float64) ItemOption {
	return func(i *domain.InventoryItem) { i.CaloriesPerUnit = &kcal }
}

func WithWaterPerUnit(liters float64) ItemOption {
	return func(i *domain.InventoryItem) { i.WaterLitersPerUnit = &liters }
}

func ExpiresOn(d time.Time) ItemOption {
	return func(i *domain.InventoryItem) { i.ExpirationDate = &d }
}

func NewTestItem(name, categoryID string, qty float64, unit domain.Unit, opts ...ItemOption) domain.InventoryItem {
	now := time.Now().UTC()
	i := domain.InventoryItem{
		ID:         uuid.New().String(),
		Name:       name,
		CategoryID: categoryID,
		Quantity:   qty,
		Unit:       unit,
		ItemType:   domain.ItemTypeCustom,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

package domain

// RecommendedItem is a catalog entry: a suggested supply whose quantity
// scales with the household.
type RecommendedItem struct {
	ID           string
	Name         string
	CategoryID   string
	BaseQuantity float64
	Unit         Unit

	ScaleWithPeople bool
	ScaleWithDays   bool
	ScaleWithPets   bool
	RequiresFreezer bool

	CaloriesPerUnit    *float64
	WaterLitersPerUnit *float64
}

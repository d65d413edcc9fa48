package importer

import "github.com/alexanderramin/stockpile/internal/domain"

// Convert maps a validated kit onto catalog entries, keeping file order.
// Call ValidateKit first; Convert assumes the kit is valid.
func Convert(kit *KitSchema) []domain.RecommendedItem {
	out := make([]domain.RecommendedItem, 0, len(kit.Items))
	for _, item := range kit.Items {
		name := item.Name
		if name == "" {
			name = item.ID
		}
		out = append(out, domain.RecommendedItem{
			ID:                 item.ID,
			Name:               name,
			CategoryID:         item.Category,
			BaseQuantity:       item.Quantity,
			Unit:               domain.Unit(item.Unit),
			ScaleWithPeople:    item.ScaleWithPeople,
			ScaleWithDays:      item.ScaleWithDays,
			ScaleWithPets:      item.ScaleWithPets,
			RequiresFreezer:    item.RequiresFreezer,
			CaloriesPerUnit:    item.CaloriesPerUnit,
			WaterLitersPerUnit: item.WaterLitersPerUnit,
		})
	}
	return out
}

package readiness

import (
	"strings"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// ItemMatcher decides whether an inventory item counts toward a catalog entry.
type ItemMatcher interface {
	Matches(item domain.InventoryItem, entry domain.RecommendedItem) bool
}

// CatalogMatcher matches by explicit catalog link or by type tag.
//
// LegacyNameFallback additionally matches tagged, unlinked items whose
// normalized name equals the entry id. This exists only for records created
// before items carried a catalog link. Custom items never match by name, so
// a user-typed label is not credited against a recommendation.
type CatalogMatcher struct {
	LegacyNameFallback bool
}

func (m CatalogMatcher) Matches(item domain.InventoryItem, entry domain.RecommendedItem) bool {
	if entry.ID == "" {
		return false
	}
	if item.ProductTemplateID == entry.ID {
		return true
	}
	if item.ItemType != "" && item.ItemType != domain.ItemTypeCustom && item.ItemType == entry.ID {
		return true
	}
	if !m.LegacyNameFallback || item.IsCustom() || item.ProductTemplateID != "" {
		return false
	}
	return NormalizeName(item.Name) == entry.ID
}

// NormalizeName lowercases s and joins its whitespace-separated words with hyphens.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}

// MatchItems returns the items m credits toward entry, preserving order.
func MatchItems(m ItemMatcher, items []domain.InventoryItem, entry domain.RecommendedItem) []domain.InventoryItem {
	var out []domain.InventoryItem
	for _, it := range items {
		if m.Matches(it, entry) {
			out = append(out, it)
		}
	}
	return out
}

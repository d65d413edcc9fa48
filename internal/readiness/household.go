package readiness

import (
	"math"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// ceilTolerance absorbs float noise such as 18.000000000000004 before ceiling.
const ceilTolerance = 1e-9

// PeopleMultiplier weights household members: adults count 1, children
// count cfg.ChildrenMultiplier.
func PeopleMultiplier(h domain.HouseholdConfig, cfg Config) float64 {
	return float64(max(h.Adults, 0)) + float64(max(h.Children, 0))*cfg.ChildrenMultiplier
}

// RecommendedQuantity scales a catalog entry to the household and rounds up.
// Returns 0 when the entry does not apply (no people, no pets, no freezer).
func RecommendedQuantity(entry domain.RecommendedItem, h domain.HouseholdConfig, cfg Config) float64 {
	return ceilQuantity(scaledQuantity(entry.BaseQuantity, entry, h, cfg))
}

// scaledQuantity applies the entry's scaling flags to base without rounding.
func scaledQuantity(base float64, entry domain.RecommendedItem, h domain.HouseholdConfig, cfg Config) float64 {
	if entry.RequiresFreezer && !h.UseFreezer {
		return 0
	}
	q := base
	if entry.ScaleWithPeople {
		q *= PeopleMultiplier(h, cfg)
	}
	if entry.ScaleWithPets {
		q *= float64(max(h.Pets, 0))
	}
	if entry.ScaleWithDays {
		q *= float64(max(h.SupplyDurationDays, 0))
	}
	return q
}

func ceilQuantity(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return math.Ceil(q - ceilTolerance)
}

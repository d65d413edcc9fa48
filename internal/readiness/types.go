package readiness

import "github.com/alexanderramin/stockpile/internal/domain"

// CategoryShortage is the gap for one catalog entry. Missing is never negative.
type CategoryShortage struct {
	ItemID  string
	Name    string
	Actual  float64
	Needed  float64
	Unit    domain.Unit
	Missing float64
}

type CalorieTotals struct {
	Actual  float64
	Needed  float64
	Missing float64
}

// WaterTotals splits the water requirement for display. The shortage
// threshold uses the ceiling of Drinking + Preparation.
type WaterTotals struct {
	Drinking    float64
	Preparation float64
	Actual      float64 // liters held in the category
}

// Needed is the rounded-up combined water requirement.
func (w WaterTotals) Needed() float64 {
	return ceilQuantity(w.Drinking + w.Preparation)
}

type ShortageCalculationResult struct {
	CategoryID string
	Strategy   StrategyKind
	Shortages  []CategoryShortage

	TotalActual float64
	TotalNeeded float64
	// PrimaryUnit is empty when totals are weighted item counts.
	PrimaryUnit domain.Unit

	// EntryCount is the number of active entries with a nonzero recommendation.
	EntryCount int

	Calories *CalorieTotals
	Water    *WaterTotals
}

type ItemStatusCounts struct {
	Critical int
	Warning  int
	OK       int
}

// CategoryStatusSummary is the complete per-category result.
type CategoryStatusSummary struct {
	CategoryID           string
	Name                 string
	Status               domain.Status
	CompletionPercentage int
	Counts               ItemStatusCounts
	Shortages            []CategoryShortage

	TotalActual float64
	TotalNeeded float64
	PrimaryUnit domain.Unit

	Calories *CalorieTotals
	Water    *WaterTotals

	HasRecommendations bool
	HasEnough          bool
	Strategy           StrategyKind
}

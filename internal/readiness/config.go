package readiness

import (
	"math"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// Config holds every constant the engine reads. Nothing in this package
// consults package-level state; callers pass a Config into NewEngine.
type Config struct {
	ChildrenMultiplier     float64
	DailyCaloriesPerPerson float64
	DailyWaterPerPerson    float64 // liters

	CriticalThresholdPct float64
	WarningThresholdPct  float64
	ItemWarningRatio     float64
	ExpiringSoonDays     int

	FoodCategoryID      string
	WaterCategoryID     string
	DrinkingWaterItemID string

	// CountDistinctCategories are scored as presence of each recommended
	// item type rather than summed quantity.
	CountDistinctCategories []string

	// LegacyNameMatch lets tagged items without a catalog link match by
	// normalized name.
	LegacyNameMatch bool
}

func DefaultConfig() Config {
	return Config{
		ChildrenMultiplier:      0.75,
		DailyCaloriesPerPerson:  2000,
		DailyWaterPerPerson:     3,
		CriticalThresholdPct:    30,
		WarningThresholdPct:     70,
		ItemWarningRatio:        0.5,
		ExpiringSoonDays:        30,
		FoodCategoryID:          domain.CategoryFood,
		WaterCategoryID:         domain.CategoryWater,
		DrinkingWaterItemID:     "bottled-water",
		CountDistinctCategories: []string{domain.CategoryCommunication},
		LegacyNameMatch:         true,
	}
}

// ResolveConfig applies user overrides on top of DefaultConfig.
func ResolveConfig(opts domain.CategoryCalculationOptions) Config {
	return DefaultConfig().WithOptions(opts)
}

// WithOptions returns a copy of c with every present, usable override applied.
// Negative or non-finite overrides are ignored.
func (c Config) WithOptions(opts domain.CategoryCalculationOptions) Config {
	c.ChildrenMultiplier = domain.Float64FromPtrWithDefault(c.ChildrenMultiplier, usable(opts.ChildrenMultiplier))
	c.DailyCaloriesPerPerson = domain.Float64FromPtrWithDefault(c.DailyCaloriesPerPerson, usable(opts.DailyCaloriesPerPerson))
	c.DailyWaterPerPerson = domain.Float64FromPtrWithDefault(c.DailyWaterPerPerson, usable(opts.DailyWaterPerPerson))
	return c
}

func usable(v *float64) *float64 {
	if v == nil || *v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

package domain

// CategoryCalculationOptions carries user overrides for the calculation
// constants. A nil field means "use the default".
type CategoryCalculationOptions struct {
	ChildrenMultiplier     *float64
	DailyCaloriesPerPerson *float64
	DailyWaterPerPerson    *float64
}

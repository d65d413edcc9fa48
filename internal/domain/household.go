package domain

// HouseholdConfig describes who the supplies must cover and for how long.
type HouseholdConfig struct {
	Adults             int
	Children           int
	Pets               int
	SupplyDurationDays int
	UseFreezer         bool
}

// DefaultHousehold is the configuration a fresh install starts with.
func DefaultHousehold() HouseholdConfig {
	return HouseholdConfig{
		Adults:             2,
		SupplyDurationDays: 3,
	}
}

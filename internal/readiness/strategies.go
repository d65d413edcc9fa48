package readiness

import (
	"math"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// weightedTolerance absorbs float noise when comparing summed ratios.
const weightedTolerance = 1e-9

// quantityStrategy sums raw quantities of a single-unit category.
type quantityStrategy struct{}

func (quantityStrategy) Kind() StrategyKind { return StrategyQuantity }

func (quantityStrategy) RecommendedQuantity(entry domain.RecommendedItem, c *calcContext) float64 {
	return RecommendedQuantity(entry, c.household, c.cfg)
}

func (quantityStrategy) Actual(line entryLine, _ *calcContext) float64 {
	var sum float64
	for _, it := range line.matched {
		sum += math.Max(it.Quantity, 0)
	}
	return sum
}

func (quantityStrategy) Aggregate(lines []entryLine, _ *calcContext, res *ShortageCalculationResult) {
	for _, l := range lines {
		res.TotalActual += l.actual
		res.TotalNeeded += l.needed
	}
	res.PrimaryUnit = primaryUnit(lines)
}

func (quantityStrategy) HasEnough(res ShortageCalculationResult, _ *calcContext) bool {
	if res.EntryCount == 0 {
		return true
	}
	return res.TotalActual >= res.TotalNeeded || len(res.Shortages) == 0
}

// calorieStrategy measures food in calories against the household's energy need.
type calorieStrategy struct {
	quantityStrategy
}

func (calorieStrategy) Kind() StrategyKind { return StrategyCalorie }

func (calorieStrategy) Aggregate(lines []entryLine, c *calcContext, res *ShortageCalculationResult) {
	needed := c.cfg.DailyCaloriesPerPerson * PeopleMultiplier(c.household, c.cfg) * float64(max(c.household.SupplyDurationDays, 0))
	var actual float64
	for _, it := range c.items {
		actual += math.Max(it.Quantity, 0) * caloriesPerUnit(c, it)
	}
	res.Calories = &CalorieTotals{
		Actual:  actual,
		Needed:  needed,
		Missing: math.Max(0, needed-actual),
	}
	if len(lines) == 0 {
		return
	}
	res.TotalActual = actual
	res.TotalNeeded = needed
	res.PrimaryUnit = domain.UnitKcal
}

func (calorieStrategy) HasEnough(res ShortageCalculationResult, _ *calcContext) bool {
	if res.Calories == nil {
		return false
	}
	return res.Calories.Actual >= res.Calories.Needed
}

// caloriesPerUnit prefers the item's own value, then its catalog entry's.
func caloriesPerUnit(c *calcContext, it domain.InventoryItem) float64 {
	if it.CaloriesPerUnit != nil {
		return math.Max(*it.CaloriesPerUnit, 0)
	}
	if entry := firstMatchingEntry(c, c.categoryID, it); entry != nil && entry.CaloriesPerUnit != nil {
		return math.Max(*entry.CaloriesPerUnit, 0)
	}
	return 0
}

// waterStrategy adds food preparation water to the drinking-water entry.
type waterStrategy struct {
	quantityStrategy
}

func (waterStrategy) Kind() StrategyKind { return StrategyWater }

func (s waterStrategy) RecommendedQuantity(entry domain.RecommendedItem, c *calcContext) float64 {
	if entry.ID != c.cfg.DrinkingWaterItemID {
		return s.quantityStrategy.RecommendedQuantity(entry, c)
	}
	drinking := drinkingWater(entry, c)
	if drinking <= 0 {
		return 0
	}
	return ceilQuantity(drinking + preparationWater(c))
}

func (s waterStrategy) Aggregate(lines []entryLine, c *calcContext, res *ShortageCalculationResult) {
	s.quantityStrategy.Aggregate(lines, c, res)

	drinking := c.cfg.DailyWaterPerPerson * PeopleMultiplier(c.household, c.cfg) * float64(max(c.household.SupplyDurationDays, 0))
	for _, l := range lines {
		if l.entry.ID == c.cfg.DrinkingWaterItemID {
			drinking = drinkingWater(l.entry, c)
			break
		}
	}
	var held float64
	for _, it := range c.items {
		if it.Unit == domain.UnitLiters {
			held += math.Max(it.Quantity, 0)
		}
	}
	res.Water = &WaterTotals{
		Drinking:    drinking,
		Preparation: preparationWater(c),
		Actual:      held,
	}
}

func (s waterStrategy) HasEnough(res ShortageCalculationResult, c *calcContext) bool {
	if res.EntryCount > 0 || res.Water == nil {
		return s.quantityStrategy.HasEnough(res, c)
	}
	return res.Water.Actual >= res.Water.Needed()
}

// drinkingWater is the baseline per-person water need scaled like entry.
func drinkingWater(entry domain.RecommendedItem, c *calcContext) float64 {
	return scaledQuantity(c.cfg.DailyWaterPerPerson, entry, c.household, c.cfg)
}

// preparationWater sums the water food items need for reconstitution.
func preparationWater(c *calcContext) float64 {
	var sum float64
	for _, it := range c.allItems {
		if it.CategoryID != c.cfg.FoodCategoryID {
			continue
		}
		perUnit := 0.0
		if it.WaterLitersPerUnit != nil {
			perUnit = *it.WaterLitersPerUnit
		} else if entry := firstMatchingEntry(c, c.cfg.FoodCategoryID, it); entry != nil && entry.WaterLitersPerUnit != nil {
			perUnit = *entry.WaterLitersPerUnit
		}
		sum += math.Max(it.Quantity, 0) * math.Max(perUnit, 0)
	}
	return sum
}

// weightedStrategy scores each entry's fulfillment ratio so entries in
// different units land on one scale. Totals become a fractional item count.
type weightedStrategy struct {
	base Strategy
}

func (weightedStrategy) Kind() StrategyKind { return StrategyWeighted }

func (s weightedStrategy) RecommendedQuantity(entry domain.RecommendedItem, c *calcContext) float64 {
	return s.base.RecommendedQuantity(entry, c)
}

func (s weightedStrategy) Actual(line entryLine, c *calcContext) float64 {
	return s.base.Actual(line, c)
}

func (s weightedStrategy) Aggregate(lines []entryLine, c *calcContext, res *ShortageCalculationResult) {
	s.base.Aggregate(lines, c, res)
	res.TotalActual, res.TotalNeeded = 0, 0
	for _, l := range lines {
		res.TotalActual += l.fulfillment()
		res.TotalNeeded++
	}
	res.PrimaryUnit = ""
}

func (s weightedStrategy) HasEnough(res ShortageCalculationResult, c *calcContext) bool {
	if res.EntryCount == 0 {
		return s.base.HasEnough(res, c)
	}
	return res.TotalActual >= res.TotalNeeded-weightedTolerance
}

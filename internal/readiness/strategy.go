package readiness

import (
	"math"

	"github.com/alexanderramin/stockpile/internal/domain"
)

type StrategyKind string

const (
	StrategyQuantity StrategyKind = "quantity"
	StrategyCalorie  StrategyKind = "calorie"
	StrategyWater    StrategyKind = "water"
	StrategyWeighted StrategyKind = "weighted"
)

// Strategy reconciles one category's catalog entries with inventory on a
// single 0–100 scale. Implementations are stateless.
type Strategy interface {
	Kind() StrategyKind
	RecommendedQuantity(entry domain.RecommendedItem, c *calcContext) float64
	Actual(line entryLine, c *calcContext) float64
	Aggregate(lines []entryLine, c *calcContext, res *ShortageCalculationResult)
	HasEnough(res ShortageCalculationResult, c *calcContext) bool
}

// calcContext carries the per-call inputs strategies read.
type calcContext struct {
	categoryID string
	household  domain.HouseholdConfig
	cfg        Config
	matcher    ItemMatcher
	catalog    []domain.RecommendedItem
	allItems   []domain.InventoryItem
	items      []domain.InventoryItem // items in categoryID
}

// entryLine is one active catalog entry reconciled against inventory.
type entryLine struct {
	entry        domain.RecommendedItem
	needed       float64
	actual       float64
	matched      []domain.InventoryItem
	markedEnough bool
}

// fulfillment is the entry's 0–1 satisfaction ratio.
func (l entryLine) fulfillment() float64 {
	if l.markedEnough || l.needed <= 0 {
		return 1
	}
	return math.Min(l.actual/l.needed, 1)
}

// strategyFor picks the category's strategy. Calorie categories never switch;
// any other category becomes weighted when it counts distinct item types or
// its active entries span more than one unit.
func (e *Engine) strategyFor(categoryID string, active []domain.RecommendedItem) Strategy {
	base, ok := e.strategies[categoryID]
	if !ok {
		base = quantityStrategy{}
	}
	if base.Kind() == StrategyCalorie {
		return base
	}
	if e.countDistinct[categoryID] || hasMixedUnits(active) {
		return weightedStrategy{base: base}
	}
	return base
}

func hasMixedUnits(entries []domain.RecommendedItem) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].Unit != entries[0].Unit {
			return true
		}
	}
	return false
}

// primaryUnit returns the unit carrying the largest cumulative recommended
// quantity; ties go to the unit seen first.
func primaryUnit(lines []entryLine) domain.Unit {
	weights := make(map[domain.Unit]float64)
	var order []domain.Unit
	for _, l := range lines {
		if _, seen := weights[l.entry.Unit]; !seen {
			order = append(order, l.entry.Unit)
		}
		weights[l.entry.Unit] += l.needed
	}
	var best domain.Unit
	bestWeight := -1.0
	for _, u := range order {
		if weights[u] > bestWeight {
			best, bestWeight = u, weights[u]
		}
	}
	return best
}

// firstMatchingEntry finds the catalog entry in categoryID that item counts toward.
func firstMatchingEntry(c *calcContext, categoryID string, item domain.InventoryItem) *domain.RecommendedItem {
	for i := range c.catalog {
		if c.catalog[i].CategoryID == categoryID && c.matcher.Matches(item, c.catalog[i]) {
			return &c.catalog[i]
		}
	}
	return nil
}

package readiness

import (
	"math"
	"sort"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// ShortageInput identifies one category within an inventory snapshot.
// Items is the whole inventory; food items feed the water calculation.
type ShortageInput struct {
	CategoryID  string
	Items       []domain.InventoryItem
	Household   domain.HouseholdConfig
	Catalog     []domain.RecommendedItem
	DisabledIDs []string
}

// reconciliation is the intermediate state shared by the shortage
// calculator, the status aggregator and the scorer.
type reconciliation struct {
	result   ShortageCalculationResult
	strategy Strategy
	ctx      *calcContext
	lines    []entryLine
	active   int
}

// CalculateShortages reconciles a category's active catalog entries against
// inventory. Unknown or catalog-less categories yield an empty result.
func (e *Engine) CalculateShortages(in ShortageInput) ShortageCalculationResult {
	return e.reconcile(in).result
}

func (e *Engine) reconcile(in ShortageInput) reconciliation {
	active := activeEntries(in.Catalog, in.CategoryID, in.DisabledIDs)
	c := &calcContext{
		categoryID: in.CategoryID,
		household:  in.Household,
		cfg:        e.cfg,
		matcher:    e.matcher,
		catalog:    in.Catalog,
		allItems:   in.Items,
		items:      itemsInCategory(in.Items, in.CategoryID),
	}
	strategy := e.strategyFor(in.CategoryID, active)
	res := ShortageCalculationResult{
		CategoryID: in.CategoryID,
		Strategy:   strategy.Kind(),
	}

	var lines []entryLine
	for _, entry := range active {
		needed := strategy.RecommendedQuantity(entry, c)
		if needed <= 0 {
			continue
		}
		line := entryLine{
			entry:   entry,
			needed:  needed,
			matched: MatchItems(e.matcher, c.items, entry),
		}
		for _, it := range line.matched {
			if it.MarkedAsEnough {
				line.markedEnough = true
				break
			}
		}
		line.actual = strategy.Actual(line, c)
		lines = append(lines, line)

		missing := math.Max(0, needed-line.actual)
		if missing > 0 && !line.markedEnough {
			res.Shortages = append(res.Shortages, CategoryShortage{
				ItemID:  entry.ID,
				Name:    displayName(entry),
				Actual:  line.actual,
				Needed:  needed,
				Unit:    entry.Unit,
				Missing: missing,
			})
		}
	}
	res.EntryCount = len(lines)

	strategy.Aggregate(lines, c, &res)
	SortShortages(res.Shortages)

	return reconciliation{
		result:   res,
		strategy: strategy,
		ctx:      c,
		lines:    lines,
		active:   len(active),
	}
}

// SortShortages orders by missing amount, largest first; ties keep input order.
func SortShortages(s []CategoryShortage) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Missing > s[j].Missing
	})
}

func activeEntries(catalog []domain.RecommendedItem, categoryID string, disabledIDs []string) []domain.RecommendedItem {
	disabled := make(map[string]bool, len(disabledIDs))
	for _, id := range disabledIDs {
		disabled[id] = true
	}
	var out []domain.RecommendedItem
	for _, r := range catalog {
		if r.CategoryID == categoryID && !disabled[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func itemsInCategory(items []domain.InventoryItem, categoryID string) []domain.InventoryItem {
	var out []domain.InventoryItem
	for _, it := range items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out
}

func displayName(entry domain.RecommendedItem) string {
	if entry.Name != "" {
		return entry.Name
	}
	return entry.ID
}

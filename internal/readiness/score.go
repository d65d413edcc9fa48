package readiness

import (
	"math"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// CategoryTallyScore is the share of categories whose status is ok, 0–100.
func CategoryTallyScore(summaries []CategoryStatusSummary) int {
	if len(summaries) == 0 {
		return 0
	}
	ok := 0
	for _, s := range summaries {
		if s.Status == domain.StatusOK {
			ok++
		}
	}
	return int(math.Round(100 * float64(ok) / float64(len(summaries))))
}

// CategoryPercentage scores one category 0–100 with the same strategy the
// shortage calculator uses.
//
// Without any applicable catalog entry, food and water fall back to their
// intrinsic per-person need; other categories count as complete once they
// hold at least one item.
func (e *Engine) CategoryPercentage(in ShortageInput) int {
	r := e.reconcile(in)
	res := r.result

	if res.EntryCount == 0 {
		if pct, ok := intrinsicPercentage(res); ok {
			return pct
		}
		if len(r.ctx.items) > 0 {
			return 100
		}
		return 0
	}
	return percentOf(res.TotalActual, res.TotalNeeded)
}

func intrinsicPercentage(res ShortageCalculationResult) (int, bool) {
	if res.Calories != nil && res.Calories.Needed > 0 {
		return percentOf(res.Calories.Actual, res.Calories.Needed), true
	}
	if res.Water != nil && res.Water.Needed() > 0 {
		return percentOf(res.Water.Actual, res.Water.Needed()), true
	}
	return 0, false
}

// percentOf returns round(actual/needed*100) clamped to 0–100, or 0 when
// needed is not positive.
func percentOf(actual, needed float64) int {
	if needed <= 0 {
		return 0
	}
	return int(math.Round(clampPct(actual / needed * 100)))
}

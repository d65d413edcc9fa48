package readiness

import (
	"math"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// StatusInput adds the scorer's percentage and the evaluation time to a
// ShortageInput. A zero Now skips expiration checks.
type StatusInput struct {
	ShortageInput
	CompletionPercentage int
	Now                  time.Time
}

// CategoryStatus folds item statuses, shortages and the has-enough check
// into one status and a percentage consistent with the reported totals.
func (e *Engine) CategoryStatus(in StatusInput) CategoryStatusSummary {
	r := e.reconcile(in.ShortageInput)
	res := r.result

	counts := e.itemStatusCounts(r, in.Now)
	hasEnough := r.strategy.HasEnough(res, r.ctx)

	effective := float64(in.CompletionPercentage)
	if res.PrimaryUnit == "" && res.TotalNeeded > 0 {
		effective = math.Round(res.TotalActual / res.TotalNeeded * 100)
	}

	summary := CategoryStatusSummary{
		CategoryID:         in.CategoryID,
		Counts:             counts,
		Shortages:          res.Shortages,
		TotalActual:        res.TotalActual,
		TotalNeeded:        res.TotalNeeded,
		PrimaryUnit:        res.PrimaryUnit,
		Calories:           res.Calories,
		Water:              res.Water,
		HasRecommendations: r.active > 0,
		HasEnough:          hasEnough,
		Strategy:           res.Strategy,
	}

	switch {
	case hasEnough:
		summary.Status = domain.StatusOK
	case counts.Critical > 0 || effective < e.cfg.CriticalThresholdPct:
		summary.Status = domain.StatusCritical
	case counts.Warning > 0 || effective < e.cfg.WarningThresholdPct:
		summary.Status = domain.StatusWarning
	default:
		summary.Status = domain.StatusOK
	}

	if hasEnough {
		summary.CompletionPercentage = 100
	} else {
		summary.CompletionPercentage = int(clampPct(effective))
	}
	return summary
}

func (e *Engine) itemStatusCounts(r reconciliation, now time.Time) ItemStatusCounts {
	recommended := make(map[string]float64, len(r.ctx.items))
	for _, l := range r.lines {
		for _, it := range l.matched {
			if _, ok := recommended[it.ID]; !ok {
				recommended[it.ID] = l.needed
			}
		}
	}

	var counts ItemStatusCounts
	for _, it := range r.ctx.items {
		switch ItemStatus(it, recommended[it.ID], now, e.cfg) {
		case domain.StatusCritical:
			counts.Critical++
		case domain.StatusWarning:
			counts.Warning++
		default:
			counts.OK++
		}
	}
	return counts
}

// ItemStatus classifies a single item against its recommended quantity
// (0 when it matches no active entry).
func ItemStatus(it domain.InventoryItem, recommended float64, now time.Time, cfg Config) domain.Status {
	if !it.MarkedAsEnough && it.Quantity <= 0 {
		return domain.StatusCritical
	}

	var daysLeft *int
	if !now.IsZero() && !it.NeverExpires && it.ExpirationDate != nil {
		d := daysBetween(now, *it.ExpirationDate)
		daysLeft = &d
	}
	if daysLeft != nil && *daysLeft < 0 {
		return domain.StatusCritical
	}

	if !it.MarkedAsEnough && recommended > 0 && it.Quantity < recommended*cfg.ItemWarningRatio {
		return domain.StatusWarning
	}
	if daysLeft != nil && *daysLeft <= cfg.ExpiringSoonDays {
		return domain.StatusWarning
	}
	return domain.StatusOK
}

// daysBetween counts calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(db.Sub(da).Hours() / 24))
}

func clampPct(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(p, 100)
}

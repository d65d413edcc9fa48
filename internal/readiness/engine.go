package readiness

import (
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
)

// Engine evaluates household preparedness. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	cfg           Config
	matcher       ItemMatcher
	strategies    map[string]Strategy
	countDistinct map[string]bool
}

type EngineOption func(*Engine)

// WithMatcher replaces the default CatalogMatcher.
func WithMatcher(m ItemMatcher) EngineOption {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

func NewEngine(cfg Config, opts ...EngineOption) *Engine {
	e := &Engine{
		cfg:     cfg,
		matcher: CatalogMatcher{LegacyNameFallback: cfg.LegacyNameMatch},
		strategies: map[string]Strategy{
			cfg.FoodCategoryID:  calorieStrategy{},
			cfg.WaterCategoryID: waterStrategy{},
		},
		countDistinct: make(map[string]bool, len(cfg.CountDistinctCategories)),
	}
	for _, id := range cfg.CountDistinctCategories {
		e.countDistinct[id] = true
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }

// Snapshot is everything needed to evaluate all categories at once.
type Snapshot struct {
	Items       []domain.InventoryItem
	Household   domain.HouseholdConfig
	Catalog     []domain.RecommendedItem
	DisabledIDs []string
	Now         time.Time
}

type Dashboard struct {
	Categories []CategoryStatusSummary
	Score      int
}

// Evaluate builds one summary per active category and the tally score.
func (e *Engine) Evaluate(s Snapshot) Dashboard {
	categories := domain.ActiveCategories(s.Catalog, s.Items)
	summaries := make([]CategoryStatusSummary, 0, len(categories))
	for _, cat := range categories {
		in := ShortageInput{
			CategoryID:  cat.ID,
			Items:       s.Items,
			Household:   s.Household,
			Catalog:     s.Catalog,
			DisabledIDs: s.DisabledIDs,
		}
		summary := e.CategoryStatus(StatusInput{
			ShortageInput:        in,
			CompletionPercentage: e.CategoryPercentage(in),
			Now:                  s.Now,
		})
		summary.Name = cat.Name
		summaries = append(summaries, summary)
	}
	return Dashboard{
		Categories: summaries,
		Score:      CategoryTallyScore(summaries),
	}
}

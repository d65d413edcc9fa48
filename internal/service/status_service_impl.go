package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stockpile/internal/app"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/reminder"
	"github.com/alexanderramin/stockpile/internal/repository"
)

type statusService struct {
	source    snapshotSource
	reminders repository.ReminderRepo
	base      readiness.Config
	observer  UseCaseObserver
	clock     func() time.Time
}

func NewStatusService(
	inventory repository.InventoryRepo,
	household repository.HouseholdRepo,
	catalog repository.CatalogRepo,
	settings repository.SettingsRepo,
	reminders repository.ReminderRepo,
	base readiness.Config,
	observers ...UseCaseObserver,
) StatusService {
	return &statusService{
		source: snapshotSource{
			inventory: inventory,
			household: household,
			catalog:   catalog,
			settings:  settings,
		},
		reminders: reminders,
		base:      base,
		observer:  useCaseObserverOrNoop(observers),
		clock:     systemClock,
	}
}

func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (resp *app.StatusResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": req.CategoryID}
	defer observe(ctx, s.observer, "status", startedAt, fields, &err)

	now := resolveNow(req.Now, s.clock)

	snap, opts, err := s.source.load(ctx, now)
	if err != nil {
		return nil, err
	}
	state, err := s.reminders.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading reminder state: %w", err)
	}

	dash := readiness.NewEngine(s.base.WithOptions(opts)).Evaluate(snap)
	fields["score"] = dash.Score

	categories := dash.Categories
	if req.CategoryID != "" {
		categories = nil
		for _, c := range dash.Categories {
			if c.CategoryID == req.CategoryID {
				categories = append(categories, c)
				break
			}
		}
		if len(categories) == 0 {
			return nil, &app.StatusError{
				Code:    app.StatusErrUnknownCategory,
				Message: fmt.Sprintf("no category %q", req.CategoryID),
			}
		}
	}

	return &app.StatusResponse{
		GeneratedAt: now,
		Household:   snap.Household,
		Score:       dash.Score,
		Categories:  categories,
		ItemCount:   len(snap.Items),
		ReminderDue: reminder.ShouldShow(state, len(snap.Items), now),
	}, nil
}

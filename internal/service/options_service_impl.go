package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/repository"
)

type optionsService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewOptionsService(settings repository.SettingsRepo, observers ...UseCaseObserver) OptionsService {
	return &optionsService{settings: settings, observer: useCaseObserverOrNoop(observers)}
}

func (s *optionsService) Get(ctx context.Context) (domain.CategoryCalculationOptions, error) {
	return s.settings.GetOptions(ctx)
}

// Update replaces the stored overrides. Nil fields revert to defaults.
func (s *optionsService) Update(ctx context.Context, opts domain.CategoryCalculationOptions) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "options-update", startedAt, nil, &err)

	var errs []error
	if !validOptional(opts.ChildrenMultiplier) {
		errs = append(errs, invalidf("children multiplier must be non-negative"))
	}
	if !validOptional(opts.DailyCaloriesPerPerson) {
		errs = append(errs, invalidf("daily calories must be non-negative"))
	}
	if !validOptional(opts.DailyWaterPerPerson) {
		errs = append(errs, invalidf("daily water must be non-negative"))
	}
	if err = errors.Join(errs...); err != nil {
		return err
	}
	return s.settings.SaveOptions(ctx, opts)
}

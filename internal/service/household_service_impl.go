package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/repository"
)

type householdService struct {
	household repository.HouseholdRepo
	observer  UseCaseObserver
}

func NewHouseholdService(household repository.HouseholdRepo, observers ...UseCaseObserver) HouseholdService {
	return &householdService{household: household, observer: useCaseObserverOrNoop(observers)}
}

func (s *householdService) Get(ctx context.Context) (domain.HouseholdConfig, error) {
	return s.household.Get(ctx)
}

func (s *householdService) Update(ctx context.Context, h domain.HouseholdConfig) (err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"adults":   h.Adults,
		"children": h.Children,
		"pets":     h.Pets,
		"days":     h.SupplyDurationDays,
	}
	defer observe(ctx, s.observer, "household-update", startedAt, fields, &err)

	var errs []error
	if h.Adults < 0 {
		errs = append(errs, invalidf("adults must be non-negative"))
	}
	if h.Children < 0 {
		errs = append(errs, invalidf("children must be non-negative"))
	}
	if h.Pets < 0 {
		errs = append(errs, invalidf("pets must be non-negative"))
	}
	if h.SupplyDurationDays < 0 {
		errs = append(errs, invalidf("supply duration must be non-negative"))
	}
	if err = errors.Join(errs...); err != nil {
		return err
	}
	return s.household.Upsert(ctx, h)
}

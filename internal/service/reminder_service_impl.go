package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/reminder"
	"github.com/alexanderramin/stockpile/internal/repository"
)

type reminderService struct {
	reminders repository.ReminderRepo
	inventory repository.InventoryRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	clock     func() time.Time
}

func NewReminderService(
	reminders repository.ReminderRepo,
	inventory repository.InventoryRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ReminderService {
	return &reminderService{
		reminders: reminders,
		inventory: inventory,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		clock:     systemClock,
	}
}

func (s *reminderService) Check(ctx context.Context) (bool, error) {
	state, err := s.reminders.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("loading reminder state: %w", err)
	}
	count, err := s.inventory.Count(ctx)
	if err != nil {
		return false, err
	}
	return reminder.ShouldShow(state, count, s.clock()), nil
}

// Dismiss hides the reminder until the first of next month and returns that day.
func (s *reminderService) Dismiss(ctx context.Context) (until time.Time, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "reminder-dismiss", startedAt, nil, &err)

	now := s.clock()
	err = s.update(ctx, func(state domain.BackupReminderState) domain.BackupReminderState {
		state = reminder.Dismiss(state, now)
		until = *state.DismissedUntil
		return state
	})
	return until, err
}

func (s *reminderService) RecordBackup(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "reminder-backup", startedAt, nil, &err)

	now := s.clock()
	return s.update(ctx, func(state domain.BackupReminderState) domain.BackupReminderState {
		return reminder.RecordBackup(state, now)
	})
}

func (s *reminderService) update(ctx context.Context, fn func(domain.BackupReminderState) domain.BackupReminderState) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteReminderRepo(tx)
		state, err := repo.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading reminder state: %w", err)
		}
		return repo.Save(ctx, fn(state))
	})
}

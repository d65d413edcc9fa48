package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/repository"
	"github.com/alexanderramin/stockpile/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	db        *sql.DB
	inventory repository.InventoryRepo
	household repository.HouseholdRepo
	catalog   repository.CatalogRepo
	settings  repository.SettingsRepo
	reminders repository.ReminderRepo
	uow       db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:        database,
		inventory: repository.NewSQLiteInventoryRepo(database),
		household: repository.NewSQLiteHouseholdRepo(database),
		catalog:   repository.NewSQLiteCatalogRepo(database),
		settings:  repository.NewSQLiteSettingsRepo(database),
		reminders: repository.NewSQLiteReminderRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
}

func (r testRepos) statusService(now time.Time, observers ...UseCaseObserver) *statusService {
	svc := NewStatusService(r.inventory, r.household, r.catalog, r.settings, r.reminders,
		readiness.DefaultConfig(), observers...).(*statusService)
	svc.clock = fixedClock(now)
	return svc
}

func (r testRepos) inventoryService(now time.Time, observers ...UseCaseObserver) *inventoryService {
	svc := NewInventoryService(r.inventory, r.uow, observers...).(*inventoryService)
	svc.clock = fixedClock(now)
	return svc
}

func (r testRepos) reminderService(now time.Time) *reminderService {
	svc := NewReminderService(r.reminders, r.inventory, r.uow).(*reminderService)
	svc.clock = fixedClock(now)
	return svc
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// seedCatalog stores a small kit: drinking water scaled by people and days,
// plus two light sources that do not scale.
func seedCatalog(t *testing.T, r testRepos) {
	t.Helper()
	require.NoError(t, r.catalog.ReplaceAll(context.Background(), []domain.RecommendedItem{
		testutil.NewTestRecommendation("bottled-water", domain.CategoryWater, 3, domain.UnitLiters,
			testutil.ScalesWithPeople(), testutil.ScalesWithDays(), testutil.WithEntryName("Drinking water")),
		testutil.NewTestRecommendation("flashlight", domain.CategoryLightPower, 1, domain.UnitPieces),
		testutil.NewTestRecommendation("candles", domain.CategoryLightPower, 10, domain.UnitPieces),
	}))
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

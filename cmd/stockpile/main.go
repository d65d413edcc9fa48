package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/stockpile/internal/cli"
	"github.com/alexanderramin/stockpile/internal/config"
	"github.com/alexanderramin/stockpile/internal/db"
	"github.com/alexanderramin/stockpile/internal/metrics"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/repository"
	"github.com/alexanderramin/stockpile/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	inventoryRepo := repository.NewSQLiteInventoryRepo(database)
	householdRepo := repository.NewSQLiteHouseholdRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	reminderRepo := repository.NewSQLiteReminderRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	collector := metrics.NewCollector()
	observers := []service.UseCaseObserver{collector}
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	engineCfg := readiness.DefaultConfig()
	engineCfg.LegacyNameMatch = cfg.LegacyNameMatch

	app := &cli.App{
		Status:          service.NewStatusService(inventoryRepo, householdRepo, catalogRepo, settingsRepo, reminderRepo, engineCfg, observers...),
		ShoppingList:    service.NewShoppingListService(inventoryRepo, householdRepo, catalogRepo, settingsRepo, engineCfg, observers...),
		Inventory:       service.NewInventoryService(inventoryRepo, uow, observers...),
		Household:       service.NewHouseholdService(householdRepo, observers...),
		Options:         service.NewOptionsService(settingsRepo, observers...),
		Kits:            service.NewKitService(catalogRepo, uow, observers...),
		Recommendations: service.NewRecommendationService(catalogRepo, settingsRepo, householdRepo, uow, engineCfg, observers...),
		Reminders:       service.NewReminderService(reminderRepo, inventoryRepo, uow, observers...),

		Config:          engineCfg,
		Metrics:         collector,
		MetricsTextfile: cfg.MetricsTextfile,
	}

	// Detect interactive terminal for the household form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}

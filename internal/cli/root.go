package cli

import (
	"time"

	"github.com/alexanderramin/stockpile/internal/metrics"
	"github.com/alexanderramin/stockpile/internal/readiness"
	"github.com/alexanderramin/stockpile/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Status          service.StatusService
	ShoppingList    service.ShoppingListService
	Inventory       service.InventoryService
	Household       service.HouseholdService
	Options         service.OptionsService
	Kits            service.KitService
	Recommendations service.RecommendationService
	Reminders       service.ReminderService

	// Config is the engine configuration before user overrides.
	Config readiness.Config

	// Metrics is optional; when set, status refreshes it.
	Metrics         *metrics.Collector
	MetricsTextfile string

	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "stockpile" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stockpile",
		Short:         "Household emergency supply tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStatusCmd(app),
		newScoreCmd(app),
		newShoppingListCmd(app),
		newItemCmd(app),
		newHouseholdCmd(app),
		newOptionsCmd(app),
		newKitCmd(app),
		newRecommendationCmd(app),
		newReminderCmd(app),
	)

	return root
}

package cli

import (
	"github.com/ksaito/tctally/internal/config"
	"github.com/ksaito/tctally/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and configuration CLI commands use.
type App struct {
	Settings service.SettingsService
	Sisters  service.SisterService
	Ledgers  service.LedgerService
	Config   *config.Config
}

// NewRootCmd creates the top-level "tctally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tctally",
		Short:         "Time-card unit calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addSessionFlags(root.PersistentFlags(), app.Config)

	root.AddCommand(
		newCalcCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newUnitsCmd(app),
		newOptionCmd(app),
		newRemoveCmd(app),
		newSummaryCmd(app),
		newSettingsCmd(app),
		newSisterCmd(app),
	)

	return root
}

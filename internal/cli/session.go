package cli

import (
	"context"
	"fmt"

	"github.com/ksaito/tctally/internal/config"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addSessionFlags registers the persistent flags that select which
// session a command operates on. Defaults come from the loaded config.
func addSessionFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.String("user", cfg.User, "user id the documents are keyed by")
	fs.String("mode", cfg.Mode, "calculator mode: simple or pro")
	fs.Bool("strict", cfg.StrictTime, "reject the 00:00 placeholder time")
}

// sessionScope resolves the user and mode for one command invocation.
func sessionScope(cmd *cobra.Command) (string, domain.Mode, error) {
	userID, err := cmd.Flags().GetString("user")
	if err != nil {
		return "", "", err
	}
	if userID == "" {
		return "", "", fmt.Errorf("user id is required")
	}
	modeStr, err := cmd.Flags().GetString("mode")
	if err != nil {
		return "", "", err
	}
	mode, err := domain.ParseMode(modeStr)
	if err != nil {
		return "", "", err
	}
	return userID, mode, nil
}

// openSession loads the user's settings and opens a ledger session for
// the resolved scope.
func openSession(ctx context.Context, app *App, cmd *cobra.Command) (*service.LedgerSession, error) {
	userID, mode, err := sessionScope(cmd)
	if err != nil {
		return nil, err
	}
	settings := app.Settings.Load(ctx, userID)
	sess, err := app.Ledgers.Open(ctx, userID, mode, settings)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("strict") {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return nil, err
		}
		sess.SetStrict(strict)
	}
	return sess, nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/ksaito/tctally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var sisterID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show unit totals and option counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx, app, cmd)
			if err != nil {
				return err
			}

			sum := sess.Summary(sisterID)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(sum))
			return nil
		},
	}

	cmd.Flags().StringVar(&sisterID, "sister", "", "scope totals to this sister id")

	return cmd
}

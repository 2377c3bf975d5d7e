package cli

import (
	"context"
	"fmt"

	"github.com/ksaito/tctally/internal/cli/formatter"
	"github.com/ksaito/tctally/internal/service"
	"github.com/spf13/cobra"
)

func newCalcCmd(app *App) *cobra.Command {
	var start, end, store, sisterID string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a time pair into units and append the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx, app, cmd)
			if err != nil {
				return err
			}

			entry, err := sess.Calculate(ctx, service.CalculateInput{
				StoreInfo: store,
				SisterID:  sisterID,
				StartTime: start,
				EndTime:   end,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryDetail(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start time, HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "end time, HH:MM")
	cmd.Flags().StringVar(&store, "store", "", "free-text store label")
	cmd.Flags().StringVar(&sisterID, "sister", "", "sister id (pro mode)")

	return cmd
}

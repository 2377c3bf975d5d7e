package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/ksaito/tctally/internal/cli/formatter"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var sisterID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the computed results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx, app, cmd)
			if err != nil {
				return err
			}

			entries := sess.Entries()
			if sisterID != "" {
				filtered := entries[:0]
				for _, e := range entries {
					if e.SisterID == sisterID {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}
			// Display order: highest number first.
			sort.SliceStable(entries, func(a, b int) bool {
				return entries[a].Number > entries[b].Number
			})

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryTable(entries, sess.Mode() == domain.ModePro))
			return nil
		},
	}

	cmd.Flags().StringVar(&sisterID, "sister", "", "only entries for this sister id")

	return cmd
}

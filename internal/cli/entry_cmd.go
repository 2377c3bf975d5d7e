package cli

import (
	"context"
	"fmt"

	"github.com/ksaito/tctally/internal/cli/formatter"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/ledger"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var start, end, store string

	cmd := &cobra.Command{
		Use:   "edit <entry-id>",
		Short: "Rewrite an entry's time pair and recompute its units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx, app, cmd)
			if err != nil {
				return err
			}

			// Flags the user didn't pass keep the entry's current values.
			current, ok := sess.Find(args[0])
			if !ok {
				return fmt.Errorf("editing entry %s: %w", args[0], ledger.ErrEntryNotFound)
			}
			if !cmd.Flags().Changed("start") {
				start = current.StartTime
			}
			if !cmd.Flags().Changed("end") {
				end = current.EndTime
			}
			if !cmd.Flags().Changed("store") {
				store = current.StoreInfo
			}

			entry, err := sess.EditEntryTime(ctx, args[0], store, start, end)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryDetail(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "new start time, HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "new end time, HH:MM")
	cmd.Flags().StringVar(&store, "store", "", "new store label")

	return cmd
}

func newUnitsCmd(app *App) *cobra.Command {
	var full, half int

	cmd := &cobra.Command{
		Use:   "units <entry-id>",
		Short: "Override an entry's unit counts directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx, app, cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("full") && !cmd.Flags().Changed("half") {
				return fmt.Errorf("nothing to change: pass --full and/or --half")
			}
			if cmd.Flags().Changed("full") {
				if err := sess.SetUnitCount(ctx, args[0], ledger.FieldFullUnits, full); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("half") {
				if err := sess.SetUnitCount(ctx, args[0], ledger.FieldHalfUnits, half); err != nil {
					return err
				}
			}

			entry, _ := sess.Find(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryDetail(entry))
			return nil
		},
	}

	cmd.Flags().IntVar(&full, "full", 0, "full unit count")
	cmd.Flags().IntVar(&half, "half", 0, "half unit count")

	return cmd
}

func newOptionCmd(app *App) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "option <entry-id> <option>",
		Short: "Toggle an entry flag (transportFee, nomination, noShow)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx, app, cmd)
			if err != nil {
				return err
			}

			opt, err := domain.ParseOption(args[1])
			if err != nil {
				return err
			}
			if err := sess.ToggleOption(ctx, args[0], opt, !off); err != nil {
				return err
			}

			entry, _ := sess.Find(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryDetail(entry))
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "clear the flag instead of setting it")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <entry-id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry and renumber the rest",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx, app, cmd)
			if err != nil {
				return err
			}

			if err := sess.Remove(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d entries remain)\n", args[0], len(sess.Entries()))
			return nil
		},
	}

	return cmd
}

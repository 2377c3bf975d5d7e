package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ksaito/tctally/internal/cli/formatter"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the unit-counting thresholds",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsEditCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _, err := sessionScope(cmd)
			if err != nil {
				return err
			}
			s := app.Settings.Load(context.Background(), userID)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var fullUnit, halfStart, halfEnd int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set thresholds from flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, _, err := sessionScope(cmd)
			if err != nil {
				return err
			}

			// Start from the stored values so a partial set keeps the rest.
			s := app.Settings.Load(ctx, userID)
			if cmd.Flags().Changed("full-unit") {
				s.FullUnitMinutes = fullUnit
			}
			if cmd.Flags().Changed("half-start") {
				s.HalfWindow.Start = halfStart
			}
			if cmd.Flags().Changed("half-end") {
				s.HalfWindow.End = halfEnd
			}

			if err := app.Settings.Save(ctx, userID, s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	cmd.Flags().IntVar(&fullUnit, "full-unit", 60, "minutes consumed by one full unit")
	cmd.Flags().IntVar(&halfStart, "half-start", 30, "half window start, minutes")
	cmd.Flags().IntVar(&halfEnd, "half-end", 59, "half window end, minutes")

	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit thresholds interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, _, err := sessionScope(cmd)
			if err != nil {
				return err
			}

			s := app.Settings.Load(ctx, userID)
			fullUnit := strconv.Itoa(s.FullUnitMinutes)
			halfStart := strconv.Itoa(s.HalfWindow.Start)
			halfEnd := strconv.Itoa(s.HalfWindow.End)

			if err := settingsForm(&fullUnit, &halfStart, &halfEnd).Run(); err != nil {
				return err
			}

			next := domain.Settings{}
			if next.FullUnitMinutes, err = strconv.Atoi(fullUnit); err != nil {
				return fmt.Errorf("full unit minutes must be a number: %w", err)
			}
			if next.HalfWindow.Start, err = strconv.Atoi(halfStart); err != nil {
				return fmt.Errorf("half window start must be a number: %w", err)
			}
			if next.HalfWindow.End, err = strconv.Atoi(halfEnd); err != nil {
				return fmt.Errorf("half window end must be a number: %w", err)
			}

			if err := app.Settings.Save(ctx, userID, next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(next))
			return nil
		},
	}
}

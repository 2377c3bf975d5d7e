package cli

import (
	"context"
	"fmt"

	"github.com/ksaito/tctally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSisterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sister",
		Short: "Manage the sisters pro-mode entries are assigned to",
	}

	cmd.AddCommand(
		newSisterAddCmd(app),
		newSisterListCmd(app),
		newSisterRemoveCmd(app),
	)

	return cmd
}

func newSisterAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a sister",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _, err := sessionScope(cmd)
			if err != nil {
				return err
			}
			sister, err := app.Sisters.Create(context.Background(), userID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", sister.Name, sister.ID)
			return nil
		},
	}
}

func newSisterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered sisters",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _, err := sessionScope(cmd)
			if err != nil {
				return err
			}
			sisters, err := app.Sisters.List(context.Background(), userID)
			if err != nil {
				return err
			}
			if len(sisters) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sisters registered.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSisterTable(sisters))
			return nil
		},
	}
}

func newSisterRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <sister-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a sister",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sisters.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/spf13/cobra"
)

func newActionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Log and list actions taken on at-risk items",
	}
	cmd.AddCommand(newActionLogCmd(a), newActionListCmd(a))
	return cmd
}

func newActionLogCmd(a *App) *cobra.Command {
	actionType := newActionTypeValue(domain.ActionPurchaseOrder)
	var notes, user string

	cmd := &cobra.Command{
		Use:   "log LOCATION ITEM",
		Short: "Record an action against a location and item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.Actions.LogAction(cmd.Context(), app.LogActionRequest{
				Location:   args[0],
				Item:       args[1],
				ActionType: actionType.String(),
				Notes:      notes,
				UserName:   user,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActionLogged(entry))
			return nil
		},
	}

	cmd.Flags().VarP(actionType, "type", "t", "Action taken: po, transfer, delivered, partner or other")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-text notes")
	cmd.Flags().StringVarP(&user, "user", "u", "", "Your name or team (required)")
	return cmd
}

func newActionListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the most recent actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Actions.Recent(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecentActions(resp, a.now()))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change alert settings",
	}
	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current alert settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Load(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPreferences(app.Settings.Current()))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		emailOn, smsOn     bool
		email, phone       string
		levels, recipients []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change alert settings; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Settings.Load(ctx); err != nil {
				return err
			}
			p := app.Settings.Current()
			flags := cmd.Flags()

			if flags.Changed("email-enabled") {
				p.EmailEnabled = emailOn
			}
			if flags.Changed("email") {
				p.Email = email
			}
			if flags.Changed("sms-enabled") {
				p.SMSEnabled = smsOn
			}
			if flags.Changed("phone") {
				p.Phone = phone
			}
			if flags.Changed("levels") {
				p.Levels = toAlertLevels(levels)
			}
			if flags.Changed("recipients") {
				p.Recipients = toRecipients(recipients)
			}

			if err := app.Settings.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Settings saved"))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPreferences(app.Settings.Current()))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&emailOn, "email-enabled", false, "Send alerts by email")
	flags.StringVar(&email, "email", "", "Email address for alerts")
	flags.BoolVar(&smsOn, "sms-enabled", false, "Send alerts by SMS")
	flags.StringVar(&phone, "phone", "", "Mobile number for SMS alerts")
	flags.StringSliceVar(&levels, "levels", nil, "Alert levels: Critical, Warning, Overstock")
	flags.StringSliceVar(&recipients, "recipients", nil, "Recipient groups")
	return cmd
}

func toAlertLevels(vals []string) []domain.AlertLevel {
	out := make([]domain.AlertLevel, 0, len(vals))
	for _, v := range vals {
		out = append(out, domain.AlertLevel(v))
	}
	return out
}

func toRecipients(vals []string) []domain.RecipientGroup {
	out := make([]domain.RecipientGroup, 0, len(vals))
	for _, v := range vals {
		out = append(out, domain.RecipientGroup(v))
	}
	return out
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// actionFormFields holds the values bound to the action form.
type actionFormFields struct {
	actionType string
	notes      string
	user       string
}

// submitAction saves one action and returns the text to show. A rejected
// user name keeps the form values for the next attempt.
func submitAction(ctx context.Context, state *SharedState, location, item string, f *actionFormFields) string {
	entry, err := state.App.Actions.LogAction(ctx, app.LogActionRequest{
		Location:   location,
		Item:       item,
		ActionType: f.actionType,
		Notes:      f.notes,
		UserName:   f.user,
	})
	if err != nil {
		return formError(err)
	}
	state.LastUser = entry.UserName
	return formatter.FormatActionLogged(entry)
}

// newActionFormView asks for the action type, notes and the user's name,
// then logs the action.
func newActionFormView(state *SharedState, location, item string) View {
	f := &actionFormFields{
		actionType: string(domain.ActionPurchaseOrder),
		user:       state.LastUser,
	}

	options := make([]huh.Option[string], 0, len(domain.ActionTypes))
	for _, t := range domain.ActionTypes {
		options = append(options, huh.NewOption(string(t), string(t)))
	}

	form := newThemedForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("%s · %s", location, item)),
			huh.NewSelect[string]().
				Title("Action taken").
				Options(options...).
				Value(&f.actionType),
			huh.NewText().
				Title("Notes (optional)").
				Lines(3).
				Value(&f.notes),
			huh.NewInput().
				Title("Your name or team").
				Value(&f.user).
				Validate(validateRequired(service.ErrUserRequired.Error())),
		),
	)

	done := func() tea.Cmd {
		return func() tea.Msg {
			return cmdOutputMsg{output: submitAction(context.Background(), state, location, item, f)}
		}
	}
	return newWizardView(state, "Log action", form, done)
}

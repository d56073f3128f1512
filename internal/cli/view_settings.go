package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type settingsLoadedMsg struct {
	prefs domain.AlertPreferences
	err   error
}

// settingsView shows the alert preferences and opens the edit form.
type settingsView struct {
	state *SharedState
	prefs *domain.AlertPreferences
	err   error
}

func newSettingsView(state *SharedState) *settingsView {
	return &settingsView{state: state}
}

func (v *settingsView) ID() ViewID     { return ViewSettings }
func (v *settingsView) Title() string { return "Settings" }

func (v *settingsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	}
}

func (v *settingsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *settingsView) loadData() tea.Cmd {
	settings := v.state.App.Settings
	return func() tea.Msg {
		if err := settings.Load(context.Background()); err != nil {
			return settingsLoadedMsg{err: err}
		}
		return settingsLoadedMsg{prefs: settings.Current()}
	}
}

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		v.err = msg.err
		if msg.err == nil {
			p := msg.prefs
			v.prefs = &p
		}
	case refreshViewMsg:
		// Preferences are session state; re-read without hitting the store.
		p := v.state.App.Settings.Current()
		v.prefs = &p
	case tea.KeyMsg:
		if msg.String() == "e" && v.prefs != nil {
			return v, pushView(newSettingsFormView(v.state, *v.prefs))
		}
	}
	return v, nil
}

func (v *settingsView) View() string {
	switch {
	case v.err != nil:
		return "\n" + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	case v.prefs == nil:
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	return formatter.FormatPreferences(*v.prefs) + "\n" +
		formatter.Dim("Alerts are previewed on the Alerts page; nothing is sent from here.") + "\n"
}

// settingsFormFields holds the values bound to the settings form.
type settingsFormFields struct {
	emailOn    bool
	email      string
	smsOn      bool
	phone      string
	levels     []string
	recipients []string
}

func fieldsFromPreferences(p domain.AlertPreferences) *settingsFormFields {
	f := &settingsFormFields{
		emailOn: p.EmailEnabled,
		email:   p.Email,
		smsOn:   p.SMSEnabled,
		phone:   p.Phone,
	}
	for _, l := range p.Levels {
		f.levels = append(f.levels, string(l))
	}
	for _, r := range p.Recipients {
		f.recipients = append(f.recipients, string(r))
	}
	return f
}

func (f *settingsFormFields) preferences() domain.AlertPreferences {
	return domain.AlertPreferences{
		EmailEnabled: f.emailOn,
		Email:        strings.TrimSpace(f.email),
		SMSEnabled:   f.smsOn,
		Phone:        strings.TrimSpace(f.phone),
		Levels:       toAlertLevels(f.levels),
		Recipients:   toRecipients(f.recipients),
	}
}

// submitSettings saves the form values and returns the text to show.
func submitSettings(ctx context.Context, state *SharedState, f *settingsFormFields) string {
	if err := state.App.Settings.Save(ctx, f.preferences()); err != nil {
		return formError(err)
	}
	return formatter.Success("Settings saved")
}

func newSettingsFormView(state *SharedState, current domain.AlertPreferences) View {
	f := fieldsFromPreferences(current)

	levelOpts := make([]huh.Option[string], 0, len(domain.AlertLevels))
	for _, l := range domain.AlertLevels {
		levelOpts = append(levelOpts, huh.NewOption(string(l), string(l)))
	}
	recipientOpts := make([]huh.Option[string], 0, len(domain.RecipientGroups))
	for _, r := range domain.RecipientGroups {
		recipientOpts = append(recipientOpts, huh.NewOption(string(r), string(r)))
	}

	form := newThemedForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Email alerts").Value(&f.emailOn),
			huh.NewInput().Title("Email address").Value(&f.email),
			huh.NewConfirm().Title("SMS alerts").Value(&f.smsOn),
			huh.NewInput().Title("Mobile number").Value(&f.phone),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Alert levels").Options(levelOpts...).Value(&f.levels),
			huh.NewMultiSelect[string]().Title("Recipients").Options(recipientOpts...).Value(&f.recipients),
		),
	)

	done := func() tea.Cmd {
		return func() tea.Msg {
			return cmdOutputMsg{output: submitSettings(context.Background(), state, f)}
		}
	}
	return newWizardView(state, "Edit settings", form, done)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cortado/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OnboardingSettings is the persisted outcome of the first-run setup.
type OnboardingSettings struct {
	Completed     bool `json:"completed"`
	SearchEnabled bool `json:"search_enabled"`
}

func onboardingPath(configDir string) string {
	return filepath.Join(configDir, "onboarding.json")
}

func loadOnboardingSettings(configDir string) (OnboardingSettings, error) {
	data, err := os.ReadFile(onboardingPath(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return OnboardingSettings{}, nil
		}
		return OnboardingSettings{}, err
	}

	var settings OnboardingSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return OnboardingSettings{}, err
	}
	return settings, nil
}

func saveOnboardingSettings(configDir string, settings OnboardingSettings) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(onboardingPath(configDir), data, 0644)
}

func secureAPIKeyPath(configDir string) string {
	return filepath.Join(configDir, "yelp_api_key")
}

// saveSecureAPIKey writes the key owner read/write only.
func saveSecureAPIKey(configDir, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(secureAPIKeyPath(configDir), []byte(key+"\n"), 0600)
}

func loadSecureAPIKey(configDir string) (string, error) {
	data, err := os.ReadFile(secureAPIKeyPath(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// shouldRunOnboarding gates the setup TUI: once per config dir, and
// only on an interactive stdin.
func shouldRunOnboarding(settings OnboardingSettings) bool {
	if settings.Completed {
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

type setupStep int

const (
	setupAskEnable setupStep = iota
	setupAskKey
	setupFinished
)

// setupModel walks a new user through enabling spot search and storing
// a Yelp key. Declining search, skipping the key, or quitting all land
// on a completed-but-disabled state; search can be enabled later via
// flag or env var.
type setupModel struct {
	step        setupStep
	enable      bool
	existingKey string
	keyInput    textinput.Model
	settings    OnboardingSettings
	capturedKey string
	status      string
	width       int
	height      int
}

func newSetupModel(existingKey string) setupModel {
	in := textinput.New()
	in.Placeholder = "Paste Yelp API key here"
	in.CharLimit = 300
	in.Prompt = "api> "
	in.Focus()

	return setupModel{
		enable:      true,
		existingKey: strings.TrimSpace(existingKey),
		keyInput:    in,
		settings:    OnboardingSettings{Completed: true, SearchEnabled: true},
	}
}

func (m setupModel) Init() tea.Cmd { return nil }

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (m.step == setupAskEnable && msg.String() == "q") {
			return m.finish(false, "Setup canceled. Spot search disabled."), tea.Quit
		}
		switch m.step {
		case setupAskEnable:
			return m.updateAskEnable(msg)
		case setupAskKey:
			return m.updateAskKey(msg)
		}
	}
	return m, nil
}

func (m setupModel) updateAskEnable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.enable = true
	case "n", "N":
		m.enable = false
	case "up", "k", "left", "h":
		m.enable = true
		return m, nil
	case "down", "j", "right", "l":
		m.enable = false
		return m, nil
	case "enter":
		// commits the highlighted option
	default:
		return m, nil
	}

	if !m.enable {
		return m.finish(false, "Spot search disabled."), tea.Quit
	}
	if m.existingKey != "" {
		m.capturedKey = m.existingKey
		return m.finish(true, "Using existing YELP_API_KEY from environment/flags."), tea.Quit
	}
	m.step = setupAskKey
	return m, nil
}

func (m setupModel) updateAskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		key := strings.TrimSpace(m.keyInput.Value())
		if key == "" {
			return m.finish(false, "No key entered. Spot search disabled."), tea.Quit
		}
		m.capturedKey = key
		return m.finish(true, "Yelp API key saved."), tea.Quit
	case "esc", "q":
		return m.finish(false, "Skipped key setup. Spot search disabled."), tea.Quit
	}
	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m setupModel) finish(enabled bool, status string) setupModel {
	m.settings.SearchEnabled = enabled
	m.status = status
	m.step = setupFinished
	return m
}

func (m setupModel) View() string {
	width := max(m.width, 64)
	height := max(m.height, 20)

	header := ui.TitleStyle.Width(width).Render(
		"  " + ui.HeaderStyle.Render("cortado") + ui.BreadcrumbStyle.Render(" › Setup"))

	var body, hint string
	switch m.step {
	case setupAskEnable:
		body = m.viewAskEnable()
		hint = "j/k or y/n choose  enter confirm  q cancel"
	case setupAskKey:
		body = m.viewAskKey()
		hint = "enter save  esc skip"
	default:
		status := ui.HelpDescStyle.Render(m.status)
		if !m.settings.SearchEnabled {
			status = ui.WarnStyle.Render(m.status)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, ui.LabelStyle.Render("Setup Complete"), "", status)
		hint = "Setup complete"
	}

	card := ui.PanelStyle.Width(min(78, width-4)).Render(body)
	content := lipgloss.Place(width, height-4, lipgloss.Center, lipgloss.Top, card)
	footer := ui.FooterStyle.Width(width).Render(ui.HelpDescStyle.Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m setupModel) viewAskEnable() string {
	choice := func(label string, active bool) string {
		if active {
			return "  " + ui.BreadcrumbActiveStyle.Bold(true).Render("→ "+label)
		}
		return "    " + ui.NormalRowStyle.Render(label)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		ui.LabelStyle.Render("Search for coffee shops through the Yelp API?"),
		"",
		choice("Enable spot search", m.enable),
		choice("Disable spot search", !m.enable),
		"",
		ui.HelpDescStyle.Render("You can change this later in ~/.cortado/onboarding.json"),
	)
}

func (m setupModel) viewAskKey() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		ui.LabelStyle.Render("Yelp API Key"),
		"",
		ui.HelpDescStyle.Render("Create an app at https://www.yelp.com/developers/v3/manage_app"),
		ui.HelpDescStyle.Render("and paste its API key below."),
		"",
		ui.ActiveBorderStyle.Padding(0, 1).Render(m.keyInput.View()),
	)
}

func runOnboarding(configDir string, existingKey string) (OnboardingSettings, error) {
	prog := tea.NewProgram(newSetupModel(existingKey), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return OnboardingSettings{}, fmt.Errorf("setup tui failed: %w", err)
	}
	m, ok := finalModel.(setupModel)
	if !ok {
		return OnboardingSettings{}, fmt.Errorf("unexpected setup model type")
	}
	if m.capturedKey != "" {
		if err := saveSecureAPIKey(configDir, m.capturedKey); err != nil {
			return OnboardingSettings{}, err
		}
	}
	if err := saveOnboardingSettings(configDir, m.settings); err != nil {
		return OnboardingSettings{}, err
	}
	return m.settings, nil
}

package ui

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cortado/internal/db"
	"cortado/internal/model"
	"cortado/internal/search"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	ratingFieldPlace = iota
	ratingFieldStudyVibe
	ratingFieldFoodDrink
	ratingFieldAvailability
	ratingFieldNoise
	ratingFieldNotes
	ratingFieldCount
)

// RatingFormModel is the create-rating form. It is also the promotion
// target for wishlist items: promotedFrom carries the source item id,
// and the place field arrives pre-filled.
type RatingFormModel struct {
	db           *sql.DB
	place        placeSearch
	promotedFrom string

	focusedField int
	inputs       []textinput.Model
	notice       string
}

// NewRatingFormModel creates an empty rating form.
func NewRatingFormModel(database *sql.DB, svc search.Service) *RatingFormModel {
	inputs := make([]textinput.Model, ratingFieldCount)

	inputs[ratingFieldStudyVibe] = textinput.New()
	inputs[ratingFieldStudyVibe].Placeholder = "0-10"
	inputs[ratingFieldStudyVibe].CharLimit = 2

	inputs[ratingFieldFoodDrink] = textinput.New()
	inputs[ratingFieldFoodDrink].Placeholder = "0-10"
	inputs[ratingFieldFoodDrink].CharLimit = 2

	inputs[ratingFieldAvailability] = textinput.New()
	inputs[ratingFieldAvailability].Placeholder = "0-5"
	inputs[ratingFieldAvailability].CharLimit = 1

	inputs[ratingFieldNoise] = textinput.New()
	inputs[ratingFieldNoise].Placeholder = "quiet / normal / loud"
	inputs[ratingFieldNoise].CharLimit = 6

	inputs[ratingFieldNotes] = textinput.New()
	inputs[ratingFieldNotes].Placeholder = "Your notes..."
	inputs[ratingFieldNotes].CharLimit = 500

	m := &RatingFormModel{
		db:     database,
		place:  newPlaceSearch(svc, "Search for a study spot..."),
		inputs: inputs,
	}
	m.place.input.Focus()
	return m
}

// NewPromotionFormModel creates a rating form pre-filled from a
// visited wishlist item. The source item is deleted only after the
// rating is persisted, so cancelling loses nothing.
func NewPromotionFormModel(database *sql.DB, svc search.Service, item model.WishlistItem) *RatingFormModel {
	m := NewRatingFormModel(database, svc)
	m.promotedFrom = item.ID
	m.inputs[ratingFieldNotes].SetValue(item.Comments)

	if item.Location == nil {
		// No stored coordinates; seed the query and make the user
		// re-resolve the place.
		m.place.input.SetValue(item.Name)
		return m
	}

	m.place.prefill(model.ResolvedPlace{Name: item.Name, Location: *item.Location})

	// Place is settled; start on the first score.
	m.place.input.Blur()
	m.focusedField = ratingFieldStudyVibe
	m.inputs[ratingFieldStudyVibe].Focus()
	return m
}

// Update handles all messages.
func (m RatingFormModel) Update(msg tea.Msg) (RatingFormModel, tea.Cmd) {
	if cmd, handled := m.place.HandleMsg(msg); handled {
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.focusedField == ratingFieldPlace {
		switch keyMsg.String() {
		case "esc":
			if m.place.showDropdown {
				m.place.showDropdown = false
				return m, nil
			}
			return m, cancelForm
		case "ctrl+s":
			return m, m.save()
		case "shift+tab":
			m.prevField()
			return m, nil
		}
		cmd, selectedNow := m.place.HandleKey(keyMsg)
		if selectedNow {
			m.nextField()
		}
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, cancelForm
	case "ctrl+s":
		return m, m.save()
	case "tab", "enter":
		m.nextField()
		return m, nil
	case "shift+tab":
		m.prevField()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(keyMsg)
	return m, cmd
}

func (m *RatingFormModel) nextField() {
	m.blurField()
	m.focusedField = (m.focusedField + 1) % ratingFieldCount
	m.focusField()
}

func (m *RatingFormModel) prevField() {
	m.blurField()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = ratingFieldCount - 1
	}
	m.focusField()
}

func (m *RatingFormModel) blurField() {
	if m.focusedField == ratingFieldPlace {
		m.place.input.Blur()
		m.place.showDropdown = false
	} else {
		m.inputs[m.focusedField].Blur()
	}
}

func (m *RatingFormModel) focusField() {
	if m.focusedField == ratingFieldPlace {
		m.place.input.Focus()
	} else {
		m.inputs[m.focusedField].Focus()
	}
}

// save validates the form and persists the rating. A missing resolved
// place makes the save unavailable: the form shows a notice and no
// entity is created.
func (m *RatingFormModel) save() tea.Cmd {
	place := m.place.Selected()
	if place == nil {
		m.notice = "Search and select a spot before saving."
		return nil
	}

	scores, comments, err := m.parseInputs()
	if err != nil {
		m.notice = err.Error()
		return nil
	}

	m.notice = ""
	database := m.db
	promotedFrom := m.promotedFrom
	selected := *place

	return func() tea.Msg {
		rating := model.BuildRating(selected, scores, comments, time.Now())
		if err := db.InsertRating(database, rating); err != nil {
			return model.ErrorMsg{Err: err}
		}
		if promotedFrom != "" {
			// Promotion consumes the wishlist entry once the rating
			// exists, so no duplicate lingers.
			if err := db.DeleteWishlistItem(database, promotedFrom); err != nil {
				return model.ErrorMsg{Err: err}
			}
		}
		return model.RatingSavedMsg{Rating: rating, PromotedFrom: promotedFrom}
	}
}

func (m *RatingFormModel) parseInputs() (model.RatingScores, string, error) {
	var scores model.RatingScores

	sv, err := parseScore(m.inputs[ratingFieldStudyVibe].Value(), 10, "study vibe")
	if err != nil {
		return scores, "", err
	}
	fd, err := parseScore(m.inputs[ratingFieldFoodDrink].Value(), 10, "food/drink")
	if err != nil {
		return scores, "", err
	}
	av, err := parseScore(m.inputs[ratingFieldAvailability].Value(), 5, "availability")
	if err != nil {
		return scores, "", err
	}

	noise, err := parseNoise(m.inputs[ratingFieldNoise].Value())
	if err != nil {
		return scores, "", err
	}

	scores.StudyVibe = sv
	scores.FoodOrDrink = fd
	scores.Availability = av
	scores.NoiseLevel = noise

	return scores, strings.TrimSpace(m.inputs[ratingFieldNotes].Value()), nil
}

func parseScore(raw string, maxVal int, label string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%s is required (0-%d)", label, maxVal)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxVal {
		return 0, fmt.Errorf("%s must be between 0 and %d", label, maxVal)
	}
	return n, nil
}

func parseNoise(raw string) (model.NoiseLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "q", "quiet":
		return model.NoiseQuiet, nil
	case "", "n", "normal":
		return model.NoiseNormal, nil
	case "l", "loud":
		return model.NoiseLoud, nil
	default:
		return model.NoiseNormal, fmt.Errorf("noise must be quiet, normal, or loud")
	}
}

func cancelForm() tea.Msg {
	return model.FormCancelledMsg{}
}

// View renders the form.
func (m *RatingFormModel) View(width, height int) string {
	var fields []string

	placeField := renderSearchField("Spot *", &m.place, m.focusedField == ratingFieldPlace, width-8)
	fields = append(fields, placeField)

	fields = append(fields, renderFormField("Study vibe (0-10) *", m.inputs[ratingFieldStudyVibe], m.focusedField == ratingFieldStudyVibe))
	fields = append(fields, renderFormField("Food & drink (0-10) *", m.inputs[ratingFieldFoodDrink], m.focusedField == ratingFieldFoodDrink))
	fields = append(fields, renderFormField("Availability (0-5) *", m.inputs[ratingFieldAvailability], m.focusedField == ratingFieldAvailability))
	fields = append(fields, renderFormField("Noise level", m.inputs[ratingFieldNoise], m.focusedField == ratingFieldNoise))
	fields = append(fields, renderFormField("Notes", m.inputs[ratingFieldNotes], m.focusedField == ratingFieldNotes))

	if m.notice != "" {
		fields = append(fields, "", WarnStyle.Render(m.notice))
	}

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(strings.Join(fields, "\n"))
}

func renderFormField(label string, input textinput.Model, focused bool) string {
	style := BorderStyle.Padding(0, 1)
	if focused {
		style = ActiveBorderStyle.Padding(0, 1)
	}

	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(label),
		input.View(),
	))
}

func renderSearchField(label string, p *placeSearch, focused bool, width int) string {
	style := BorderStyle.Padding(0, 1)
	if focused {
		style = ActiveBorderStyle.Padding(0, 1)
	}

	parts := []string{LabelStyle.Render(label), p.input.View()}
	if status := p.StatusLine(); status != "" {
		parts = append(parts, status)
	}
	field := style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if dropdown := p.Dropdown(width); dropdown != "" && focused {
		field = lipgloss.JoinVertical(lipgloss.Left, field, dropdown)
	}
	return field
}

package ui

import (
	"database/sql"
	"strings"

	"cortado/internal/db"
	"cortado/internal/model"
	"cortado/internal/search"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	wishFieldPlace = iota
	wishFieldNotes
	wishFieldCount
)

// WishlistFormModel is the add-to-wishlist form.
type WishlistFormModel struct {
	db    *sql.DB
	place placeSearch

	focusedField int
	notesInput   textinput.Model
	notice       string
}

// NewWishlistFormModel creates an empty wishlist form.
func NewWishlistFormModel(database *sql.DB, svc search.Service) *WishlistFormModel {
	notes := textinput.New()
	notes.Placeholder = "Your notes..."
	notes.CharLimit = 500

	m := &WishlistFormModel{
		db:         database,
		place:      newPlaceSearch(svc, "Search for a coffee shop..."),
		notesInput: notes,
	}
	m.place.input.Focus()
	return m
}

// Update handles all messages.
func (m WishlistFormModel) Update(msg tea.Msg) (WishlistFormModel, tea.Cmd) {
	if cmd, handled := m.place.HandleMsg(msg); handled {
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.focusedField == wishFieldPlace {
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
			m.swapFocus()
			return m, nil
		}
		cmd, selectedNow := m.place.HandleKey(keyMsg)
		if selectedNow {
			m.swapFocus()
		}
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, cancelForm
	case "ctrl+s", "enter":
		return m, m.save()
	case "tab", "shift+tab":
		m.swapFocus()
		return m, nil
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(keyMsg)
	return m, cmd
}

func (m *WishlistFormModel) swapFocus() {
	if m.focusedField == wishFieldPlace {
		m.place.input.Blur()
		m.place.showDropdown = false
		m.focusedField = wishFieldNotes
		m.notesInput.Focus()
	} else {
		m.notesInput.Blur()
		m.focusedField = wishFieldPlace
		m.place.input.Focus()
	}
}

// save persists a new wishlist item; unavailable until a place has
// been resolved.
func (m *WishlistFormModel) save() tea.Cmd {
	place := m.place.Selected()
	if place == nil {
		m.notice = "Search and select a spot before saving."
		return nil
	}

	m.notice = ""
	database := m.db
	selected := *place
	comments := strings.TrimSpace(m.notesInput.Value())

	return func() tea.Msg {
		item := model.BuildWishlistItem(selected, comments)
		if err := db.InsertWishlistItem(database, item); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.WishlistSavedMsg{Item: item}
	}
}

// View renders the form.
func (m *WishlistFormModel) View(width, height int) string {
	var fields []string

	fields = append(fields, renderSearchField("Spot *", &m.place, m.focusedField == wishFieldPlace, width-8))
	fields = append(fields, renderFormField("Notes", m.notesInput, m.focusedField == wishFieldNotes))

	if m.notice != "" {
		fields = append(fields, "", WarnStyle.Render(m.notice))
	}

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(strings.Join(fields, "\n"))
}

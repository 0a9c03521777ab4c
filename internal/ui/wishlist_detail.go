package ui

import (
	"cortado/internal/model"
	"cortado/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WishlistDetailModel shows a single wishlist item with an inline
// notes editor.
type WishlistDetailModel struct {
	item model.WishlistItem

	notesInput   textinput.Model
	editingNotes bool
}

// NewWishlistDetailModel creates a wishlist detail model.
func NewWishlistDetailModel(it model.WishlistItem) *WishlistDetailModel {
	in := textinput.New()
	in.Placeholder = "Your notes..."
	in.CharLimit = 500

	return &WishlistDetailModel{item: it, notesInput: in}
}

// Item returns the displayed item.
func (m *WishlistDetailModel) Item() model.WishlistItem {
	return m.item
}

// SetVisited updates the displayed visited flag.
func (m *WishlistDetailModel) SetVisited(visited bool) {
	m.item.HasVisited = visited
}

// SetComments updates the displayed notes.
func (m *WishlistDetailModel) SetComments(comments string) {
	m.item.Comments = comments
}

// EditingNotes reports whether the notes editor is capturing keys.
func (m *WishlistDetailModel) EditingNotes() bool { return m.editingNotes }

// StartEditNotes opens the inline notes editor.
func (m *WishlistDetailModel) StartEditNotes() {
	m.editingNotes = true
	m.notesInput.SetValue(m.item.Comments)
	m.notesInput.Focus()
}

// UpdateNotes feeds a key to the notes editor. It returns the edited
// text and done=true when the user commits with enter; esc abandons
// the edit.
func (m *WishlistDetailModel) UpdateNotes(msg tea.KeyMsg) (comments string, done bool, cmd tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editingNotes = false
		m.notesInput.Blur()
		return m.notesInput.Value(), true, nil
	case "esc":
		m.editingNotes = false
		m.notesInput.Blur()
		return "", false, nil
	}
	m.notesInput, cmd = m.notesInput.Update(msg)
	return "", false, cmd
}

// View renders the detail panel.
func (m *WishlistDetailModel) View(width, height int) string {
	it := m.item

	visited := ErrorStyle.Render("not visited yet")
	if it.HasVisited {
		visited = SuccessStyle.Render("visited ✓")
	}

	notes := util.FormatComments(it.Comments)
	if m.editingNotes {
		notes = m.notesInput.View()
	}

	rows := []string{
		LabelStyle.Render(it.Name),
		"",
		"Status        " + visited,
		"Location      " + util.FormatCoordinate(it.Location),
		"",
		LabelStyle.Render("Notes"),
		notes,
	}

	if !it.HasVisited {
		rows = append(rows, "", HelpDescStyle.Render("Press x once you've been — then p to rate it."))
	} else {
		rows = append(rows, "", HelpDescStyle.Render("Press p to promote this into a rating."))
	}

	panel := PanelStyle.Width(min(width-4, 72)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, panel)
}

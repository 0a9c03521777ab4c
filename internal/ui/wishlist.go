package ui

import (
	"fmt"
	"strings"

	"cortado/internal/model"
	"cortado/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WishlistModel is the want-to-go list screen.
type WishlistModel struct {
	all  []model.WishlistItem
	rows []model.WishlistItem

	cursor int
	offset int

	filterInput textinput.Model
	filtering   bool
	filterQuery string
}

// NewWishlistModel creates a wishlist list model.
func NewWishlistModel(items []model.WishlistItem) *WishlistModel {
	in := textinput.New()
	in.Placeholder = "Search wishlist..."
	in.Prompt = "/ "
	in.CharLimit = 60

	m := &WishlistModel{
		all:         append([]model.WishlistItem(nil), items...),
		filterInput: in,
	}
	m.rebuild()
	return m
}

// SetItems replaces the backing data, keeping the active filter.
func (m *WishlistModel) SetItems(items []model.WishlistItem) {
	m.all = append([]model.WishlistItem(nil), items...)
	m.rebuild()
}

func (m *WishlistModel) rebuild() {
	m.rows = model.FilterWishlist(m.all, m.filterQuery)
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

// Filtering reports whether the filter input is capturing keys.
func (m *WishlistModel) Filtering() bool { return m.filtering }

// StartFilter begins typing a filter query.
func (m *WishlistModel) StartFilter() {
	m.filtering = true
	m.filterInput.SetValue(m.filterQuery)
	m.filterInput.Focus()
}

// UpdateFilter feeds a key to the filter input and reapplies it live.
func (m *WishlistModel) UpdateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return nil
	case "esc":
		m.filtering = false
		m.filterQuery = ""
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.rebuild()
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterQuery = m.filterInput.Value()
	m.rebuild()
	return cmd
}

// ClearFilter drops the active filter query.
func (m *WishlistModel) ClearFilter() bool {
	if m.filterQuery == "" {
		return false
	}
	m.filterQuery = ""
	m.filterInput.SetValue("")
	m.rebuild()
	return true
}

// CursorDown moves the cursor down.
func (m *WishlistModel) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// CursorUp moves the cursor up.
func (m *WishlistModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// JumpToTop jumps to the first row.
func (m *WishlistModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *WishlistModel) JumpToBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
	}
}

// Selected returns the item under the cursor, or nil.
func (m *WishlistModel) Selected() *model.WishlistItem {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// View renders the list.
func (m *WishlistModel) View(width, height int) string {
	var header string
	if m.filtering || m.filterQuery != "" {
		header = StatusBarStyle.Render(m.filterInput.View())
		height--
	}

	if len(m.rows) == 0 {
		empty := "    No places saved.\n    Press  a  to add one!"
		if m.filterQuery != "" {
			empty = fmt.Sprintf("    Nothing matches %q.", m.filterQuery)
		}
		body := EmptyStateStyle.Width(width).Height(height).Render(empty)
		if header != "" {
			return lipgloss.JoinVertical(lipgloss.Left, header, body)
		}
		return body
	}

	nameWidth := max(24, width-48)
	cols := fmt.Sprintf("  %-*s  %-9s  %s", nameWidth, "NAME", "VISITED", "NOTES")
	head := TableHeaderStyle.Width(width).Render(cols)

	visibleHeight := max(1, height-3)
	if m.cursor >= m.offset+visibleHeight {
		m.offset = m.cursor - visibleHeight + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	var lines []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		it := m.rows[i]

		visited := "✗"
		if it.HasVisited {
			visited = "✓"
		}

		line := fmt.Sprintf("  %-*s  %-9s  %s",
			nameWidth, util.TruncateString(it.Name, nameWidth),
			visited,
			util.TruncateString(it.Comments, 32))

		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle.Width(width)
		}
		lines = append(lines, style.Render(line))
	}

	filterInfo := ""
	if m.filterQuery != "" {
		filterInfo = fmt.Sprintf("  ·  filtered: %d/%d", len(m.rows), len(m.all))
	}
	status := StatusBarStyle.Render(fmt.Sprintf("Want to go: %d  ·  row %d/%d%s",
		len(m.rows), m.cursor+1, len(m.rows), filterInfo))

	content := lipgloss.JoinVertical(lipgloss.Left, head, strings.Join(lines, "\n"))
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	parts := []string{content, spacer, status}
	if header != "" {
		parts = append([]string{header}, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

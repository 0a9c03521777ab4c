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

// RatingsModel is the ratings list screen. With favoritesOnly set it
// doubles as the favorites screen.
type RatingsModel struct {
	all  []model.Rating
	rows []model.Rating

	cursor int
	offset int

	favoritesOnly bool
	filterInput   textinput.Model
	filtering     bool
	filterQuery   string
}

// NewRatingsModel creates a ratings list model.
func NewRatingsModel(ratings []model.Rating, favoritesOnly bool) *RatingsModel {
	in := textinput.New()
	in.Placeholder = "Search ratings..."
	in.Prompt = "/ "
	in.CharLimit = 60

	m := &RatingsModel{
		all:           append([]model.Rating(nil), ratings...),
		favoritesOnly: favoritesOnly,
		filterInput:   in,
	}
	m.rebuild()
	return m
}

// SetRatings replaces the backing data, keeping the active filter.
func (m *RatingsModel) SetRatings(ratings []model.Rating) {
	m.all = append([]model.Rating(nil), ratings...)
	m.rebuild()
}

func (m *RatingsModel) rebuild() {
	rows := m.all
	if m.favoritesOnly {
		favs := make([]model.Rating, 0, len(rows))
		for _, r := range rows {
			if r.IsFavorited {
				favs = append(favs, r)
			}
		}
		rows = favs
	}
	m.rows = model.FilterRatings(rows, m.filterQuery)
	m.clampCursor()
}

func (m *RatingsModel) clampCursor() {
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
func (m *RatingsModel) Filtering() bool { return m.filtering }

// StartFilter begins typing a filter query.
func (m *RatingsModel) StartFilter() {
	m.filtering = true
	m.filterInput.SetValue(m.filterQuery)
	m.filterInput.Focus()
}

// UpdateFilter feeds a key to the filter input and reapplies it live.
func (m *RatingsModel) UpdateFilter(msg tea.KeyMsg) tea.Cmd {
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
func (m *RatingsModel) ClearFilter() bool {
	if m.filterQuery == "" {
		return false
	}
	m.filterQuery = ""
	m.filterInput.SetValue("")
	m.rebuild()
	return true
}

// CursorDown moves the cursor down.
func (m *RatingsModel) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// CursorUp moves the cursor up.
func (m *RatingsModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// JumpToTop jumps to the first row.
func (m *RatingsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *RatingsModel) JumpToBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
	}
}

// Selected returns the rating under the cursor, or nil.
func (m *RatingsModel) Selected() *model.Rating {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// View renders the list.
func (m *RatingsModel) View(width, height int) string {
	var header string
	if m.filtering || m.filterQuery != "" {
		header = StatusBarStyle.Render(m.filterInput.View())
		height--
	}

	if len(m.rows) == 0 {
		empty := "    No ratings yet.\n    Press  a  to rate a spot!"
		if m.favoritesOnly {
			empty = "    No favorites yet.\n    Press  f  on a rating to favorite it."
		}
		if m.filterQuery != "" {
			empty = fmt.Sprintf("    Nothing matches %q.", m.filterQuery)
		}
		body := EmptyStateStyle.Width(width).Height(height).Render(empty)
		if header != "" {
			return lipgloss.JoinVertical(lipgloss.Left, header, body)
		}
		return body
	}

	nameWidth := max(24, width-44)
	cols := fmt.Sprintf("  %-*s  %-8s  %-12s  %-6s  %s",
		nameWidth, "NAME", "SCORE", "VISITED", "NOISE", "FAV")
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
		r := m.rows[i]

		fav := ""
		if r.IsFavorited {
			fav = "★"
		}

		nameCell := fmt.Sprintf("  %-*s  ", nameWidth, util.TruncateString(r.Name, nameWidth))
		scoreCell := fmt.Sprintf("%-8s", util.FormatScore(r.OverallRating))
		restCell := fmt.Sprintf("  %-12s  %-6s  %s",
			util.FormatVisited(r.WhenVisited), r.NoiseLevel.String(), fav)

		if i == m.cursor {
			lines = append(lines, SelectedRowStyle.Width(width).Render(nameCell+scoreCell+restCell))
		} else {
			lines = append(lines, NormalRowStyle.Render(nameCell)+
				ScoreStyle(r.OverallRating).Render(scoreCell)+
				NormalRowStyle.Render(restCell))
		}
	}

	filterInfo := ""
	if m.filterQuery != "" {
		filterInfo = fmt.Sprintf("  ·  filtered: %d/%d", len(m.rows), len(m.all))
	}
	status := StatusBarStyle.Render(fmt.Sprintf("Total ratings: %d  ·  row %d/%d%s",
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

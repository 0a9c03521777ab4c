package ui

import (
	"fmt"

	"cortado/internal/model"
	"cortado/internal/stats"
	"cortado/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// StatsModel is the summary screen over all ratings.
type StatsModel struct {
	ratings []model.Rating
}

// NewStatsModel creates a stats model.
func NewStatsModel(ratings []model.Rating) *StatsModel {
	return &StatsModel{ratings: ratings}
}

// SetRatings replaces the backing data.
func (m *StatsModel) SetRatings(ratings []model.Rating) {
	m.ratings = ratings
}

// View renders the summary panel.
func (m *StatsModel) View(width, height int) string {
	count := stats.Count(m.ratings)
	avg := stats.Average(m.ratings)
	top := stats.Top(m.ratings)

	favorites := 0
	for _, r := range m.ratings {
		if r.IsFavorited {
			favorites++
		}
	}

	avgLine := ScoreStyle(avg).Bold(true).Render(util.FormatScoreBare(avg))
	if count == 0 {
		avgLine = HelpDescStyle.Render("0.0")
	}

	topLine := HelpDescStyle.Render("no ratings yet")
	if top != nil {
		topLine = top.Name + "  " +
			ScoreStyle(top.OverallRating).Render(util.FormatScore(top.OverallRating))
	}

	rows := []string{
		LabelStyle.Render("Your spots at a glance"),
		"",
		fmt.Sprintf("Spots rated     %d", count),
		fmt.Sprintf("Favorites       %d", favorites),
		"Average score   " + avgLine,
		"",
		LabelStyle.Render("Top spot"),
		topLine,
	}

	panel := PanelStyle.Width(min(width-4, 72)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, panel)
}

package ui

import (
	"fmt"

	"cortado/internal/model"
	"cortado/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// RatingDetailModel shows a single rating.
type RatingDetailModel struct {
	rating model.Rating
}

// NewRatingDetailModel creates a rating detail model.
func NewRatingDetailModel(r model.Rating) *RatingDetailModel {
	return &RatingDetailModel{rating: r}
}

// SetFavorited updates the displayed favorite flag.
func (m *RatingDetailModel) SetFavorited(favorited bool) {
	m.rating.IsFavorited = favorited
}

// View renders the detail panel.
func (m *RatingDetailModel) View(width, height int) string {
	r := m.rating

	title := LabelStyle.Render(r.Name)
	if r.IsFavorited {
		title += "  " + lipgloss.NewStyle().Foreground(ColorYellow).Render("★ favorite")
	}

	scoreLine := ScoreStyle(r.OverallRating).Bold(true).Render(util.FormatScore(r.OverallRating))

	rows := []string{
		title,
		"",
		"Overall       " + scoreLine,
		"",
		fmt.Sprintf("Study vibe    %d/10", r.StudyVibe),
		fmt.Sprintf("Food & drink  %d/10", r.FoodOrDrink),
		fmt.Sprintf("Availability  %d/5", r.Availability),
		fmt.Sprintf("Noise         %s", r.NoiseLevel),
		"",
		"Visited       " + util.FormatVisited(r.WhenVisited),
		"Location      " + util.FormatCoordinate(r.Location),
		"",
		LabelStyle.Render("Notes"),
		util.FormatComments(r.Comments),
	}

	panel := PanelStyle.Width(min(width-4, 72)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, panel)
}

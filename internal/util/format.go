package util

import (
	"fmt"
	"strings"
	"time"

	"cortado/internal/model"
)

// FormatScore renders an overall score with one decimal place, e.g.
// "8.4/10". Storage keeps full precision; rounding is display-only.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f/10", score)
}

// FormatScoreBare is FormatScore without the "/10" suffix.
func FormatScoreBare(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

// FormatVisited formats a visit timestamp with humanized relative
// display: "Today", "Yesterday", "3d ago", "Jan 15", "Jan 15 '24".
func FormatVisited(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	visited := t.Local()
	visitedDay := time.Date(visited.Year(), visited.Month(), visited.Day(), 0, 0, 0, 0, visited.Location())

	days := int(today.Sub(visitedDay).Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%dd ago", days)
	case visited.Year() == now.Year():
		return visited.Format("Jan 02")
	default:
		return visited.Format("Jan 02 '06")
	}
}

// FormatCoordinate renders a location as "33.7881, -117.8519" or "—"
// when absent.
func FormatCoordinate(c *model.Coordinate) string {
	if c == nil {
		return "—"
	}
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// FormatComments renders notes, or a dash for absent ones.
func FormatComments(comments string) string {
	if strings.TrimSpace(comments) == "" {
		return "—"
	}
	return comments
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

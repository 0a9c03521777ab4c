package ui

import (
	"strings"

	"cortado/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderFormHelp(width)
	}

	switch screen {
	case model.ScreenRatings, model.ScreenFavorites:
		return renderRatingsHelp(width)
	case model.ScreenWishlist:
		return renderWishlistHelp(width)
	case model.ScreenStats:
		return renderStatsHelp(width)
	case model.ScreenRatingDetail:
		return renderRatingDetailHelp(width)
	case model.ScreenWishlistDetail:
		return renderWishlistDetailHelp(width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderRatingsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "details"),
		helpKey("a", "rate a spot"),
		helpKey("f", "favorite"),
		helpKey("/", "filter"),
		helpKey("d", "delete"),
		helpKey("tab", "next view"),
		helpKey("?", "help"),
	}
	return renderHelpLine(keys, width)
}

func renderWishlistHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("enter", "details"),
		helpKey("a", "add place"),
		helpKey("x", "toggle visited"),
		helpKey("p", "promote to rating"),
		helpKey("/", "filter"),
		helpKey("d", "delete"),
		helpKey("tab", "next view"),
	}
	return renderHelpLine(keys, width)
}

func renderStatsHelp(width int) string {
	keys := []string{
		helpKey("tab", "next view"),
		helpKey("q", "quit"),
		helpKey("?", "help"),
	}
	return renderHelpLine(keys, width)
}

func renderRatingDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "back"),
		helpKey("f", "favorite"),
		helpKey("d", "delete"),
	}
	return renderHelpLine(keys, width)
}

func renderWishlistDetailHelp(width int) string {
	keys := []string{
		helpKey("h/esc", "back"),
		helpKey("x", "toggle visited"),
		helpKey("p", "promote"),
		helpKey("e", "edit notes"),
		helpKey("d", "delete"),
	}
	return renderHelpLine(keys, width)
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next field"),
		helpKey("shift+tab", "prev field"),
		helpKey("ctrl+s", "save"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("h/l", "back/select"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"h / esc", "Go back"},
			{"l / enter", "Open / select"},
			{"tab / shift+tab", "Cycle views"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d / ctrl+u", "Half page down / up"},
			{"/", "Filter by name"},
			{"q", "Quit (from a list)"},
			{"?", "Toggle help"},
		}),
		titleSection("Ratings / Favorites"),
		helpSection([]helpItem{
			{"a", "Rate a new spot"},
			{"f", "Toggle favorite"},
			{"d", "Delete (asks to confirm)"},
			{"enter / l", "Open rating detail"},
		}),
		titleSection("Want to Go"),
		helpSection([]helpItem{
			{"a", "Add a place to the list"},
			{"x", "Toggle visited"},
			{"p", "Promote a visited place into a rating"},
			{"e", "Edit notes (from detail)"},
			{"d", "Delete (asks to confirm)"},
		}),
		titleSection("Forms"),
		helpSection([]helpItem{
			{"tab", "Next field"},
			{"shift+tab", "Previous field"},
			{"ctrl+s", "Save"},
			{"esc", "Cancel"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}

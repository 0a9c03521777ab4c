package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cortado/internal/model"
	"cortado/internal/search"
	"cortado/internal/util"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Message types for the async search flow.
type suggestResultMsg struct {
	seq     int
	results []search.Suggestion
	err     error
}

type searchDebounceMsg struct {
	seq int
}

type resolveResultMsg struct {
	seq   int
	place *model.ResolvedPlace
	err   error
}

// placeSearch is the search-as-you-type field shared by both create
// forms. It owns the suggestion dropdown, the debounce sequence
// counter, and the resolved place.
//
// Every async result carries the sequence number it was issued under;
// any edit to the query bumps the counter, so suggestions or
// resolutions that land late are dropped and a pending selection is
// invalidated the moment the text changes.
type placeSearch struct {
	svc   search.Service
	input textinput.Model

	seq          int
	results      []search.Suggestion
	cursor       int
	showDropdown bool
	searching    bool
	resolving    bool
	spin         spinner.Model

	selected      *model.ResolvedPlace
	selectedTitle string
}

func newPlaceSearch(svc search.Service, placeholder string) placeSearch {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return placeSearch{svc: svc, input: in, spin: sp}
}

// prefill seeds the field with an already-resolved place (wishlist
// promotion path) and skips the search flow.
func (p *placeSearch) prefill(place model.ResolvedPlace) {
	p.selected = &place
	p.selectedTitle = place.Name
	p.input.SetValue(place.Name)
}

// Selected returns the resolved place, or nil when none is selected
// or the query changed since.
func (p *placeSearch) Selected() *model.ResolvedPlace {
	return p.selected
}

// Busy reports whether a suggestion query or resolution is in flight.
// This is a distinct state from "no result".
func (p *placeSearch) Busy() bool {
	return p.searching || p.resolving
}

// HandleMsg consumes async search messages. handled is false for
// messages that belong to someone else.
func (p *placeSearch) HandleMsg(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case searchDebounceMsg:
		if msg.seq == p.seq && p.svc != nil {
			return p.suggestCmd(p.input.Value(), msg.seq), true
		}
		return nil, true

	case suggestResultMsg:
		if msg.seq != p.seq {
			return nil, true // stale, superseded by a newer query
		}
		p.searching = false
		if msg.err != nil {
			p.showDropdown = false
			return func() tea.Msg { return model.ErrorMsg{Err: msg.err} }, true
		}
		p.results = msg.results
		p.cursor = 0
		p.showDropdown = len(msg.results) > 0
		return nil, true

	case resolveResultMsg:
		// Always settles the spinner, even when the result itself is
		// superseded.
		p.resolving = false
		if msg.seq != p.seq {
			return nil, true // user kept typing; discard
		}
		if msg.err != nil {
			return func() tea.Msg { return model.ErrorMsg{Err: msg.err} }, true
		}
		// place may be nil: a no-result, shown as such, not an error.
		p.selected = msg.place
		return nil, true

	case spinner.TickMsg:
		if !p.Busy() {
			return nil, true
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd, true
	}

	return nil, false
}

// HandleKey consumes a key while the field is focused. selectedNow is
// true when the key selected a suggestion (callers usually advance
// focus).
func (p *placeSearch) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.showDropdown {
		switch msg.String() {
		case "esc":
			p.showDropdown = false
			return nil, false
		case "down", "ctrl+n":
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
			return nil, false
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return nil, false
		case "enter", "tab":
			if p.cursor < len(p.results) {
				return p.selectSuggestion(p.results[p.cursor]), true
			}
			return nil, false
		}
	}

	before := p.input.Value()

	var cmds []tea.Cmd
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	cmds = append(cmds, cmd)

	query := p.input.Value()
	if query == before {
		// Cursor movement and other no-op keys leave the fragment
		// alone; in-flight work stays valid.
		return tea.Batch(cmds...), false
	}

	// The fragment changed: a selection or resolution for the old
	// fragment no longer applies.
	if strings.TrimSpace(query) != p.selectedTitle {
		p.selected = nil
		p.selectedTitle = ""
		p.resolving = false
	}

	if p.svc != nil {
		if len(query) >= 2 {
			p.seq++
			seq := p.seq
			p.searching = true
			p.showDropdown = false

			cmds = append(cmds, p.spin.Tick)
			cmds = append(cmds, tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
				return searchDebounceMsg{seq: seq}
			}))
		} else {
			p.seq++
			p.showDropdown = false
			p.results = nil
			p.searching = false
		}
	}

	return tea.Batch(cmds...), false
}

func (p *placeSearch) suggestCmd(query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		results, err := p.svc.Suggest(ctx, query, "")
		return suggestResultMsg{seq: seq, results: results, err: err}
	}
}

func (p *placeSearch) selectSuggestion(s search.Suggestion) tea.Cmd {
	p.input.SetValue(s.Title)
	p.selectedTitle = s.Title
	p.showDropdown = false
	p.resolving = true
	p.selected = nil

	// Picking a suggestion starts a new query state; resolves issued
	// for an earlier pick and pending debounces are superseded.
	p.seq++
	seq := p.seq
	return tea.Batch(p.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		place, err := p.svc.Resolve(ctx, s)
		return resolveResultMsg{seq: seq, place: place, err: err}
	})
}

// StatusLine renders the line under the input: spinner, resolved
// place, or the no-result notice.
func (p *placeSearch) StatusLine() string {
	switch {
	case p.Busy():
		return HelpDescStyle.Render(p.spin.View() + " Searching...")
	case p.selected != nil:
		return SuccessStyle.Render("✓ " + p.selected.Name + "  " +
			fmt.Sprintf("(%.4f, %.4f)", p.selected.Location.Latitude, p.selected.Location.Longitude))
	case p.selectedTitle != "":
		return WarnStyle.Render("No location found for that spot.")
	}
	return ""
}

// Dropdown renders the suggestion list, or "" when hidden.
func (p *placeSearch) Dropdown(width int) string {
	if !p.showDropdown || len(p.results) == 0 {
		return ""
	}

	var items []string
	for i, s := range p.results {
		style := NormalRowStyle
		if i == p.cursor {
			style = SelectedRowStyle
		}

		left := util.TruncateString(s.Title, 40)
		right := ""
		if s.Subtitle != "" {
			right = HelpDescStyle.Render(util.TruncateString(s.Subtitle, 36))
		}

		availableWidth := max(10, width-4)
		padding := max(0, availableWidth-lipgloss.Width(left)-lipgloss.Width(right))
		items = append(items, style.Width(availableWidth).Render(left+strings.Repeat(" ", padding)+right))
	}

	return BorderStyle.Padding(0, 1).Width(width).Render(strings.Join(items, "\n"))
}

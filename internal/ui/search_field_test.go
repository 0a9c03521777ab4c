package ui

import (
	"context"
	"testing"

	"cortado/internal/model"
	"cortado/internal/search"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchService struct{}

func (stubSearchService) Suggest(context.Context, string, string) ([]search.Suggestion, error) {
	return nil, nil
}

func (stubSearchService) Resolve(context.Context, search.Suggestion) (*model.ResolvedPlace, error) {
	return nil, nil
}

func TestStaleSuggestResultsDropped(t *testing.T) {
	p := newPlaceSearch(nil, "")
	p.seq = 5

	_, handled := p.HandleMsg(suggestResultMsg{
		seq:     4,
		results: []search.Suggestion{{Title: "Old Result"}},
	})
	require.True(t, handled)
	assert.Empty(t, p.results)
	assert.False(t, p.showDropdown)

	_, handled = p.HandleMsg(suggestResultMsg{
		seq:     5,
		results: []search.Suggestion{{Title: "Current Result"}},
	})
	require.True(t, handled)
	require.Len(t, p.results, 1)
	assert.Equal(t, "Current Result", p.results[0].Title)
	assert.True(t, p.showDropdown)
}

func TestStaleResolveResultDropped(t *testing.T) {
	p := newPlaceSearch(nil, "")
	p.seq = 3

	place := &model.ResolvedPlace{Name: "Late Arrival"}
	_, handled := p.HandleMsg(resolveResultMsg{seq: 2, place: place})
	require.True(t, handled)
	assert.Nil(t, p.Selected())

	_, handled = p.HandleMsg(resolveResultMsg{seq: 3, place: place})
	require.True(t, handled)
	require.NotNil(t, p.Selected())
	assert.Equal(t, "Late Arrival", p.Selected().Name)
}

func TestResolveNilPlaceIsNotAnError(t *testing.T) {
	p := newPlaceSearch(nil, "")
	p.resolving = true
	p.selectedTitle = "Ghost Cafe"

	cmd, handled := p.HandleMsg(resolveResultMsg{seq: 0, place: nil})
	require.True(t, handled)
	assert.Nil(t, cmd)
	assert.Nil(t, p.Selected())
	assert.False(t, p.Busy())
}

func TestCursorKeyKeepsResolutionInFlight(t *testing.T) {
	p := newPlaceSearch(stubSearchService{}, "")
	p.input.Focus()
	p.input.SetValue("Hidden House")
	p.selectedTitle = "Hidden House"
	p.resolving = true
	seqBefore := p.seq

	// A key that does not change the fragment must not supersede the
	// in-flight resolve.
	p.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, seqBefore, p.seq)
	assert.True(t, p.resolving)

	place := &model.ResolvedPlace{Name: "Hidden House"}
	_, handled := p.HandleMsg(resolveResultMsg{seq: seqBefore, place: place})
	require.True(t, handled)
	require.NotNil(t, p.Selected())
	assert.Equal(t, "Hidden House", p.Selected().Name)
	assert.False(t, p.Busy())
}

func TestStaleResolveStillClearsSpinner(t *testing.T) {
	p := newPlaceSearch(nil, "")
	p.seq = 3
	p.resolving = true

	_, handled := p.HandleMsg(resolveResultMsg{seq: 2, place: &model.ResolvedPlace{Name: "Old"}})
	require.True(t, handled)
	assert.Nil(t, p.Selected())
	assert.False(t, p.Busy())
}

func TestNewSelectionSupersedesPendingResolve(t *testing.T) {
	p := newPlaceSearch(stubSearchService{}, "")
	p.input.Focus()

	cmd := p.selectSuggestion(search.Suggestion{Title: "First Pick", PlaceID: "a"})
	require.NotNil(t, cmd)
	firstSeq := p.seq

	cmd = p.selectSuggestion(search.Suggestion{Title: "Second Pick", PlaceID: "b"})
	require.NotNil(t, cmd)
	require.Greater(t, p.seq, firstSeq)

	// The first pick's resolve lands late and must not win.
	_, handled := p.HandleMsg(resolveResultMsg{seq: firstSeq, place: &model.ResolvedPlace{Name: "First Pick"}})
	require.True(t, handled)
	assert.Nil(t, p.Selected())

	_, handled = p.HandleMsg(resolveResultMsg{seq: p.seq, place: &model.ResolvedPlace{Name: "Second Pick"}})
	require.True(t, handled)
	require.NotNil(t, p.Selected())
	assert.Equal(t, "Second Pick", p.Selected().Name)
}

func TestTypingInvalidatesSelection(t *testing.T) {
	p := newPlaceSearch(nil, "")
	p.prefill(model.ResolvedPlace{Name: "Contra Coffee"})
	require.NotNil(t, p.Selected())

	p.input.Focus()
	p.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	assert.Nil(t, p.Selected())
}

func TestPrefillSkipsSearchFlow(t *testing.T) {
	p := newPlaceSearch(nil, "")
	p.prefill(model.ResolvedPlace{
		Name:     "Hidden House",
		Location: model.Coordinate{Latitude: 33.75, Longitude: -117.85},
	})

	require.NotNil(t, p.Selected())
	assert.Equal(t, "Hidden House", p.Selected().Name)
	assert.Equal(t, "Hidden House", p.input.Value())
	assert.False(t, p.Busy())
}

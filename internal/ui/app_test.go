package ui

import (
	"testing"

	"cortado/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPromotionRequiresVisited(t *testing.T) {
	m := New(nil, nil)
	m.screen = model.ScreenWishlist

	updated, cmd := m.startPromotion(model.WishlistItem{ID: "w1", Name: "Hidden House"})
	got := updated.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, model.ScreenWishlist, got.screen)
	assert.Equal(t, model.ModeNav, got.mode)
	assert.Nil(t, got.ratingForm)
	assert.NotEmpty(t, got.info)
}

func TestPromotionOpensPrefilledForm(t *testing.T) {
	m := New(nil, nil)
	m.screen = model.ScreenWishlist

	item := model.WishlistItem{
		ID:         "w1",
		Name:       "Hidden House",
		HasVisited: true,
		Location:   &model.Coordinate{Latitude: 33.75, Longitude: -117.85},
		Comments:   "try the cortado",
	}
	updated, _ := m.startPromotion(item)
	got := updated.(Model)

	assert.Equal(t, model.ScreenRatingForm, got.screen)
	assert.Equal(t, model.ModeInsert, got.mode)
	require.NotNil(t, got.ratingForm)
	assert.Equal(t, "w1", got.ratingForm.promotedFrom)
	require.NotNil(t, got.ratingForm.place.Selected())
	assert.Equal(t, "Hidden House", got.ratingForm.place.Selected().Name)
}

func TestConfirmKeyCancelLeavesStoreAlone(t *testing.T) {
	m := New(nil, nil)
	m.confirm.Request(TargetRating, "r1", "Contra Coffee")

	updated, cmd := m.handleConfirmKey(runeKey('n'))
	got := updated.(Model)

	assert.Nil(t, cmd)
	assert.False(t, got.confirm.Pending())
}

func TestConfirmKeyYesIssuesDelete(t *testing.T) {
	m := New(nil, nil)
	m.confirm.Request(TargetWishlist, "w1", "Hidden House")

	updated, cmd := m.handleConfirmKey(runeKey('y'))
	got := updated.(Model)

	assert.NotNil(t, cmd)
	assert.False(t, got.confirm.Pending())
}

func TestConfirmKeyOtherKeysIgnored(t *testing.T) {
	m := New(nil, nil)
	m.confirm.Request(TargetRating, "r1", "Contra Coffee")

	updated, cmd := m.handleConfirmKey(runeKey('j'))
	got := updated.(Model)

	assert.Nil(t, cmd)
	assert.True(t, got.confirm.Pending())
}

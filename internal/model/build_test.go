package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRating(t *testing.T) {
	place := ResolvedPlace{
		Name:     "Contra Coffee",
		Location: Coordinate{Latitude: 33.7881, Longitude: -117.8519},
	}
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	r := BuildRating(place, RatingScores{
		StudyVibe:    10,
		FoodOrDrink:  10,
		Availability: 5,
		NoiseLevel:   NoiseQuiet,
	}, "  great outlets  ", now)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Contra Coffee", r.Name)
	require.NotNil(t, r.Location)
	assert.Equal(t, place.Location, *r.Location)
	assert.Equal(t, now, r.WhenVisited)
	assert.False(t, r.IsFavorited)
	assert.Equal(t, NoiseQuiet, r.NoiseLevel)
	assert.InDelta(t, 10.0, r.OverallRating, 1e-9)
	assert.Equal(t, "great outlets", r.Comments)
}

func TestBuildRatingUniqueIDs(t *testing.T) {
	place := ResolvedPlace{Name: "x"}
	a := BuildRating(place, RatingScores{}, "", time.Now())
	b := BuildRating(place, RatingScores{}, "", time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBuildWishlistItem(t *testing.T) {
	place := ResolvedPlace{
		Name:     "Hidden House",
		Location: Coordinate{Latitude: 33.75, Longitude: -117.85},
	}

	it := BuildWishlistItem(place, " heard good things ")

	assert.NotEmpty(t, it.ID)
	assert.Equal(t, "Hidden House", it.Name)
	require.NotNil(t, it.Location)
	assert.Equal(t, place.Location, *it.Location)
	assert.False(t, it.HasVisited)
	assert.Equal(t, "heard good things", it.Comments)
}

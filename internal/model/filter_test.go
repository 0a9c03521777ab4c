package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ratingsNamed(names ...string) []Rating {
	out := make([]Rating, len(names))
	for i, n := range names {
		out[i] = Rating{ID: n, Name: n}
	}
	return out
}

func TestFilterRatingsEmptyQueryReturnsAll(t *testing.T) {
	in := ratingsNamed("Contra Coffee", "Hidden House", "Daydream Surf Shop")

	assert.Equal(t, in, FilterRatings(in, ""))
}

func TestFilterRatingsCaseInsensitiveSubstring(t *testing.T) {
	in := ratingsNamed("Contra Coffee", "Hidden House", "CONTRAband Cafe")

	got := FilterRatings(in, "contra")
	if assert.Len(t, got, 2) {
		assert.Equal(t, "Contra Coffee", got[0].Name)
		assert.Equal(t, "CONTRAband Cafe", got[1].Name)
	}
}

func TestFilterRatingsPreservesOrder(t *testing.T) {
	in := ratingsNamed("b cafe", "a cafe", "c cafe")

	got := FilterRatings(in, "cafe")
	assert.Equal(t, in, got)
}

func TestFilterRatingsNoMatch(t *testing.T) {
	in := ratingsNamed("Contra Coffee")
	assert.Empty(t, FilterRatings(in, "zzz"))
}

func TestFilterWishlist(t *testing.T) {
	in := []WishlistItem{
		{ID: "1", Name: "Blue Bottle"},
		{ID: "2", Name: "bluestone lane"},
		{ID: "3", Name: "Philz"},
	}

	assert.Equal(t, in, FilterWishlist(in, ""))

	got := FilterWishlist(in, "BLUE")
	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
	}
}

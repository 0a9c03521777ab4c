package stats

import (
	"testing"

	"cortado/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 0.0, Average([]model.Rating{}))

	ratings := []model.Rating{
		{Name: "Contra", OverallRating: 4},
		{Name: "Philz", OverallRating: 8},
	}
	assert.InDelta(t, 6.0, Average(ratings), 1e-9)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 2, Count([]model.Rating{{}, {}}))
}

func TestTop(t *testing.T) {
	assert.Nil(t, Top(nil))

	ratings := []model.Rating{
		{ID: "a", OverallRating: 4},
		{ID: "b", OverallRating: 9},
		{ID: "c", OverallRating: 9},
	}
	top := Top(ratings)
	require.NotNil(t, top)
	// First max encountered wins the tie.
	assert.Equal(t, "b", top.ID)
}

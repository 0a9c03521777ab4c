package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverall(t *testing.T) {
	tests := []struct {
		name                                string
		studyVibe, foodOrDrink, availability int
		want                                float64
	}{
		{"maxima", 10, 10, 5, 10.0},
		{"minima", 0, 0, 0, 0.0},
		{"mixed", 5, 5, 3, 5.2},
		{"availability full weight", 0, 0, 5, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Overall(tt.studyVibe, tt.foodOrDrink, tt.availability), 1e-9)
		})
	}
}

func TestOverallRange(t *testing.T) {
	for sv := 0; sv <= 10; sv++ {
		for fd := 0; fd <= 10; fd++ {
			for av := 0; av <= 5; av++ {
				got := Overall(sv, fd, av)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 10.0)
				assert.InDelta(t, float64(sv+fd+av)/2.5, got, 1e-9)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		overall float64
		want    Band
	}{
		{7.0, BandMid},
		{7.1, BandHigh},
		{3.5, BandMid},
		{3.4, BandLow},
		{10.0, BandHigh},
		{0.0, BandLow},
		{5.0, BandMid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.overall), "score %.1f", tt.overall)
	}
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "low", BandLow.String())
	assert.Equal(t, "mid", BandMid.String())
	assert.Equal(t, "high", BandHigh.String())
}

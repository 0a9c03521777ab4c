// Package score derives the overall rating of a spot from its
// sub-scores and classifies it into a display band.
package score

// Overall computes the aggregate score from the three weighted
// sub-scores: studyVibe and foodOrDrink run 0-10, availability 0-5.
// Availability is summed at full weight before dividing by 2.5, so the
// scale is not "out of 10 per category"; the maxima (10, 10, 5) land on
// 10.0 exactly and the minima on 0.0. The divisor is a design constant,
// not configurable.
func Overall(studyVibe, foodOrDrink, availability int) float64 {
	return float64(studyVibe+foodOrDrink+availability) / 2.5
}

// Band is the three-way classification of an overall score. Every
// surface that colors a score goes through Classify so the cutoffs
// stay in one place.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

const (
	highCutoff = 7.0
	lowCutoff  = 3.5
)

// Classify maps an overall score to its band. The cutoff values
// themselves are mid: a 7.0 is not yet high, a 3.5 not yet low.
func Classify(overall float64) Band {
	switch {
	case overall > highCutoff:
		return BandHigh
	case overall < lowCutoff:
		return BandLow
	default:
		return BandMid
	}
}

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandHigh:
		return "high"
	default:
		return "mid"
	}
}

package model

import "time"

// NoiseLevel is how loud a spot was during the visit.
type NoiseLevel int

const (
	NoiseQuiet NoiseLevel = iota
	NoiseNormal
	NoiseLoud
)

// NoiseLevelFromOrdinal decodes a stored ordinal. Unrecognized values
// fall back to NoiseNormal.
func NoiseLevelFromOrdinal(n int) NoiseLevel {
	switch n {
	case 0:
		return NoiseQuiet
	case 2:
		return NoiseLoud
	default:
		return NoiseNormal
	}
}

func (n NoiseLevel) String() string {
	switch n {
	case NoiseQuiet:
		return "Quiet"
	case NoiseLoud:
		return "Loud"
	default:
		return "Normal"
	}
}

// Coordinate is a latitude/longitude pair in degrees. Entities carry it
// as a single optional value; it splits into two nullable columns only
// at the storage boundary.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// ResolvedPlace is a concrete place produced by the search adapter from
// a user-selected suggestion.
type ResolvedPlace struct {
	Name     string
	Location Coordinate
}

// Rating is a completed review of a visited coffee/study spot.
//
// OverallRating is derived once at creation from the studyVibe /
// foodOrDrink / availability triple and never recomputed; the
// sub-scores have no edit flow. Only IsFavorited mutates afterwards.
type Rating struct {
	ID          string
	Name        string
	Location    *Coordinate
	WhenVisited time.Time
	IsFavorited bool

	StudyVibe    int // 0-10
	FoodOrDrink  int // 0-10
	Availability int // 0-5
	NoiseLevel   NoiseLevel

	OverallRating float64
	Comments      string
}

// WishlistItem is a not-yet-visited candidate spot, promotable to a
// Rating once HasVisited is set.
type WishlistItem struct {
	ID         string
	Name       string
	Location   *Coordinate
	HasVisited bool
	Comments   string
}

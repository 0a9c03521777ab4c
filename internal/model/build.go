package model

import (
	"strings"
	"time"

	"cortado/internal/score"

	"github.com/google/uuid"
)

// RatingScores holds the user-entered sub-scores for a new rating.
type RatingScores struct {
	StudyVibe    int
	FoodOrDrink  int
	Availability int
	NoiseLevel   NoiseLevel
}

// BuildRating assembles a new Rating from a resolved place and the
// user's sub-scores. The overall score is computed here, once; the
// visit timestamp is stamped with now.
func BuildRating(place ResolvedPlace, scores RatingScores, comments string, now time.Time) Rating {
	loc := place.Location
	return Rating{
		ID:            uuid.NewString(),
		Name:          place.Name,
		Location:      &loc,
		WhenVisited:   now,
		IsFavorited:   false,
		StudyVibe:     scores.StudyVibe,
		FoodOrDrink:   scores.FoodOrDrink,
		Availability:  scores.Availability,
		NoiseLevel:    scores.NoiseLevel,
		OverallRating: score.Overall(scores.StudyVibe, scores.FoodOrDrink, scores.Availability),
		Comments:      strings.TrimSpace(comments),
	}
}

// BuildWishlistItem assembles a new WishlistItem from a resolved place.
func BuildWishlistItem(place ResolvedPlace, comments string) WishlistItem {
	loc := place.Location
	return WishlistItem{
		ID:         uuid.NewString(),
		Name:       place.Name,
		Location:   &loc,
		HasVisited: false,
		Comments:   strings.TrimSpace(comments),
	}
}

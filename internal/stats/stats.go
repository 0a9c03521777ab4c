// Package stats computes summary figures over the rating collection.
package stats

import "cortado/internal/model"

// Average returns the arithmetic mean of the overall ratings, or 0.0
// for an empty collection.
func Average(ratings []model.Rating) float64 {
	if len(ratings) == 0 {
		return 0.0
	}
	var sum float64
	for _, r := range ratings {
		sum += r.OverallRating
	}
	return sum / float64(len(ratings))
}

// Count returns the number of ratings.
func Count(ratings []model.Rating) int {
	return len(ratings)
}

// Top returns the rating with the highest overall score, or nil for an
// empty collection. Ties go to the first entry in iteration order.
func Top(ratings []model.Rating) *model.Rating {
	if len(ratings) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(ratings); i++ {
		if ratings[i].OverallRating > ratings[best].OverallRating {
			best = i
		}
	}
	return &ratings[best]
}

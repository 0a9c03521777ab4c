package db

import (
	"database/sql"
	"fmt"
	"time"

	"cortado/internal/model"
)

// ListRatings retrieves all ratings in creation order.
func ListRatings(db *sql.DB) ([]model.Rating, error) {
	rows, err := db.Query(`
		SELECT id, name, latitude, longitude, when_visited, is_favorited,
		       study_vibe, food_drink, availability, noise_level, overall, comments
		FROM ratings
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var results []model.Rating
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}

	return results, nil
}

// GetRating retrieves a single rating by ID.
func GetRating(db *sql.DB, id string) (model.Rating, error) {
	row := db.QueryRow(`
		SELECT id, name, latitude, longitude, when_visited, is_favorited,
		       study_vibe, food_drink, availability, noise_level, overall, comments
		FROM ratings
		WHERE id = ?
	`, id)

	r, err := scanRating(row)
	if err != nil {
		return model.Rating{}, fmt.Errorf("failed to get rating: %w", err)
	}
	return r, nil
}

// InsertRating persists a new rating exactly as supplied. Empty
// comments are stored as NULL.
func InsertRating(db *sql.DB, r model.Rating) error {
	var lat, lng interface{}
	if r.Location != nil {
		lat = r.Location.Latitude
		lng = r.Location.Longitude
	}
	var comments interface{}
	if r.Comments != "" {
		comments = r.Comments
	}
	favorited := 0
	if r.IsFavorited {
		favorited = 1
	}

	_, err := db.Exec(`
		INSERT INTO ratings (id, name, latitude, longitude, when_visited, is_favorited,
		                     study_vibe, food_drink, availability, noise_level, overall, comments)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Name, lat, lng, r.WhenVisited.UTC().Format(time.RFC3339Nano), favorited,
		r.StudyVibe, r.FoodOrDrink, r.Availability, int(r.NoiseLevel), r.OverallRating, comments)
	if err != nil {
		return fmt.Errorf("failed to insert rating: %w", err)
	}
	return nil
}

// DeleteRating deletes a rating. Deleting an absent id is a no-op.
func DeleteRating(db *sql.DB, id string) error {
	_, err := db.Exec("DELETE FROM ratings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}

// SetFavorited flips the favorite flag on a rating.
func SetFavorited(db *sql.DB, id string, favorited bool) error {
	v := 0
	if favorited {
		v = 1
	}
	_, err := db.Exec("UPDATE ratings SET is_favorited = ? WHERE id = ?", v, id)
	if err != nil {
		return fmt.Errorf("failed to update favorite flag: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRating(s scanner) (model.Rating, error) {
	var r model.Rating
	var lat, lng sql.NullFloat64
	var whenVisited string
	var favorited, noise int
	var comments sql.NullString

	if err := s.Scan(&r.ID, &r.Name, &lat, &lng, &whenVisited, &favorited,
		&r.StudyVibe, &r.FoodOrDrink, &r.Availability, &noise, &r.OverallRating, &comments); err != nil {
		return model.Rating{}, fmt.Errorf("failed to scan rating row: %w", err)
	}

	if lat.Valid && lng.Valid {
		r.Location = &model.Coordinate{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	t, err := time.Parse(time.RFC3339Nano, whenVisited)
	if err != nil {
		return model.Rating{}, fmt.Errorf("failed to parse when_visited: %w", err)
	}
	r.WhenVisited = t
	r.IsFavorited = favorited == 1
	r.NoiseLevel = model.NoiseLevelFromOrdinal(noise)
	r.Comments = comments.String

	return r, nil
}

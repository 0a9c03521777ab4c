package db

import (
	"database/sql"
	"fmt"

	"cortado/internal/model"
)

// ListWishlist returns all wishlist items in creation order.
func ListWishlist(db *sql.DB) ([]model.WishlistItem, error) {
	rows, err := db.Query(`
		SELECT id, name, latitude, longitude, has_visited, comments
		FROM wishlist
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer rows.Close()

	var results []model.WishlistItem
	for rows.Next() {
		it, err := scanWishlistItem(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, it)
	}

	return results, rows.Err()
}

// GetWishlistItem returns a single wishlist item by ID.
func GetWishlistItem(db *sql.DB, id string) (model.WishlistItem, error) {
	row := db.QueryRow(`
		SELECT id, name, latitude, longitude, has_visited, comments
		FROM wishlist
		WHERE id = ?
	`, id)

	it, err := scanWishlistItem(row)
	if err != nil {
		return model.WishlistItem{}, fmt.Errorf("failed to get wishlist item: %w", err)
	}
	return it, nil
}

// InsertWishlistItem persists a new wishlist item. Empty comments are
// stored as NULL.
func InsertWishlistItem(db *sql.DB, it model.WishlistItem) error {
	var lat, lng interface{}
	if it.Location != nil {
		lat = it.Location.Latitude
		lng = it.Location.Longitude
	}
	var comments interface{}
	if it.Comments != "" {
		comments = it.Comments
	}
	visited := 0
	if it.HasVisited {
		visited = 1
	}

	_, err := db.Exec(`
		INSERT INTO wishlist (id, name, latitude, longitude, has_visited, comments)
		VALUES (?, ?, ?, ?, ?, ?)
	`, it.ID, it.Name, lat, lng, visited, comments)
	if err != nil {
		return fmt.Errorf("failed to insert wishlist item: %w", err)
	}
	return nil
}

// DeleteWishlistItem deletes a wishlist item. Deleting an absent id is
// a no-op.
func DeleteWishlistItem(db *sql.DB, id string) error {
	_, err := db.Exec("DELETE FROM wishlist WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}
	return nil
}

// SetVisited flips the visited flag on a wishlist item.
func SetVisited(db *sql.DB, id string, visited bool) error {
	v := 0
	if visited {
		v = 1
	}
	_, err := db.Exec("UPDATE wishlist SET has_visited = ? WHERE id = ?", v, id)
	if err != nil {
		return fmt.Errorf("failed to update visited flag: %w", err)
	}
	return nil
}

// UpdateWishlistComments replaces the notes on a wishlist item. An
// empty string clears them.
func UpdateWishlistComments(db *sql.DB, id, comments string) error {
	var v interface{}
	if comments != "" {
		v = comments
	}
	_, err := db.Exec("UPDATE wishlist SET comments = ? WHERE id = ?", v, id)
	if err != nil {
		return fmt.Errorf("failed to update comments: %w", err)
	}
	return nil
}

func scanWishlistItem(s scanner) (model.WishlistItem, error) {
	var it model.WishlistItem
	var lat, lng sql.NullFloat64
	var visited int
	var comments sql.NullString

	if err := s.Scan(&it.ID, &it.Name, &lat, &lng, &visited, &comments); err != nil {
		return model.WishlistItem{}, fmt.Errorf("failed to scan wishlist row: %w", err)
	}

	if lat.Valid && lng.Valid {
		it.Location = &model.Coordinate{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	it.HasVisited = visited == 1
	it.Comments = comments.String

	return it, nil
}

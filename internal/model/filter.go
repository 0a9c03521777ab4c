package model

import "strings"

// FilterRatings returns the ratings whose name contains query as a
// case-insensitive substring, preserving order. An empty query returns
// the input unchanged.
func FilterRatings(ratings []Rating, query string) []Rating {
	if query == "" {
		return ratings
	}
	q := strings.ToLower(query)
	out := make([]Rating, 0, len(ratings))
	for _, r := range ratings {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterWishlist is FilterRatings for wishlist items.
func FilterWishlist(items []WishlistItem, query string) []WishlistItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]WishlistItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// RatingsLoadedMsg is sent when ratings are loaded.
type RatingsLoadedMsg struct {
	Ratings []Rating
}

// WishlistLoadedMsg is sent when the wishlist is loaded.
type WishlistLoadedMsg struct {
	Items []WishlistItem
}

// RatingDetailLoadedMsg is sent when a rating detail is loaded.
type RatingDetailLoadedMsg struct {
	Rating Rating
}

// WishlistDetailLoadedMsg is sent when a wishlist item detail is loaded.
type WishlistDetailLoadedMsg struct {
	Item WishlistItem
}

// RatingSavedMsg is sent when a new rating has been persisted.
// PromotedFrom carries the id of the wishlist item the rating was
// promoted from, or "" for a direct rating.
type RatingSavedMsg struct {
	Rating       Rating
	PromotedFrom string
}

// WishlistSavedMsg is sent when a new wishlist item has been persisted.
type WishlistSavedMsg struct {
	Item WishlistItem
}

// RatingDeletedMsg is sent after a rating row is removed.
type RatingDeletedMsg struct {
	ID string
}

// WishlistDeletedMsg is sent after a wishlist row is removed.
type WishlistDeletedMsg struct {
	ID string
}

// FavoriteToggledMsg is sent after a rating's favorite flag flips.
type FavoriteToggledMsg struct {
	ID          string
	IsFavorited bool
}

// VisitedToggledMsg is sent after a wishlist item's visited flag flips.
type VisitedToggledMsg struct {
	ID         string
	HasVisited bool
}

// CommentsSavedMsg is sent after a wishlist item's notes are updated.
type CommentsSavedMsg struct {
	ID       string
	Comments string
}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// Screen represents different app screens.
type Screen int

const (
	ScreenRatings Screen = iota
	ScreenFavorites
	ScreenWishlist
	ScreenStats
	ScreenRatingDetail
	ScreenWishlistDetail
	ScreenRatingForm
	ScreenWishlistForm
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)

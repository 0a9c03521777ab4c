package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"cortado/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func sampleRating(id, name string) model.Rating {
	return model.Rating{
		ID:            id,
		Name:          name,
		Location:      &model.Coordinate{Latitude: 33.7881, Longitude: -117.8519},
		WhenVisited:   time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		StudyVibe:     8,
		FoodOrDrink:   7,
		Availability:  4,
		NoiseLevel:    model.NoiseQuiet,
		OverallRating: 7.6,
		Comments:      "good outlets",
	}
}

func TestRatingRoundTrip(t *testing.T) {
	database := openTestDB(t)

	want := sampleRating("r1", "Contra Coffee")
	require.NoError(t, InsertRating(database, want))

	got, err := GetRating(database, "r1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	require.NotNil(t, got.Location)
	assert.Equal(t, *want.Location, *got.Location)
	assert.True(t, want.WhenVisited.Equal(got.WhenVisited))
	assert.False(t, got.IsFavorited)
	assert.Equal(t, want.StudyVibe, got.StudyVibe)
	assert.Equal(t, want.FoodOrDrink, got.FoodOrDrink)
	assert.Equal(t, want.Availability, got.Availability)
	assert.Equal(t, model.NoiseQuiet, got.NoiseLevel)
	assert.InDelta(t, want.OverallRating, got.OverallRating, 1e-9)
	assert.Equal(t, want.Comments, got.Comments)
}

func TestRatingNilLocationAndEmptyComments(t *testing.T) {
	database := openTestDB(t)

	r := sampleRating("r1", "Mystery Spot")
	r.Location = nil
	r.Comments = ""
	require.NoError(t, InsertRating(database, r))

	got, err := GetRating(database, "r1")
	require.NoError(t, err)
	assert.Nil(t, got.Location)
	assert.Equal(t, "", got.Comments)
}

func TestListRatingsInsertionOrder(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertRating(database, sampleRating("z", "Zinc Cafe")))
	require.NoError(t, InsertRating(database, sampleRating("a", "Alta Coffee")))
	require.NoError(t, InsertRating(database, sampleRating("m", "MoonGoat")))

	got, err := ListRatings(database)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "z", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "m", got[2].ID)
}

func TestDeleteRatingIdempotent(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertRating(database, sampleRating("r1", "Contra Coffee")))
	require.NoError(t, DeleteRating(database, "r1"))

	// Absent and repeated deletes are no-ops, not errors.
	assert.NoError(t, DeleteRating(database, "r1"))
	assert.NoError(t, DeleteRating(database, "never-existed"))

	got, err := ListRatings(database)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSetFavorited(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertRating(database, sampleRating("r1", "Contra Coffee")))

	require.NoError(t, SetFavorited(database, "r1", true))
	got, err := GetRating(database, "r1")
	require.NoError(t, err)
	assert.True(t, got.IsFavorited)

	require.NoError(t, SetFavorited(database, "r1", false))
	got, err = GetRating(database, "r1")
	require.NoError(t, err)
	assert.False(t, got.IsFavorited)
}

func TestNoiseLevelFallback(t *testing.T) {
	database := openTestDB(t)

	r := sampleRating("r1", "Contra Coffee")
	require.NoError(t, InsertRating(database, r))

	// An out-of-range ordinal written by an older build reads back as
	// the normal level instead of failing.
	_, err := database.Exec("UPDATE ratings SET noise_level = 9 WHERE id = ?", "r1")
	require.NoError(t, err)

	got, err := GetRating(database, "r1")
	require.NoError(t, err)
	assert.Equal(t, model.NoiseNormal, got.NoiseLevel)
}

func sampleWishlistItem(id, name string) model.WishlistItem {
	return model.WishlistItem{
		ID:       id,
		Name:     name,
		Location: &model.Coordinate{Latitude: 33.75, Longitude: -117.85},
		Comments: "try the cortado",
	}
}

func TestWishlistRoundTrip(t *testing.T) {
	database := openTestDB(t)

	want := sampleWishlistItem("w1", "Hidden House")
	require.NoError(t, InsertWishlistItem(database, want))

	got, err := GetWishlistItem(database, "w1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	require.NotNil(t, got.Location)
	assert.Equal(t, *want.Location, *got.Location)
	assert.False(t, got.HasVisited)
	assert.Equal(t, want.Comments, got.Comments)
}

func TestListWishlistInsertionOrder(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertWishlistItem(database, sampleWishlistItem("b", "Bear Coast")))
	require.NoError(t, InsertWishlistItem(database, sampleWishlistItem("a", "Alta Coffee")))

	got, err := ListWishlist(database)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestDeleteWishlistItemIdempotent(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertWishlistItem(database, sampleWishlistItem("w1", "Hidden House")))
	require.NoError(t, DeleteWishlistItem(database, "w1"))
	assert.NoError(t, DeleteWishlistItem(database, "w1"))
	assert.NoError(t, DeleteWishlistItem(database, "ghost"))
}

func TestSetVisited(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertWishlistItem(database, sampleWishlistItem("w1", "Hidden House")))

	require.NoError(t, SetVisited(database, "w1", true))
	got, err := GetWishlistItem(database, "w1")
	require.NoError(t, err)
	assert.True(t, got.HasVisited)

	require.NoError(t, SetVisited(database, "w1", false))
	got, err = GetWishlistItem(database, "w1")
	require.NoError(t, err)
	assert.False(t, got.HasVisited)
}

func TestUpdateWishlistComments(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertWishlistItem(database, sampleWishlistItem("w1", "Hidden House")))

	require.NoError(t, UpdateWishlistComments(database, "w1", "open til midnight"))
	got, err := GetWishlistItem(database, "w1")
	require.NoError(t, err)
	assert.Equal(t, "open til midnight", got.Comments)

	// Clearing stores NULL, which reads back empty.
	require.NoError(t, UpdateWishlistComments(database, "w1", ""))
	got, err = GetWishlistItem(database, "w1")
	require.NoError(t, err)
	assert.Equal(t, "", got.Comments)
}

func TestGetRatingMalformedTimestamp(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, InsertRating(database, sampleRating("r1", "Contra Coffee")))

	_, err := database.Exec("UPDATE ratings SET when_visited = 'not-a-time' WHERE id = ?", "r1")
	require.NoError(t, err)

	_, err = GetRating(database, "r1")
	assert.ErrorContains(t, err, "when_visited")
}

func TestGetRatingMissing(t *testing.T) {
	database := openTestDB(t)
	_, err := GetRating(database, "nope")
	assert.Error(t, err)
}

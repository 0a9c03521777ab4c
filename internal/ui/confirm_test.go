package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteConfirmStartsIdle(t *testing.T) {
	var c DeleteConfirm
	assert.False(t, c.Pending())

	_, _, ok := c.Confirm()
	assert.False(t, ok)
}

func TestDeleteConfirmRequestThenCancel(t *testing.T) {
	var c DeleteConfirm
	c.Request(TargetRating, "r1", "Contra Coffee")
	assert.True(t, c.Pending())

	kind, id := c.Target()
	assert.Equal(t, TargetRating, kind)
	assert.Equal(t, "r1", id)

	c.Cancel()
	assert.False(t, c.Pending())

	// Cancel must not hand out a target afterwards.
	_, _, ok := c.Confirm()
	assert.False(t, ok)
}

func TestDeleteConfirmRequestThenConfirm(t *testing.T) {
	var c DeleteConfirm
	c.Request(TargetWishlist, "w1", "Philz")

	kind, id, ok := c.Confirm()
	assert.True(t, ok)
	assert.Equal(t, TargetWishlist, kind)
	assert.Equal(t, "w1", id)
	assert.False(t, c.Pending())
}

func TestDeleteConfirmLastRequestWins(t *testing.T) {
	var c DeleteConfirm
	c.Request(TargetRating, "r1", "Contra Coffee")
	c.Request(TargetRating, "r2", "Long Dog Coffee")

	kind, id, ok := c.Confirm()
	assert.True(t, ok)
	assert.Equal(t, TargetRating, kind)
	assert.Equal(t, "r2", id)
}

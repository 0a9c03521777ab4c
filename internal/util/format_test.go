package util

import (
	"testing"
	"time"

	"cortado/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "8.4/10", FormatScore(8.4))
	assert.Equal(t, "0.0/10", FormatScore(0))
	assert.Equal(t, "6.8/10", FormatScore(6.799999999))
	assert.Equal(t, "6.8", FormatScoreBare(6.799999999))
}

func TestFormatVisited(t *testing.T) {
	assert.Equal(t, "Unknown", FormatVisited(time.Time{}))

	now := time.Now()
	assert.Equal(t, "Today", FormatVisited(now))
	assert.Equal(t, "Yesterday", FormatVisited(now.AddDate(0, 0, -1)))
	assert.Equal(t, "3d ago", FormatVisited(now.AddDate(0, 0, -3)))

	lastYear := time.Date(now.Year()-1, time.March, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, lastYear.Format("Jan 02 '06"), FormatVisited(lastYear))
}

func TestFormatCoordinate(t *testing.T) {
	assert.Equal(t, "—", FormatCoordinate(nil))
	c := &model.Coordinate{Latitude: 33.7881, Longitude: -117.8519}
	assert.Equal(t, "33.7881, -117.8519", FormatCoordinate(c))
}

func TestFormatComments(t *testing.T) {
	assert.Equal(t, "—", FormatComments(""))
	assert.Equal(t, "—", FormatComments("   "))
	assert.Equal(t, "good wifi", FormatComments("good wifi"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exactly10!", TruncateString("exactly10!", 10))
	assert.Equal(t, "this is...", TruncateString("this is too long", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

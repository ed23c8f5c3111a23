package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMillisRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	assert.True(t, at.Equal(FromMillis(ToMillis(at))))
	assert.Equal(t, int64(0), ToMillis(time.Time{}))
	assert.True(t, FromMillis(0).IsZero())
	assert.Nil(t, OptionalToMillis(nil))
	assert.Nil(t, OptionalFromMillis(nil))
}

func TestAddDays(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, at.Add(7*Day), AddDays(at, 7))
	assert.Equal(t, at.Add(36*time.Hour), AddDays(at, 1.5))
}

func TestHumanizeSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Hour, "5 hours ago"},
		{2*Day + time.Hour, "2 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanizeSince(now.Add(-tt.ago), now))
	}
}

// Package biztime provides time helpers shared by the domain and storage
// layers. All storage and transport use UTC; the campus timezone is only
// used when rendering dates for people.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no campus timezone is configured.
const DefaultTimezone = "UTC"

// Day is a calendar day expressed as a fixed duration.
const Day = 24 * time.Hour

var (
	campusLocation     *time.Location
	campusLocationOnce sync.Once
	initErr            error
)

// Init initializes the campus timezone. Should be called once at startup.
func Init(tz string) error {
	campusLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		campusLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the campus timezone, initializing it with the default
// when Init was never called.
func Location() *time.Location {
	if campusLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return campusLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// AddDays returns t shifted by n days, where n may be fractional.
func AddDays(t time.Time, n float64) time.Time {
	return t.Add(time.Duration(n * float64(Day)))
}

// FormatInCampusTimezone formats a UTC time as a string in the campus timezone.
func FormatInCampusTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// ToMillis converts t to unix milliseconds; the zero time maps to 0.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromMillis converts unix milliseconds to a UTC time; 0 maps to the zero time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// OptionalToMillis converts an optional time to optional unix milliseconds.
func OptionalToMillis(t *time.Time) *int64 {
	if t == nil || t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// OptionalFromMillis converts optional unix milliseconds to an optional UTC time.
func OptionalFromMillis(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

// HumanizeSince renders how long ago t was relative to now, for messages
// such as "closed 2 days ago".
func HumanizeSince(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < Day:
		return plural(int(d/time.Hour), "hour") + " ago"
	default:
		return plural(int(d/Day), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

package dates

import "time"

// formats lists the recognized date layouts in precedence order. The first
// layout that parses wins, so the day-first European format is tried before
// the month-first US one.
var formats = []string{
	"02-01-2006 15:04",    // DD-MM-YYYY HH:MM
	"2006-01-02 15:04:05", // YYYY-MM-DD HH:MM:SS
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02", // YYYY-MM-DD
	"01/02/2006", // MM/DD/YYYY
}

// Parse normalizes a raw date string from the dataset into an instant in the
// local timezone. It returns ok=false for empty input and for input matching
// none of the recognized formats; callers are expected to skip such records
// rather than abort. Invalid calendar values (month 13, day 32) fail to
// parse — they do not wrap.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range formats {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Range is an inclusive [Start, End] date bound. A zero Start or End means
// unbounded on that side; the zero Range matches everything.
type Range struct {
	Start time.Time
	End   time.Time
}

// Unbounded reports whether the range constrains neither side.
func (r Range) Unbounded() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls within the range, bounds inclusive.
func (r Range) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// InRange combines Parse's two results with a range check: a date that
// failed to parse is never in range.
func InRange(t time.Time, ok bool, r Range) bool {
	if !ok {
		return false
	}
	return r.Contains(t)
}

// Day returns the calendar-day bucket key for t, e.g. "2024-01-31".
// Day keys sort lexicographically in chronological order.
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}

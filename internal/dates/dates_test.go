package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DayFirstWithTime(t *testing.T) {
	got, ok := Parse("02-03-2024 10:30")
	require.True(t, ok)
	// Day-first: 2 March, not 3 February.
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 2, got.Day())
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParse_ISOWithSeconds(t *testing.T) {
	got, ok := Parse("2024-03-02 10:30:45")
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, 45, got.Second())
}

func TestParse_RFC3339(t *testing.T) {
	got, ok := Parse("2024-03-02T10:30:45Z")
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())

	got, ok = Parse("2025-04-04T15:43:49.548Z")
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())
}

func TestParse_DateOnly(t *testing.T) {
	got, ok := Parse("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", Day(got))
}

func TestParse_USSlashes(t *testing.T) {
	got, ok := Parse("03/02/2024")
	require.True(t, ok)
	// Month-first: 2 March.
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 2, got.Day())
}

func TestParse_Empty(t *testing.T) {
	_, ok := Parse("")
	assert.False(t, ok)
}

func TestParse_Garbage(t *testing.T) {
	_, ok := Parse("not-a-date")
	assert.False(t, ok)
}

func TestParse_InvalidCalendarValuesDoNotWrap(t *testing.T) {
	_, ok := Parse("2024-13-01")
	assert.False(t, ok)

	_, ok = Parse("2024-02-30")
	assert.False(t, ok)
}

func TestRange_ZeroValueIsUnbounded(t *testing.T) {
	var r Range
	assert.True(t, r.Unbounded())
	assert.True(t, r.Contains(time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, r.Contains(time.Date(2100, 1, 1, 0, 0, 0, 0, time.Local)))
}

func TestRange_BoundsAreInclusive(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.Local)
	r := Range{Start: start, End: end}

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.True(t, r.Contains(start.AddDate(0, 0, 5)))
	assert.False(t, r.Contains(start.Add(-time.Second)))
	assert.False(t, r.Contains(end.Add(time.Second)))
}

func TestRange_HalfOpenSides(t *testing.T) {
	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	late := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)

	onlyStart := Range{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)}
	assert.False(t, onlyStart.Contains(early))
	assert.True(t, onlyStart.Contains(late))

	onlyEnd := Range{End: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)}
	assert.True(t, onlyEnd.Contains(early))
	assert.False(t, onlyEnd.Contains(late))
}

func TestInRange_UnparsedDateIsNeverInRange(t *testing.T) {
	tm, ok := Parse("garbage")
	assert.False(t, InRange(tm, ok, Range{}))
}

func TestDay_SortsChronologically(t *testing.T) {
	a, _ := Parse("2024-01-09")
	b, _ := Parse("2024-01-10")
	assert.Less(t, Day(a), Day(b))
}

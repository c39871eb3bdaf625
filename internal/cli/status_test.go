package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instalens/instalens/internal/dataset"
)

func TestStatusHumanOutput(t *testing.T) {
	c := &StatusCommand{globals: &GlobalFlags{}, version: "0.1.0-test"}

	output := captureOutput(t, func() {
		err := c.executeWithDataset(fixtureDataset())
		assert.NoError(t, err)
	})

	assert.Contains(t, output, "Instalens Dataset Status")
	assert.Contains(t, output, "0.1.0-test")
	assert.Contains(t, output, "Users:         2")
	assert.Contains(t, output, "Photos:        2")
	assert.Contains(t, output, "Oldest:        2024-01-01")
	assert.Contains(t, output, "Newest:        2024-02-05")
	assert.Contains(t, output, "Top Tags:")
	assert.Contains(t, output, "sunset")
}

func TestStatusJSONOutput(t *testing.T) {
	c := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "0.1.0-test"}

	output := captureOutput(t, func() {
		err := c.executeWithDataset(fixtureDataset())
		assert.NoError(t, err)
	})

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(output), &got))

	assert.Equal(t, "0.1.0-test", got.Version)
	assert.Equal(t, 2, got.Users)
	assert.Equal(t, 2, got.Tags)
	assert.Equal(t, 2, got.Photos)
	assert.Equal(t, 2, got.PhotoTags)
	assert.Equal(t, 2, got.Likes)
	assert.Equal(t, 1, got.Follows)
	assert.Equal(t, 1, got.Comments)
	assert.Equal(t, "2024-01-01", got.Oldest)
	assert.Equal(t, "2024-02-05", got.Newest)
	require.NotEmpty(t, got.TopTags)
	assert.Equal(t, 1, got.TopTags[0].Count)
}

func TestStatusEmptyDataset(t *testing.T) {
	c := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "test"}

	output := captureOutput(t, func() {
		err := c.executeWithDataset(&dataset.Dataset{})
		assert.NoError(t, err)
	})

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(output), &got))

	assert.Zero(t, got.Users)
	assert.Empty(t, got.Oldest)
	assert.Empty(t, got.Newest)
}

func TestDateCoverageSkipsUnparseable(t *testing.T) {
	ds := &dataset.Dataset{
		Users: []dataset.User{
			{ID: "u1", Username: "a", CreatedAt: "not-a-date"},
			{ID: "u2", Username: "b", CreatedAt: "2024-03-01"},
		},
	}

	oldest, newest := dateCoverage(ds)

	assert.Equal(t, "2024-03-01", oldest.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", newest.Format("2006-01-02"))
}

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture writes the seven CSV files into a temp dir and returns it.
func writeFixture(t *testing.T, contents map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"users.csv":      "id,username,created_at\n",
		"tags.csv":       "id,tag_name,created_at\n",
		"photos.csv":     "id,user_id,image_url,created_dat\n",
		"photo_tags.csv": "photo_id,tag_id\n",
		"likes.csv":      "user_id,photo_id,created_at\n",
		"follows.csv":    "follower_id,followee_id,created_at\n",
		"comments.csv":   "id,user_id,photo_id,comment_text,created_at\n",
	}
	for name, header := range files {
		body := header
		if extra, ok := contents[name]; ok {
			body += extra
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return dir
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestLoad_FullDataset(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"users.csv":      "1,alice,2024-01-01\n2,bob,2024-01-02\n",
		"tags.csv":       "t1,sunset,2024-01-01\n",
		"photos.csv":     "p1,1,https://img/p1.jpg,2024-01-03\n",
		"photo_tags.csv": "p1,t1\n",
		"likes.csv":      "2,p1,2024-01-04\n",
		"follows.csv":    "2,1,2024-01-05\n",
		"comments.csv":   "c1,2,p1,nice shot,2024-01-06\n",
	})

	ds, err := Load(dir, testLogger())
	require.NoError(t, err)

	assert.Len(t, ds.Users, 2)
	assert.Len(t, ds.Tags, 1)
	assert.Len(t, ds.Photos, 1)
	assert.Len(t, ds.PhotoTags, 1)
	assert.Len(t, ds.Likes, 1)
	assert.Len(t, ds.Follows, 1)
	assert.Len(t, ds.Comments, 1)

	assert.Equal(t, "alice", ds.Users[0].Username)
	assert.Equal(t, "2024-01-03", ds.Photos[0].CreatedDat)
	assert.Equal(t, "nice shot", ds.Comments[0].CommentText)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	dir := writeFixture(t, nil)
	require.NoError(t, os.Remove(filepath.Join(dir, "likes.csv")))

	_, err := Load(dir, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "likes.csv")
}

func TestLoad_RowsMissingIdentityFieldsAreDropped(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"users.csv": "1,alice,2024-01-01\n,ghost,2024-01-02\n2,,2024-01-03\n",
	})

	ds, err := Load(dir, testLogger())
	require.NoError(t, err)
	require.Len(t, ds.Users, 1)
	assert.Equal(t, "alice", ds.Users[0].Username)
}

func TestLoad_BadDatesAreKeptVerbatim(t *testing.T) {
	// Unparseable dates must survive loading so date-bounded aggregations
	// can exclude them; the loader must not rewrite or drop them.
	dir := writeFixture(t, map[string]string{
		"photos.csv": "p1,1,https://img/p1.jpg,not-a-date\n",
	})

	ds, err := Load(dir, testLogger())
	require.NoError(t, err)
	require.Len(t, ds.Photos, 1)
	assert.Equal(t, "not-a-date", ds.Photos[0].CreatedDat)
}

func TestLoad_RaggedRowsReadMissingFieldsAsEmpty(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"users.csv": "1,alice\n",
	})

	ds, err := Load(dir, testLogger())
	require.NoError(t, err)
	require.Len(t, ds.Users, 1)
	assert.Equal(t, "", ds.Users[0].CreatedAt)
}

func TestLoad_EmptyFilesYieldEmptySlices(t *testing.T) {
	dir := writeFixture(t, nil)

	ds, err := Load(dir, testLogger())
	require.NoError(t, err)
	assert.Empty(t, ds.Users)
	assert.Empty(t, ds.Likes)
}

func TestLoad_ValuesAreTrimmed(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"tags.csv": "t1, sunset ,2024-01-01\n",
	})

	ds, err := Load(dir, testLogger())
	require.NoError(t, err)
	require.Len(t, ds.Tags, 1)
	assert.Equal(t, "sunset", ds.Tags[0].TagName)
}

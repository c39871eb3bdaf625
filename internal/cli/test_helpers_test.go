package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/instalens/instalens/internal/dataset"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// fixtureDataset returns a small in-memory dataset shared by command tests.
func fixtureDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Users: []dataset.User{
			{ID: "u1", Username: "alice", CreatedAt: "2024-01-01"},
			{ID: "u2", Username: "bob", CreatedAt: "2024-02-01"},
		},
		Tags: []dataset.Tag{
			{ID: "t1", TagName: "sunset", CreatedAt: "2024-01-01"},
			{ID: "t2", TagName: "beach", CreatedAt: "2024-01-01"},
		},
		Photos: []dataset.Photo{
			{ID: "p1", UserID: "u1", ImageURL: "https://img/p1.jpg", CreatedDat: "2024-01-05"},
			{ID: "p2", UserID: "u2", ImageURL: "https://img/p2.jpg", CreatedDat: "2024-02-05"},
		},
		PhotoTags: []dataset.PhotoTag{
			{PhotoID: "p1", TagID: "t1"},
			{PhotoID: "p2", TagID: "t2"},
		},
		Likes: []dataset.Like{
			{UserID: "u2", PhotoID: "p1", CreatedAt: "2024-01-06"},
			{UserID: "u1", PhotoID: "p1", CreatedAt: "2024-01-07"},
		},
		Follows: []dataset.Follow{
			{FollowerID: "u2", FolloweeID: "u1", CreatedAt: "2024-01-08"},
		},
		Comments: []dataset.Comment{
			{ID: "c1", UserID: "u2", PhotoID: "p1", CommentText: "great shot", CreatedAt: "2024-01-09"},
		},
	}
}

package search

import (
	"strings"

	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// CommentsByUser returns comments written by the given user id. An empty id
// is the identity.
func CommentsByUser(comments []dataset.Comment, userID string) []dataset.Comment {
	if userID == "" {
		return comments
	}
	var out []dataset.Comment
	for _, c := range comments {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// CommentsByPhoto returns comments on the given photo id. An empty id is
// the identity.
func CommentsByPhoto(comments []dataset.Comment, photoID string) []dataset.Comment {
	if photoID == "" {
		return comments
	}
	var out []dataset.Comment
	for _, c := range comments {
		if c.PhotoID == photoID {
			out = append(out, c)
		}
	}
	return out
}

// CommentsByKeyword returns comments whose text contains keyword,
// case-insensitive. An empty keyword is the identity.
func CommentsByKeyword(comments []dataset.Comment, keyword string) []dataset.Comment {
	if keyword == "" {
		return comments
	}
	k := strings.ToLower(keyword)
	var out []dataset.Comment
	for _, c := range comments {
		if strings.Contains(strings.ToLower(c.CommentText), k) {
			out = append(out, c)
		}
	}
	return out
}

// CommentsByDateRange returns comments whose date parses and falls within
// r. The unbounded range is the identity.
func CommentsByDateRange(comments []dataset.Comment, r dates.Range) []dataset.Comment {
	if r.Unbounded() {
		return comments
	}
	var out []dataset.Comment
	for _, c := range comments {
		t, ok := dates.Parse(c.CreatedAt)
		if dates.InRange(t, ok, r) {
			out = append(out, c)
		}
	}
	return out
}

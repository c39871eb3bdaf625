package search

import (
	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// Followers returns the ids of users following userID. An empty id yields
// an empty result.
func Followers(follows []dataset.Follow, userID string) []string {
	if userID == "" {
		return nil
	}
	var out []string
	for _, f := range follows {
		if f.FolloweeID == userID {
			out = append(out, f.FollowerID)
		}
	}
	return out
}

// Following returns the ids of users that userID follows. An empty id
// yields an empty result.
func Following(follows []dataset.Follow, userID string) []string {
	if userID == "" {
		return nil
	}
	var out []string
	for _, f := range follows {
		if f.FollowerID == userID {
			out = append(out, f.FolloweeID)
		}
	}
	return out
}

// FollowsInDateRange returns follow events whose date parses and falls
// within r. The unbounded range is the identity.
func FollowsInDateRange(follows []dataset.Follow, r dates.Range) []dataset.Follow {
	if r.Unbounded() {
		return follows
	}
	var out []dataset.Follow
	for _, f := range follows {
		t, ok := dates.Parse(f.CreatedAt)
		if dates.InRange(t, ok, r) {
			out = append(out, f)
		}
	}
	return out
}

// NewFollowerCounts tallies followers gained per followee id within r.
// Duplicate edges count as separate events.
func NewFollowerCounts(follows []dataset.Follow, r dates.Range) map[string]int {
	counts := make(map[string]int)
	for _, f := range FollowsInDateRange(follows, r) {
		counts[f.FolloweeID]++
	}
	return counts
}

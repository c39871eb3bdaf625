// Package search holds the predicate filters behind the ad-hoc search
// views. Every filter is pure: an empty criterion returns the input slice
// unchanged (same elements, same order), and filters compose with AND
// semantics by chaining calls. No filter ever returns an error; "not found"
// resolves to an empty result.
package search

import (
	"sort"
	"strings"

	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// UsersByUsername returns users whose username contains query,
// case-insensitive, sorted by username. An empty query is the identity.
func UsersByUsername(users []dataset.User, query string) []dataset.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)

	var out []dataset.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), q) {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Username) < strings.ToLower(out[j].Username)
	})
	return out
}

// UsersByDateRange returns users whose account-creation date parses and
// falls within r. The unbounded range is the identity; users with
// unparseable dates are excluded from any bounded result.
func UsersByDateRange(users []dataset.User, r dates.Range) []dataset.User {
	if r.Unbounded() {
		return users
	}
	var out []dataset.User
	for _, u := range users {
		t, ok := dates.Parse(u.CreatedAt)
		if dates.InRange(t, ok, r) {
			out = append(out, u)
		}
	}
	return out
}

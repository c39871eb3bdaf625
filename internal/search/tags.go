package search

import (
	"sort"
	"strings"

	"github.com/instalens/instalens/internal/dataset"
)

// TagsByName returns tags whose name contains query, case-insensitive. An
// empty query is the identity.
func TagsByName(tags []dataset.Tag, query string) []dataset.Tag {
	if query == "" {
		return tags
	}
	q := strings.ToLower(query)
	var out []dataset.Tag
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t.TagName), q) {
			out = append(out, t)
		}
	}
	return out
}

// TagsByPopularity returns tags used by at least minCount photo
// associations, sorted descending by use count with stable ties.
func TagsByPopularity(tags []dataset.Tag, photoTags []dataset.PhotoTag, minCount int) []dataset.Tag {
	counts := make(map[string]int)
	for _, pt := range photoTags {
		counts[pt.TagID]++
	}

	var out []dataset.Tag
	for _, t := range tags {
		if counts[t.ID] >= minCount {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return counts[out[i].ID] > counts[out[j].ID]
	})
	return out
}

package search

import (
	"strings"

	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// PhotosByUser returns photos posted by the given user id. An empty id is
// the identity.
func PhotosByUser(photos []dataset.Photo, userID string) []dataset.Photo {
	if userID == "" {
		return photos
	}
	var out []dataset.Photo
	for _, p := range photos {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// PhotosByDateRange returns photos whose creation date parses and falls
// within r. The unbounded range is the identity.
func PhotosByDateRange(photos []dataset.Photo, r dates.Range) []dataset.Photo {
	if r.Unbounded() {
		return photos
	}
	var out []dataset.Photo
	for _, p := range photos {
		t, ok := dates.Parse(p.CreatedDat)
		if dates.InRange(t, ok, r) {
			out = append(out, p)
		}
	}
	return out
}

// PhotosByTags returns photos carrying at least one of the named tags,
// matched case-insensitively. An empty name list is the identity; a list
// that resolves to no known tag yields an empty result, not an error.
func PhotosByTags(photos []dataset.Photo, photoTags []dataset.PhotoTag, tags []dataset.Tag, tagNames []string) []dataset.Photo {
	if len(tagNames) == 0 {
		return photos
	}

	wanted := make(map[string]bool, len(tagNames))
	for _, n := range tagNames {
		wanted[strings.ToLower(n)] = true
	}

	tagIDs := make(map[string]bool)
	for _, t := range tags {
		if wanted[strings.ToLower(t.TagName)] {
			tagIDs[t.ID] = true
		}
	}
	if len(tagIDs) == 0 {
		return []dataset.Photo{}
	}

	photoIDs := make(map[string]bool)
	for _, pt := range photoTags {
		if tagIDs[pt.TagID] {
			photoIDs[pt.PhotoID] = true
		}
	}

	var out []dataset.Photo
	for _, p := range photos {
		if photoIDs[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// PhotosWithMinLikes returns photos that received at least minLikes like
// events. Like counts are tallied over the raw like slice first.
func PhotosWithMinLikes(photos []dataset.Photo, likes []dataset.Like, minLikes int) []dataset.Photo {
	counts := make(map[string]int)
	for _, l := range likes {
		counts[l.PhotoID]++
	}

	var out []dataset.Photo
	for _, p := range photos {
		if counts[p.ID] >= minLikes {
			out = append(out, p)
		}
	}
	return out
}

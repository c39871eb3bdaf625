package analytics

import (
	"sort"

	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// tagNamesByID builds the tag id -> tag name lookup.
func tagNamesByID(tags []dataset.Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[t.ID] = t.TagName
	}
	return m
}

// qualifyingPhotoIDs returns the set of photo ids whose creation date parses
// and falls inside r. Photos with unparseable dates are excluded, but their
// tag associations never raise — they simply count toward nothing.
func qualifyingPhotoIDs(photos []dataset.Photo, r dates.Range) map[string]bool {
	ids := make(map[string]bool)
	for _, p := range photos {
		if inRange(p.CreatedDat, r) {
			ids[p.ID] = true
		}
	}
	return ids
}

// MostUsedTags ranks every tag by how many qualifying photos carry it.
// Duplicate (photo, tag) associations count as separate uses.
func MostUsedTags(tags []dataset.Tag, photoTags []dataset.PhotoTag, photos []dataset.Photo, r dates.Range) []TagCount {
	valid := qualifyingPhotoIDs(photos, r)

	counts := make(map[string]int)
	for _, pt := range photoTags {
		if valid[pt.PhotoID] {
			counts[pt.TagID]++
		}
	}

	out := make([]TagCount, len(tags))
	for i, t := range tags {
		out[i] = TagCount{Name: t.TagName, Count: counts[t.ID]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TrendingTagsOverTime counts tag usage per calendar day, keyed by the day
// the tagged photo was created. Each row's map is sparse: only tags that
// occurred that day are present. Associations whose photo or tag id dangles
// contribute nothing. Picking which tags to highlight is the caller's
// concern; every tag seen on a qualifying day is reported.
func TrendingTagsOverTime(tags []dataset.Tag, photoTags []dataset.PhotoTag, photos []dataset.Photo, r dates.Range) []TagDay {
	photoDay := make(map[string]string, len(photos))
	for _, p := range photos {
		t, ok := dates.Parse(p.CreatedDat)
		if !dates.InRange(t, ok, r) {
			continue
		}
		photoDay[p.ID] = dates.Day(t)
	}

	names := tagNamesByID(tags)

	byDay := make(map[string]map[string]int)
	for _, pt := range photoTags {
		day, ok := photoDay[pt.PhotoID]
		if !ok {
			continue
		}
		name, ok := names[pt.TagID]
		if !ok {
			continue
		}
		if byDay[day] == nil {
			byDay[day] = make(map[string]int)
		}
		byDay[day][name]++
	}

	out := make([]TagDay, 0, len(byDay))
	for day, counts := range byDay {
		out = append(out, TagDay{Date: day, TagCounts: counts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// UserTagPreferences builds, for each user, the tag-name -> usage-count map
// across the user's qualifying photos. Users whose map would be empty are
// excluded. Results sort descending by the user's total tag usage, stable
// on ties.
func UserTagPreferences(users []dataset.User, photos []dataset.Photo, photoTags []dataset.PhotoTag, tags []dataset.Tag, r dates.Range) []UserTagPreference {
	photoOwner := make(map[string]string)
	for _, p := range photos {
		if inRange(p.CreatedDat, r) {
			photoOwner[p.ID] = p.UserID
		}
	}

	names := tagNamesByID(tags)

	prefs := make(map[string]map[string]int, len(users))
	for _, u := range users {
		prefs[u.ID] = make(map[string]int)
	}

	for _, pt := range photoTags {
		owner, ok := photoOwner[pt.PhotoID]
		if !ok {
			continue
		}
		name, ok := names[pt.TagID]
		if !ok {
			continue
		}
		if p, ok := prefs[owner]; ok {
			p[name]++
		}
	}

	out := make([]UserTagPreference, 0, len(users))
	for _, u := range users {
		if len(prefs[u.ID]) == 0 {
			continue
		}
		out = append(out, UserTagPreference{Username: u.Username, TagPreferences: prefs[u.ID]})
	}

	total := func(m map[string]int) int {
		n := 0
		for _, c := range m {
			n += c
		}
		return n
	}
	sort.SliceStable(out, func(i, j int) bool {
		return total(out[i].TagPreferences) > total(out[j].TagPreferences)
	})
	return out
}

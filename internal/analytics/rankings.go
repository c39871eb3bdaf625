package analytics

import (
	"sort"

	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// inRange is the common "parseable and within bounds" check on a raw date.
func inRange(raw string, r dates.Range) bool {
	t, ok := dates.Parse(raw)
	return dates.InRange(t, ok, r)
}

// usernamesByID builds the id -> username lookup rebuilt per call; there is
// no shared cache between aggregations.
func usernamesByID(users []dataset.User) map[string]string {
	m := make(map[string]string, len(users))
	for _, u := range users {
		m[u.ID] = u.Username
	}
	return m
}

// usernameOrUnknown resolves a user id, substituting UnknownUser for
// dangling references.
func usernameOrUnknown(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return UnknownUser
}

// MostActiveUsers ranks every user by posts + likes given + comments
// written inside the range. Events attributed to a user id that is not in
// users count for no one.
func MostActiveUsers(users []dataset.User, photos []dataset.Photo, likes []dataset.Like, comments []dataset.Comment, r dates.Range) []UserActivity {
	idx := make(map[string]int, len(users))
	out := make([]UserActivity, len(users))
	for i, u := range users {
		idx[u.ID] = i
		out[i] = UserActivity{Username: u.Username}
	}

	for _, p := range photos {
		if !inRange(p.CreatedDat, r) {
			continue
		}
		if i, ok := idx[p.UserID]; ok {
			out[i].Posts++
		}
	}
	for _, l := range likes {
		if !inRange(l.CreatedAt, r) {
			continue
		}
		if i, ok := idx[l.UserID]; ok {
			out[i].Likes++
		}
	}
	for _, c := range comments {
		if !inRange(c.CreatedAt, r) {
			continue
		}
		if i, ok := idx[c.UserID]; ok {
			out[i].Comments++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Posts+out[i].Likes+out[i].Comments > out[j].Posts+out[j].Likes+out[j].Comments
	})
	return out
}

// MostEngagingUsers ranks every user by likes + comments received on their
// own photos inside the range. Each event is attributed to the photo's
// owner, not the actor; an event on a photo that does not exist contributes
// to no one.
func MostEngagingUsers(users []dataset.User, photos []dataset.Photo, likes []dataset.Like, comments []dataset.Comment, r dates.Range) []UserEngagement {
	owner := make(map[string]string, len(photos))
	for _, p := range photos {
		owner[p.ID] = p.UserID
	}

	idx := make(map[string]int, len(users))
	out := make([]UserEngagement, len(users))
	for i, u := range users {
		idx[u.ID] = i
		out[i] = UserEngagement{Username: u.Username}
	}

	for _, l := range likes {
		if !inRange(l.CreatedAt, r) {
			continue
		}
		if i, ok := idx[owner[l.PhotoID]]; ok {
			out[i].Likes++
		}
	}
	for _, c := range comments {
		if !inRange(c.CreatedAt, r) {
			continue
		}
		if i, ok := idx[owner[c.PhotoID]]; ok {
			out[i].Comments++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likes+out[i].Comments > out[j].Likes+out[j].Comments
	})
	return out
}

// MostFollowedUsers ranks every user by followers gained inside the range.
func MostFollowedUsers(users []dataset.User, follows []dataset.Follow, r dates.Range) []UserFollowers {
	counts := make(map[string]int)
	for _, f := range follows {
		if inRange(f.CreatedAt, r) {
			counts[f.FolloweeID]++
		}
	}

	out := make([]UserFollowers, len(users))
	for i, u := range users {
		out[i] = UserFollowers{Username: u.Username, Followers: counts[u.ID]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Followers > out[j].Followers
	})
	return out
}

// TopLikedPhotos ranks every photo by likes received inside the range. The
// owner's username falls back to UnknownUser when the user id dangles.
func TopLikedPhotos(photos []dataset.Photo, likes []dataset.Like, users []dataset.User, r dates.Range) []PhotoLikes {
	counts := make(map[string]int)
	for _, l := range likes {
		if inRange(l.CreatedAt, r) {
			counts[l.PhotoID]++
		}
	}

	names := usernamesByID(users)
	out := make([]PhotoLikes, len(photos))
	for i, p := range photos {
		out[i] = PhotoLikes{
			PhotoID:  p.ID,
			Username: usernameOrUnknown(names, p.UserID),
			Likes:    counts[p.ID],
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likes > out[j].Likes
	})
	return out
}

// TopCommentedPhotos ranks every photo by comments received inside the range.
func TopCommentedPhotos(photos []dataset.Photo, comments []dataset.Comment, users []dataset.User, r dates.Range) []PhotoComments {
	counts := make(map[string]int)
	for _, c := range comments {
		if inRange(c.CreatedAt, r) {
			counts[c.PhotoID]++
		}
	}

	names := usernamesByID(users)
	out := make([]PhotoComments, len(photos))
	for i, p := range photos {
		out[i] = PhotoComments{
			PhotoID:  p.ID,
			Username: usernameOrUnknown(names, p.UserID),
			Comments: counts[p.ID],
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Comments > out[j].Comments
	})
	return out
}

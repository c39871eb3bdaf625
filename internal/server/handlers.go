package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/instalens/instalens/internal/analytics"
	"github.com/instalens/instalens/internal/dates"
	"github.com/instalens/instalens/internal/search"
)

// listResponse wraps every list-shaped API answer.
type listResponse struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Data  any    `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// queryRange parses optional from/to query params into a Range. A param
// that is present but matches none of the recognized date formats is a
// client error.
func queryRange(r *http.Request) (dates.Range, bool) {
	var rng dates.Range
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, ok := dates.Parse(raw)
		if !ok {
			return rng, false
		}
		rng.Start = t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, ok := dates.Parse(raw)
		if !ok {
			return rng, false
		}
		rng.End = t
	}
	return rng, true
}

// queryInt reads an optional non-negative integer query param.
func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// truncate applies presentation-side top-N truncation; limit 0 keeps all.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

type statusResponse struct {
	Users     int `json:"users"`
	Tags      int `json:"tags"`
	Photos    int `json:"photos"`
	PhotoTags int `json:"photoTags"`
	Likes     int `json:"likes"`
	Follows   int `json:"follows"`
	Comments  int `json:"comments"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Users:     len(s.ds.Users),
		Tags:      len(s.ds.Tags),
		Photos:    len(s.ds.Photos),
		PhotoTags: len(s.ds.PhotoTags),
		Likes:     len(s.ds.Likes),
		Follows:   len(s.ds.Follows),
		Comments:  len(s.ds.Comments),
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	rng, ok := queryRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unparseable from/to date")
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	ds := s.ds
	var data any
	var count int

	switch kind {
	case "new-users":
		v := truncate(analytics.NewUsersOverTime(ds.Users, rng), limit)
		data, count = v, len(v)
	case "likes-trend":
		v := truncate(analytics.PhotoLikesTrend(ds.Likes, rng), limit)
		data, count = v, len(v)
	case "follower-growth":
		v := truncate(analytics.FollowerGrowthOverTime(ds.Follows, rng), limit)
		data, count = v, len(v)
	case "active-users":
		v := truncate(analytics.MostActiveUsers(ds.Users, ds.Photos, ds.Likes, ds.Comments, rng), limit)
		data, count = v, len(v)
	case "engaging-users":
		v := truncate(analytics.MostEngagingUsers(ds.Users, ds.Photos, ds.Likes, ds.Comments, rng), limit)
		data, count = v, len(v)
	case "followed-users":
		v := truncate(analytics.MostFollowedUsers(ds.Users, ds.Follows, rng), limit)
		data, count = v, len(v)
	case "top-liked-photos":
		v := truncate(analytics.TopLikedPhotos(ds.Photos, ds.Likes, ds.Users, rng), limit)
		data, count = v, len(v)
	case "top-commented-photos":
		v := truncate(analytics.TopCommentedPhotos(ds.Photos, ds.Comments, ds.Users, rng), limit)
		data, count = v, len(v)
	case "most-used-tags":
		v := truncate(analytics.MostUsedTags(ds.Tags, ds.PhotoTags, ds.Photos, rng), limit)
		data, count = v, len(v)
	case "trending-tags":
		v := truncate(analytics.TrendingTagsOverTime(ds.Tags, ds.PhotoTags, ds.Photos, rng), limit)
		data, count = v, len(v)
	case "tag-preferences":
		v := truncate(analytics.UserTagPreferences(ds.Users, ds.Photos, ds.PhotoTags, ds.Tags, rng), limit)
		data, count = v, len(v)
	default:
		writeError(w, http.StatusBadRequest, "unknown report kind: "+kind)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Kind: kind, Count: count, Data: data})
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	rng, ok := queryRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unparseable from/to date")
		return
	}

	users := search.UsersByUsername(s.ds.Users, r.URL.Query().Get("q"))
	users = search.UsersByDateRange(users, rng)

	out := make([]userJSON, len(users))
	for i, u := range users {
		out[i] = userJSON{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
	}
	writeJSON(w, http.StatusOK, listResponse{Kind: "users", Count: len(out), Data: out})
}

func (s *Server) handleSearchPhotos(w http.ResponseWriter, r *http.Request) {
	rng, ok := queryRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unparseable from/to date")
		return
	}
	minLikes, ok := queryInt(r, "min_likes")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid min_likes")
		return
	}

	photos := search.PhotosByUser(s.ds.Photos, r.URL.Query().Get("user"))
	photos = search.PhotosByDateRange(photos, rng)
	if tags := r.URL.Query()["tag"]; len(tags) > 0 {
		photos = search.PhotosByTags(photos, s.ds.PhotoTags, s.ds.Tags, tags)
	}
	if minLikes > 0 {
		photos = search.PhotosWithMinLikes(photos, s.ds.Likes, minLikes)
	}

	out := make([]photoJSON, len(photos))
	for i, p := range photos {
		out[i] = photoJSON{ID: p.ID, UserID: p.UserID, ImageURL: p.ImageURL, CreatedDat: p.CreatedDat}
	}
	writeJSON(w, http.StatusOK, listResponse{Kind: "photos", Count: len(out), Data: out})
}

func (s *Server) handleSearchComments(w http.ResponseWriter, r *http.Request) {
	rng, ok := queryRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unparseable from/to date")
		return
	}

	comments := search.CommentsByUser(s.ds.Comments, r.URL.Query().Get("user"))
	comments = search.CommentsByPhoto(comments, r.URL.Query().Get("photo"))
	comments = search.CommentsByKeyword(comments, r.URL.Query().Get("q"))
	comments = search.CommentsByDateRange(comments, rng)

	out := make([]commentJSON, len(comments))
	for i, c := range comments {
		out[i] = commentJSON{ID: c.ID, UserID: c.UserID, PhotoID: c.PhotoID, CommentText: c.CommentText, CreatedAt: c.CreatedAt}
	}
	writeJSON(w, http.StatusOK, listResponse{Kind: "comments", Count: len(out), Data: out})
}

func (s *Server) handleSearchTags(w http.ResponseWriter, r *http.Request) {
	minCount, ok := queryInt(r, "min_count")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid min_count")
		return
	}

	tags := search.TagsByName(s.ds.Tags, r.URL.Query().Get("q"))
	if minCount > 0 {
		tags = search.TagsByPopularity(tags, s.ds.PhotoTags, minCount)
	}

	out := make([]tagJSON, len(tags))
	for i, t := range tags {
		out[i] = tagJSON{ID: t.ID, TagName: t.TagName, CreatedAt: t.CreatedAt}
	}
	writeJSON(w, http.StatusOK, listResponse{Kind: "tags", Count: len(out), Data: out})
}

// JSON shapes for raw entities; field names match the dashboard contract
// (created_dat spelling included).
type userJSON struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type photoJSON struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	ImageURL   string `json:"image_url"`
	CreatedDat string `json:"created_dat"`
}

type commentJSON struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	PhotoID     string `json:"photo_id"`
	CommentText string `json:"comment_text"`
	CreatedAt   string `json:"created_at"`
}

type tagJSON struct {
	ID        string `json:"id"`
	TagName   string `json:"tag_name"`
	CreatedAt string `json:"created_at"`
}

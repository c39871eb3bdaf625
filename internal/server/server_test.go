package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instalens/instalens/internal/dataset"
)

func testServer() *Server {
	ds := &dataset.Dataset{
		Users: []dataset.User{
			{ID: "u1", Username: "alice", CreatedAt: "2024-01-01"},
			{ID: "u2", Username: "bob", CreatedAt: "2024-02-01"},
		},
		Tags: []dataset.Tag{
			{ID: "t1", TagName: "sunset", CreatedAt: "2024-01-01"},
		},
		Photos: []dataset.Photo{
			{ID: "p1", UserID: "u1", ImageURL: "https://img/p1.jpg", CreatedDat: "2024-01-05"},
			{ID: "p2", UserID: "u2", ImageURL: "https://img/p2.jpg", CreatedDat: "2024-02-05"},
		},
		PhotoTags: []dataset.PhotoTag{{PhotoID: "p1", TagID: "t1"}},
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
	return New(ds, zerolog.Nop())
}

// get runs one request through the router and decodes the JSON body into v.
func get(t *testing.T, path string, v any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	if v != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	var got statusResponse
	rec := get(t, "/api/status", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, statusResponse{Users: 2, Tags: 1, Photos: 2, PhotoTags: 1, Likes: 2, Follows: 1, Comments: 1}, got)
}

func TestAnalyticsEndpoint_TopLikedPhotos(t *testing.T) {
	var got struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
		Data  []struct {
			PhotoID  string `json:"photoId"`
			Username string `json:"username"`
			Likes    int    `json:"likes"`
		} `json:"data"`
	}
	rec := get(t, "/api/analytics/top-liked-photos", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "top-liked-photos", got.Kind)
	require.Equal(t, 2, got.Count)
	assert.Equal(t, "p1", got.Data[0].PhotoID)
	assert.Equal(t, "alice", got.Data[0].Username)
	assert.Equal(t, 2, got.Data[0].Likes)
	assert.Equal(t, 0, got.Data[1].Likes)
}

func TestAnalyticsEndpoint_LimitTruncates(t *testing.T) {
	var got struct {
		Count int             `json:"count"`
		Data  json.RawMessage `json:"data"`
	}
	rec := get(t, "/api/analytics/active-users?limit=1", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, got.Count)
}

func TestAnalyticsEndpoint_DateRangeFilters(t *testing.T) {
	var got struct {
		Count int `json:"count"`
		Data  []struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		} `json:"data"`
	}
	rec := get(t, "/api/analytics/new-users?from=2024-01-01&to=2024-01-31", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "2024-01-01", got.Data[0].Date)
}

func TestAnalyticsEndpoint_UnknownKindIs400(t *testing.T) {
	rec := get(t, "/api/analytics/nope", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown report kind")
}

func TestAnalyticsEndpoint_BadFromDateIs400(t *testing.T) {
	rec := get(t, "/api/analytics/new-users?from=banana", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unparseable")
}

func TestAnalyticsEndpoint_BadLimitIs400(t *testing.T) {
	rec := get(t, "/api/analytics/new-users?limit=-3", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, "/api/analytics/new-users?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchUsersEndpoint(t *testing.T) {
	var got struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
		Data  []struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	rec := get(t, "/api/search/users?q=ali", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "users", got.Kind)
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "alice", got.Data[0].Username)
}

func TestSearchPhotosEndpoint_CombinedFilters(t *testing.T) {
	var got struct {
		Count int `json:"count"`
		Data  []struct {
			ID         string `json:"id"`
			CreatedDat string `json:"created_dat"`
		} `json:"data"`
	}
	rec := get(t, "/api/search/photos?user=u1&tag=sunset&min_likes=2", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "p1", got.Data[0].ID)
	assert.Equal(t, "2024-01-05", got.Data[0].CreatedDat)
}

func TestSearchPhotosEndpoint_NoMatchIsEmptyListNot404(t *testing.T) {
	var got struct {
		Count int             `json:"count"`
		Data  json.RawMessage `json:"data"`
	}
	rec := get(t, "/api/search/photos?tag=nosuchtag", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, got.Count)
}

func TestSearchCommentsEndpoint_Keyword(t *testing.T) {
	var got struct {
		Count int `json:"count"`
		Data  []struct {
			CommentText string `json:"comment_text"`
		} `json:"data"`
	}
	rec := get(t, "/api/search/comments?q=GREAT", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "great shot", got.Data[0].CommentText)
}

func TestSearchTagsEndpoint_MinCount(t *testing.T) {
	var got struct {
		Count int `json:"count"`
	}
	rec := get(t, "/api/search/tags?min_count=2", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, got.Count)
}

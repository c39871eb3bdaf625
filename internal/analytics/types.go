// Package analytics holds the pure aggregation functions that turn raw
// dataset records into the derived metrics behind every chart and table.
//
// Every function here is stateless and total: malformed records are skipped,
// dangling references resolve to sentinel values, and empty inputs produce
// empty outputs. Rankings return the full scored list sorted non-increasing
// with stable ties; truncation to top-N is the caller's concern. Time series
// are sorted ascending by calendar day.
package analytics

// UnknownUser is the display name substituted when a photo's owner id does
// not resolve to a loaded user.
const UnknownUser = "Unknown"

// TimeSeriesPoint is one calendar-day bucket of a time series.
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// UserActivity scores a user by content produced: posts, likes given,
// comments written.
type UserActivity struct {
	Username string `json:"username"`
	Posts    int    `json:"posts"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

// UserEngagement scores a user by likes and comments received on their own
// photos.
type UserEngagement struct {
	Username string `json:"username"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

// UserFollowers scores a user by followers gained.
type UserFollowers struct {
	Username  string `json:"username"`
	Followers int    `json:"followers"`
}

// PhotoLikes scores a photo by likes received.
type PhotoLikes struct {
	PhotoID  string `json:"photoId"`
	Username string `json:"username"`
	Likes    int    `json:"likes"`
}

// PhotoComments scores a photo by comments received.
type PhotoComments struct {
	PhotoID  string `json:"photoId"`
	Username string `json:"username"`
	Comments int    `json:"comments"`
}

// TagCount pairs a tag name with a usage count.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagDay maps tag names to usage counts for one calendar day. The map is
// sparse: only tags used that day appear.
type TagDay struct {
	Date      string         `json:"date"`
	TagCounts map[string]int `json:"tagCounts"`
}

// UserTagPreference maps tag names to usage counts across one user's photos.
type UserTagPreference struct {
	Username       string         `json:"username"`
	TagPreferences map[string]int `json:"tagPreferences"`
}

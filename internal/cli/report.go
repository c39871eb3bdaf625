package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/instalens/instalens/internal/analytics"
	"github.com/instalens/instalens/internal/dataset"
)

// reportKinds lists the accepted report kind names in display order.
var reportKinds = []string{
	"new-users",
	"likes-trend",
	"follower-growth",
	"active-users",
	"engaging-users",
	"followed-users",
	"top-liked-photos",
	"top-commented-photos",
	"most-used-tags",
	"trending-tags",
	"tag-preferences",
}

// reportJSON is the JSON output structure for the report command.
type reportJSON struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Data  any    `json:"data"`
}

// Execute implements the go-flags Commander interface for ReportCommand.
func (c *ReportCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("report kind required; one of: %s", strings.Join(reportKinds, ", "))
	}
	kind := args[0]

	ds, cfg, err := loadDataset(c.globals)
	if err != nil {
		return err
	}

	limit := c.Limit
	if limit == 0 {
		limit = cfg.Report.Limit
	}

	return c.executeWithDataset(ds, kind, limit)
}

// executeWithDataset runs the report against a provided dataset (for testing).
func (c *ReportCommand) executeWithDataset(ds *dataset.Dataset, kind string, limit int) error {
	r, err := parseRange(c.From, c.To)
	if err != nil {
		return err
	}

	switch kind {
	case "new-users":
		return c.printSeries(kind, "New users over time", truncate(analytics.NewUsersOverTime(ds.Users, r), limit))
	case "likes-trend":
		return c.printSeries(kind, "Photo likes over time", truncate(analytics.PhotoLikesTrend(ds.Likes, r), limit))
	case "follower-growth":
		return c.printSeries(kind, "Follower growth over time", truncate(analytics.FollowerGrowthOverTime(ds.Follows, r), limit))
	case "active-users":
		return c.printActiveUsers(kind, truncate(analytics.MostActiveUsers(ds.Users, ds.Photos, ds.Likes, ds.Comments, r), limit))
	case "engaging-users":
		return c.printEngagingUsers(kind, truncate(analytics.MostEngagingUsers(ds.Users, ds.Photos, ds.Likes, ds.Comments, r), limit))
	case "followed-users":
		return c.printFollowedUsers(kind, truncate(analytics.MostFollowedUsers(ds.Users, ds.Follows, r), limit))
	case "top-liked-photos":
		return c.printLikedPhotos(kind, truncate(analytics.TopLikedPhotos(ds.Photos, ds.Likes, ds.Users, r), limit))
	case "top-commented-photos":
		return c.printCommentedPhotos(kind, truncate(analytics.TopCommentedPhotos(ds.Photos, ds.Comments, ds.Users, r), limit))
	case "most-used-tags":
		return c.printTagCounts(kind, truncate(analytics.MostUsedTags(ds.Tags, ds.PhotoTags, ds.Photos, r), limit))
	case "trending-tags":
		return c.printTagDays(kind, truncate(analytics.TrendingTagsOverTime(ds.Tags, ds.PhotoTags, ds.Photos, r), limit))
	case "tag-preferences":
		return c.printTagPreferences(kind, truncate(analytics.UserTagPreferences(ds.Users, ds.Photos, ds.PhotoTags, ds.Tags, r), limit))
	default:
		return fmt.Errorf("unknown report kind %q; one of: %s", kind, strings.Join(reportKinds, ", "))
	}
}

func (c *ReportCommand) jsonEnabled() bool {
	return c.globals != nil && c.globals.JSON
}

func (c *ReportCommand) printJSON(kind string, count int, data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reportJSON{Kind: kind, Count: count, Data: data})
}

func (c *ReportCommand) printSeries(kind, title string, points []analytics.TimeSeriesPoint) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(points), points)
	}
	fmt.Println(title)
	if len(points) == 0 {
		fmt.Println("  (no data)")
		return nil
	}
	for _, p := range points {
		fmt.Printf("  %s  %d\n", p.Date, p.Count)
	}
	return nil
}

func (c *ReportCommand) printActiveUsers(kind string, rows []analytics.UserActivity) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("Most active users")
	for _, u := range rows {
		total := u.Posts + u.Likes + u.Comments
		fmt.Printf("  %-20s posts=%-4d likes=%-4d comments=%-4d total=%d\n", u.Username, u.Posts, u.Likes, u.Comments, total)
	}
	return nil
}

func (c *ReportCommand) printEngagingUsers(kind string, rows []analytics.UserEngagement) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("Most engaging users")
	for _, u := range rows {
		fmt.Printf("  %-20s likes=%-4d comments=%-4d total=%d\n", u.Username, u.Likes, u.Comments, u.Likes+u.Comments)
	}
	return nil
}

func (c *ReportCommand) printFollowedUsers(kind string, rows []analytics.UserFollowers) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("Most followed users")
	for _, u := range rows {
		fmt.Printf("  %-20s followers=%d\n", u.Username, u.Followers)
	}
	return nil
}

func (c *ReportCommand) printLikedPhotos(kind string, rows []analytics.PhotoLikes) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("Top liked photos")
	for _, p := range rows {
		fmt.Printf("  photo %-10s by %-20s likes=%d\n", p.PhotoID, p.Username, p.Likes)
	}
	return nil
}

func (c *ReportCommand) printCommentedPhotos(kind string, rows []analytics.PhotoComments) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("Top commented photos")
	for _, p := range rows {
		fmt.Printf("  photo %-10s by %-20s comments=%d\n", p.PhotoID, p.Username, p.Comments)
	}
	return nil
}

func (c *ReportCommand) printTagCounts(kind string, rows []analytics.TagCount) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("Most used tags")
	for _, t := range rows {
		fmt.Printf("  %-20s %d\n", t.Name, t.Count)
	}
	return nil
}

func (c *ReportCommand) printTagDays(kind string, rows []analytics.TagDay) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("Trending tags over time")
	for _, d := range rows {
		fmt.Printf("  %s  %s\n", d.Date, formatCountMap(d.TagCounts))
	}
	return nil
}

func (c *ReportCommand) printTagPreferences(kind string, rows []analytics.UserTagPreference) error {
	if c.jsonEnabled() {
		return c.printJSON(kind, len(rows), rows)
	}
	fmt.Println("User tag preferences")
	for _, u := range rows {
		fmt.Printf("  %-20s %s\n", u.Username, formatCountMap(u.TagPreferences))
	}
	return nil
}

// formatCountMap renders a name->count map as "a=2 b=1", highest count
// first, names alphabetical on ties so output is deterministic.
func formatCountMap(m map[string]int) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if m[names[i]] != m[names[j]] {
			return m[names[i]] > m[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, m[name])
	}
	return strings.Join(parts, " ")
}

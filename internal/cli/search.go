package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/search"
)

var searchEntities = []string{"users", "photos", "comments", "tags"}

// jsonSearchOutput is the JSON output structure for the search command.
type jsonSearchOutput struct {
	Entity  string `json:"entity"`
	Count   int    `json:"count"`
	Results any    `json:"results"`
}

// Per-entity JSON rows; field names follow the CSV column names, created_dat
// spelling included.
type userRow struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type photoRow struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	ImageURL   string `json:"image_url"`
	CreatedDat string `json:"created_dat"`
}

type commentRow struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	PhotoID     string `json:"photo_id"`
	CommentText string `json:"comment_text"`
	CreatedAt   string `json:"created_at"`
}

type tagRow struct {
	ID        string `json:"id"`
	TagName   string `json:"tag_name"`
	CreatedAt string `json:"created_at"`
}

// Execute implements the go-flags Commander interface for SearchCommand.
func (c *SearchCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("search entity required; one of: %s", strings.Join(searchEntities, ", "))
	}

	ds, _, err := loadDataset(c.globals)
	if err != nil {
		return err
	}
	return c.executeWithDataset(ds, args[0])
}

// executeWithDataset runs the search against a provided dataset (for testing).
func (c *SearchCommand) executeWithDataset(ds *dataset.Dataset, entity string) error {
	r, err := parseRange(c.From, c.To)
	if err != nil {
		return err
	}

	switch entity {
	case "users":
		users := search.UsersByUsername(ds.Users, c.Query)
		users = search.UsersByDateRange(users, r)
		return c.printUsers(truncate(users, c.Limit))
	case "photos":
		photos := search.PhotosByUser(ds.Photos, c.User)
		photos = search.PhotosByDateRange(photos, r)
		photos = search.PhotosByTags(photos, ds.PhotoTags, ds.Tags, c.Tags)
		if c.MinLikes > 0 {
			photos = search.PhotosWithMinLikes(photos, ds.Likes, c.MinLikes)
		}
		return c.printPhotos(truncate(photos, c.Limit))
	case "comments":
		comments := search.CommentsByUser(ds.Comments, c.User)
		comments = search.CommentsByPhoto(comments, c.Photo)
		comments = search.CommentsByKeyword(comments, c.Query)
		comments = search.CommentsByDateRange(comments, r)
		return c.printComments(truncate(comments, c.Limit))
	case "tags":
		tags := search.TagsByName(ds.Tags, c.Query)
		if c.MinCount > 0 {
			tags = search.TagsByPopularity(tags, ds.PhotoTags, c.MinCount)
		}
		return c.printTags(truncate(tags, c.Limit))
	default:
		return fmt.Errorf("unknown search entity %q; one of: %s", entity, strings.Join(searchEntities, ", "))
	}
}

func (c *SearchCommand) jsonEnabled() bool {
	return c.globals != nil && c.globals.JSON
}

func (c *SearchCommand) printJSON(entity string, count int, results any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonSearchOutput{Entity: entity, Count: count, Results: results})
}

func (c *SearchCommand) printUsers(users []dataset.User) error {
	if c.jsonEnabled() {
		rows := make([]userRow, len(users))
		for i, u := range users {
			rows[i] = userRow{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
		}
		return c.printJSON("users", len(rows), rows)
	}
	fmt.Printf("Found %d %s\n", len(users), plural(len(users), "user", "users"))
	for _, u := range users {
		fmt.Printf("  %-10s %-20s created %s\n", u.ID, u.Username, u.CreatedAt)
	}
	return nil
}

func (c *SearchCommand) printPhotos(photos []dataset.Photo) error {
	if c.jsonEnabled() {
		rows := make([]photoRow, len(photos))
		for i, p := range photos {
			rows[i] = photoRow{ID: p.ID, UserID: p.UserID, ImageURL: p.ImageURL, CreatedDat: p.CreatedDat}
		}
		return c.printJSON("photos", len(rows), rows)
	}
	fmt.Printf("Found %d %s\n", len(photos), plural(len(photos), "photo", "photos"))
	for _, p := range photos {
		fmt.Printf("  %-10s by user %-10s %s\n", p.ID, p.UserID, p.ImageURL)
	}
	return nil
}

func (c *SearchCommand) printComments(comments []dataset.Comment) error {
	if c.jsonEnabled() {
		rows := make([]commentRow, len(comments))
		for i, cm := range comments {
			rows[i] = commentRow{ID: cm.ID, UserID: cm.UserID, PhotoID: cm.PhotoID, CommentText: cm.CommentText, CreatedAt: cm.CreatedAt}
		}
		return c.printJSON("comments", len(rows), rows)
	}
	fmt.Printf("Found %d %s\n", len(comments), plural(len(comments), "comment", "comments"))
	for _, cm := range comments {
		text := cm.CommentText
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		fmt.Printf("  %-10s on photo %-10s %s\n", cm.ID, cm.PhotoID, text)
	}
	return nil
}

func (c *SearchCommand) printTags(tags []dataset.Tag) error {
	if c.jsonEnabled() {
		rows := make([]tagRow, len(tags))
		for i, t := range tags {
			rows[i] = tagRow{ID: t.ID, TagName: t.TagName, CreatedAt: t.CreatedAt}
		}
		return c.printJSON("tags", len(rows), rows)
	}
	fmt.Printf("Found %d %s\n", len(tags), plural(len(tags), "tag", "tags"))
	for _, t := range tags {
		fmt.Printf("  %-10s %s\n", t.ID, t.TagName)
	}
	return nil
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/instalens/instalens/internal/analytics"
	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version   string         `json:"version"`
	Users     int            `json:"users"`
	Tags      int            `json:"tags"`
	Photos    int            `json:"photos"`
	PhotoTags int            `json:"photo_tags"`
	Likes     int            `json:"likes"`
	Follows   int            `json:"follows"`
	Comments  int            `json:"comments"`
	Oldest    string         `json:"oldest,omitempty"`
	Newest    string         `json:"newest,omitempty"`
	TopTags   []tagCountJSON `json:"top_tags"`
}

type tagCountJSON struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	ds, _, err := loadDataset(c.globals)
	if err != nil {
		return err
	}
	return c.executeWithDataset(ds)
}

// executeWithDataset runs status against a provided dataset (for testing).
func (c *StatusCommand) executeWithDataset(ds *dataset.Dataset) error {
	oldest, newest := dateCoverage(ds)
	topTags := truncate(analytics.MostUsedTags(ds.Tags, ds.PhotoTags, ds.Photos, dates.Range{}), 5)

	if c.globals != nil && c.globals.JSON {
		return c.printStatusJSON(ds, oldest, newest, topTags)
	}
	return c.printStatusHuman(ds, oldest, newest, topTags)
}

// dateCoverage scans every dated record and returns the earliest and latest
// parseable instants. Unparseable dates are skipped, never fatal.
func dateCoverage(ds *dataset.Dataset) (time.Time, time.Time) {
	var oldest, newest time.Time

	consider := func(raw string) {
		t, ok := dates.Parse(raw)
		if !ok {
			return
		}
		if oldest.IsZero() || t.Before(oldest) {
			oldest = t
		}
		if newest.IsZero() || t.After(newest) {
			newest = t
		}
	}

	for _, u := range ds.Users {
		consider(u.CreatedAt)
	}
	for _, p := range ds.Photos {
		consider(p.CreatedDat)
	}
	for _, l := range ds.Likes {
		consider(l.CreatedAt)
	}
	for _, f := range ds.Follows {
		consider(f.CreatedAt)
	}
	for _, cm := range ds.Comments {
		consider(cm.CreatedAt)
	}
	return oldest, newest
}

func (c *StatusCommand) printStatusHuman(ds *dataset.Dataset, oldest, newest time.Time, topTags []analytics.TagCount) error {
	fmt.Println("Instalens Dataset Status")
	fmt.Println("========================")
	fmt.Printf("Version:       %s\n", c.version)
	fmt.Printf("Users:         %d\n", len(ds.Users))
	fmt.Printf("Tags:          %d\n", len(ds.Tags))
	fmt.Printf("Photos:        %d\n", len(ds.Photos))
	fmt.Printf("Photo tags:    %d\n", len(ds.PhotoTags))
	fmt.Printf("Likes:         %d\n", len(ds.Likes))
	fmt.Printf("Follows:       %d\n", len(ds.Follows))
	fmt.Printf("Comments:      %d\n", len(ds.Comments))

	if !oldest.IsZero() {
		fmt.Printf("Oldest:        %s\n", dates.Day(oldest))
		fmt.Printf("Newest:        %s\n", dates.Day(newest))
	}

	if len(topTags) > 0 {
		fmt.Println()
		fmt.Println("Top Tags:")
		for _, t := range topTags {
			fmt.Printf("  %-20s %d\n", t.Name, t.Count)
		}
	}
	return nil
}

func (c *StatusCommand) printStatusJSON(ds *dataset.Dataset, oldest, newest time.Time, topTags []analytics.TagCount) error {
	out := statusJSON{
		Version:   c.version,
		Users:     len(ds.Users),
		Tags:      len(ds.Tags),
		Photos:    len(ds.Photos),
		PhotoTags: len(ds.PhotoTags),
		Likes:     len(ds.Likes),
		Follows:   len(ds.Follows),
		Comments:  len(ds.Comments),
		TopTags:   make([]tagCountJSON, len(topTags)),
	}
	if !oldest.IsZero() {
		out.Oldest = dates.Day(oldest)
		out.Newest = dates.Day(newest)
	}
	for i, t := range topTags {
		out.TopTags[i] = tagCountJSON{Name: t.Name, Count: t.Count}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

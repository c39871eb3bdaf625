package datagen

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/instalens/instalens/internal/dataset"
)

// writeTable writes one CSV file with the given header and rows.
func writeTable(dir, name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s rows: %w", name, err)
	}
	w.Flush()
	return w.Error()
}

// WriteCSV emits the seven entity files into dir with canonical headers,
// including the created_dat spelling on photos.
func WriteCSV(ds *dataset.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files := dataset.DefaultFiles()

	rows := make([][]string, 0, len(ds.Users))
	for _, u := range ds.Users {
		rows = append(rows, []string{u.ID, u.Username, u.CreatedAt})
	}
	if err := writeTable(dir, files.Users, []string{"id", "username", "created_at"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, t := range ds.Tags {
		rows = append(rows, []string{t.ID, t.TagName, t.CreatedAt})
	}
	if err := writeTable(dir, files.Tags, []string{"id", "tag_name", "created_at"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, p := range ds.Photos {
		rows = append(rows, []string{p.ID, p.UserID, p.ImageURL, p.CreatedDat})
	}
	if err := writeTable(dir, files.Photos, []string{"id", "user_id", "image_url", "created_dat"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, pt := range ds.PhotoTags {
		rows = append(rows, []string{pt.PhotoID, pt.TagID})
	}
	if err := writeTable(dir, files.PhotoTags, []string{"photo_id", "tag_id"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, l := range ds.Likes {
		rows = append(rows, []string{l.UserID, l.PhotoID, l.CreatedAt})
	}
	if err := writeTable(dir, files.Likes, []string{"user_id", "photo_id", "created_at"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, fl := range ds.Follows {
		rows = append(rows, []string{fl.FollowerID, fl.FolloweeID, fl.CreatedAt})
	}
	if err := writeTable(dir, files.Follows, []string{"follower_id", "followee_id", "created_at"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, c := range ds.Comments {
		rows = append(rows, []string{c.ID, c.UserID, c.PhotoID, c.CommentText, c.CreatedAt})
	}
	return writeTable(dir, files.Comments, []string{"id", "user_id", "photo_id", "comment_text", "created_at"}, rows)
}

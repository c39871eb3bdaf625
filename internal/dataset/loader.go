package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// row is one parsed CSV record, keyed by header name.
type row map[string]string

// readTable reads a CSV file into header-keyed rows. Ragged rows are
// tolerated: missing trailing fields read as "", extra fields are ignored.
func readTable(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []row
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed line degrades that line only, never the batch.
			continue
		}
		rw := make(row, len(header))
		for i, name := range header {
			if i < len(rec) {
				rw[name] = strings.TrimSpace(rec[i])
			} else {
				rw[name] = ""
			}
		}
		rows = append(rows, rw)
	}
	return rows, nil
}

// loadEntity reads and validates one CSV file, dropping records that fail
// validation and logging a per-file summary.
func loadEntity[T any](path, name string, log zerolog.Logger, validate func(row) (T, bool)) ([]T, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		v, ok := validate(r)
		if !ok {
			dropped++
			continue
		}
		out = append(out, v)
	}

	log.Debug().
		Str("file", name).
		Int("rows", len(rows)).
		Int("kept", len(out)).
		Int("dropped", dropped).
		Msg("loaded entity file")

	return out, nil
}

// Load reads the seven entity files from dir using the default file names.
func Load(dir string, log zerolog.Logger) (*Dataset, error) {
	return LoadFiles(dir, DefaultFiles(), log)
}

// LoadFiles reads the seven entity files from dir using the given file
// names. A missing or unreadable file is an error; malformed individual
// records are dropped with a count in the debug log.
func LoadFiles(dir string, files Files, log zerolog.Logger) (*Dataset, error) {
	ds := &Dataset{}
	var err error

	if ds.Users, err = loadEntity(filepath.Join(dir, files.Users), "users", log, validateUser); err != nil {
		return nil, err
	}
	if ds.Tags, err = loadEntity(filepath.Join(dir, files.Tags), "tags", log, validateTag); err != nil {
		return nil, err
	}
	if ds.Photos, err = loadEntity(filepath.Join(dir, files.Photos), "photos", log, validatePhoto); err != nil {
		return nil, err
	}
	if ds.PhotoTags, err = loadEntity(filepath.Join(dir, files.PhotoTags), "photo_tags", log, validatePhotoTag); err != nil {
		return nil, err
	}
	if ds.Likes, err = loadEntity(filepath.Join(dir, files.Likes), "likes", log, validateLike); err != nil {
		return nil, err
	}
	if ds.Follows, err = loadEntity(filepath.Join(dir, files.Follows), "follows", log, validateFollow); err != nil {
		return nil, err
	}
	if ds.Comments, err = loadEntity(filepath.Join(dir, files.Comments), "comments", log, validateComment); err != nil {
		return nil, err
	}

	log.Info().
		Int("users", len(ds.Users)).
		Int("tags", len(ds.Tags)).
		Int("photos", len(ds.Photos)).
		Int("photo_tags", len(ds.PhotoTags)).
		Int("likes", len(ds.Likes)).
		Int("follows", len(ds.Follows)).
		Int("comments", len(ds.Comments)).
		Msg("dataset loaded")

	return ds, nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/instalens/instalens/internal/config"
	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// newLogger builds the CLI logger. --verbose forces debug level regardless
// of the configured level.
func newLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// loadConfig resolves the effective config: an explicit --config path must
// exist; otherwise the default path is loaded, created with defaults on
// first run.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadOrCreate()
}

// datasetFiles maps configured file names onto the loader's Files.
func datasetFiles(fc config.FilesConfig) dataset.Files {
	return dataset.Files{
		Users:     fc.Users,
		Tags:      fc.Tags,
		Photos:    fc.Photos,
		PhotoTags: fc.PhotoTags,
		Likes:     fc.Likes,
		Follows:   fc.Follows,
		Comments:  fc.Comments,
	}
}

// loadDataset loads the CSV dataset per config and global flag overrides.
func loadDataset(globals *GlobalFlags) (*dataset.Dataset, *config.Config, error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, nil, err
	}

	dir := cfg.Data.Dir
	if globals != nil && globals.DataDir != "" {
		dir = globals.DataDir
	}

	verbose := globals != nil && globals.Verbose
	log := newLogger(cfg.Logging.Level, verbose)

	ds, err := dataset.LoadFiles(dir, datasetFiles(cfg.Data.Files), log)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, cfg, nil
}

// parseRange turns the --from/--to flag values into a date range. A flag
// that is set but matches none of the recognized formats is an error here —
// a silently empty chart would hide the typo from the user.
func parseRange(from, to string) (dates.Range, error) {
	var r dates.Range
	if from != "" {
		t, ok := dates.Parse(from)
		if !ok {
			return r, fmt.Errorf("invalid --from value %q: unrecognized date format", from)
		}
		r.Start = t
	}
	if to != "" {
		t, ok := dates.Parse(to)
		if !ok {
			return r, fmt.Errorf("invalid --to value %q: unrecognized date format", to)
		}
		r.End = t
	}
	return r, nil
}

// truncate applies presentation-side top-N truncation; limit <= 0 keeps all.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

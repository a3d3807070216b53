package exomap

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Option is a function that configures a Pipeline instance
type Option func(*config) error

// config holds the resolved pipeline configuration.
type config struct {
	rawDir           string
	processedDir     string
	finalDir         string
	narrativePath    string
	version          string
	downloadDate     string
	processedAt      time.Time
	keepIntermediate bool
	logger           *zerolog.Logger
}

// defaultConfig returns the configuration for the conventional data layout:
//
//	data/01-raw/            archive extract
//	data/02-processed/      optional filtered intermediate
//	data/04-final/          dataset + report
//	data/narrative/         notable-planets.yaml
func defaultConfig() *config {
	return &config{
		rawDir:        filepath.Join("data", "01-raw"),
		processedDir:  filepath.Join("data", "02-processed"),
		finalDir:      filepath.Join("data", "04-final"),
		narrativePath: filepath.Join("data", "narrative", "notable-planets.yaml"),
		version:       "dev",
		downloadDate:  DefaultDownloadDate,
	}
}

// WithDataDir points the whole conventional layout at a different root.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		c.rawDir = filepath.Join(dir, "01-raw")
		c.processedDir = filepath.Join(dir, "02-processed")
		c.finalDir = filepath.Join(dir, "04-final")
		c.narrativePath = filepath.Join(dir, "narrative", "notable-planets.yaml")
		return nil
	}
}

// WithRawDir overrides the directory searched for the archive extract.
func WithRawDir(dir string) Option {
	return func(c *config) error {
		c.rawDir = dir
		return nil
	}
}

// WithFinalDir overrides where the dataset and report are written.
func WithFinalDir(dir string) Option {
	return func(c *config) error {
		c.finalDir = dir
		return nil
	}
}

// WithNarrativePath overrides the narrative table location.
func WithNarrativePath(path string) Option {
	return func(c *config) error {
		c.narrativePath = path
		return nil
	}
}

// WithVersion sets the pipeline version recorded in the output metadata.
func WithVersion(version string) Option {
	return func(c *config) error {
		c.version = version
		return nil
	}
}

// WithDownloadDate records when the archive extract was downloaded.
func WithDownloadDate(date string) Option {
	return func(c *config) error {
		c.downloadDate = date
		return nil
	}
}

// WithProcessedAt pins the processing timestamp, for reproducible output.
func WithProcessedAt(t time.Time) Option {
	return func(c *config) error {
		c.processedAt = t
		return nil
	}
}

// WithKeepIntermediate persists the filtered row subset as a CSV next to
// the final output, mirroring what the archive exports look like after
// selection.
func WithKeepIntermediate(keep bool) Option {
	return func(c *config) error {
		c.keepIntermediate = keep
		return nil
	}
}

// WithLogger sets the logger used for progress and integrity warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

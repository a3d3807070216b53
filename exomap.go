// Package exomap turns a raw NASA Exoplanet Archive extract into a cleaned,
// classified, and enriched dataset ready for visualization, plus a markdown
// statistics report.
//
// The transformation is a strict one-directional pipeline:
//
//	Select → Clean → Enrich → Finalize
//
// Each stage consumes the full output of its predecessor; no stage revisits
// earlier data, and re-running the pipeline on unchanged inputs produces
// byte-identical output.
package exomap

import (
	"bytes"
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/stellarview/exomap/internal/archive"
	"github.com/stellarview/exomap/internal/narrative"
	"github.com/stellarview/exomap/internal/output"
	"github.com/stellarview/exomap/pkg/catalog"
	"github.com/stellarview/exomap/pkg/logging"
	"github.com/stellarview/exomap/pkg/pipeline"
	"github.com/stellarview/exomap/pkg/report"
)

// Output file names under the final directory.
const (
	DatasetFile      = "exoplanets.json"
	ReportFile       = "STATS.md"
	IntermediateFile = "step1-defaults-only.csv"
)

// DefaultDownloadDate is the extract date recorded in metadata when the
// caller does not supply one.
const DefaultDownloadDate = "2025-12-26"

// Pipeline runs the full catalog transformation.
type Pipeline struct {
	config *config
	logger *zerolog.Logger
}

// Result carries the final document, the stage statistics, and where the
// artifacts were written.
type Result struct {
	Dataset *catalog.Dataset

	Select pipeline.SelectStats
	Clean  pipeline.CleanStats
	Enrich pipeline.EnrichStats
	Final  pipeline.FinalStats

	DatasetPath string
	ReportPath  string
}

// New creates a Pipeline with the given options.
func New(opts ...Option) (*Pipeline, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	logger := c.logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Pipeline{config: c, logger: logger}, nil
}

// Run executes the pipeline end to end. Fatal conditions (no archive
// extract, unreadable input) abort with an error; per-record conditions
// resolve into the statistics carried by the Result.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	path, err := archive.Discover(p.config.rawDir)
	if err != nil {
		return nil, err
	}
	p.logger.Info().Str("file", filepath.Base(path)).Msg("reading archive extract")

	table, err := archive.Read(path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, selectStats := pipeline.Select(table.Rows)
	p.logSelection(selectStats)

	if p.config.keepIntermediate {
		if err := output.EnsureDir(p.config.processedDir); err != nil {
			return nil, err
		}
		intermediate := filepath.Join(p.config.processedDir, IntermediateFile)
		if err := archive.Write(intermediate, table.Columns, rows); err != nil {
			return nil, err
		}
		p.logger.Info().Str("path", intermediate).Msg("kept filtered intermediate")
	}

	planets, cleanStats := pipeline.Clean(rows)
	p.logger.Info().
		Int("output", cleanStats.Output()).
		Int("missing_period", cleanStats.MissingPeriod).
		Int("derived_separation", cleanStats.DerivedSeparation).
		Msg("cleaned and classified")

	narratives, err := narrative.Load(p.config.narrativePath)
	if err != nil {
		return nil, err
	}
	if narratives == nil {
		p.logger.Warn().Str("path", p.config.narrativePath).Msg("no narrative file found")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enriched, enrichStats := pipeline.Enrich(planets, narratives)
	p.logger.Info().Int("notable", enrichStats.Notable).Msg("merged narrative content")

	valid, finalStats := pipeline.Finalize(enriched)

	processedAt := p.config.processedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	dataset := &catalog.Dataset{
		Metadata: catalog.Metadata{
			Source:          catalog.SourceName,
			SourceURL:       catalog.SourceURL,
			DataTable:       catalog.SourceDataTable,
			DownloadDate:    p.config.downloadDate,
			ProcessedDate:   processedAt.Format("2006-01-02"),
			PipelineVersion: p.config.version,
			PlanetCount:     len(valid),
			Citation:        catalog.SourceCitation,
		},
		Planets: valid,
	}

	result := &Result{
		Dataset:     dataset,
		Select:      selectStats,
		Clean:       cleanStats,
		Enrich:      enrichStats,
		Final:       finalStats,
		DatasetPath: filepath.Join(p.config.finalDir, DatasetFile),
		ReportPath:  filepath.Join(p.config.finalDir, ReportFile),
	}

	if err := output.WriteJSON(result.DatasetPath, dataset); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, finalStats, processedAt); err != nil {
		return nil, err
	}
	if err := output.WriteText(result.ReportPath, buf.Bytes()); err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("planets", len(valid)).
		Int("issues", len(finalStats.Issues)).
		Str("dataset", result.DatasetPath).
		Str("report", result.ReportPath).
		Msg("pipeline complete")

	return result, nil
}

func (p *Pipeline) logSelection(stats pipeline.SelectStats) {
	event := p.logger.Info().
		Int("total", stats.Total).
		Int("default", stats.Default).
		Int("selected", stats.Selected).
		Int("unique", stats.UniquePlanets)
	if stats.YearMin != 0 {
		event = event.Int("year_min", stats.YearMin).Int("year_max", stats.YearMax)
	}
	event.Msg("selected default parameter sets")

	if duplicates := stats.Duplicates(); duplicates > 0 {
		p.logger.Warn().
			Int("duplicates", duplicates).
			Msg("row count does not match unique planet names")
	}
}

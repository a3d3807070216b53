package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stellarview/exomap"
	"github.com/stellarview/exomap/cmd/exomap/app"
	"github.com/stellarview/exomap/internal/cmd/output"
)

// newRunCmd builds the run command, which executes the full pipeline.
func newRunCmd(a *app.App) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full catalog transformation pipeline",
		Long: `Run the four-stage pipeline end to end:

  1. Select the canonical, non-controversial parameter set per planet
  2. Normalize fields, derive missing separations, classify each planet
  3. Merge curated narrative content and tag field provenance
  4. Validate the dataset and write it with a statistics report

A missing archive extract is fatal. Per-record problems (unparseable
numbers, missing orbital periods) are resolved with safe defaults and
reported in the statistics, never as errors.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, a)
		},
	}

	config := a.Config()
	flags := runCmd.Flags()
	flags.StringVar(&config.DataDir, "data-dir", config.DataDir, "root of the data directory layout")
	flags.StringVar(&config.NarrativePath, "narrative", config.NarrativePath, "path to the notable-planets narrative YAML")
	flags.StringVar(&config.DownloadDate, "download-date", config.DownloadDate, "archive download date recorded in metadata")
	flags.BoolVar(&config.KeepIntermediate, "keep-intermediate", config.KeepIntermediate, "persist the filtered row subset as CSV")

	return runCmd
}

func runPipeline(cmd *cobra.Command, a *app.App) error {
	// Rebuild the logger: flag parsing may have changed levels.
	logger := app.NewLogger(a.Config())

	opts := []exomap.Option{
		exomap.WithDataDir(a.Config().DataDir),
		exomap.WithVersion(a.Version()),
		exomap.WithLogger(&logger),
		exomap.WithKeepIntermediate(a.Config().KeepIntermediate),
	}
	if a.Config().NarrativePath != "" {
		opts = append(opts, exomap.WithNarrativePath(a.Config().NarrativePath))
	}
	if a.Config().DownloadDate != "" {
		opts = append(opts, exomap.WithDownloadDate(a.Config().DownloadDate))
	}

	pipeline, err := exomap.New(opts...)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	format := output.DetectFormat(a.Config().Output)
	if format == output.FormatTable {
		if err := printSummary(result); err != nil {
			return err
		}
		fmt.Printf("\nDataset: %s\nReport:  %s\n", result.DatasetPath, result.ReportPath)
		return nil
	}

	formatter := output.NewFormatter(format)
	return formatter.Format(os.Stdout, summary(result))
}

// runSummary is the machine-readable shape of a pipeline run.
type runSummary struct {
	RowsRead          int    `json:"rowsRead" yaml:"rowsRead"`
	RowsSelected      int    `json:"rowsSelected" yaml:"rowsSelected"`
	UniquePlanets     int    `json:"uniquePlanets" yaml:"uniquePlanets"`
	DuplicateDefaults int    `json:"duplicateDefaults" yaml:"duplicateDefaults"`
	DroppedNoPeriod   int    `json:"droppedNoPeriod" yaml:"droppedNoPeriod"`
	DerivedSeparation int    `json:"derivedSeparation" yaml:"derivedSeparation"`
	NotablePlanets    int    `json:"notablePlanets" yaml:"notablePlanets"`
	ValidPlanets      int    `json:"validPlanets" yaml:"validPlanets"`
	ValidationIssues  int    `json:"validationIssues" yaml:"validationIssues"`
	DatasetPath       string `json:"datasetPath" yaml:"datasetPath"`
	ReportPath        string `json:"reportPath" yaml:"reportPath"`
}

func summary(result *exomap.Result) runSummary {
	return runSummary{
		RowsRead:          result.Select.Total,
		RowsSelected:      result.Select.Selected,
		UniquePlanets:     result.Select.UniquePlanets,
		DuplicateDefaults: result.Select.Duplicates(),
		DroppedNoPeriod:   result.Clean.MissingPeriod,
		DerivedSeparation: result.Clean.DerivedSeparation,
		NotablePlanets:    result.Enrich.Notable,
		ValidPlanets:      len(result.Dataset.Planets),
		ValidationIssues:  len(result.Final.Issues),
		DatasetPath:       result.DatasetPath,
		ReportPath:        result.ReportPath,
	}
}

func printSummary(result *exomap.Result) error {
	s := summary(result)
	formatter := output.NewFormatter(output.FormatTable)
	return formatter.Format(os.Stdout, output.Data{
		Headers: []string{"Stage", "Metric", "Value"},
		Rows: [][]string{
			{"select", "rows read", strconv.Itoa(s.RowsRead)},
			{"select", "rows selected", strconv.Itoa(s.RowsSelected)},
			{"select", "unique planets", strconv.Itoa(s.UniquePlanets)},
			{"select", "duplicate defaults", strconv.Itoa(s.DuplicateDefaults)},
			{"clean", "dropped (no period)", strconv.Itoa(s.DroppedNoPeriod)},
			{"clean", "derived separation", strconv.Itoa(s.DerivedSeparation)},
			{"enrich", "notable planets", strconv.Itoa(s.NotablePlanets)},
			{"finalize", "valid planets", strconv.Itoa(s.ValidPlanets)},
			{"finalize", "validation issues", strconv.Itoa(s.ValidationIssues)},
		},
	})
}

// Package report renders the human-readable statistics report that
// accompanies the final dataset. The report is the single channel through
// which recoverable pipeline issues become visible.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stellarview/exomap/pkg/catalog"
	"github.com/stellarview/exomap/pkg/pipeline"
)

// maxIssues caps the validation issues listed in the report; the remainder
// is summarized as a count.
const maxIssues = 20

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// Write renders the statistics report as markdown.
func Write(w io.Writer, stats pipeline.FinalStats, generatedAt time.Time) error {
	doc := md.NewMarkdown(w)

	doc.H1("Exoplanet Dataset Statistics").
		PlainTextf("Generated: %s", generatedAt.Format("2006-01-02 15:04:05")).
		LF()

	overview(doc, stats)
	methods(doc, stats)
	types(doc, stats)
	facilities(doc, stats)
	timeline(doc, stats)
	issues(doc, stats)

	return doc.Build()
}

func overview(doc *md.Markdown, stats pipeline.FinalStats) {
	doc.H2("Overview").Table(md.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Total planets", count(stats.Total)},
			{"With mass measurement", withPercent(stats.WithMass, stats.Total)},
			{"With radius measurement", withPercent(stats.WithRadius, stats.Total)},
			{"With temperature estimate", withPercent(stats.WithTemperature, stats.Total)},
			{"With narrative description", count(stats.WithNarrative)},
		},
	})
}

func methods(doc *md.Markdown, stats pipeline.FinalStats) {
	rows := make([][]string, 0, len(stats.Methods))
	for _, method := range sortedKeys(stats.Methods) {
		n := stats.Methods[catalog.Method(method)]
		rows = append(rows, []string{label(method), count(n), percent(n, stats.Total)})
	}
	doc.H2("Detection Methods").Table(md.TableSet{
		Header: []string{"Method", "Count", "Percentage"},
		Rows:   rows,
	})
}

func types(doc *md.Markdown, stats pipeline.FinalStats) {
	rows := make([][]string, 0, len(stats.Types))
	for _, planetType := range sortedKeys(stats.Types) {
		n := stats.Types[catalog.Type(planetType)]
		rows = append(rows, []string{label(planetType), count(n), percent(n, stats.Total)})
	}
	doc.H2("Planet Types").Table(md.TableSet{
		Header: []string{"Type", "Count", "Percentage"},
		Rows:   rows,
	})
}

func facilities(doc *md.Markdown, stats pipeline.FinalStats) {
	names := sortedKeys(stats.Facilities)
	if len(names) > 10 {
		names = names[:10]
	}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, count(stats.Facilities[name])})
	}
	doc.H2("Top Discovery Facilities").Table(md.TableSet{
		Header: []string{"Facility", "Count"},
		Rows:   rows,
	})
}

func timeline(doc *md.Markdown, stats pipeline.FinalStats) {
	decades := make([]int, 0, len(stats.Decades))
	for decade := range stats.Decades {
		decades = append(decades, decade)
	}
	sort.Ints(decades)

	rows := make([][]string, 0, len(decades))
	for _, decade := range decades {
		rows = append(rows, []string{fmt.Sprintf("%ds", decade), count(stats.Decades[decade])})
	}
	doc.H2("Discovery Timeline").Table(md.TableSet{
		Header: []string{"Decade", "Count"},
		Rows:   rows,
	})
}

func issues(doc *md.Markdown, stats pipeline.FinalStats) {
	if len(stats.Issues) == 0 {
		return
	}

	doc.H2("Data Issues").
		PlainTextf("%d planets excluded:", len(stats.Issues)).
		LF()

	listed := stats.Issues
	truncated := 0
	if len(listed) > maxIssues {
		truncated = len(listed) - maxIssues
		listed = listed[:maxIssues]
	}

	items := make([]string, 0, len(listed)+1)
	for _, issue := range listed {
		items = append(items, fmt.Sprintf("%s: %s", issue.Name, issue.Reason))
	}
	if truncated > 0 {
		items = append(items, fmt.Sprintf("... and %d more", truncated))
	}
	doc.BulletList(items...)
}

// sortedKeys orders category counters by count descending, ties
// alphabetically, so the report is deterministic across runs.
func sortedKeys[K ~string](counts map[K]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, string(key))
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := counts[K(keys[i])], counts[K(keys[j])]
		if ci != cj {
			return ci > cj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// label renders a category key like "hot-jupiter" as "Hot Jupiter".
func label(key string) string {
	return titler.String(strings.ReplaceAll(key, "-", " "))
}

func count(n int) string {
	return printer.Sprintf("%d", n)
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

func withPercent(n, total int) string {
	return fmt.Sprintf("%s (%s)", count(n), percent(n, total))
}

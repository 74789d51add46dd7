// Package report writes a full EDA run to disk: markdown summary, report
// tables as CSV, optional plots, and run metadata. Each run gets its own
// directory keyed by a generated ID.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/crgrady/tablescope/internal/dataset"
	"github.com/crgrady/tablescope/internal/eda"
	"github.com/crgrady/tablescope/internal/plotgrid"
)

// Options controls what a run includes.
type Options struct {
	// Target enables plot output against this column when non-empty.
	Target string
	// PlotKind selects the chart kind for plots; defaults to Hist.
	PlotKind plotgrid.Kind
	// Correlations adds a Pearson correlation matrix to the summary.
	Correlations bool
	// PlotWidth and PlotHeight size the PNG canvas; zero picks defaults.
	PlotWidth  vg.Length
	PlotHeight vg.Length
}

// Run describes a written report bundle.
type Run struct {
	ID        string    `yaml:"id"`
	Source    string    `yaml:"source"`
	CreatedAt time.Time `yaml:"created_at"`
	Target    string    `yaml:"target,omitempty"`
	PlotKind  string    `yaml:"plot_kind,omitempty"`

	Dir string `yaml:"-"`
}

// Write computes all reports for ds and writes them under dir/<run-id>/.
func Write(dir, source string, ds *dataset.Dataset, opt Options) (*Run, error) {
	nulls, err := eda.NullReport(ds)
	if err != nil {
		return nil, fmt.Errorf("null report: %w", err)
	}
	outliers, err := eda.OutlierReport(ds)
	if err != nil {
		return nil, fmt.Errorf("outlier report: %w", err)
	}
	stats, err := eda.Summary(ds)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	var corr *eda.CorrMatrix
	if opt.Correlations {
		if corr, err = eda.Correlations(ds); err != nil {
			return nil, fmt.Errorf("correlations: %w", err)
		}
	}

	run := &Run{
		ID:        uuid.NewString(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Target:    opt.Target,
	}
	if opt.Target != "" {
		if opt.PlotKind == "" {
			opt.PlotKind = plotgrid.Hist
		}
		run.PlotKind = string(opt.PlotKind)
	}
	run.Dir = filepath.Join(dir, run.ID)
	if err := os.MkdirAll(run.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir run dir: %w", err)
	}

	md := Markdown(source, ds, nulls, outliers, stats, corr)
	if err := os.WriteFile(filepath.Join(run.Dir, "summary.md"), []byte(md), 0o644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	if err := writeCSV(filepath.Join(run.Dir, "nulls.csv"), nulls); err != nil {
		return nil, err
	}
	if err := writeCSV(filepath.Join(run.Dir, "outliers.csv"), outliers); err != nil {
		return nil, err
	}

	if opt.Target != "" {
		if err := writePlots(run.Dir, ds, opt); err != nil {
			return nil, err
		}
	}

	meta, err := yaml.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(run.Dir, "metadata.yaml"), meta, 0o644); err != nil {
		return nil, fmt.Errorf("write metadata: %w", err)
	}
	return run, nil
}

func writeCSV(path string, df dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writePlots(dir string, ds *dataset.Dataset, opt Options) error {
	grid, err := plotgrid.Build(ds, opt.Target, opt.PlotKind)
	if err != nil {
		return fmt.Errorf("build plots: %w", err)
	}
	if grid.Rows == 0 {
		return nil
	}
	w, h := opt.PlotWidth, opt.PlotHeight
	if w == 0 {
		w = vg.Length(grid.Cols) * 10 * vg.Centimeter
	}
	if h == 0 {
		h = vg.Length(grid.Rows) * 8 * vg.Centimeter
	}
	f, err := os.Create(filepath.Join(dir, "plots.png"))
	if err != nil {
		return fmt.Errorf("create plots.png: %w", err)
	}
	defer f.Close()
	if err := grid.WritePNG(f, w, h); err != nil {
		return fmt.Errorf("render plots: %w", err)
	}
	return nil
}

// Markdown renders the run summary. Sections mirror what the CLI prints,
// plus report tables and the optional correlation matrix.
func Markdown(source string, ds *dataset.Dataset, nulls, outliers dataframe.DataFrame, stats []eda.ColumnStats, corr *eda.CorrMatrix) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if source != "" {
		fmt.Fprintf(&b, "File: %s\n", filepath.Base(source))
	}
	c := eda.Classify(ds)
	fmt.Fprintf(&b, "Rows: %d\n", ds.NumRows())
	fmt.Fprintf(&b, "Columns: %d (%d numeric, %d categorical)\n\n", ds.NumCols(), len(c.Numeric), len(c.Categorical))

	b.WriteString("[SCHEMA]\n")
	for _, name := range ds.Names() {
		fmt.Fprintf(&b, "- %s: %s", name, ds.Kind(name))
		if miss := ds.MissingCount(name); miss > 0 && ds.NumRows() > 0 {
			fmt.Fprintf(&b, " (missing %.1f%%)", float64(miss)*100/float64(ds.NumRows()))
		}
		b.WriteString("\n")
	}

	if len(stats) > 0 {
		b.WriteString("\n[NUMERIC PROFILE]\n")
		for _, s := range stats {
			fmt.Fprintf(&b, "- %s: n=%d, min %.4g, max %.4g, mean %.4g, std %.4g\n",
				s.Name, s.Count, s.Min, s.Max, s.Mean, s.Std)
		}
	}

	writeTable(&b, "[MISSING VALUES]", nulls)
	writeTable(&b, "[OUTLIERS]", outliers)

	if corr != nil && len(corr.Columns) > 1 {
		b.WriteString("\n[CORRELATIONS]\n")
		for i, a := range corr.Columns {
			for j, cb := range corr.Columns {
				if j >= i {
					break
				}
				fmt.Fprintf(&b, "- %s ~ %s: %.3f\n", a, cb, corr.Values[i][j])
			}
		}
	}
	return b.String()
}

func writeTable(b *strings.Builder, title string, df dataframe.DataFrame) {
	fmt.Fprintf(b, "\n%s\n", title)
	if df.Nrow() == 0 {
		b.WriteString("none\n")
		return
	}
	records := df.Records()
	for i, row := range records {
		fmt.Fprintf(b, "| %s |\n", strings.Join(row, " | "))
		if i == 0 {
			b.WriteString("|" + strings.Repeat(" --- |", len(row)) + "\n")
		}
	}
}

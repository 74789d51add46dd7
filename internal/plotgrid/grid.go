// Package plotgrid builds grid layouts of per-feature EDA charts. The grid
// is an explicit value constructed by Build and rendered separately; there
// is no shared figure state between calls.
package plotgrid

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/crgrady/tablescope/internal/dataset"
	"github.com/crgrady/tablescope/internal/eda"
)

// Kind selects the chart drawn for each numeric feature.
type Kind string

const (
	// Scatter plots each feature against the target column.
	Scatter Kind = "scatter"
	// Box plots each feature's distribution alone.
	Box Kind = "box"
	// Hist plots each feature's histogram with an overlaid density curve.
	Hist Kind = "hist"
)

// maxCols caps the number of charts per grid row.
const maxCols = 5

// Grid is a rectangular layout of built plots, row-major. Cells past the
// feature count are nil and render blank.
type Grid struct {
	Rows  int
	Cols  int
	Cells []*plot.Plot
}

// At returns the plot at the given cell, or nil for a blank cell.
func (g *Grid) At(row, col int) *plot.Plot {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return g.Cells[row*g.Cols+col]
}

// Build lays out one chart per numeric feature column, at most five per
// row. The target column is excluded from the features; it must exist even
// for chart kinds that do not use it. Unknown kinds are an error rather
// than a silently blank grid.
func Build(ds *dataset.Dataset, target string, kind Kind) (*Grid, error) {
	switch kind {
	case Scatter, Box, Hist:
	default:
		return nil, fmt.Errorf("unsupported plot kind %q", kind)
	}
	if !ds.Has(target) {
		return nil, fmt.Errorf("column not found: %s", target)
	}

	var features []string
	for _, name := range eda.Classify(ds).Numeric {
		if name != target {
			features = append(features, name)
		}
	}
	if len(features) == 0 {
		return &Grid{}, nil
	}

	cols := len(features)
	if cols > maxCols {
		cols = maxCols
	}
	rows := (len(features)-1)/maxCols + 1
	g := &Grid{Rows: rows, Cols: cols, Cells: make([]*plot.Plot, rows*cols)}

	var targetVals []float64
	if kind == Scatter {
		s, err := ds.Column(target)
		if err != nil {
			return nil, err
		}
		targetVals = s.Float()
	}

	for i, name := range features {
		p, err := buildCell(ds, name, target, targetVals, kind)
		if err != nil {
			return nil, fmt.Errorf("plot %s: %w", name, err)
		}
		g.Cells[i] = p
	}
	return g, nil
}

func buildCell(ds *dataset.Dataset, name, target string, targetVals []float64, kind Kind) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = name

	switch kind {
	case Scatter:
		s, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		raw := s.Float()
		var pts plotter.XYs
		for i, x := range raw {
			if i >= len(targetVals) {
				break
			}
			y := targetVals[i]
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			pts = append(pts, plotter.XY{X: x, Y: y})
		}
		if len(pts) > 0 {
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, err
			}
			p.Add(sc)
		}
		p.X.Label.Text = name
		p.Y.Label.Text = target

	case Box:
		vals, err := ds.NumericColumn(name)
		if err != nil {
			return nil, err
		}
		if len(vals) > 0 {
			b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(vals))
			if err != nil {
				return nil, err
			}
			p.Add(b)
		}
		p.NominalX(name)

	case Hist:
		vals, err := ds.NumericColumn(name)
		if err != nil {
			return nil, err
		}
		if len(vals) > 0 {
			h, err := plotter.NewHist(plotter.Values(vals), 16)
			if err != nil {
				return nil, err
			}
			h.Normalize(1)
			p.Add(h)
			if line := densityLine(vals); line != nil {
				p.Add(line)
			}
		}
		p.X.Label.Text = name
		p.Y.Label.Text = "density"
	}
	return p, nil
}

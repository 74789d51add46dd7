package eda

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/crgrady/tablescope/internal/dataset"
)

// ColumnStats is the numeric profile of a single column.
type ColumnStats struct {
	Name    string
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Std     float64
}

// Summary profiles every numeric column: non-missing count, missing count,
// min, max, mean and sample standard deviation. Columns with no usable
// values report zeros for the statistics.
func Summary(ds *dataset.Dataset) ([]ColumnStats, error) {
	var out []ColumnStats
	for _, name := range Classify(ds).Numeric {
		vals, err := ds.NumericColumn(name)
		if err != nil {
			return nil, err
		}
		cs := ColumnStats{Name: name, Count: len(vals), Missing: ds.MissingCount(name)}
		if len(vals) > 0 {
			cs.Min = floats.Min(vals)
			cs.Max = floats.Max(vals)
			cs.Mean, cs.Std = stat.MeanStdDev(vals, nil)
			if len(vals) == 1 {
				cs.Std = 0
			}
		}
		out = append(out, cs)
	}
	return out, nil
}

// CorrMatrix is a symmetric Pearson correlation matrix over numeric
// columns, row-major: Values[i][j] correlates Columns[i] with Columns[j].
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlations computes pairwise Pearson correlations across numeric
// columns. For each pair only rows where both values are present are used;
// pairs with fewer than two shared rows, or with zero variance, report 0.
func Correlations(ds *dataset.Dataset) (*CorrMatrix, error) {
	names := Classify(ds).Numeric
	cols := make([][]float64, len(names))
	for i, name := range names {
		s, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = s.Float() // keeps NaN so rows stay aligned
	}

	m := &CorrMatrix{Columns: names, Values: make([][]float64, len(names))}
	for i := range names {
		m.Values[i] = make([]float64, len(names))
		m.Values[i][i] = 1
	}
	for i := 1; i < len(names); i++ {
		for j := 0; j < i; j++ {
			r := pairCorrelation(cols[i], cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

func pairCorrelation(x, y []float64) float64 {
	var xs, ys []float64
	for k := range x {
		if isNaN(x[k]) || isNaN(y[k]) {
			continue
		}
		xs = append(xs, x[k])
		ys = append(ys, y[k])
	}
	if len(xs) < 2 {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if isNaN(r) {
		return 0
	}
	return r
}

func isNaN(v float64) bool { return v != v }

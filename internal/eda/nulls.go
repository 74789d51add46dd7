package eda

import (
	"errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/crgrady/tablescope/internal/dataset"
)

// ErrEmptyTable is returned when a percentage over zero rows is undefined.
var ErrEmptyTable = errors.New("empty table")

// NullReport returns one row per column that has at least one missing
// value, in table order, with columns Column / Type / TotalMissing /
// Percent. Numeric columns are labeled "Numerical"; every other kind,
// categorical or not, is labeled "Categorical". A dataset with columns but
// zero rows yields ErrEmptyTable since the percentage divisor is zero.
func NullReport(ds *dataset.Dataset) (dataframe.DataFrame, error) {
	total := ds.NumRows()
	if ds.NumCols() > 0 && total == 0 {
		return dataframe.DataFrame{}, ErrEmptyTable
	}

	var (
		cols   []string
		labels []string
		counts []int
		pcts   []float64
	)
	for _, name := range ds.Names() {
		miss := ds.MissingCount(name)
		if miss == 0 {
			continue
		}
		label := "Categorical"
		if ds.Kind(name) == dataset.Numeric {
			label = "Numerical"
		}
		cols = append(cols, name)
		labels = append(labels, label)
		counts = append(counts, miss)
		pcts = append(pcts, float64(miss)/float64(total)*100)
	}
	return dataframe.New(
		series.New(cols, series.String, "Column"),
		series.New(labels, series.String, "Type"),
		series.New(counts, series.Int, "TotalMissing"),
		series.New(pcts, series.Float, "Percent"),
	), nil
}

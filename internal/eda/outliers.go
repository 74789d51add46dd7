package eda

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/crgrady/tablescope/internal/dataset"
)

// iqrMultiplier is the classic Tukey inner-fence factor.
const iqrMultiplier = 1.5

// Fences returns the IQR outlier bounds for the given values. Missing
// values must already be dropped. Fewer than two values, or all-identical
// values, collapse both fences onto the same point.
func Fences(values []float64) (lower, upper float64) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	cutoff := (q3 - q1) * iqrMultiplier
	return q1 - cutoff, q3 + cutoff
}

// OutlierReport returns one row per numeric column that has values strictly
// outside its IQR fences, with columns Feature / TotalOutliers / UpperLimit
// / LowerLimit. Rows whose computed fence equals exactly zero are
// suppressed; that mirrors the long-standing report behavior and is covered
// by tests rather than patched over.
func OutlierReport(ds *dataset.Dataset) (dataframe.DataFrame, error) {
	var (
		feats  []string
		totals []int
		uppers []float64
		lowers []float64
	)
	for _, name := range Classify(ds).Numeric {
		vals, err := ds.NumericColumn(name)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		if len(vals) == 0 {
			continue
		}
		lower, upper := Fences(vals)
		total := 0
		for _, v := range vals {
			if v > upper || v < lower {
				total++
			}
		}
		if total == 0 || upper == 0 || lower == 0 {
			continue
		}
		feats = append(feats, name)
		totals = append(totals, total)
		uppers = append(uppers, upper)
		lowers = append(lowers, lower)
	}
	return dataframe.New(
		series.New(feats, series.String, "Feature"),
		series.New(totals, series.Int, "TotalOutliers"),
		series.New(uppers, series.Float, "UpperLimit"),
		series.New(lowers, series.Float, "LowerLimit"),
	), nil
}

// quantile computes the q-th quantile of sorted values using linear
// interpolation between the two nearest ranks (pos = q*(n-1)).
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

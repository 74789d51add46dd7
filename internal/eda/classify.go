// Package eda computes exploratory summaries over a loaded Dataset: column
// classification, missing-value and IQR outlier reports, and numeric
// profiles. Every function is a fresh pass over the table; nothing is
// cached and the table is never mutated.
package eda

import (
	"fmt"
	"io"

	"github.com/crgrady/tablescope/internal/dataset"
)

// Classification partitions column names by kind, in table order. Columns
// tagged Other (booleans and the like) appear in neither list.
type Classification struct {
	Numeric     []string
	Categorical []string
}

// Classify splits the dataset's columns into numeric and categorical name
// lists. The result is deterministic for an unchanged dataset.
func Classify(ds *dataset.Dataset) Classification {
	var c Classification
	for _, name := range ds.Names() {
		switch ds.Kind(name) {
		case dataset.Numeric:
			c.Numeric = append(c.Numeric, name)
		case dataset.Categorical:
			c.Categorical = append(c.Categorical, name)
		}
	}
	return c
}

// Describe writes a short shape summary of the dataset.
func Describe(w io.Writer, ds *dataset.Dataset) {
	c := Classify(ds)
	fmt.Fprintf(w, "Samples:              %d\n", ds.NumRows())
	fmt.Fprintf(w, "Features:             %d\n", ds.NumCols())
	fmt.Fprintf(w, "Categorical features: %d\n", len(c.Categorical))
	fmt.Fprintf(w, "Numeric features:     %d\n", len(c.Numeric))
}

package dataset

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Kind is the column type tag established once when a Dataset is built.
// Later passes consult the tag instead of re-probing series types.
type Kind int

const (
	// Other covers columns that are neither numeric nor categorical,
	// e.g. booleans. They are excluded from classification on purpose.
	Other Kind = iota
	Numeric
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "other"
	}
}

// Dataset wraps an immutable gota DataFrame together with per-column Kind
// tags. The zero value behaves like a table with no rows and no columns.
type Dataset struct {
	df    dataframe.DataFrame
	names []string
	kinds map[string]Kind
}

// FromDataFrame tags each column of df and wraps it. The frame is not
// copied; callers must not mutate it afterwards.
func FromDataFrame(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: %w", df.Err)
	}
	names := df.Names()
	types := df.Types()
	kinds := make(map[string]Kind, len(names))
	for i, name := range names {
		kinds[name] = kindOf(types[i])
	}
	return &Dataset{df: df, names: names, kinds: kinds}, nil
}

func kindOf(t series.Type) Kind {
	switch t {
	case series.Int, series.Float:
		return Numeric
	case series.String:
		return Categorical
	default:
		return Other
	}
}

// Names returns column names in table order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Kind returns the tag for the named column, or Other if it does not exist.
func (d *Dataset) Kind(name string) Kind {
	return d.kinds[name]
}

// Has reports whether the named column exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.kinds[name]
	return ok
}

func (d *Dataset) NumRows() int { return d.df.Nrow() }
func (d *Dataset) NumCols() int { return len(d.names) }

// Column returns the named series.
func (d *Dataset) Column(name string) (series.Series, error) {
	if !d.Has(name) {
		return series.Series{}, fmt.Errorf("column not found: %s", name)
	}
	return d.df.Col(name), nil
}

// NumericColumn returns the column's values as floats with missing entries
// dropped. Non-numeric columns yield an error.
func (d *Dataset) NumericColumn(name string) ([]float64, error) {
	s, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	if d.kinds[name] != Numeric {
		return nil, fmt.Errorf("column %s is not numeric", name)
	}
	vals := s.Float()
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// MissingCount returns the number of missing entries in the named column,
// or 0 if the column does not exist.
func (d *Dataset) MissingCount(name string) int {
	if !d.Has(name) {
		return 0
	}
	n := 0
	for _, na := range d.df.Col(name).IsNaN() {
		if na {
			n++
		}
	}
	return n
}

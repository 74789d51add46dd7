package eda

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-gota/gota/series"
)

func TestNullReportClean(t *testing.T) {
	ds := mustDataset(t,
		series.New([]float64{1, 2, 3}, series.Float, "x"),
		series.New([]string{"a", "b", "c"}, series.String, "g"),
	)
	rep, err := NullReport(ds)
	if err != nil {
		t.Fatalf("NullReport: %v", err)
	}
	if rep.Nrow() != 0 {
		t.Errorf("clean table produced %d report rows", rep.Nrow())
	}
}

func TestNullReportCounts(t *testing.T) {
	ds := mustDataset(t,
		series.New([]float64{1, math.NaN(), 3, math.NaN()}, series.Float, "x"),
		series.New([]string{"a", "NaN", "c", "d"}, series.String, "g"),
		series.New([]float64{1, 2, 3, 4}, series.Float, "clean"),
	)
	rep, err := NullReport(ds)
	if err != nil {
		t.Fatalf("NullReport: %v", err)
	}
	if rep.Nrow() != 2 {
		t.Fatalf("report rows = %d, want 2", rep.Nrow())
	}

	cols := rep.Col("Column").Records()
	if want := []string{"x", "g"}; !reflect.DeepEqual(cols, want) {
		t.Errorf("columns = %v, want %v", cols, want)
	}
	labels := rep.Col("Type").Records()
	if want := []string{"Numerical", "Categorical"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("type labels = %v, want %v", labels, want)
	}

	counts := rep.Col("TotalMissing").Float()
	if counts[0] != 2 || counts[1] != 1 {
		t.Errorf("missing counts = %v, want [2 1]", counts)
	}
	pcts := rep.Col("Percent").Float()
	if pcts[0] != 50 || pcts[1] != 25 {
		t.Errorf("percentages = %v, want [50 25]", pcts)
	}
	for _, p := range pcts {
		if p < 0 || p > 100 {
			t.Errorf("percentage %v out of [0,100]", p)
		}
	}
}

func TestNullReportEmptyTable(t *testing.T) {
	ds := mustDataset(t,
		series.New([]float64{}, series.Float, "x"),
	)
	_, err := NullReport(ds)
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("err = %v, want ErrEmptyTable", err)
	}
}

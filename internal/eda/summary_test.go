package eda

import (
	"math"
	"testing"

	"github.com/go-gota/gota/series"
)

func TestSummary(t *testing.T) {
	dsX := mustDataset(t, series.New([]float64{2, 4, 4, 4, 5, 5, 7, 9}, series.Float, "x"))
	stats, err := Summary(dsX)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stats length = %d, want 1", len(stats))
	}
	s := stats[0]
	if s.Name != "x" || s.Count != 8 || s.Missing != 0 {
		t.Errorf("unexpected stats header: %+v", s)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("min/max = %v/%v, want 2/9", s.Min, s.Max)
	}
	if s.Mean != 5 {
		t.Errorf("mean = %v, want 5", s.Mean)
	}
	// Sample standard deviation of the classic example set.
	if want := math.Sqrt(32.0 / 7.0); math.Abs(s.Std-want) > 1e-12 {
		t.Errorf("std = %v, want %v", s.Std, want)
	}
}

func TestSummaryCountsMissing(t *testing.T) {
	ds := mustDataset(t, series.New([]float64{1, math.NaN(), 3}, series.Float, "y"))
	stats, err := Summary(ds)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if stats[0].Count != 2 || stats[0].Missing != 1 {
		t.Errorf("count/missing = %d/%d, want 2/1", stats[0].Count, stats[0].Missing)
	}
}

func TestCorrelationsLinear(t *testing.T) {
	ds := mustDataset(t,
		series.New([]float64{1, 2, 3, 4}, series.Float, "x"),
		series.New([]float64{2, 4, 6, 8}, series.Float, "y"),
	)
	m, err := Correlations(ds)
	if err != nil {
		t.Fatalf("Correlations: %v", err)
	}
	if len(m.Columns) != 2 {
		t.Fatalf("columns = %v", m.Columns)
	}
	if m.Values[0][0] != 1 || m.Values[1][1] != 1 {
		t.Errorf("diagonal not 1: %v", m.Values)
	}
	if r := m.Values[0][1]; math.Abs(r-1) > 1e-12 {
		t.Errorf("r(x,y) = %v, want 1", r)
	}
	if m.Values[0][1] != m.Values[1][0] {
		t.Errorf("matrix not symmetric: %v", m.Values)
	}
}

func TestCorrelationsSkipMissingRows(t *testing.T) {
	ds := mustDataset(t,
		series.New([]float64{1, 2, math.NaN(), 4}, series.Float, "x"),
		series.New([]float64{2, 4, 100, 8}, series.Float, "y"),
	)
	m, err := Correlations(ds)
	if err != nil {
		t.Fatalf("Correlations: %v", err)
	}
	// Row 3 is dropped for the pair; the rest are perfectly linear.
	if r := m.Values[0][1]; math.Abs(r-1) > 1e-12 {
		t.Errorf("r = %v, want 1", r)
	}
}

func TestCorrelationsZeroVariance(t *testing.T) {
	ds := mustDataset(t,
		series.New([]float64{1, 1, 1}, series.Float, "flat"),
		series.New([]float64{1, 2, 3}, series.Float, "y"),
	)
	m, err := Correlations(ds)
	if err != nil {
		t.Fatalf("Correlations: %v", err)
	}
	if r := m.Values[0][1]; r != 0 {
		t.Errorf("zero-variance pair r = %v, want 0", r)
	}
}

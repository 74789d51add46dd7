package plotgrid

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot/vg"

	"github.com/crgrady/tablescope/internal/dataset"
)

func buildDataset(t *testing.T, numericFeatures int) *dataset.Dataset {
	t.Helper()
	ss := []series.Series{
		series.New([]float64{1, 2, 3, 4}, series.Float, "target"),
	}
	for i := 0; i < numericFeatures; i++ {
		ss = append(ss, series.New([]float64{1, 2, 3, 4}, series.Float, fmt.Sprintf("f%d", i)))
	}
	ds, err := dataset.FromDataFrame(dataframe.New(ss...))
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return ds
}

func TestBuildLayout(t *testing.T) {
	tests := []struct {
		features   int
		rows, cols int
	}{
		{1, 1, 1},
		{4, 1, 4},
		{5, 1, 5},
		{6, 2, 5},
		{7, 2, 5},
		{10, 2, 5},
		{11, 3, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d features", tt.features), func(t *testing.T) {
			g, err := Build(buildDataset(t, tt.features), "target", Box)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if g.Rows != tt.rows || g.Cols != tt.cols {
				t.Errorf("layout = (%d, %d), want (%d, %d)", g.Rows, g.Cols, tt.rows, tt.cols)
			}
			filled := 0
			for _, c := range g.Cells {
				if c != nil {
					filled++
				}
			}
			if filled != tt.features {
				t.Errorf("filled cells = %d, want %d", filled, tt.features)
			}
		})
	}
}

func TestBuildSurplusCellsBlank(t *testing.T) {
	g, err := Build(buildDataset(t, 7), "target", Hist)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 7; i < len(g.Cells); i++ {
		if g.Cells[i] != nil {
			t.Errorf("cell %d not blank", i)
		}
	}
	if g.At(1, 4) != nil {
		t.Error("At(1,4) should be blank")
	}
	if g.At(0, 0) == nil {
		t.Error("At(0,0) should hold a plot")
	}
}

func TestBuildUnsupportedKind(t *testing.T) {
	_, err := Build(buildDataset(t, 2), "target", Kind("violin"))
	if err == nil || !strings.Contains(err.Error(), "unsupported plot kind") {
		t.Errorf("err = %v, want unsupported plot kind", err)
	}
}

func TestBuildMissingTarget(t *testing.T) {
	_, err := Build(buildDataset(t, 2), "nope", Scatter)
	if err == nil || !strings.Contains(err.Error(), "column not found") {
		t.Errorf("err = %v, want column not found", err)
	}
}

func TestBuildNoNumericFeatures(t *testing.T) {
	ds, err := dataset.FromDataFrame(dataframe.New(
		series.New([]float64{1, 2}, series.Float, "target"),
		series.New([]string{"a", "b"}, series.String, "g"),
	))
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	g, err := Build(ds, "target", Scatter)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Rows != 0 || g.Cols != 0 {
		t.Errorf("layout = (%d, %d), want empty", g.Rows, g.Cols)
	}
	var buf bytes.Buffer
	if err := g.WritePNG(&buf, 10*vg.Centimeter, 10*vg.Centimeter); err == nil {
		t.Error("WritePNG on empty grid did not fail")
	}
}

func TestWritePNG(t *testing.T) {
	for _, kind := range []Kind{Scatter, Box, Hist} {
		t.Run(string(kind), func(t *testing.T) {
			g, err := Build(buildDataset(t, 3), "target", kind)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			var buf bytes.Buffer
			if err := g.WritePNG(&buf, 30*vg.Centimeter, 10*vg.Centimeter); err != nil {
				t.Fatalf("WritePNG: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
				t.Error("output does not look like a PNG")
			}
		})
	}
}

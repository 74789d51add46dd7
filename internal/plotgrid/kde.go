package plotgrid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

// kdeSteps is the number of sample points on the density curve.
const kdeSteps = 128

// densityLine estimates the column's density with a Gaussian kernel and
// Silverman's bandwidth. Returns nil when the data cannot support an
// estimate (fewer than two points or zero spread).
func densityLine(vals []float64) *plotter.Line {
	n := len(vals)
	if n < 2 {
		return nil
	}
	_, std := stat.MeanStdDev(vals, nil)
	if std <= 0 || math.IsNaN(std) {
		return nil
	}
	bw := 1.06 * std * math.Pow(float64(n), -0.2)

	lo := floats.Min(vals) - 3*bw
	hi := floats.Max(vals) + 3*bw
	step := (hi - lo) / float64(kdeSteps-1)

	pts := make(plotter.XYs, kdeSteps)
	norm := 1 / (float64(n) * bw * math.Sqrt(2*math.Pi))
	for i := 0; i < kdeSteps; i++ {
		x := lo + float64(i)*step
		sum := 0.0
		for _, v := range vals {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		pts[i] = plotter.XY{X: x, Y: sum * norm}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil
	}
	return line
}

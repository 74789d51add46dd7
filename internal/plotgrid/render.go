package plotgrid

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WritePNG renders the grid onto a single PNG canvas. Blank cells are left
// empty.
func (g *Grid) WritePNG(w io.Writer, width, height vg.Length) error {
	if g.Rows == 0 || g.Cols == 0 {
		return errors.New("empty plot grid")
	}
	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: g.Rows, Cols: g.Cols,
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}

	plots := make([][]*plot.Plot, g.Rows)
	for r := 0; r < g.Rows; r++ {
		plots[r] = make([]*plot.Plot, g.Cols)
		for c := 0; c < g.Cols; c++ {
			plots[r][c] = g.At(r, c)
		}
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c, p := range plots[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Package sketch renders generated course geometry to an image file.
// It is a pure consumer of the boundary sample sequences and the
// centerline; nothing here feeds back into track semantics.
package sketch

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/course"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// tracer writes to trace with key 'sketch'
func tracer() tracing.Trace {
	return tracing.Select("sketch")
}

// Save draws the left and right boundary polylines and the derived
// centerline of a sampled course into an image file. The file format
// follows the filename extension (png, pdf, svg, …), as supported by
// gonum/plot.
func Save(s *course.Samples, title, filename string) error {
	if s == nil || s.N() == 0 {
		return fmt.Errorf("sketch: nothing to draw")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	left, err := boundaryLine(s.Left, color.RGBA{R: 0xB0, A: 0xFF})
	if err != nil {
		return err
	}
	right, err := boundaryLine(s.Right, color.RGBA{B: 0xB0, A: 0xFF})
	if err != nil {
		return err
	}
	centers := make([]racetrack.Pair, s.N())
	for i := range centers {
		centers[i] = (s.Left[i] + s.Right[i]).Scaled(0.5)
	}
	center, err := boundaryLine(centers, color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF})
	if err != nil {
		return err
	}
	center.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(left, right, center)
	p.Legend.Add("left", left)
	p.Legend.Add("right", right)
	p.Legend.Add("center", center)

	if err := p.Save(18*vg.Centimeter, 18*vg.Centimeter, filename); err != nil {
		return fmt.Errorf("sketch: saving %s: %w", filename, err)
	}
	tracer().Infof("sketched %d samples to %s", s.N(), filename)
	return nil
}

func boundaryLine(ps []racetrack.Pair, col color.Color) (*plotter.Line, error) {
	xys := make(plotter.XYs, 0, len(ps))
	for _, p := range ps {
		xys = append(xys, plotter.XY{X: p.X(), Y: p.Y()})
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("sketch: boundary line: %w", err)
	}
	line.Width = vg.Points(1)
	line.Color = col
	return line, nil
}

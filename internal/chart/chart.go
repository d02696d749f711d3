// Package chart renders shot charts with gonum/plot: a schematic half-court
// with each field-goal attempt scattered on top, styled by outcome.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hoopsight/shotchart/internal/court"
	"github.com/hoopsight/shotchart/internal/types"
)

// ErrInvalidSurface is returned when a drawing operation is handed a nil
// plot surface.
var ErrInvalidSurface = errors.New("invalid drawing surface")

// Visible chart extent in court coordinates. The y axis is inverted when
// plotting, so the hoop renders at the top and center court at the bottom.
const (
	XMin = -250
	XMax = 250
	YMin = -47.5
	YMax = 422.5
)

// markerRadius is the glyph radius for shot markers, equivalent to a
// 100 pt^2 marker area.
var markerRadius = vg.Points(math.Sqrt(100 / math.Pi))

// arcSegments is the number of line segments used to approximate a full
// circle. Arcs are sampled in court coordinates and transformed point by
// point, so curves stay correct even when the canvas aspect ratio does not
// match the court's.
const arcSegments = 128

// Style controls how court markings are stroked.
type Style struct {
	Color color.Color
	Width vg.Length
}

// Options configures PlotShotChart.
type Options struct {
	// CourtColor and CourtWidth style the court markings. Zero values fall
	// back to blue, 2pt.
	CourtColor color.Color
	CourtWidth vg.Length
}

// courtPlotter strokes the fixed court marking catalogue onto a plot
// canvas. It reads no shot data.
type courtPlotter struct {
	prims []court.Primitive
	style draw.LineStyle
}

func (cp courtPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, pr := range cp.prims {
		pts := samplePrimitive(pr)
		line := make([]vg.Point, len(pts))
		for i, pt := range pts {
			line[i] = vg.Point{X: trX(pt.X), Y: trY(pt.Y)}
		}
		c.StrokeLines(cp.style, c.ClipLinesXY(line)...)
	}
}

// samplePrimitive converts a court primitive into a polyline in court
// coordinates.
func samplePrimitive(pr court.Primitive) []court.Point {
	switch pr.Kind {
	case court.KindSegment:
		return []court.Point{pr.From, pr.To}
	case court.KindRect:
		x, y := pr.Corner.X, pr.Corner.Y
		return []court.Point{
			{X: x, Y: y},
			{X: x + pr.W, Y: y},
			{X: x + pr.W, Y: y + pr.H},
			{X: x, Y: y + pr.H},
			{X: x, Y: y},
		}
	case court.KindCircle:
		return sampleArc(pr.Center, pr.Radius, 0, 360, arcSegments)
	case court.KindArc:
		n := int(math.Ceil(arcSegments * math.Abs(pr.Sweep) / 360))
		if n < 2 {
			n = 2
		}
		return sampleArc(pr.Center, pr.Radius, pr.Start, pr.Sweep, n)
	}
	return nil
}

func sampleArc(center court.Point, radius, start, sweep float64, n int) []court.Point {
	pts := make([]court.Point, n+1)
	for i := 0; i <= n; i++ {
		ang := (start + sweep*float64(i)/float64(n)) * math.Pi / 180
		pts[i] = court.Point{
			X: center.X + radius*math.Cos(ang),
			Y: center.Y + radius*math.Sin(ang),
		}
	}
	return pts
}

// DrawCourt adds the court marking catalogue to the plot, stroked with the
// given style. When outerLines is true the full-court boundary rectangle is
// included. If the plot's axis ranges are still unset they are fitted to the
// visible court extent.
func DrawCourt(p *plot.Plot, style Style, outerLines bool) error {
	if p == nil {
		return ErrInvalidSurface
	}
	if style.Color == nil {
		style.Color = color.RGBA{B: 255, A: 255}
	}
	if style.Width == 0 {
		style.Width = vg.Points(2)
	}
	if p.X.Min > p.X.Max {
		p.X.Min, p.X.Max = XMin, XMax
	}
	if p.Y.Min > p.Y.Max {
		p.Y.Min, p.Y.Max = YMin, YMax
	}
	p.Add(courtPlotter{
		prims: court.Primitives(outerLines),
		style: draw.LineStyle{Color: style.Color, Width: style.Width},
	})
	return nil
}

// splitByOutcome partitions shots into the missed and made scatter series.
// Records with any other outcome belong to neither.
func splitByOutcome(shots types.ShotCollection) (missed, made plotter.XYs) {
	for _, s := range shots {
		switch s.Outcome {
		case types.OutcomeMissed:
			missed = append(missed, plotter.XY{X: s.X, Y: s.Y})
		case types.OutcomeMade:
			made = append(made, plotter.XY{X: s.X, Y: s.Y})
		}
	}
	return missed, made
}

// PlotShotChart draws the full shot chart onto p: fixed court extent with an
// inverted y axis, no tick labels, court markings, one scatter series per
// recognized outcome, and a legend. Shots landing outside the visible extent
// are simply clipped. The shot collection is not mutated.
func PlotShotChart(p *plot.Plot, shots types.ShotCollection, title string, opts Options) error {
	if p == nil {
		return ErrInvalidSurface
	}

	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.X.Min, p.X.Max = XMin, XMax
	p.Y.Min, p.Y.Max = YMin, YMax
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.X.Tick.Marker = plot.ConstantTicks{}
	p.Y.Tick.Marker = plot.ConstantTicks{}

	if err := DrawCourt(p, Style{Color: opts.CourtColor, Width: opts.CourtWidth}, false); err != nil {
		return err
	}

	missedXYs, madeXYs := splitByOutcome(shots)

	missed, err := plotter.NewScatter(missedXYs)
	if err != nil {
		return fmt.Errorf("building missed-shot series: %v", err)
	}
	missed.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{R: 255, A: 255},
		Radius: markerRadius,
		Shape:  draw.CrossGlyph{},
	}

	made, err := plotter.NewScatter(madeXYs)
	if err != nil {
		return fmt.Errorf("building made-shot series: %v", err)
	}
	made.GlyphStyle = draw.GlyphStyle{
		Color:  color.RGBA{G: 128, A: 255},
		Radius: markerRadius,
		Shape:  draw.RingGlyph{},
	}

	p.Add(missed, made)
	p.Legend.Add("Missed", missed)
	p.Legend.Add("Made", made)
	p.Legend.Top = true

	// Add expands the axis ranges to fit any DataRanger, and scatters are
	// one. Re-pin the extent so shots beyond the court render off-plot
	// instead of rescaling it.
	p.X.Min, p.X.Max = XMin, XMax
	p.Y.Min, p.Y.Max = YMin, YMax

	return nil
}

// Save writes the rendered figure to path. The image format follows the
// path extension (png, svg, pdf, ...), resolved by the plot backend.
func Save(p *plot.Plot, width, height vg.Length, path string) error {
	if p == nil {
		return ErrInvalidSurface
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving shot chart to %s: %v", path, err)
	}
	return nil
}

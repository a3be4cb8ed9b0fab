package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gocivil/internal/rounding"
)

var (
	steelColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	stirrupColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	concreteFill = color.RGBA{R: 200, G: 200, B: 200, A: 120}
)

// NewSectionPlot builds a gonum plot of a reinforced section
func NewSectionPlot(s SectionSketch) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	// Concrete outline
	concrete, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: 0},
		{X: s.Width, Y: 0},
		{X: s.Width, Y: s.Height},
		{X: 0, Y: s.Height},
	})
	if err != nil {
		return nil, err
	}
	concrete.Color = concreteFill
	concrete.LineStyle.Width = vg.Points(2)
	concrete.LineStyle.Color = color.Black
	p.Add(concrete)

	// Stirrup centre line
	in := s.Cover + s.StirrupDiameter/2
	stirrup, err := plotter.NewLine(plotter.XYs{
		{X: in, Y: in},
		{X: s.Width - in, Y: in},
		{X: s.Width - in, Y: s.Height - in},
		{X: in, Y: s.Height - in},
		{X: in, Y: in},
	})
	if err != nil {
		return nil, err
	}
	stirrup.LineStyle.Width = vg.Points(1.5)
	stirrup.LineStyle.Color = stirrupColor
	p.Add(stirrup)

	// Bars, glyph radius scaled from the bar diameter
	for _, layer := range s.Bars {
		if len(layer.Positions) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(layer.Positions))
		for i, pos := range layer.Positions {
			pts[i] = plotter.XY{X: pos.X, Y: pos.Y}
		}
		bars, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		bars.GlyphStyle.Color = steelColor
		bars.GlyphStyle.Radius = vg.Points(2 + layer.Diameter/4)
		bars.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(bars)
	}

	// Annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{s.Width / 2, -0.08 * s.Height, fmt.Sprintf("b = %.0f mm", s.Width)},
		{s.Width * 1.05, s.Height / 2, fmt.Sprintf("h = %.0f mm", s.Height)},
	}
	for _, layer := range s.Bars {
		if len(layer.Positions) == 0 {
			continue
		}
		first := layer.Positions[0]
		labels = append(labels, struct {
			x, y float64
			text string
		}{s.Width * 1.05, first.Y, fmt.Sprintf("%d D%.0f", len(layer.Positions), layer.Diameter)})
	}
	if s.StirrupSpacing > 0 {
		labels = append(labels, struct {
			x, y float64
			text string
		}{s.Width / 2, 1.08 * s.Height, fmt.Sprintf("φ%.0f @ %.0f mm", s.StirrupDiameter, s.StirrupSpacing)})
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	// Keep the section proportions and leave room for the labels
	margin := sketchMargin(s)
	p.X.Min, p.X.Max = -margin, s.Width+1.5*margin
	p.Y.Min, p.Y.Max = -margin, s.Height+margin

	return p, nil
}

// sketchMargin pads the axes by a quarter of the larger side, in whole
// 50 mm steps.
func sketchMargin(s SectionSketch) float64 {
	return rounding.Ceil(0.25*max(s.Width, s.Height), rounding.HeightIncrement)
}

// ExportSection exports a section sketch to an image file. The format
// follows the extension (png, svg, pdf); other names get .png appended.
func ExportSection(s SectionSketch, filename string) error {
	p, err := NewSectionPlot(s)
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	width := 6 * vg.Inch
	height := vg.Length(float64(width) * (s.Height + 0.5*max(s.Width, s.Height)) / (s.Width + 0.75*max(s.Width, s.Height)))

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

package diagram

import (
	"math"

	"github.com/alexiusacademia/gocivil/internal/engine"
)

// Point represents a 2D coordinate in the section (mm), origin at the
// bottom-left corner
type Point struct {
	X float64
	Y float64
}

// Layer is one row of bars
type Layer struct {
	Diameter  float64
	Positions []Point
	// Centre-to-centre spacing; zero when a single bar makes it undefined
	Spacing float64
}

// SectionSketch holds the data for drawing a reinforced section
type SectionSketch struct {
	Title  string
	Width  float64 // mm
	Height float64 // mm

	Cover           float64 // clear cover to stirrup (mm)
	StirrupDiameter float64
	StirrupSpacing  float64 // mm, zero for columns

	Bars []Layer
}

// Inset returns the distance from the section face to the bar centres.
func (s SectionSketch) Inset(barDiameter float64) float64 {
	return s.Cover + s.StirrupDiameter + barDiameter/2
}

// BeamSketch lays out the bottom and top bars of a designed beam.
func BeamSketch(name string, b *engine.BeamResult) SectionSketch {
	s := SectionSketch{
		Title:           name,
		Width:           float64(b.Width),
		Height:          float64(b.Height),
		Cover:           b.Cover,
		StirrupDiameter: float64(b.StirrupDiameter),
		StirrupSpacing:  float64(b.StirrupSpacing),
	}
	if s.Title == "" {
		s.Title = "Beam Section"
	}

	db := float64(b.MainBarDiameter)
	inset := s.Inset(db)
	s.Bars = []Layer{
		RowLayout(s.Width, inset, inset, db, b.MainBarCount),
		RowLayout(s.Width, inset, s.Height-inset, db, b.TopBarCount),
	}
	return s
}

// ColumnSketch lays out the perimeter bars of a designed square column.
func ColumnSketch(name string, c *engine.ColumnResult, cover, tieDiameter float64) SectionSketch {
	side := float64(c.SideLength)
	s := SectionSketch{
		Title:           name,
		Width:           side,
		Height:          side,
		Cover:           cover,
		StirrupDiameter: tieDiameter,
	}
	if s.Title == "" {
		s.Title = "Column Section"
	}
	db := float64(c.BarDiameter)
	s.Bars = []Layer{PerimeterLayout(side, s.Inset(db), db, c.BarCount)}
	return s
}

// RowLayout places n bars of diameter db evenly between the insets of a face
// of the given width, at height y.
//
// With a single bar the spacing is undefined: the bar sits at mid-width and
// Spacing is zero.
func RowLayout(width, inset, y, db float64, n int) Layer {
	l := Layer{Diameter: db}
	if n <= 0 {
		return l
	}
	if n == 1 {
		l.Positions = []Point{{X: width / 2, Y: y}}
		return l
	}

	l.Spacing = (width - 2*inset) / float64(n-1)
	for i := 0; i < n; i++ {
		l.Positions = append(l.Positions, Point{X: inset + float64(i)*l.Spacing, Y: y})
	}
	return l
}

// PerimeterLayout places n bars (even, at least four) around a square
// section: one in each corner, the rest shared between opposite faces.
func PerimeterLayout(side, inset, db float64, n int) Layer {
	l := Layer{Diameter: db}
	if n < 4 {
		return l
	}
	pairs := (n - 4) / 2
	hPairs := (pairs + 1) / 2 // extra bars on each of bottom and top
	vPairs := pairs / 2       // extra bars on each of left and right

	lo, hi := inset, side-inset
	span := hi - lo

	l.Spacing = span / float64(hPairs+1)

	for _, y := range []float64{lo, hi} {
		for i := 0; i <= hPairs+1; i++ {
			l.Positions = append(l.Positions, Point{X: lo + float64(i)*span/float64(hPairs+1), Y: y})
		}
	}
	for _, x := range []float64{lo, hi} {
		for i := 1; i <= vPairs; i++ {
			l.Positions = append(l.Positions, Point{X: x, Y: lo + float64(i)*span/float64(vPairs+1)})
		}
	}
	return l
}

// ClearSpacing returns the clear gap between adjacent bars of a layer and
// whether it satisfies the minimum of max(25 mm, db). ok is true for layers
// whose spacing is undefined.
func ClearSpacing(l Layer) (gap float64, ok bool) {
	if l.Spacing == 0 {
		return 0, true
	}
	gap = l.Spacing - l.Diameter
	return gap, gap >= math.Max(25, l.Diameter)
}

package beam

import "github.com/alexiusacademia/gocivil/internal/rounding"

// Practical minimum beam dimensions (mm)
const (
	MinHeight = 200.0
	MinWidth  = 150.0
)

// Dimensions holds the estimated section size
type Dimensions struct {
	HeightMin float64 // L / divisor before rounding (mm)
	Height    float64 // h (mm)
	Width     float64 // b (mm)
}

// EstimateDimensions derives the section size from the span (m), the
// span/depth divisor and the width ratio b/h.
//
// Height is L·1000/divisor advanced to the next 50 mm step, width is ratio·h
// advanced to the next 25 mm step. Both steps always add an increment, even
// on exact multiples.
func EstimateDimensions(spanM, divisor, widthRatio float64) Dimensions {
	hMin := spanM * 1000 / divisor
	h := rounding.AtLeast(rounding.Advance(hMin, rounding.HeightIncrement), MinHeight)
	b := rounding.AtLeast(rounding.Advance(widthRatio*h, rounding.WidthIncrement), MinWidth)

	return Dimensions{
		HeightMin: hMin,
		Height:    h,
		Width:     b,
	}
}

package beam

import (
	"math"

	"github.com/alexiusacademia/gocivil/internal/rounding"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

// MinStirrupSpacing is the smallest spacing that can be placed and compacted (mm)
const MinStirrupSpacing = 50.0

// StirrupLegs is the number of vertical legs of a closed stirrup
const StirrupLegs = 2

// ShearResult holds the results of the stirrup design
type ShearResult struct {
	Vc    float64 // Concrete contribution (kN)
	PhiVc float64 // kN
	Vs    float64 // Required steel contribution (kN), zero when concrete governs
	Av    float64 // Stirrup area, all legs (mm²)

	SpacingRequired float64 // Before rounding (mm)
	SpacingCeiling  float64 // Seismic category limit (mm)
	Spacing         float64 // Final spacing (mm)

	ConcreteGoverns bool // Vu ≤ φVc, spacing from d/2
	AtMinimum       bool // Spacing clamped up to the practical minimum
}

// DesignStirrups derives the stirrup spacing for a factored shear vu (kN) on a
// section b × d (mm).
func DesignStirrups(vu, b, d, fc, fy, stirrupDia float64, seismic sni.SeismicSpec) ShearResult {
	phi := seismic.PhiShear
	if phi <= 0 {
		phi = sni.PhiShear
	}

	r := ShearResult{
		Vc:             math.Sqrt(fc) * b * d / 6 / 1000,
		Av:             StirrupLegs * sni.BarArea(stirrupDia),
		SpacingCeiling: seismic.MaxStirrupSpacing,
	}
	r.PhiVc = phi * r.Vc

	vs := vu/phi - r.Vc
	if vu > r.PhiVc && vs > 0 {
		r.Vs = vs
		r.SpacingRequired = r.Av * fy * d / (vs * 1000)
	} else {
		r.ConcreteGoverns = true
		r.SpacingRequired = d / 2
	}

	s := rounding.Floor(math.Min(r.SpacingRequired, r.SpacingCeiling), rounding.SpacingIncrement)
	r.AtMinimum = s < MinStirrupSpacing
	r.Spacing = rounding.Clamp(s, MinStirrupSpacing, r.SpacingCeiling)

	return r
}

// Package beam sizes and reinforces a single-span rectangular beam from its
// span, support condition and gravity loads.
package beam

import (
	"fmt"

	"github.com/alexiusacademia/gocivil/internal/sni"
)

// Input holds the resolved numeric inputs of a beam design.
// Table lookups and validation happen before Calculate is called.
type Input struct {
	SpanM      float64
	Divisor    float64 // span/depth ratio
	WidthRatio float64 // b/h
	Support    sni.SupportSpec
	Seismic    sni.SeismicSpec

	Fc    float64 // MPa
	Fy    float64 // MPa
	Cover float64 // clear cover to stirrups (mm)

	MainBarDiameter    float64 // mm, zero selects from BarPolicy
	StirrupBarDiameter float64 // mm
	BarPolicy          BarPolicy

	// Loads, section terms are filled in by Calculate
	Loads LoadInput
}

// Result holds the complete beam design
type Result struct {
	Dimensions Dimensions
	Loads      LoadResult
	Forces     Forces

	EffectiveDepth float64 // mm
	Flexure        *FlexureResult
	Shear          ShearResult

	Notes []string
}

// Calculate runs dimensioning, load combination, force solving, flexural
// and shear design in sequence.
func Calculate(in Input) Result {
	var r Result

	r.Dimensions = EstimateDimensions(in.SpanM, in.Divisor, in.WidthRatio)
	b, h := r.Dimensions.Width, r.Dimensions.Height

	loads := in.Loads
	loads.Width, loads.Height = b, h
	r.Loads = CombineLoads(loads)

	r.Forces = SolveForces(r.Loads.Qu, in.SpanM, in.Support)

	policy := in.BarPolicy
	if policy == (BarPolicy{}) {
		policy = DefaultBarPolicy
	}
	mainDia := in.MainBarDiameter
	if mainDia <= 0 {
		mainDia = policy.Diameter(in.SpanM)
	}

	section := NewSinglyReinforced(b, h, in.Cover, in.StirrupBarDiameter, mainDia, in.Fc, in.Fy)
	r.EffectiveDepth = section.EffectiveDepth
	r.Flexure = section.Design(r.Forces.Moment, mainDia)

	r.Shear = DesignStirrups(r.Forces.Shear, b, section.EffectiveDepth, in.Fc, in.Fy, in.StirrupBarDiameter, in.Seismic)

	r.Notes = notes(r)
	return r
}

func notes(r Result) []string {
	var out []string
	if r.Flexure.DiscriminantClamped {
		out = append(out, "Section too small for a singly reinforced solution; increase the section or use doubly reinforced design.")
	}
	if r.Flexure.RhoCapped {
		out = append(out, fmt.Sprintf("Required ratio %.4f exceeds ρmax = %.3f; reinforcement limited to ρmax.", r.Flexure.RhoRequired, r.Flexure.RhoMax))
	}
	if !r.Flexure.IsAdequate {
		out = append(out, fmt.Sprintf("φMn = %.2f kN-m < Mu = %.2f kN-m with the selected bars.", r.Flexure.PhiMn, r.Forces.Moment))
	}
	if r.Shear.AtMinimum {
		out = append(out, fmt.Sprintf("Required stirrup spacing %.0f mm is below the practical minimum; %.0f mm used, check the section for shear.", r.Shear.SpacingRequired, MinStirrupSpacing))
	}
	return out
}

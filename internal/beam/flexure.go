package beam

import (
	"math"

	"github.com/alexiusacademia/gocivil/internal/rounding"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

// BarPolicy selects the main bar diameter from the span
type BarPolicy struct {
	Threshold     float64 // span (m) above which LongDiameter is used
	ShortDiameter float64 // mm
	LongDiameter  float64 // mm
}

// DefaultBarPolicy uses D13 up to 4 m spans and D16 beyond
var DefaultBarPolicy = BarPolicy{
	Threshold:     4,
	ShortDiameter: 13,
	LongDiameter:  16,
}

// Diameter returns the main bar diameter for the given span (m)
func (p BarPolicy) Diameter(spanM float64) float64 {
	if spanM > p.Threshold {
		return p.LongDiameter
	}
	return p.ShortDiameter
}

// SinglyReinforced represents a singly reinforced rectangular beam section
type SinglyReinforced struct {
	// Geometry (mm)
	Width          float64 // b - beam width
	Height         float64 // h - total depth
	EffectiveDepth float64 // d - effective depth (to centroid of tension steel)

	// Materials (MPa)
	Fc float64 // f'c - concrete compressive strength
	Fy float64 // fy - steel yield strength
}

// NewSinglyReinforced creates a section whose effective depth is measured to
// the centroid of one layer of main bars inside the stirrups.
func NewSinglyReinforced(width, height, cover, stirrupDia, mainDia, fc, fy float64) *SinglyReinforced {
	return &SinglyReinforced{
		Width:          width,
		Height:         height,
		EffectiveDepth: height - cover - stirrupDia - mainDia/2,
		Fc:             fc,
		Fy:             fy,
	}
}

// FlexureResult holds the results of the flexural design
type FlexureResult struct {
	// Solve
	Rn           float64 // Nominal strength coefficient (MPa)
	M            float64 // fy / 0.85f'c
	Discriminant float64 // 1 - 2mRn/fy before clamping

	// Reinforcement ratios
	RhoRequired float64 // Solved ratio
	RhoMin      float64
	RhoMax      float64
	Rho         float64 // Ratio used, clamped to [ρmin, ρmax]

	// Reinforcement (mm²)
	AsRequired float64
	AsProvided float64

	// Bars
	BarDiameter float64 // mm
	BarCount    int     // tension side
	TopBarCount int     // compression side

	// Capacity of the provided bars
	A     float64 // Depth of compression block (mm)
	PhiMn float64 // Design moment capacity (kN-m)

	// Status
	DiscriminantClamped bool // Section too small for a singly reinforced solution
	RhoCapped           bool // Solved ratio exceeded ρmax
	IsAdequate          bool // φMn ≥ Mu
}

// Design calculates the required reinforcement for a factored moment (kN-m)
// using the Whitney rectangular stress block.
//
// The square root argument is clamped to zero so an over-reinforced demand
// falls through to the ratio limits instead of failing.
func (b *SinglyReinforced) Design(mu, barDiameter float64) *FlexureResult {
	result := &FlexureResult{BarDiameter: barDiameter}

	result.RhoMin = sni.RhoMin(b.Fc, b.Fy)
	result.RhoMax = sni.RhoMaxPractical

	// Rn = Mu / (φ * b * d²)
	muNmm := mu * 1e6
	result.Rn = muNmm / (sni.PhiFlexure * b.Width * math.Pow(b.EffectiveDepth, 2))
	result.M = b.Fy / (0.85 * b.Fc)

	// ρ = (1/m) * (1 - √(1 - 2mRn/fy))
	result.Discriminant = 1 - 2*result.M*result.Rn/b.Fy
	disc := result.Discriminant
	if disc < 0 {
		disc = 0
		result.DiscriminantClamped = true
	}
	result.RhoRequired = (1 / result.M) * (1 - math.Sqrt(disc))

	result.RhoCapped = result.RhoRequired > result.RhoMax
	result.Rho = math.Max(result.RhoMin, math.Min(result.RhoRequired, result.RhoMax))
	result.AsRequired = result.Rho * b.Width * b.EffectiveDepth

	barArea := sni.BarArea(barDiameter)
	result.BarCount = rounding.CeilCount(result.AsRequired, barArea, 2)
	result.TopBarCount = TopBars(result.BarCount)
	result.AsProvided = float64(result.BarCount) * barArea

	// T = C → As*fy = 0.85*f'c*b*a
	result.A = result.AsProvided * b.Fy / (0.85 * b.Fc * b.Width)
	// Mn = As * fy * (d - a/2)
	result.PhiMn = sni.PhiFlexure * result.AsProvided * b.Fy * (b.EffectiveDepth - result.A/2) / 1e6
	result.IsAdequate = result.PhiMn >= mu

	return result
}

// TopBars returns the compression-side bar count for a given tension-side
// count: at least two bars and at least half of the tension bars.
func TopBars(bottom int) int {
	top := (bottom + 1) / 2
	if top < 2 {
		return 2
	}
	return top
}

package beam

import "github.com/alexiusacademia/gocivil/internal/sni"

// LoadInput holds the unfactored load contributions on one beam
type LoadInput struct {
	// Section (mm), for self weight
	Width  float64
	Height float64

	// Wall standing on the beam
	WallUnitLoad float64 // kN/m² per metre of wall height
	WallHeight   float64 // m

	// Area loads carried over the tributary width
	FinishLoad     float64 // kN/m²
	LiveAreaLoad   float64 // kN/m²
	TributaryWidth float64 // m

	// Line loads supplied directly (kN/m)
	DeadLoad float64
	LiveLoad float64

	Floors int
}

// LoadResult holds the load breakdown and the factored line load (kN/m)
type LoadResult struct {
	SelfWeight float64
	Wall       float64
	Finish     float64
	Dead       float64 // Σ dead × floors
	Live       float64 // Σ live × floors
	Qu         float64 // 1.2D + 1.6L
}

// CombineLoads aggregates dead and live contributions, scales them by the
// floor count and applies the 1.2D + 1.6L combination.
func CombineLoads(in LoadInput) LoadResult {
	floors := float64(in.Floors)
	if in.Floors < 1 {
		floors = 1
	}

	r := LoadResult{
		SelfWeight: in.Width / 1000 * in.Height / 1000 * sni.UnitWeightConcrete,
		Wall:       in.WallUnitLoad * in.WallHeight,
		Finish:     in.FinishLoad * in.TributaryWidth,
	}
	r.Dead = (r.SelfWeight + r.Wall + r.Finish + in.DeadLoad) * floors
	r.Live = (in.LiveAreaLoad*in.TributaryWidth + in.LiveLoad) * floors
	r.Qu = Combine(r.Dead, r.Live)

	return r
}

// Combine returns the factored load 1.2D + 1.6L
func Combine(dead, live float64) float64 {
	return sni.GravityCombination.Factored(sni.Loads{Dead: dead, Live: live})
}

// Package column sizes a short square column from the gravity load it
// collects over its tributary area.
package column

import (
	"math"

	"github.com/alexiusacademia/gocivil/internal/rounding"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

// Defaults for preliminary column sizing
const (
	DefaultUnitLoad    = 12.0 // factored D + L per floor (kN/m²)
	DefaultAxialFactor = 0.3  // Ag = Pu / (k·f'c)
	MinAxialFactor     = 0.3
	MaxAxialFactor     = 0.45
	DefaultBarDiameter = 16.0 // mm
	MinSide            = 200.0
	MinBarCount        = 4
)

// Input holds the resolved numeric inputs of a column design
type Input struct {
	GridX    float64 // m
	GridY    float64 // m
	Floors   int
	UnitLoad float64 // kN/m²

	Fc          float64 // MPa
	AxialFactor float64 // k
	SteelRatio  float64 // As / Ag
	BarDiameter float64 // mm
}

// Result holds the column design
type Result struct {
	TributaryArea float64 // m²
	AxialLoad     float64 // Pu (kN)
	GrossAreaReq  float64 // mm²
	Side          float64 // mm
	SteelArea     float64 // mm², As = ρ·side²
	BarDiameter   float64 // mm
	BarCount      int
}

// Calculate sizes the column side and its longitudinal bars.
func Calculate(in Input) Result {
	r := Result{
		TributaryArea: in.GridX * in.GridY,
		BarDiameter:   in.BarDiameter,
	}
	r.AxialLoad = float64(in.Floors) * r.TributaryArea * in.UnitLoad

	r.GrossAreaReq = r.AxialLoad * 1000 / (in.AxialFactor * in.Fc)
	r.Side = rounding.AtLeast(rounding.Advance(math.Sqrt(r.GrossAreaReq), rounding.HeightIncrement), MinSide)

	r.SteelArea = in.SteelRatio * r.Side * r.Side
	r.BarCount = BarCount(r.SteelArea, in.BarDiameter)

	return r
}

// BarCount returns the number of bars of the given diameter covering as,
// at least four and always even so the bars sit symmetrically.
func BarCount(as, diameter float64) int {
	n := rounding.CeilCount(as, sni.BarArea(diameter), MinBarCount)
	if n%2 != 0 {
		n++
	}
	return n
}

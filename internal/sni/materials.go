package sni

import "math"

// SNI 2847:2019 constants used by the preliminary design routines

const (
	// Strength reduction factors (Section 21.2)
	PhiFlexure = 0.90 // Tension-controlled sections
	PhiShear   = 0.75 // Shear and torsion

	// Practical ductility ceiling for the tension reinforcement ratio.
	// Applied instead of the strain-compatibility limit for preliminary sizing.
	RhoMaxPractical = 0.025

	// Unit weight of reinforced concrete (kN/m³), SNI 1727:2020 / PPPURG 1987
	UnitWeightConcrete = 24.0

	// Minimum column longitudinal steel ratio (Section 10.6.1.1)
	RhoColumnMin = 0.01
)

// Standard bar diameters (mm) accepted for longitudinal and transverse steel.
var (
	MainBarDiameters    = []int{10, 12, 13, 16, 19, 22, 25, 29, 32, 36}
	StirrupBarDiameters = []int{6, 8, 10, 12, 13}
)

// RhoMin calculates minimum flexural reinforcement ratio
// SNI 2847:2019 Section 9.6.1.2
func RhoMin(fc, fy float64) float64 {
	// ρmin = max(√f'c / 4fy, 1.4/fy)
	rho1 := math.Sqrt(fc) / (4 * fy)
	rho2 := 1.4 / fy
	return math.Max(rho1, rho2)
}

// BarArea returns the cross-sectional area of one bar (mm²).
func BarArea(diameter float64) float64 {
	return 0.25 * math.Pi * diameter * diameter
}

// IsMainBarDiameter reports whether d is a standard longitudinal bar size.
func IsMainBarDiameter(d int) bool {
	return contains(MainBarDiameters, d)
}

// IsStirrupDiameter reports whether d is a standard stirrup size.
func IsStirrupDiameter(d int) bool {
	return contains(StirrupBarDiameters, d)
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

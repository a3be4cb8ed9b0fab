package beam

import "github.com/alexiusacademia/gocivil/internal/sni"

// Forces holds the factored actions at the critical section
type Forces struct {
	Moment float64 // Mu (kN-m)
	Shear  float64 // Vu (kN)
}

// SolveForces computes Mu and Vu for a uniform load qu (kN/m) over a single
// span (m), using the coefficients of the support condition.
//
//	simply supported       Mu = qu·L²/8   Vu = qu·L/2
//	one end continuous     Mu = qu·L²/10  Vu = 1.15·qu·L/2
//	both ends continuous   Mu = qu·L²/11  Vu = qu·L/2
//	cantilever             Mu = qu·L²/2   Vu = qu·L
func SolveForces(qu, spanM float64, support sni.SupportSpec) Forces {
	return Forces{
		Moment: qu * spanM * spanM / support.MomentDivisor,
		Shear:  support.ShearFactor * qu * spanM,
	}
}

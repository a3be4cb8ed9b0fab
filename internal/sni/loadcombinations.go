package sni

// LoadCombination is one strength design (LRFD) combination. The seismic rows
// follow SNI 1726:2019, where the vertical effect Ev = 0.2·SDS·D is added to
// or taken from the dead load.
type LoadCombination struct {
	ID         string
	Clause     string
	Expression string

	Dead       float64 // D
	Live       float64 // L
	Roof       float64 // Lr
	Rain       float64 // R
	Wind       float64 // W
	Earthquake float64 // Eh = ρ·QE
	// Sign of Ev: +1, -1 or 0 when the row has no seismic term
	Vertical float64
}

// Loads holds unfactored effects of each load type, all in one unit
// (kN/m, kN-m or kN). SDS is the design spectral acceleration at short
// periods used for the vertical seismic effect.
type Loads struct {
	Dead       float64
	Live       float64
	Roof       float64
	Rain       float64
	Wind       float64
	Earthquake float64
	SDS        float64
}

const (
	clauseBasic   = "SNI 1727:2020 Pasal 2.3.1"
	clauseSeismic = "SNI 1726:2019 Pasal 4.2.2.3"
)

// LoadCombinations lists the basic combinations with the seismic ones
// substituted per SNI 1726:2019.
var LoadCombinations = []LoadCombination{
	{ID: "1", Clause: clauseBasic, Expression: "1.4D", Dead: 1.4},
	GravityCombination,
	{ID: "3", Clause: clauseBasic, Expression: "1.2D + 1.6(Lr atau R) + (L atau 0.5W)",
		Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Clause: clauseBasic, Expression: "1.2D + 1.0W + L + 0.5(Lr atau R)",
		Dead: 1.2, Live: 1.0, Roof: 0.5, Rain: 0.5, Wind: 1.0},
	{ID: "5", Clause: clauseBasic, Expression: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "6", Clause: clauseSeismic, Expression: "(1.2 + 0.2SDS)D + 1.0Eh + L",
		Dead: 1.2, Live: 1.0, Earthquake: 1.0, Vertical: 1},
	{ID: "7", Clause: clauseSeismic, Expression: "(0.9 - 0.2SDS)D + 1.0Eh",
		Dead: 0.9, Earthquake: 1.0, Vertical: -1},
}

// GravityCombination is the combination the beam designer applies. Roof
// and rain effects are zero for a floor beam, leaving 1.2D + 1.6L.
var GravityCombination = LoadCombination{
	ID:         "2",
	Clause:     clauseBasic,
	Expression: "1.2D + 1.6L + 0.5(Lr atau R)",
	Dead:       1.2,
	Live:       1.6,
	Roof:       0.5,
	Rain:       0.5,
}

// GravityCombinations holds the dead and live only rows.
var GravityCombinations = []LoadCombination{LoadCombinations[0], GravityCombination}

// Factored returns the combined effect U.
func (lc LoadCombination) Factored(l Loads) float64 {
	u := lc.Dead*l.Dead + lc.Live*l.Live +
		lc.Roof*l.Roof + lc.Rain*l.Rain +
		lc.Wind*l.Wind + lc.Earthquake*l.Earthquake
	return u + lc.Vertical*0.2*l.SDS*l.Dead
}

// Governing returns the largest factored effect and its combination. Ties
// keep the earlier row; with no positive effect the result is zero and an
// empty combination.
func Governing(l Loads, combinations []LoadCombination) (float64, LoadCombination) {
	var (
		maxU float64
		gov  LoadCombination
	)
	for _, lc := range combinations {
		if u := lc.Factored(l); u > maxU {
			maxU, gov = u, lc
		}
	}
	return maxU, gov
}

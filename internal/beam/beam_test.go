package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocivil/internal/sni"
)

func simplySupported(t *testing.T) sni.SupportSpec {
	t.Helper()
	s, err := sni.LookupSupport(sni.SimplySupported)
	require.NoError(t, err)
	return s
}

func seismic(t *testing.T, c sni.SeismicCategory) sni.SeismicSpec {
	t.Helper()
	s, err := sni.LookupSeismic(c)
	require.NoError(t, err)
	return s
}

func TestEstimateDimensions_HeightAlwaysAdvances(t *testing.T) {
	d := EstimateDimensions(5, 16, 0.5)
	assert.InDelta(t, 312.5, d.HeightMin, 1e-9)
	assert.Equal(t, 350.0, d.Height)
	assert.Equal(t, 200.0, d.Width)
}

func TestEstimateDimensions_Law(t *testing.T) {
	for _, divisor := range []float64{8, 12, 15, 16, 18.5, 20, 21} {
		for span := 1.0; span <= 12; span += 0.25 {
			d := EstimateDimensions(span, divisor, 0.5)
			assert.Greater(t, d.Height, span*1000/divisor, "span=%v divisor=%v", span, divisor)
			assert.Equal(t, 0.0, math.Mod(d.Height, 50))
			assert.Equal(t, 0.0, math.Mod(d.Width, 25))
			assert.GreaterOrEqual(t, d.Height, MinHeight)
			assert.GreaterOrEqual(t, d.Width, MinWidth)
		}
	}
}

func TestEstimateDimensions_PracticalFloor(t *testing.T) {
	d := EstimateDimensions(1, 21, 0.5)
	assert.Equal(t, MinHeight, d.Height)
	assert.Equal(t, MinWidth, d.Width)
}

func TestCombine(t *testing.T) {
	assert.Equal(t, 20.0, Combine(10, 5))
	assert.Equal(t, 0.0, Combine(0, 0))
}

func TestCombineLoads_Breakdown(t *testing.T) {
	r := CombineLoads(LoadInput{
		Width:          200,
		Height:         400,
		WallUnitLoad:   2.5,
		WallHeight:     3,
		FinishLoad:     1.1,
		LiveAreaLoad:   1.92,
		TributaryWidth: 1,
		Floors:         2,
	})

	assert.InDelta(t, 1.92, r.SelfWeight, 1e-9)
	assert.InDelta(t, 7.5, r.Wall, 1e-9)
	assert.InDelta(t, 1.1, r.Finish, 1e-9)
	assert.InDelta(t, (1.92+7.5+1.1)*2, r.Dead, 1e-9)
	assert.InDelta(t, 1.92*2, r.Live, 1e-9)
	assert.InDelta(t, 1.2*r.Dead+1.6*r.Live, r.Qu, 1e-9)
}

func TestCombineLoads_ZeroLoads(t *testing.T) {
	r := CombineLoads(LoadInput{Floors: 1})
	assert.Equal(t, 0.0, r.Qu)
}

func TestSolveForces(t *testing.T) {
	f := SolveForces(20, 5, simplySupported(t))
	assert.Equal(t, 62.5, f.Moment)
	assert.Equal(t, 50.0, f.Shear)

	cant, err := sni.LookupSupport(sni.Cantilever)
	require.NoError(t, err)
	f = SolveForces(20, 2, cant)
	assert.InDelta(t, 40.0, f.Moment, 1e-9)
	assert.InDelta(t, 40.0, f.Shear, 1e-9)

	one, err := sni.LookupSupport(sni.OneEndContinuous)
	require.NoError(t, err)
	f = SolveForces(20, 5, one)
	assert.InDelta(t, 50.0, f.Moment, 1e-9)
	assert.InDelta(t, 57.5, f.Shear, 1e-9)
}

func TestFlexure_MinimumRatioGoverns(t *testing.T) {
	s := NewSinglyReinforced(200, 350, 40, 8, 16, 20.8, 420)
	require.InDelta(t, 294.0, s.EffectiveDepth, 1e-9)

	r := s.Design(1, 16)
	rhoMin := sni.RhoMin(20.8, 420)

	assert.Less(t, r.RhoRequired, rhoMin)
	assert.Equal(t, rhoMin, r.Rho)
	assert.InDelta(t, rhoMin*200*294, r.AsRequired, 1e-9)
	assert.Equal(t, 2, r.BarCount)
	assert.Equal(t, 2, r.TopBarCount)
	assert.True(t, r.IsAdequate)
}

func TestFlexure_ZeroMoment(t *testing.T) {
	s := NewSinglyReinforced(200, 350, 40, 8, 16, 20.8, 420)
	r := s.Design(0, 16)
	assert.Equal(t, 0.0, r.RhoRequired)
	assert.InDelta(t, r.RhoMin*200*294, r.AsRequired, 1e-9)
}

func TestFlexure_OverReinforcedIsClamped(t *testing.T) {
	s := NewSinglyReinforced(200, 350, 40, 8, 16, 20.8, 420)
	r := s.Design(5000, 16)

	assert.True(t, r.DiscriminantClamped)
	assert.True(t, r.RhoCapped)
	assert.Equal(t, sni.RhoMaxPractical, r.Rho)
	assert.False(t, math.IsNaN(r.AsRequired))
	assert.False(t, r.IsAdequate)
}

func TestFlexure_BarCountMonotonic(t *testing.T) {
	s := NewSinglyReinforced(250, 500, 40, 10, 19, 24.9, 420)
	prev := 0
	for mu := 0.0; mu <= 1000; mu += 2.5 {
		r := s.Design(mu, 19)
		assert.GreaterOrEqual(t, r.BarCount, prev, "mu=%v", mu)
		assert.GreaterOrEqual(t, r.BarCount, 2)
		assert.GreaterOrEqual(t, r.TopBarCount, 2)
		assert.GreaterOrEqual(t, 2*r.TopBarCount, r.BarCount)
		assert.GreaterOrEqual(t, r.Rho, r.RhoMin)
		assert.LessOrEqual(t, r.Rho, r.RhoMax)
		prev = r.BarCount
	}
}

func TestTopBars(t *testing.T) {
	assert.Equal(t, 2, TopBars(2))
	assert.Equal(t, 2, TopBars(3))
	assert.Equal(t, 2, TopBars(4))
	assert.Equal(t, 3, TopBars(5))
	assert.Equal(t, 4, TopBars(7))
}

func TestBarPolicy(t *testing.T) {
	assert.Equal(t, 13.0, DefaultBarPolicy.Diameter(4))
	assert.Equal(t, 16.0, DefaultBarPolicy.Diameter(4.5))

	p := BarPolicy{Threshold: 6, ShortDiameter: 16, LongDiameter: 19}
	assert.Equal(t, 16.0, p.Diameter(5))
	assert.Equal(t, 19.0, p.Diameter(7))
}

func TestDesignStirrups_ConcreteGoverns(t *testing.T) {
	r := DesignStirrups(1, 200, 294, 20.8, 420, 8, seismic(t, sni.SeismicLow))

	assert.True(t, r.ConcreteGoverns)
	assert.Equal(t, 0.0, r.Vs)
	assert.InDelta(t, 147.0, r.SpacingRequired, 1e-9)
	assert.Equal(t, 125.0, r.Spacing)
}

func TestDesignStirrups_SteelRequired(t *testing.T) {
	// Vc = √20.8·200·294/6000 = 44.69 kN
	r := DesignStirrups(100, 200, 294, 20.8, 420, 8, seismic(t, sni.SeismicLow))

	require.False(t, r.ConcreteGoverns)
	vc := math.Sqrt(20.8) * 200 * 294 / 6000
	assert.InDelta(t, vc, r.Vc, 1e-9)
	vs := 100/0.75 - vc
	assert.InDelta(t, vs, r.Vs, 1e-9)
	assert.InDelta(t, 2*sni.BarArea(8)*420*294/(vs*1000), r.SpacingRequired, 1e-9)
	assert.Equal(t, 0.0, math.Mod(r.Spacing, 25))
	assert.LessOrEqual(t, r.Spacing, r.SpacingRequired)
}

func TestDesignStirrups_SeismicCeiling(t *testing.T) {
	high := seismic(t, sni.SeismicHigh)
	for vu := 0.0; vu <= 2000; vu += 5 {
		r := DesignStirrups(vu, 300, 500, 24.9, 420, 10, high)
		assert.LessOrEqual(t, r.Spacing, 100.0)
		assert.GreaterOrEqual(t, r.Spacing, MinStirrupSpacing)
		assert.False(t, math.IsNaN(r.Spacing))
	}
}

func TestDesignStirrups_MinimumSpacing(t *testing.T) {
	r := DesignStirrups(2000, 200, 294, 20.8, 280, 6, seismic(t, sni.SeismicModerate))
	assert.True(t, r.AtMinimum)
	assert.Equal(t, MinStirrupSpacing, r.Spacing)
}

func TestCalculate_WorkedExample(t *testing.T) {
	r := Calculate(Input{
		SpanM:              5,
		Divisor:            16,
		WidthRatio:         0.5,
		Support:            simplySupported(t),
		Seismic:            seismic(t, sni.SeismicModerate),
		Fc:                 20.8,
		Fy:                 420,
		Cover:              40,
		StirrupBarDiameter: 8,
		Loads: LoadInput{
			DeadLoad: 10,
			LiveLoad: 5,
			Floors:   1,
		},
	})

	assert.Equal(t, 350.0, r.Dimensions.Height)
	assert.Equal(t, 200.0, r.Dimensions.Width)
	assert.InDelta(t, 1.68, r.Loads.SelfWeight, 1e-9)
	assert.InDelta(t, 1.2*11.68+1.6*5, r.Loads.Qu, 1e-9)
	assert.InDelta(t, r.Loads.Qu*25/8, r.Forces.Moment, 1e-9)
	assert.Equal(t, 16.0, r.Flexure.BarDiameter)
	assert.InDelta(t, 294.0, r.EffectiveDepth, 1e-9)
	assert.LessOrEqual(t, r.Shear.Spacing, 150.0)
	assert.GreaterOrEqual(t, r.Flexure.BarCount, 2)
}

func TestCalculate_Deterministic(t *testing.T) {
	in := Input{
		SpanM:              6,
		Divisor:            12,
		WidthRatio:         0.5,
		Support:            simplySupported(t),
		Seismic:            seismic(t, sni.SeismicHigh),
		Fc:                 24.9,
		Fy:                 420,
		Cover:              40,
		StirrupBarDiameter: 10,
		Loads:              LoadInput{WallUnitLoad: 2.5, WallHeight: 3.5, FinishLoad: 1.1, LiveAreaLoad: 2.4, TributaryWidth: 3, Floors: 2},
	}
	assert.Equal(t, Calculate(in), Calculate(in))
}

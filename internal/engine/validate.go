package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gocivil/internal/beam"
	"github.com/alexiusacademia/gocivil/internal/column"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// materials resolves the grades to strengths.
func (r Request) materials() (fc, fy float64, err error) {
	c, err := sni.LookupConcrete(r.Material.ConcreteGrade)
	if err != nil {
		return 0, 0, err
	}
	s, err := sni.LookupSteel(r.Material.SteelGrade)
	if err != nil {
		return 0, 0, err
	}
	if c.Strength <= 0 || s.Strength <= 0 {
		return 0, 0, invalid("material", "strengths must be positive")
	}
	return c.Strength, s.Strength, nil
}

func (r Request) checkCommon() error {
	g := r.Geometry
	if !finite(g.Span) || g.Span <= 0 {
		return invalid("span", "must be positive, got %v", g.Span)
	}
	if g.Span > MaxSpan {
		return invalid("span", "%v m is beyond the %.0f m range of the span/depth tables", g.Span, MaxSpan)
	}
	if g.FloorCount <= 0 {
		return invalid("floor count", "must be positive, got %d", g.FloorCount)
	}
	if g.FloorCount > MaxFloors {
		return invalid("floor count", "must not exceed %d, got %d", MaxFloors, g.FloorCount)
	}
	return nil
}

// beamInput validates a beam request and resolves its table entries.
func (r Request) beamInput() (beam.Input, error) {
	if err := r.checkCommon(); err != nil {
		return beam.Input{}, err
	}
	g := r.Geometry
	if !finite(g.WallHeight) || g.WallHeight < 0 {
		return beam.Input{}, invalid("wall height", "must not be negative, got %v", g.WallHeight)
	}
	if g.WallHeight > MaxWallHeight {
		return beam.Input{}, invalid("wall height", "must not exceed %.0f m, got %v", MaxWallHeight, g.WallHeight)
	}
	cover := g.Cover
	if cover == 0 {
		cover = DefaultCover
	}
	if !finite(cover) || cover < 0 || cover > MaxCover {
		return beam.Input{}, invalid("cover", "must be within (0, %.0f] mm, got %v", MaxCover, g.Cover)
	}

	fc, fy, err := r.materials()
	if err != nil {
		return beam.Input{}, err
	}

	in := beam.Input{
		SpanM: g.Span,
		Fc:    fc,
		Fy:    fy,
		Cover: cover,
	}

	if err := r.resolveGeometryRatios(&in); err != nil {
		return beam.Input{}, err
	}

	if r.Seismic == "" {
		return beam.Input{}, invalid("seismic category", "required for beam design")
	}
	if in.Seismic, err = sni.LookupSeismic(r.Seismic); err != nil {
		return beam.Input{}, err
	}

	if err := r.resolveBars(&in); err != nil {
		return beam.Input{}, err
	}

	if in.Loads, err = r.loadInput(); err != nil {
		return beam.Input{}, err
	}
	return in, nil
}

func (r Request) resolveGeometryRatios(in *beam.Input) error {
	if r.Element == "" && r.Support == "" {
		return invalid("element", "an element use or a support condition is required")
	}

	in.WidthRatio = DefaultWidthRatio
	if r.Element != "" {
		e, err := sni.LookupElement(r.Element)
		if err != nil {
			return err
		}
		in.Divisor = e.Divisor
		in.WidthRatio = e.WidthRatio
	}

	// Without a support condition the element divisor applies with
	// simply supported forces.
	support := r.Support
	if support == "" {
		support = sni.SimplySupported
	}
	s, err := sni.LookupSupport(support)
	if err != nil {
		return err
	}
	in.Support = s
	if r.Support != "" || in.Divisor == 0 {
		in.Divisor = s.Divisor
	}

	if r.WidthRatio != 0 {
		if !finite(r.WidthRatio) || r.WidthRatio < 0.3 || r.WidthRatio > 1 {
			return invalid("width ratio", "must be within [0.3, 1], got %v", r.WidthRatio)
		}
		in.WidthRatio = r.WidthRatio
	}
	return nil
}

func (r Request) resolveBars(in *beam.Input) error {
	b := r.Bars

	stirrup := b.StirrupDiameter
	if stirrup == 0 {
		stirrup = DefaultStirrupDiameter
	}
	if !sni.IsStirrupDiameter(stirrup) {
		return invalid("stirrup diameter", "%d mm is not one of %v", stirrup, sni.StirrupBarDiameters)
	}
	in.StirrupBarDiameter = float64(stirrup)

	if b.MainDiameter != 0 {
		if !sni.IsMainBarDiameter(b.MainDiameter) {
			return invalid("main bar diameter", "%d mm is not one of %v", b.MainDiameter, sni.MainBarDiameters)
		}
		in.MainBarDiameter = float64(b.MainDiameter)
	}

	policy := beam.DefaultBarPolicy
	if b.SpanThreshold != 0 {
		if !finite(b.SpanThreshold) || b.SpanThreshold < 0 {
			return invalid("span threshold", "must not be negative, got %v", b.SpanThreshold)
		}
		policy.Threshold = b.SpanThreshold
	}
	for _, d := range []struct {
		field string
		v     int
		dst   *float64
	}{
		{"short span bar diameter", b.ShortDiameter, &policy.ShortDiameter},
		{"long span bar diameter", b.LongDiameter, &policy.LongDiameter},
	} {
		if d.v == 0 {
			continue
		}
		if !sni.IsMainBarDiameter(d.v) {
			return invalid(d.field, "%d mm is not one of %v", d.v, sni.MainBarDiameters)
		}
		*d.dst = float64(d.v)
	}
	in.BarPolicy = policy
	return nil
}

func (r Request) loadInput() (beam.LoadInput, error) {
	l := r.Loads
	for _, v := range []struct {
		field string
		v     float64
		max   float64
	}{
		{"dead load", l.DeadLoad, MaxLineLoad},
		{"live load", l.LiveLoad, MaxLineLoad},
		{"tributary width", l.TributaryWidth, MaxTributaryWidth},
	} {
		if !finite(v.v) || v.v < 0 {
			return beam.LoadInput{}, invalid(v.field, "must not be negative, got %v", v.v)
		}
		if v.v > v.max {
			return beam.LoadInput{}, invalid(v.field, "must not exceed %g, got %v", v.max, v.v)
		}
	}

	in := beam.LoadInput{
		WallHeight:     r.Geometry.WallHeight,
		DeadLoad:       l.DeadLoad,
		LiveLoad:       l.LiveLoad,
		TributaryWidth: l.TributaryWidth,
		Floors:         r.Geometry.FloorCount,
	}
	if in.TributaryWidth == 0 {
		in.TributaryWidth = DefaultTributaryWidth
	}

	wallClass := l.WallClass
	if wallClass == "" && in.WallHeight > 0 {
		wallClass = DefaultWallClass
	}
	if wallClass != "" {
		w, err := sni.LookupWallLoad(wallClass)
		if err != nil {
			return beam.LoadInput{}, err
		}
		in.WallUnitLoad = w.Value
	}

	if l.LiveClass != "" {
		c, err := sni.LookupLiveLoad(l.LiveClass)
		if err != nil {
			return beam.LoadInput{}, err
		}
		in.LiveAreaLoad = c.Value
	}

	// The detailed variant always carries a floor finish unless the
	// caller passes an explicit empty list.
	finishes := l.FinishClasses
	detailed := l.WallClass != "" || l.LiveClass != "" || finishes != nil
	if detailed && finishes == nil {
		finishes = []string{sni.DefaultFinishClass}
	}
	for _, key := range finishes {
		c, err := sni.LookupFinishLoad(key)
		if err != nil {
			return beam.LoadInput{}, err
		}
		in.FinishLoad += c.Value
	}

	return in, nil
}

// columnInput validates a column request and resolves its table entries.
func (r Request) columnInput() (column.Input, error) {
	if err := r.checkCommon(); err != nil {
		return column.Input{}, err
	}
	fc, _, err := r.materials()
	if err != nil {
		return column.Input{}, err
	}

	c := r.Column
	in := column.Input{
		GridX:       c.GridX,
		GridY:       c.GridY,
		Floors:      r.Geometry.FloorCount,
		UnitLoad:    c.UnitLoad,
		Fc:          fc,
		AxialFactor: c.AxialFactor,
		SteelRatio:  sni.RhoColumnMin,
		BarDiameter: column.DefaultBarDiameter,
	}
	if in.GridX == 0 {
		in.GridX = r.Geometry.Span
	}
	if in.GridY == 0 {
		in.GridY = in.GridX
	}
	if !finite(in.GridX) || !finite(in.GridY) || in.GridX <= 0 || in.GridY <= 0 || in.GridX > MaxSpan || in.GridY > MaxSpan {
		return column.Input{}, invalid("grid spacing", "must be within (0, %.0f] m, got %v × %v", MaxSpan, in.GridX, in.GridY)
	}
	if in.UnitLoad == 0 {
		in.UnitLoad = column.DefaultUnitLoad
	}
	if !finite(in.UnitLoad) || in.UnitLoad < 0 || in.UnitLoad > MaxUnitLoad {
		return column.Input{}, invalid("unit load", "must be within [0, %.0f] kN/m², got %v", MaxUnitLoad, in.UnitLoad)
	}
	if in.AxialFactor == 0 {
		in.AxialFactor = column.DefaultAxialFactor
	}
	if !finite(in.AxialFactor) || in.AxialFactor < column.MinAxialFactor || in.AxialFactor > column.MaxAxialFactor {
		return column.Input{}, invalid("axial factor", "must be within [%.2f, %.2f], got %v",
			column.MinAxialFactor, column.MaxAxialFactor, in.AxialFactor)
	}

	if r.Bars.MainDiameter != 0 {
		if !sni.IsMainBarDiameter(r.Bars.MainDiameter) {
			return column.Input{}, invalid("main bar diameter", "%d mm is not one of %v", r.Bars.MainDiameter, sni.MainBarDiameters)
		}
		in.BarDiameter = float64(r.Bars.MainDiameter)
	}

	if r.Seismic != "" || c.SeismicSteelRatio {
		s, err := sni.LookupSeismic(r.Seismic)
		if err != nil {
			return column.Input{}, fmt.Errorf("column steel ratio: %w", err)
		}
		if c.SeismicSteelRatio {
			in.SteelRatio = s.RhoColumn
		}
	}
	return in, nil
}

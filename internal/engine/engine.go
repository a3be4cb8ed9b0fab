// Package engine validates a design request and runs it through the beam or
// column design pipeline.
//
// Every call is a pure function of its request: no state is kept between
// calls, so one Engine may be shared by concurrent callers.
package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gocivil/internal/beam"
	"github.com/alexiusacademia/gocivil/internal/column"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

// Result is the outcome of one design. Exactly one of Beam and Column is set.
type Result struct {
	Name    string         `json:"name,omitempty"`
	Element sni.ElementUse `json:"element,omitempty"`
	Beam    *BeamResult    `json:"beam,omitempty"`
	Column  *ColumnResult  `json:"column,omitempty"`
}

// BeamResult holds a dimensioned and reinforced beam.
type BeamResult struct {
	// Inputs echoed for reports
	Span       float64              `json:"span_m"`
	Support    sni.SupportCondition `json:"support"`
	Seismic    sni.SeismicCategory  `json:"seismic"`
	Divisor    float64              `json:"divisor"`
	WidthRatio float64              `json:"width_ratio"`
	Fc         float64              `json:"fc_mpa"`
	Fy         float64              `json:"fy_mpa"`
	Cover      float64              `json:"cover_mm"`

	// Section (mm)
	Width          int     `json:"width_mm"`
	Height         int     `json:"height_mm"`
	HeightMin      float64 `json:"height_min_mm"`
	EffectiveDepth float64 `json:"effective_depth_mm"`

	// Loads and forces
	SelfWeight     float64 `json:"self_weight_kn_m"`
	DeadLoad       float64 `json:"dead_kn_m"`
	LiveLoad       float64 `json:"live_kn_m"`
	FactoredLoad   float64 `json:"qu_kn_m"`
	FactoredMoment float64 `json:"mu_knm"`
	FactoredShear  float64 `json:"vu_kn"`

	// Flexure
	Rho               float64 `json:"rho"`
	RhoMin            float64 `json:"rho_min"`
	RhoMax            float64 `json:"rho_max"`
	RequiredSteelArea float64 `json:"as_required_mm2"`
	ProvidedSteelArea float64 `json:"as_provided_mm2"`
	MainBarCount      int     `json:"main_bar_count"`
	MainBarDiameter   int     `json:"main_bar_mm"`
	TopBarCount       int     `json:"top_bar_count"`
	PhiMn             float64 `json:"phi_mn_knm"`

	// Shear
	ConcreteShear   float64 `json:"vc_kn"`
	StirrupDiameter int     `json:"stirrup_mm"`
	StirrupSpacing  int     `json:"stirrup_spacing_mm"`
	SpacingCeiling  int     `json:"stirrup_spacing_max_mm"`

	Notes []string `json:"notes,omitempty"`
}

// ColumnResult holds a sized square column.
type ColumnResult struct {
	Floors            int     `json:"floor_count"`
	Fc                float64 `json:"fc_mpa"`
	TributaryArea     float64 `json:"tributary_area_m2"`
	AxialLoad         float64 `json:"pu_kn"`
	GrossAreaRequired float64 `json:"ag_required_mm2"`
	SideLength        int     `json:"side_mm"`
	SteelArea         float64 `json:"as_mm2"`
	BarCount          int     `json:"bar_count"`
	BarDiameter       int     `json:"bar_mm"`
}

// Engine runs designs and logs them at debug level.
type Engine struct {
	log *zap.Logger
}

// New returns an Engine logging to log. A nil logger discards output.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

var defaultEngine = New(nil)

// Design runs one request with a silent engine.
func Design(req Request) (*Result, error) {
	return defaultEngine.Design(req)
}

// Design validates req and computes the design. On error no result is
// returned.
func (e *Engine) Design(req Request) (*Result, error) {
	if req.IsColumn() {
		in, err := req.columnInput()
		if err != nil {
			e.log.Debug("column request rejected", zap.String("name", req.Name), zap.Error(err))
			return nil, err
		}
		calc := column.Calculate(in)
		if err := checkColumn(calc); err != nil {
			e.log.Debug("column request rejected", zap.String("name", req.Name), zap.Error(err))
			return nil, err
		}
		res := &Result{Name: req.Name, Element: sni.Column, Column: columnResult(in, calc)}
		e.log.Debug("column designed",
			zap.String("name", req.Name),
			zap.Float64("pu_kn", res.Column.AxialLoad),
			zap.Int("side_mm", res.Column.SideLength),
			zap.Int("bars", res.Column.BarCount))
		return res, nil
	}

	in, err := req.beamInput()
	if err != nil {
		e.log.Debug("beam request rejected", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	calc := beam.Calculate(in)
	if err := checkBeam(calc); err != nil {
		e.log.Debug("beam request rejected", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	res := &Result{
		Name:    req.Name,
		Element: sni.ElementUse(normalizeKey(string(req.Element))),
		Beam:    beamResult(in, calc),
	}
	e.log.Debug("beam designed",
		zap.String("name", req.Name),
		zap.Int("b_mm", res.Beam.Width),
		zap.Int("h_mm", res.Beam.Height),
		zap.Float64("mu_knm", res.Beam.FactoredMoment),
		zap.Int("bars", res.Beam.MainBarCount),
		zap.Int("stirrup_spacing_mm", res.Beam.StirrupSpacing))
	return res, nil
}

// checkBeam rejects a calculation whose effects left the float64 range.
func checkBeam(r beam.Result) error {
	for _, v := range []struct {
		name string
		v    float64
	}{
		{"qu", r.Loads.Qu},
		{"Mu", r.Forces.Moment},
		{"Vu", r.Forces.Shear},
		{"As", r.Flexure.AsProvided},
		{"phiMn", r.Flexure.PhiMn},
	} {
		if !finite(v.v) {
			return invalid("loads", "factored effect %s is not finite", v.name)
		}
	}
	return nil
}

func checkColumn(r column.Result) error {
	if !finite(r.AxialLoad) || !finite(r.Side) || !finite(r.SteelArea) {
		return invalid("loads", "factored axial load is not finite")
	}
	return nil
}

func beamResult(in beam.Input, r beam.Result) *BeamResult {
	f := r.Flexure
	return &BeamResult{
		Span:       in.SpanM,
		Support:    in.Support.Condition,
		Seismic:    in.Seismic.Category,
		Divisor:    in.Divisor,
		WidthRatio: in.WidthRatio,
		Fc:         in.Fc,
		Fy:         in.Fy,
		Cover:      in.Cover,

		Width:          toInt(r.Dimensions.Width),
		Height:         toInt(r.Dimensions.Height),
		HeightMin:      r.Dimensions.HeightMin,
		EffectiveDepth: r.EffectiveDepth,

		SelfWeight:     r.Loads.SelfWeight,
		DeadLoad:       r.Loads.Dead,
		LiveLoad:       r.Loads.Live,
		FactoredLoad:   r.Loads.Qu,
		FactoredMoment: r.Forces.Moment,
		FactoredShear:  r.Forces.Shear,

		Rho:               f.Rho,
		RhoMin:            f.RhoMin,
		RhoMax:            f.RhoMax,
		RequiredSteelArea: f.AsRequired,
		ProvidedSteelArea: f.AsProvided,
		MainBarCount:      f.BarCount,
		MainBarDiameter:   toInt(f.BarDiameter),
		TopBarCount:       f.TopBarCount,
		PhiMn:             f.PhiMn,

		ConcreteShear:   r.Shear.Vc,
		StirrupDiameter: toInt(in.StirrupBarDiameter),
		StirrupSpacing:  toInt(r.Shear.Spacing),
		SpacingCeiling:  toInt(r.Shear.SpacingCeiling),

		Notes: r.Notes,
	}
}

func columnResult(in column.Input, r column.Result) *ColumnResult {
	return &ColumnResult{
		Floors:            in.Floors,
		Fc:                in.Fc,
		TributaryArea:     r.TributaryArea,
		AxialLoad:         r.AxialLoad,
		GrossAreaRequired: r.GrossAreaReq,
		SideLength:        toInt(r.Side),
		SteelArea:         r.SteelArea,
		BarCount:          r.BarCount,
		BarDiameter:       toInt(r.BarDiameter),
	}
}

// toInt converts a value already rounded to a whole increment.
func toInt(v float64) int {
	return int(math.Round(v))
}

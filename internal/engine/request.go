package engine

import (
	"github.com/alexiusacademia/gocivil/internal/sni"
)

// Request holds everything needed to design one beam or column.
type Request struct {
	Name string `json:"name,omitempty"`

	Material MaterialSpec `json:"material"`
	Geometry Geometry     `json:"geometry"`

	// Element selects the default divisor and width ratio. Column selects
	// the column path. Support, when set, overrides the element divisor
	// and selects the force coefficients.
	Element    sni.ElementUse       `json:"element,omitempty"`
	Support    sni.SupportCondition `json:"support,omitempty"`
	WidthRatio float64              `json:"width_ratio,omitempty"`

	Loads   LoadInputs          `json:"loads"`
	Seismic sni.SeismicCategory `json:"seismic,omitempty"`
	Bars    Bars                `json:"bars"`
	Column  ColumnInputs        `json:"column"`
}

// MaterialSpec names the concrete and steel grades.
type MaterialSpec struct {
	ConcreteGrade string `json:"concrete_grade"`
	SteelGrade    string `json:"steel_grade"`
}

// Geometry holds the span and storey data.
type Geometry struct {
	Span       float64 `json:"span_m"`
	FloorCount int     `json:"floor_count"`
	WallHeight float64 `json:"wall_height_m,omitempty"`
	Cover      float64 `json:"cover_mm,omitempty"` // zero selects DefaultCover
}

// LoadInputs holds the gravity loads on a beam, either as direct line loads,
// as table classes, or both.
type LoadInputs struct {
	DeadLoad float64 `json:"dead_kn_m,omitempty"`
	LiveLoad float64 `json:"live_kn_m,omitempty"`

	WallClass     string   `json:"wall_class,omitempty"`
	FinishClasses []string `json:"finish_classes,omitempty"`
	LiveClass     string   `json:"live_class,omitempty"`

	TributaryWidth float64 `json:"tributary_width_m,omitempty"` // zero selects 1 m
}

// Bars holds the bar diameter choices (mm). Zero values select defaults.
type Bars struct {
	MainDiameter    int `json:"main_mm,omitempty"`
	StirrupDiameter int `json:"stirrup_mm,omitempty"`

	// Span policy used when MainDiameter is zero
	SpanThreshold float64 `json:"span_threshold_m,omitempty"`
	ShortDiameter int     `json:"short_span_mm,omitempty"`
	LongDiameter  int     `json:"long_span_mm,omitempty"`
}

// ColumnInputs holds the column path inputs.
type ColumnInputs struct {
	GridX       float64 `json:"grid_x_m,omitempty"` // zero uses the span
	GridY       float64 `json:"grid_y_m,omitempty"` // zero uses GridX
	UnitLoad    float64 `json:"unit_load_kn_m2,omitempty"`
	AxialFactor float64 `json:"axial_factor,omitempty"`

	// Use the seismic category column steel ratio instead of 1%
	SeismicSteelRatio bool `json:"seismic_steel_ratio,omitempty"`
}

// Defaults applied to zero-valued request fields
const (
	MaxSpan                = 30.0 // m
	DefaultCover           = 40.0 // mm
	MaxCover               = 100.0
	DefaultStirrupDiameter = 8
	DefaultTributaryWidth  = 1.0 // m
	DefaultWidthRatio      = 0.5
	DefaultWallClass       = "red-brick"
)

// Upper bounds on load inputs. Beyond these the factored effects leave the
// range of a building element and may overflow float64.
const (
	MaxFloors         = 100
	MaxWallHeight     = 20.0  // m
	MaxLineLoad       = 1e5   // kN/m, dead or live
	MaxTributaryWidth = 30.0  // m
	MaxUnitLoad       = 100.0 // kN/m², column tributary load
)

// IsColumn reports whether the request follows the column path.
func (r Request) IsColumn() bool {
	return sni.ElementUse(normalizeKey(string(r.Element))) == sni.Column
}

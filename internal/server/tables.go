package server

import (
	"net/http"

	"github.com/alexiusacademia/gocivil/internal/sni"
)

type option struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type supportOption struct {
	Key           string  `json:"key"`
	Description   string  `json:"description"`
	Divisor       float64 `json:"divisor"`
	MomentDivisor float64 `json:"moment_divisor"`
	ShearFactor   float64 `json:"shear_factor"`
}

type elementOption struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Divisor     float64 `json:"divisor,omitempty"`
	WidthRatio  float64 `json:"width_ratio,omitempty"`
}

type seismicOption struct {
	Key               string  `json:"key"`
	Description       string  `json:"description"`
	RhoColumn         float64 `json:"rho_column"`
	MaxStirrupSpacing float64 `json:"max_stirrup_spacing_mm"`
}

// catalog is the set of keys a request may use.
type catalog struct {
	Concrete []option        `json:"concrete_grades"`
	Steel    []option        `json:"steel_grades"`
	Live     []option        `json:"live_load_classes"`
	Wall     []option        `json:"wall_load_classes"`
	Finish   []option        `json:"finish_load_classes"`
	Supports []supportOption `json:"support_conditions"`
	Elements []elementOption `json:"element_uses"`
	Seismic  []seismicOption `json:"seismic_categories"`

	MainBars    []int `json:"main_bar_diameters"`
	StirrupBars []int `json:"stirrup_bar_diameters"`
}

func grades(gs []sni.Grade) []option {
	out := make([]option, len(gs))
	for i, g := range gs {
		out[i] = option{g.Key, g.Description, g.Strength}
	}
	return out
}

func loadClasses(cs []sni.LoadClass) []option {
	out := make([]option, len(cs))
	for i, c := range cs {
		out[i] = option{c.Key, c.Description, c.Value}
	}
	return out
}

func buildCatalog() catalog {
	c := catalog{
		Concrete:    grades(sni.ConcreteGrades),
		Steel:       grades(sni.SteelGrades),
		Live:        loadClasses(sni.LiveLoadClasses),
		Wall:        loadClasses(sni.WallLoadClasses),
		Finish:      loadClasses(sni.FinishLoadClasses),
		MainBars:    sni.MainBarDiameters,
		StirrupBars: sni.StirrupBarDiameters,
	}
	for _, s := range sni.SupportConditions() {
		c.Supports = append(c.Supports, supportOption{string(s.Condition), s.Description, s.Divisor, s.MomentDivisor, s.ShearFactor})
	}
	for _, e := range sni.ElementUses() {
		c.Elements = append(c.Elements, elementOption{string(e.Use), e.Description, e.Divisor, e.WidthRatio})
	}
	for _, s := range sni.SeismicCategories() {
		c.Seismic = append(c.Seismic, seismicOption{string(s.Category), s.Description, s.RhoColumn, s.MaxStirrupSpacing})
	}
	return c
}

func (s *Server) tables(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, buildCatalog())
}

package sni

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKey is matched by every LookupError.
var ErrUnknownKey = errors.New("unknown configuration key")

// LookupError reports a key that is not present in one of the reference tables.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Table, e.Key)
}

// Is lets errors.Is(err, ErrUnknownKey) match any lookup failure.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownKey
}

// Grade is a named material grade with its characteristic strength (MPa).
type Grade struct {
	Key         string
	Description string
	Strength    float64
}

// LoadClass is a named unit load. Unit depends on the table.
type LoadClass struct {
	Key         string
	Description string
	Value       float64
}

// Concrete grades (K-xxx cube strength → f'c cylinder, MPa)
var ConcreteGrades = []Grade{
	{"K-175", "K-175", 14.5},
	{"K-200", "K-200", 16.6},
	{"K-225", "K-225", 18.7},
	{"K-250", "K-250", 20.8},
	{"K-300", "K-300", 24.9},
	{"K-350", "K-350", 29.1},
	{"K-400", "K-400", 33.2},
}

// Steel grades, SNI 2052:2017
var SteelGrades = []Grade{
	{"BjTP-280", "Polos (BjTP 280)", 280},
	{"BjTS-420", "Ulir (BjTS 420)", 420},
}

// Live loads by occupancy (kN/m²), SNI 1727:2020 Table 4.3-1
var LiveLoadClasses = []LoadClass{
	{"residential", "Lantai Hunian", 1.92},
	{"office", "Lantai Kantor", 2.40},
	{"school", "Lantai Sekolah", 2.40},
	{"heavy-storage", "Gudang Berat", 6.00},
	{"roof-slab", "Atap Dak", 0.96},
}

// Wall loads (kN/m² per metre of wall height), PPPURG 1987
var WallLoadClasses = []LoadClass{
	{"red-brick", "Bata Merah", 2.50},
	{"lightweight-brick", "Bata Ringan", 0.75},
}

// Superimposed finish loads (kN/m²), PPPURG 1987
var FinishLoadClasses = []LoadClass{
	{"tile-mortar", "Spesi/Keramik", 1.10},
	{"ceiling-me", "Plafon/ME", 0.20},
}

// DefaultFinishClass is applied to beams when no finish class is given.
const DefaultFinishClass = "tile-mortar"

// LookupConcrete returns f'c (MPa) for a concrete grade key.
func LookupConcrete(key string) (Grade, error) {
	return lookupGrade("concrete grade", ConcreteGrades, key)
}

// LookupSteel returns fy (MPa) for a steel grade key.
func LookupSteel(key string) (Grade, error) {
	return lookupGrade("steel grade", SteelGrades, key)
}

// LookupLiveLoad returns the live load class for an occupancy key.
func LookupLiveLoad(key string) (LoadClass, error) {
	return lookupLoad("live load class", LiveLoadClasses, key)
}

// LookupWallLoad returns the wall load class for a wall type key.
func LookupWallLoad(key string) (LoadClass, error) {
	return lookupLoad("wall load class", WallLoadClasses, key)
}

// LookupFinishLoad returns the finish load class for a finish key.
func LookupFinishLoad(key string) (LoadClass, error) {
	return lookupLoad("finish load class", FinishLoadClasses, key)
}

func lookupGrade(table string, grades []Grade, key string) (Grade, error) {
	k := normalize(key)
	for _, g := range grades {
		if normalize(g.Key) == k {
			return g, nil
		}
	}
	return Grade{}, &LookupError{Table: table, Key: key}
}

func lookupLoad(table string, classes []LoadClass, key string) (LoadClass, error) {
	k := normalize(key)
	for _, c := range classes {
		if normalize(c.Key) == k {
			return c, nil
		}
	}
	return LoadClass{}, &LookupError{Table: table, Key: key}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SupportCondition selects the span/depth ratio and the force coefficients.
type SupportCondition string

const (
	SimplySupported    SupportCondition = "simply-supported"
	OneEndContinuous   SupportCondition = "one-end-continuous"
	BothEndsContinuous SupportCondition = "both-ends-continuous"
	Cantilever         SupportCondition = "cantilever"
)

// SupportSpec holds the table entry for a support condition.
type SupportSpec struct {
	Condition   SupportCondition
	Description string
	// Minimum h = L / Divisor, SNI 2847:2019 Table 9.3.1.1
	Divisor float64
	// Mu = qu·L² / MomentDivisor, Vu = ShearFactor·qu·L
	MomentDivisor float64
	ShearFactor   float64
}

var supportTable = []SupportSpec{
	{SimplySupported, "Sederhana (L/16)", 16, 8, 0.5},
	{OneEndContinuous, "Satu Ujung Menerus (L/18.5)", 18.5, 10, 0.575},
	{BothEndsContinuous, "Dua Ujung Menerus (L/21)", 21, 11, 0.5},
	{Cantilever, "Kantilever (L/8)", 8, 2, 1.0},
}

// SupportConditions lists the table in display order.
func SupportConditions() []SupportSpec {
	return append([]SupportSpec(nil), supportTable...)
}

// LookupSupport returns the table entry for a support condition.
func LookupSupport(c SupportCondition) (SupportSpec, error) {
	k := normalize(string(c))
	for _, s := range supportTable {
		if string(s.Condition) == k {
			return s, nil
		}
	}
	return SupportSpec{}, &LookupError{Table: "support condition", Key: string(c)}
}

// ElementUse is the structural role of the element being sized.
type ElementUse string

const (
	MainBeam      ElementUse = "main-beam"
	SecondaryBeam ElementUse = "secondary-beam"
	RingBeam      ElementUse = "ring-beam"
	Sloof         ElementUse = "sloof"
	Column        ElementUse = "column"
)

// ElementSpec holds the default sizing ratios for an element use.
type ElementSpec struct {
	Use         ElementUse
	Description string
	Divisor     float64 // zero for columns
	WidthRatio  float64 // zero for columns
}

var elementTable = []ElementSpec{
	{MainBeam, "Balok Utama", 12, 0.5},
	{SecondaryBeam, "Balok Anak", 16, 0.5},
	{RingBeam, "Ring Balok", 20, 0.5},
	{Sloof, "Sloof", 15, 0.6},
	{Column, "Kolom", 0, 0},
}

// ElementUses lists the table in display order.
func ElementUses() []ElementSpec {
	return append([]ElementSpec(nil), elementTable...)
}

// LookupElement returns the table entry for an element use.
func LookupElement(u ElementUse) (ElementSpec, error) {
	k := normalize(string(u))
	for _, e := range elementTable {
		if string(e.Use) == k {
			return e, nil
		}
	}
	return ElementSpec{}, &LookupError{Table: "element use", Key: string(u)}
}

// SeismicCategory is the seismic design category group (KDS).
type SeismicCategory string

const (
	SeismicLow      SeismicCategory = "low"
	SeismicModerate SeismicCategory = "moderate"
	SeismicHigh     SeismicCategory = "high"
)

// SeismicSpec holds the detailing limits for a seismic category.
type SeismicSpec struct {
	Category    SeismicCategory
	Description string
	// Column longitudinal steel ratio
	RhoColumn float64
	PhiShear  float64
	// Stirrup spacing ceiling (mm)
	MaxStirrupSpacing float64
}

var seismicTable = []SeismicSpec{
	{SeismicLow, "Rendah", 0.01, PhiShear, 200},
	{SeismicModerate, "Sedang", 0.012, PhiShear, 150},
	{SeismicHigh, "Tinggi", 0.015, PhiShear, 100},
}

// SeismicCategories lists the table in display order.
func SeismicCategories() []SeismicSpec {
	return append([]SeismicSpec(nil), seismicTable...)
}

// LookupSeismic returns the table entry for a seismic category.
func LookupSeismic(c SeismicCategory) (SeismicSpec, error) {
	k := normalize(string(c))
	for _, s := range seismicTable {
		if string(s.Category) == k {
			return s, nil
		}
	}
	return SeismicSpec{}, &LookupError{Table: "seismic category", Key: string(c)}
}

// GradeKeys returns the sorted keys of a grade table, for help text.
func GradeKeys(grades []Grade) []string {
	keys := make([]string, 0, len(grades))
	for _, g := range grades {
		keys = append(keys, g.Key)
	}
	sort.Strings(keys)
	return keys
}

// LoadClassKeys returns the sorted keys of a load table, for help text.
func LoadClassKeys(classes []LoadClass) []string {
	keys := make([]string, 0, len(classes))
	for _, c := range classes {
		keys = append(keys, c.Key)
	}
	sort.Strings(keys)
	return keys
}

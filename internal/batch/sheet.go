package batch

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocivil/internal/engine"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

// Columns lists the recognised input sheet headers. Header matching is
// case-insensitive and columns may appear in any order.
var Columns = []string{
	"name", "element", "support", "span", "floors",
	"concrete", "steel", "seismic",
	"dead", "live", "wall_height", "wall_class", "finish", "live_class", "trib_width",
	"cover", "main_bar", "stirrup",
	"grid_x", "grid_y", "unit_load", "axial_factor", "seismic_steel",
}

// ReadXLSX reads one request per row from the first sheet of a workbook.
// The first row holds the headers. Rows that fail to parse are returned with
// Err set so that they show up in the results.
func ReadXLSX(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	header := map[string]int{}
	for i, h := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := header["span"]; !ok {
		return nil, fmt.Errorf("sheet %q has no span column", sheet)
	}

	var items []Item
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		req, err := parseRow(header, rows[i])
		items = append(items, Item{Row: i + 1, Request: req, Err: err})
	}
	return items, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

type rowReader struct {
	header map[string]int
	row    []string
	err    error
}

func (r *rowReader) str(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r *rowReader) float(col string) float64 {
	s := r.str(col)
	if s == "" || r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = fmt.Errorf("column %s: %q is not a number", col, s)
	}
	return v
}

func (r *rowReader) int(col string) int {
	s := r.str(col)
	if s == "" || r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("column %s: %q is not a whole number", col, s)
	}
	return v
}

func (r *rowReader) bool(col string) bool {
	switch strings.ToLower(r.str(col)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// list splits a comma or semicolon separated cell. An empty cell yields nil;
// "none" yields an empty list.
func (r *rowReader) list(col string) []string {
	s := r.str(col)
	if s == "" {
		return nil
	}
	if strings.EqualFold(s, "none") {
		return []string{}
	}
	parts := strings.FieldsFunc(s, func(c rune) bool { return c == ',' || c == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseRow(header map[string]int, row []string) (engine.Request, error) {
	r := &rowReader{header: header, row: row}
	req := engine.Request{
		Name:     r.str("name"),
		Material: engine.MaterialSpec{ConcreteGrade: r.str("concrete"), SteelGrade: r.str("steel")},
		Geometry: engine.Geometry{
			Span:       r.float("span"),
			FloorCount: r.int("floors"),
			WallHeight: r.float("wall_height"),
			Cover:      r.float("cover"),
		},
		Element: sni.ElementUse(r.str("element")),
		Support: sni.SupportCondition(r.str("support")),
		Seismic: sni.SeismicCategory(r.str("seismic")),
		Loads: engine.LoadInputs{
			DeadLoad:       r.float("dead"),
			LiveLoad:       r.float("live"),
			WallClass:      r.str("wall_class"),
			FinishClasses:  r.list("finish"),
			LiveClass:      r.str("live_class"),
			TributaryWidth: r.float("trib_width"),
		},
		Bars: engine.Bars{
			MainDiameter:    r.int("main_bar"),
			StirrupDiameter: r.int("stirrup"),
		},
		Column: engine.ColumnInputs{
			GridX:             r.float("grid_x"),
			GridY:             r.float("grid_y"),
			UnitLoad:          r.float("unit_load"),
			AxialFactor:       r.float("axial_factor"),
			SeismicSteelRatio: r.bool("seismic_steel"),
		},
	}
	if req.Geometry.FloorCount == 0 && r.err == nil {
		req.Geometry.FloorCount = 1
	}
	return req, r.err
}

var resultHeader = []string{
	"Row", "Name", "Element", "Status",
	"b (mm)", "h (mm)", "qu (kN/m)", "Mu (kN-m)", "Vu (kN)",
	"Bottom bars", "Top bars", "Stirrups",
	"Pu (kN)", "Column (mm)", "Column bars",
	"Notes",
}

// WriteXLSX writes one results row per outcome to a new workbook.
func WriteXLSX(w io.Writer, outcomes []Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &resultHeader); err != nil {
		return err
	}

	for i, o := range outcomes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := resultRow(o)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func resultRow(o Outcome) []interface{} {
	row := make([]interface{}, len(resultHeader))
	for i := range row {
		row[i] = ""
	}
	row[0] = o.Row
	row[1] = o.Name
	if o.Err != nil {
		row[3] = "error"
		row[15] = o.Err.Error()
		return row
	}
	row[3] = "ok"
	row[2] = string(o.Result.Element)
	if b := o.Result.Beam; b != nil {
		row[4] = b.Width
		row[5] = b.Height
		row[6] = round2(b.FactoredLoad)
		row[7] = round2(b.FactoredMoment)
		row[8] = round2(b.FactoredShear)
		row[9] = fmt.Sprintf("%d D%d", b.MainBarCount, b.MainBarDiameter)
		row[10] = fmt.Sprintf("%d D%d", b.TopBarCount, b.MainBarDiameter)
		row[11] = fmt.Sprintf("D%d-%d", b.StirrupDiameter, b.StirrupSpacing)
		row[15] = strings.Join(b.Notes, " ")
	}
	if c := o.Result.Column; c != nil {
		row[2] = string(sni.Column)
		row[12] = round2(c.AxialLoad)
		row[13] = fmt.Sprintf("%d x %d", c.SideLength, c.SideLength)
		row[14] = fmt.Sprintf("%d D%d", c.BarCount, c.BarDiameter)
	}
	return row
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

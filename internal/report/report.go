// Package report renders design results as Markdown, HTML or PDF.
package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/alexiusacademia/gocivil/internal/engine"
)

// Row is one labelled value in a report table.
type Row struct {
	Label string
	Value string
}

// Section is a titled table of rows.
type Section struct {
	Title string
	Rows  []Row
}

// Document is the format-independent content of a report.
type Document struct {
	Title    string
	Sections []Section
	Notes    []string
}

// Build collects the report content for a result.
func Build(r *engine.Result) Document {
	doc := Document{Title: r.Name}
	switch {
	case r.Beam != nil:
		if doc.Title == "" {
			doc.Title = "Beam Design"
		}
		doc.Sections = beamSections(r.Beam)
		doc.Notes = r.Beam.Notes
	case r.Column != nil:
		if doc.Title == "" {
			doc.Title = "Column Design"
		}
		doc.Sections = columnSections(r.Column)
	}
	return doc
}

func beamSections(b *engine.BeamResult) []Section {
	return []Section{
		{"Input", []Row{
			{"Span", fmt.Sprintf("%.2f m", b.Span)},
			{"Support", string(b.Support)},
			{"Seismic category", string(b.Seismic)},
			{"Height divisor", fmt.Sprintf("L/%.1f", b.Divisor)},
			{"Concrete f'c", fmt.Sprintf("%.1f MPa", b.Fc)},
			{"Steel fy", fmt.Sprintf("%.0f MPa", b.Fy)},
			{"Cover", fmt.Sprintf("%.0f mm", b.Cover)},
		}},
		{"Section", []Row{
			{"b x h", fmt.Sprintf("%d x %d mm", b.Width, b.Height)},
			{"h min", fmt.Sprintf("%.1f mm", b.HeightMin)},
			{"Effective depth d", fmt.Sprintf("%.1f mm", b.EffectiveDepth)},
		}},
		{"Loads", []Row{
			{"Self weight", fmt.Sprintf("%.2f kN/m", b.SelfWeight)},
			{"Dead load D", fmt.Sprintf("%.2f kN/m", b.DeadLoad)},
			{"Live load L", fmt.Sprintf("%.2f kN/m", b.LiveLoad)},
			{"qu = 1.2D + 1.6L", fmt.Sprintf("%.2f kN/m", b.FactoredLoad)},
			{"Mu", fmt.Sprintf("%.2f kN-m", b.FactoredMoment)},
			{"Vu", fmt.Sprintf("%.2f kN", b.FactoredShear)},
		}},
		{"Flexure", []Row{
			{"rho", fmt.Sprintf("%.5f", b.Rho)},
			{"rho min / max", fmt.Sprintf("%.5f / %.4f", b.RhoMin, b.RhoMax)},
			{"As required", fmt.Sprintf("%.1f mm2", b.RequiredSteelArea)},
			{"Bottom bars", fmt.Sprintf("%d D%d (%.1f mm2)", b.MainBarCount, b.MainBarDiameter, b.ProvidedSteelArea)},
			{"Top bars", fmt.Sprintf("%d D%d", b.TopBarCount, b.MainBarDiameter)},
			{"phi Mn", fmt.Sprintf("%.2f kN-m", b.PhiMn)},
		}},
		{"Shear", []Row{
			{"Vc", fmt.Sprintf("%.2f kN", b.ConcreteShear)},
			{"Stirrups", fmt.Sprintf("D%d @ %d mm", b.StirrupDiameter, b.StirrupSpacing)},
			{"Spacing limit", fmt.Sprintf("%d mm", b.SpacingCeiling)},
		}},
	}
}

func columnSections(c *engine.ColumnResult) []Section {
	return []Section{
		{"Input", []Row{
			{"Floors", fmt.Sprintf("%d", c.Floors)},
			{"Concrete f'c", fmt.Sprintf("%.1f MPa", c.Fc)},
			{"Tributary area", fmt.Sprintf("%.2f m2", c.TributaryArea)},
		}},
		{"Result", []Row{
			{"Pu", fmt.Sprintf("%.1f kN", c.AxialLoad)},
			{"Ag required", fmt.Sprintf("%.0f mm2", c.GrossAreaRequired)},
			{"Section", fmt.Sprintf("%d x %d mm", c.SideLength, c.SideLength)},
			{"As", fmt.Sprintf("%.0f mm2", c.SteelArea)},
			{"Bars", fmt.Sprintf("%d D%d", c.BarCount, c.BarDiameter)},
		}},
	}
}

// Markdown renders the document as Markdown with one table per section.
func (d Document) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", d.Title)
	for _, s := range d.Sections {
		fmt.Fprintf(&sb, "## %s\n\n", s.Title)
		sb.WriteString("| Item | Value |\n|---|---|\n")
		for _, r := range s.Rows {
			fmt.Fprintf(&sb, "| %s | %s |\n", r.Label, r.Value)
		}
		sb.WriteString("\n")
	}
	if len(d.Notes) > 0 {
		sb.WriteString("## Notes\n\n")
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "- %s\n", n)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the document as a standalone HTML page.
func (d Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(d.Markdown()), &buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(d.Title), buf.String()), nil
}

// Write renders the document to w in the given format: md, html or pdf.
func (d Document) Write(w io.Writer, format string) error {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "md", "markdown":
		_, err := io.WriteString(w, d.Markdown())
		return err
	case "html", "htm":
		page, err := d.HTML()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	case "pdf":
		return d.PDF(w)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// WriteFile writes the document to filename, choosing the format from its
// extension.
func (d Document) WriteFile(filename string) error {
	var buf bytes.Buffer
	if err := d.Write(&buf, filepath.Ext(filename)); err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

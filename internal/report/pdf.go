package report

import (
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Core PDF fonts are cp1252; spell out symbols they cannot encode.
var pdfSymbols = strings.NewReplacer(
	"ρ", "rho",
	"φ", "phi",
	"≤", "<=",
	"≥", ">=",
)

// PDF renders the document as an A4 page.
func (d Document) PDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfSymbols.Replace(s)) }

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(d.Title))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Date: "+time.Now().Format("2006-01-02"))
	pdf.Ln(10)

	for _, s := range d.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text(s.Title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range s.Rows {
			pdf.CellFormat(70, 6, text(r.Label), "B", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, text(r.Value), "B", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if len(d.Notes) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, n := range d.Notes {
			pdf.MultiCell(0, 6, "- "+text(n), "", "L", false)
		}
	}

	return pdf.Output(w)
}

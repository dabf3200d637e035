package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

var sectionFill = [3]int{255, 204, 153}

// document wraps gofpdf with a cp1252 translator so accented labels render.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDocument() *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	return &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d *document) title(text string) {
	d.pdf.SetFont("Arial", "B", 14)
	d.pdf.CellFormat(0, 10, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(5)
}

func (d *document) section(text string) {
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetFillColor(sectionFill[0], sectionFill[1], sectionFill[2])
	d.pdf.CellFormat(0, 10, d.tr(text), "", 1, "L", true, 0, "")
	d.pdf.Ln(3)
}

// header writes a filled, bold table header row.
func (d *document) header(widths []float64, labels ...string) {
	d.pdf.SetFont("Arial", "B", 10)
	d.pdf.SetFillColor(sectionFill[0], sectionFill[1], sectionFill[2])
	for i, l := range labels {
		d.pdf.CellFormat(widths[i], 10, d.tr(l), "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
}

// row writes a table row; aligns defaults to left for missing entries.
func (d *document) row(widths []float64, bold bool, aligns string, cells ...string) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Arial", style, 10)
	for i, c := range cells {
		align := "L"
		if i < len(aligns) {
			align = string(aligns[i])
		}
		d.pdf.CellFormat(widths[i], 10, d.tr(c), "1", 0, align, false, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *document) text(s string) {
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.MultiCell(0, 6, d.tr(s), "", "L", false)
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

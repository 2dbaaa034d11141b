package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/randalmurphal/culinary/generator"
)

// PDF renders the parsed menu as an A4 document.
func PDF(r *generator.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.RestaurantName, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; accented dish names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if r.RestaurantName != "" {
		pdf.SetFont("Helvetica", "B", 22)
		pdf.MultiCell(0, 10, tr(r.RestaurantName), "", "C", false)
	}
	if r.Cuisine != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr(r.Cuisine+" cuisine"), "", "C", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)

	for _, s := range r.Parsed.Sections() {
		if len(s.Items) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 15)
		pdf.MultiCell(0, 8, tr(s.Name), "B", "L", false)
		pdf.Ln(2)

		for _, item := range s.Items {
			title := item.Name
			if len(item.Dietary) > 0 {
				title += " (" + item.DietaryLabel() + ")"
			}
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(title), "", "L", false)
			if item.Description != "" {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.MultiCell(0, 5, tr(item.Description), "", "L", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

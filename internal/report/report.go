// Package report renders the latest BMI computation as a one-page PDF.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"lg/bmi-tracker/internal/health"
)

const (
	Filename    = "BMI_Report.pdf"
	ContentType = "application/pdf"
	Title       = "BMI Report"
)

// ErrNoComputation is returned when there is nothing to export yet.
var ErrNoComputation = errors.New("please calculate your BMI first")

// Lines returns the report body in print order, one field per line.
func Lines(c *health.Computation) []string {
	calories := "N/A"
	if c.Calories != nil && *c.Calories != 0 {
		calories = strconv.Itoa(*c.Calories)
	}
	return []string{
		"Name: " + c.Name,
		fmt.Sprintf("Age: %d years", c.Age),
		"Gender: " + string(c.Gender),
		fmt.Sprintf("Weight: %.2f kg", c.WeightKG),
		fmt.Sprintf("Height: %.2f m", c.HeightM),
		fmt.Sprintf("BMI: %.2f", c.BMI),
		"Category: " + c.Category,
		"Health Tip: " + c.Tip,
		"Recommended Daily Calories: " + calories + " kcal",
	}
}

// Render produces the PDF bytes for c. A nil computation is refused with
// ErrNoComputation and no document is built.
func Render(c *health.Computation) ([]byte, error) {
	return render(c, true)
}

func render(c *health.Computation, compress bool) ([]byte, error) {
	if c == nil {
		return nil, ErrNoComputation
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(Title, false)
	pdf.AddPage()

	// Core fonts are cp1252; transliterate user-entered UTF-8 (names).
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, line := range Lines(c) {
		pdf.CellFormat(190, 10, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package fixture

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/exp/slog"

	"github.com/lesterpdf/fixtures/unit"
)

// dimTolerance is the tolerance in points when comparing page dimensions.
// Poppler based consumers compare page sizes at 1/1000 pt.
const dimTolerance = 0.001

// VerifyPDF checks that the file at path is a well formed PDF with the given
// number of pages, each of the wanted size in points.
func VerifyPDF(path string, pages int, width, height float64) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		return err
	}
	if n != pages {
		return fmt.Errorf("%s has %d pages, want %d", path, n, pages)
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return err
	}
	for i, dim := range dims {
		if math.Abs(dim.Width-width) > dimTolerance || math.Abs(dim.Height-height) > dimTolerance {
			return fmt.Errorf("%s page %d is %v x %v pt, want %v x %v pt",
				path, i+1, dim.Width, dim.Height, width, height)
		}
	}
	return nil
}

// Verify checks the standard fixtures in the output directory against their
// expected page counts and sizes.
func (g *Generator) Verify() error {
	checks := []struct {
		name          string
		width, height float64
	}{
		{BlankA4PDF, unit.MillimetersToPoints(210), unit.MillimetersToPoints(297)},
		{PatternPDF, unit.CSSPixelsToPoints(patternSize), unit.CSSPixelsToPoints(patternSize)},
	}
	for _, c := range checks {
		path := filepath.Join(g.OutDir, c.name)
		if err := VerifyPDF(path, 1, c.width, c.height); err != nil {
			return err
		}
		slog.Info("Fixture ok", "filename", path)
	}
	return nil
}

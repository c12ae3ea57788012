// Package fixture creates the PDF and PNG reference files used by the PDF
// processing test suite.
package fixture

import (
	"os"
	"path/filepath"

	"github.com/lesterpdf/fixtures/document"
	"github.com/lesterpdf/fixtures/unit"
)

// File names of the standard fixtures.
const (
	BlankA4PDF = "A4_one_empty_page.pdf"
	PatternPNG = "pattern_4x4.png"
	PatternPDF = "pattern_4x4.pdf"
)

// patternSize is the edge length of the test pattern in pixels.
const patternSize = 4

// A Generator writes test fixtures into OutDir.
type Generator struct {
	OutDir string
}

// New creates a Generator writing to the given directory.
func New(outdir string) *Generator {
	return &Generator{OutDir: outdir}
}

// newDocument creates a fixture document writing to path. Fixture documents
// are always reproducible so that reruns of the generator do not churn the
// files.
func (g *Generator) newDocument(w *os.File, path string) *document.PDFDocument {
	d := document.NewDocument(w)
	d.Filename = path
	d.Title = filepath.Base(path)
	d.SuppressInfo = true
	return d
}

// BlankPDF writes a PDF with a single empty page of the given size and
// returns the path of the written file.
func (g *Generator) BlankPDF(filename string, width, height unit.ScaledPoint) (string, error) {
	path := filepath.Join(g.OutDir, filename)
	w, err := os.Create(path)
	if err != nil {
		return "", err
	}
	d := g.newDocument(w, path)
	p := d.NewPage()
	p.Width = width
	p.Height = height
	p.Shipout()
	if err = d.Finish(); err != nil {
		w.Close()
		return "", err
	}
	return path, w.Close()
}

// ImagePDF writes a PDF with a single page that has the pixel dimensions of
// the image file, interpreted as CSS pixels, and the image painted once,
// unscaled, covering the whole page.
func (g *Generator) ImagePDF(filename string, imagefile string) (string, error) {
	path := filepath.Join(g.OutDir, filename)
	w, err := os.Create(path)
	if err != nil {
		return "", err
	}
	d := g.newDocument(w, path)
	imgf, err := d.LoadImageFile(imagefile)
	if err != nil {
		w.Close()
		return "", err
	}
	p := d.NewPage()
	p.Width = unit.FromPT(unit.CSSPixelsToPoints(float64(imgf.W)))
	p.Height = unit.FromPT(unit.CSSPixelsToPoints(float64(imgf.H)))
	p.PaintImage(imgf)
	p.Shipout()
	if err = d.Finish(); err != nil {
		w.Close()
		return "", err
	}
	return path, w.Close()
}

// A4Blank writes the empty ISO A4 page fixture.
func (g *Generator) A4Blank() (string, error) {
	return g.BlankPDF(BlankA4PDF, unit.MustSP("210mm"), unit.MustSP("297mm"))
}

// Pattern writes the 4x4 pattern fixtures, first the PNG and then the PDF
// derived from it.
func (g *Generator) Pattern() ([]string, error) {
	pngpath, err := g.PatternImage(PatternPNG)
	if err != nil {
		return nil, err
	}
	pdfpath, err := g.ImagePDF(PatternPDF, pngpath)
	if err != nil {
		return nil, err
	}
	return []string{pngpath, pdfpath}, nil
}

// All writes all standard fixtures and returns the written paths.
func (g *Generator) All() ([]string, error) {
	blank, err := g.A4Blank()
	if err != nil {
		return nil, err
	}
	written := []string{blank}
	pattern, err := g.Pattern()
	if err != nil {
		return nil, err
	}
	return append(written, pattern...), nil
}

package fixture

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lesterpdf/fixtures/unit"
)

func TestAll(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)
	written, err := g.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 3 {
		t.Fatalf("got %d files, want 3", len(written))
	}
	for _, path := range written {
		if _, err = os.Stat(path); err != nil {
			t.Error(err)
		}
	}
	if err = g.Verify(); err != nil {
		t.Error(err)
	}
}

func TestBlankA4Dimensions(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)
	path, err := g.A4Blank()
	if err != nil {
		t.Fatal(err)
	}
	err = VerifyPDF(path, 1, unit.MillimetersToPoints(210), unit.MillimetersToPoints(297))
	if err != nil {
		t.Error(err)
	}
}

func TestPatternPDFDimensions(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)
	if _, err := g.Pattern(); err != nil {
		t.Fatal(err)
	}
	// 4 CSS px are 3 pt
	err := VerifyPDF(filepath.Join(dir, PatternPDF), 1, 3, 3)
	if err != nil {
		t.Error(err)
	}
}

func TestPatternPixels(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePattern(&buf, patternSize, patternSize); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != patternSize || b.Dy() != patternSize {
		t.Fatalf("pattern is %dx%d, want %dx%d", b.Dx(), b.Dy(), patternSize, patternSize)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			wantRed := x == 0 && y == 0
			isRed := r == 0xffff && g == 0 && bl == 0 && a == 0xffff
			isBlue := r == 0 && g == 0 && bl == 0xffff && a == 0xffff
			if wantRed && !isRed {
				t.Errorf("pixel (%d,%d) = %v, want red", x, y, img.At(x, y))
			}
			if !wantRed && !isBlue {
				t.Errorf("pixel (%d,%d) = %v, want blue", x, y, img.At(x, y))
			}
		}
	}
}

func TestRerunIsStable(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)
	if _, err := g.All(); err != nil {
		t.Fatal(err)
	}
	first := map[string][]byte{}
	for _, name := range []string{BlankA4PDF, PatternPNG, PatternPDF} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		first[name] = data
	}

	if _, err := g.All(); err != nil {
		t.Fatal(err)
	}
	for name, data := range first {
		second, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, second) {
			t.Errorf("%s differs between two runs", name)
		}
	}
	if err := g.Verify(); err != nil {
		t.Error(err)
	}
}

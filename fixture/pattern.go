package fixture

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Pattern pixel values. The asymmetric single red pixel lets a renderer
// test detect flipped or rotated output.
var (
	patternRed  = color.NRGBA{R: 0xff, A: 0xff}
	patternBlue = color.NRGBA{B: 0xff, A: 0xff}
)

// WritePattern writes the raster test pattern to w: the top left pixel is
// opaque red, all other pixels are opaque blue.
func WritePattern(w io.Writer, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{patternBlue}, image.Point{}, draw.Src)
	img.SetNRGBA(0, 0, patternRed)
	return png.Encode(w, img)
}

// PatternImage writes the 4x4 pattern PNG and returns the path of the
// written file.
func (g *Generator) PatternImage(filename string) (string, error) {
	path := filepath.Join(g.OutDir, filename)
	w, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err = WritePattern(w, patternSize, patternSize); err != nil {
		w.Close()
		return "", err
	}
	return path, w.Close()
}

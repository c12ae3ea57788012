package document

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lesterpdf/fixtures/unit"
	pdf "github.com/speedata/baseline-pdf"
	"golang.org/x/exp/slog"
)

// placedImage is a single image paint on a page. The image is drawn once,
// unscaled, with its lower left corner at x/y.
type placedImage struct {
	img    *pdf.Imagefile
	x      unit.ScaledPoint
	y      unit.ScaledPoint
	width  unit.ScaledPoint
	height unit.ScaledPoint
}

// A Page struct represents a page in a PDF file. Pages are write-once: the
// dimensions are fixed when the page is shipped out and the contents cannot
// change afterwards.
type Page struct {
	document     *PDFDocument
	Height       unit.ScaledPoint
	Width        unit.ScaledPoint
	Finished     bool
	Objectnumber pdf.Objectnumber
	images       []placedImage
}

// PaintImage paints the image once, unscaled, covering the whole page. The
// caller is expected to have sized the page to the image beforehand.
func (p *Page) PaintImage(imgf *pdf.Imagefile) {
	p.images = append(p.images, placedImage{
		img:    imgf,
		width:  p.Width,
		height: p.Height,
	})
}

// Shipout writes the page contents to the PDF file and finishes this page.
func (p *Page) Shipout() {
	slog.Debug("Shipout")
	if p.Finished {
		return
	}
	p.Finished = true

	pageObjectNumber := p.document.PDFWriter.NextObject()
	p.Objectnumber = pageObjectNumber

	st := p.document.PDFWriter.NewObject()
	st.SetCompression(p.document.CompressLevel)

	for _, pi := range p.images {
		// An image XObject has a unit square coordinate system, the cm
		// matrix scales it to the requested size in points.
		fmt.Fprintf(st.Data, "q %s 0 0 %s %s %s cm %s Do Q\n",
			fl(pi.width.ToPT()), fl(pi.height.ToPT()),
			fl(pi.x.ToPT()), fl(pi.y.ToPT()),
			pi.img.InternalName())
	}

	page := p.document.PDFWriter.AddPage(st, pageObjectNumber)
	page.Dict = make(pdf.Dict)
	page.Width = p.Width.ToPT()
	page.Height = p.Height.ToPT()
	// The MediaBox must carry the full float64 precision, page sizes are
	// compared at 1/1000 pt by the consumers of the fixtures.
	page.Dict["MediaBox"] = fmt.Sprintf("[0 0 %s %s]", fl(page.Width), fl(page.Height))

	for _, pi := range p.images {
		page.Images = append(page.Images, pi.img)
	}
}

// fl formats a point value without losing float64 precision.
func fl(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// pdfLogger adapts slog to the PDF writer's Logger interface.
type pdfLogger struct {
	l *slog.Logger
}

var _ pdf.Logger = pdfLogger{}

// Infof logs the writer's messages at info level.
func (pl pdfLogger) Infof(format string, args ...any) {
	pl.l.Info(fmt.Sprintf(format, args...))
}

// PDFDocument contains all references to a document
type PDFDocument struct {
	CompressLevel     uint
	CreationDate      time.Time
	Creator           string
	CurrentPage       *Page
	DefaultPageHeight unit.ScaledPoint
	DefaultPageWidth  unit.ScaledPoint
	Filename          string
	Pages             []*Page
	PDFWriter         *pdf.PDF
	SuppressInfo      bool
	Title             string
	producer          string
	usedPDFImages     map[string]*pdf.Imagefile
}

// NewDocument creates an empty document writing to w.
func NewDocument(w io.Writer) *PDFDocument {
	d := &PDFDocument{
		DefaultPageWidth:  unit.MustSP("210mm"),
		DefaultPageHeight: unit.MustSP("297mm"),
		CreationDate:      time.Now(),
		PDFWriter:         pdf.NewPDFWriter(w),
		CompressLevel:     9,
		producer:          "lesterpdf/fixtures",
		usedPDFImages:     make(map[string]*pdf.Imagefile),
	}
	d.PDFWriter.Logger = pdfLogger{l: slog.Default()}
	return d
}

// LoadImageFile loads an image file. Images that should be placed in the PDF
// file must be derived from the file. Calling LoadImageFile twice with the
// same file name returns the same image.
func (d *PDFDocument) LoadImageFile(filename string) (*pdf.Imagefile, error) {
	if imgf, ok := d.usedPDFImages[filename]; ok {
		return imgf, nil
	}
	imgf, err := pdf.LoadImageFileWithBox(d.PDFWriter, filename, "/MediaBox", 1)
	if err != nil {
		return nil, err
	}
	d.usedPDFImages[filename] = imgf
	return imgf, nil
}

// NewPage creates a new Page object and adds it to the page list in the
// document. The CurrentPage field of the document is set to the page.
func (d *PDFDocument) NewPage() *Page {
	d.CurrentPage = &Page{
		document: d,
		Width:    d.DefaultPageWidth,
		Height:   d.DefaultPageHeight,
	}
	d.Pages = append(d.Pages, d.CurrentPage)
	return d.CurrentPage
}

// Finish writes all objects to the PDF and writes the XRef section. Finish
// does not close the writer.
func (d *PDFDocument) Finish() error {
	rdf := d.PDFWriter.NewObject()
	rdf.Data.WriteString(d.getMetadata())
	rdf.Dictionary = pdf.Dict{
		"Type":    "/Metadata",
		"Subtype": "/XML",
	}
	if err := rdf.Save(); err != nil {
		return err
	}
	d.PDFWriter.Catalog = pdf.Dict{
		"Metadata": rdf.ObjectNumber.Ref(),
	}

	d.PDFWriter.DefaultPageWidth = d.DefaultPageWidth.ToPT()
	d.PDFWriter.DefaultPageHeight = d.DefaultPageHeight.ToPT()

	d.PDFWriter.InfoDict = pdf.Dict{
		"Producer": pdf.StringToPDF(d.producer),
	}
	if t := d.Title; t != "" {
		d.PDFWriter.InfoDict["Title"] = pdf.StringToPDF(t)
	}
	if t := d.Creator; t != "" {
		d.PDFWriter.InfoDict["Creator"] = pdf.StringToPDF(t)
	}
	if !d.SuppressInfo {
		d.PDFWriter.InfoDict["CreationDate"] = d.CreationDate.Format("(D:20060102150405)")
	}

	if err := d.PDFWriter.Finish(); err != nil {
		return err
	}
	if d.Filename != "" {
		slog.Info("Output written", "filename", d.Filename, "bytes", d.PDFWriter.Size())
	} else {
		slog.Info("Output written", "bytes", d.PDFWriter.Size())
	}
	return nil
}

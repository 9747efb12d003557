package volume

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is used when a document stack is opened with dpi <= 0
const DefaultDPI = 72

// DocumentStack reads slices from the pages of a PDF, XPS, CBZ or EPUB file
type DocumentStack struct {
	doc  *fitz.Document
	path string
	dpi  int
}

func NewDocumentStack(path string, dpi int) (*DocumentStack, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &DocumentStack{doc: doc, path: path, dpi: dpi}, nil
}

func (d *DocumentStack) SliceCount() int {
	return d.doc.NumPage()
}

func (d *DocumentStack) SliceBounds(index int) (int, int, error) {
	if err := checkIndex(d, index); err != nil {
		return 0, 0, err
	}
	rect, err := d.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return rect.Dx(), rect.Dy(), nil
}

// ReadSlice renders one page. A fitz.Document is not safe for concurrent
// use, so every call opens its own handle and slices can be read in parallel.
func (d *DocumentStack) ReadSlice(index int) (image.Image, error) {
	if err := checkIndex(d, index); err != nil {
		return nil, err
	}

	workerDoc, err := fitz.New(d.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()

	return workerDoc.ImageDPI(index, float64(d.dpi))
}

func (d *DocumentStack) Close() error {
	return d.doc.Close()
}

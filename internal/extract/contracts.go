package extract

import (
	"context"

	"github.com/danielokoye/invoicescan/internal/entity"
)

// Pages maps 1-based page numbers to the boxes recognized on that page.
// A page entry may be empty; the pipeline reports it as processed anyway.
type Pages map[int][]entity.OCRBox

// Flatten returns all boxes across pages. Order is unspecified.
func (p Pages) Flatten() []entity.OCRBox {
	var out []entity.OCRBox
	for _, boxes := range p {
		out = append(out, boxes...)
	}
	return out
}

// TotalBoxes counts boxes across all pages.
func (p Pages) TotalBoxes() int {
	n := 0
	for _, boxes := range p {
		n += len(boxes)
	}
	return n
}

// Document is one source file to run OCR against. Bytes always carries
// the content; Key names the blob the bytes came from, for backends that
// read the source from the store themselves.
type Document struct {
	Bytes []byte
	Key   string
}

// Provider extracts text fragments with pixel geometry from a document
// or a single page image. Implementations exist in internal/ocr and are
// selected by name through the factory there.
type Provider interface {
	ExtractFromDocument(ctx context.Context, doc Document) (Pages, error)
	ExtractFromImage(ctx context.Context, image []byte) ([]entity.OCRBox, error)
	QualityScore(boxes []entity.OCRBox) float64
}

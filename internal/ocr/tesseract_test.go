package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/extract"
)

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvWord(left, top, width, height int, conf float64, text string) string {
	return fmt.Sprintf("5\t1\t1\t1\t1\t1\t%d\t%d\t%d\t%d\t%.2f\t%s", left, top, width, height, conf, text)
}

// fakeRunner stubs the external binaries. The pdftoppm branch writes the
// page images the real binary would produce.
type fakeRunner struct {
	tsvByPage map[int]string // page image index -> TSV output
	pdfPages  int
	calls     []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if strings.Contains(name, "pdftoppm") {
		prefix := args[len(args)-1]
		for i := 1; i <= f.pdfPages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	// tesseract: pick output by which page image is being read.
	path := args[0]
	for i := 1; i <= f.pdfPages; i++ {
		if strings.Contains(path, fmt.Sprintf("-%d.png", i)) {
			return []byte(f.tsvByPage[i]), nil, nil
		}
	}
	return []byte(f.tsvByPage[1]), nil, nil
}

func TestTesseractExtractFromImage(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		"1\t1\t0\t0\t0\t0\t0\t0\t2480\t3508\t-1\t", // structural row
		tsvWord(10, 20, 100, 30, 96.5, "Hello"),
		tsvWord(120, 20, 90, 30, 90.0, "   "), // whitespace only: dropped
		tsvWord(220, 20, 110, 30, 88.0, "World"),
		"",
	}, "\n")
	runner := &fakeRunner{tsvByPage: map[int]string{1: out}}
	p := NewTesseractProvider(common.OCRConfig{}, nil, WithRunner(runner))

	boxes, err := p.ExtractFromImage(context.Background(), []byte("not-a-real-png"))
	if err != nil {
		t.Fatalf("ExtractFromImage: %v", err)
	}
	if len(boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(boxes))
	}
	first := boxes[0]
	if first.Text != "Hello" || first.Left != 10 || first.Top != 20 || first.Width != 100 || first.Height != 30 {
		t.Errorf("unexpected first box: %+v", first)
	}
	if first.Confidence != 96.5 {
		t.Errorf("confidence = %v, want 96.5", first.Confidence)
	}
	for _, b := range boxes {
		if b.PageNumber != 1 {
			t.Errorf("image boxes must land on page 1, got %d", b.PageNumber)
		}
		if strings.TrimSpace(b.Text) == "" {
			t.Errorf("whitespace-only text stored: %+v", b)
		}
	}
}

func TestTesseractExtractFromDocumentPDF(t *testing.T) {
	runner := &fakeRunner{
		pdfPages: 2,
		tsvByPage: map[int]string{
			1: strings.Join([]string{tsvHeader, tsvWord(1, 2, 3, 4, 91, "Invoice")}, "\n"),
			2: strings.Join([]string{tsvHeader, tsvWord(5, 6, 7, 8, 85, "Total")}, "\n"),
		},
	}
	p := NewTesseractProvider(common.OCRConfig{}, nil, WithRunner(runner))

	doc := extract.Document{Bytes: []byte("%PDF-1.4 fake"), Key: "uploads/x/doc.pdf"}
	pages, err := p.ExtractFromDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("ExtractFromDocument: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if len(pages[1]) != 1 || pages[1][0].Text != "Invoice" || pages[1][0].PageNumber != 1 {
		t.Errorf("unexpected page 1: %+v", pages[1])
	}
	if len(pages[2]) != 1 || pages[2][0].Text != "Total" || pages[2][0].PageNumber != 2 {
		t.Errorf("unexpected page 2: %+v", pages[2])
	}
}

func TestTesseractExtractFromDocumentImage(t *testing.T) {
	// Non-PDF bytes are treated as a single page image.
	runner := &fakeRunner{tsvByPage: map[int]string{
		1: strings.Join([]string{tsvHeader, tsvWord(0, 0, 10, 10, 70, "x")}, "\n"),
	}}
	p := NewTesseractProvider(common.OCRConfig{}, nil, WithRunner(runner))

	pages, err := p.ExtractFromDocument(context.Background(), extract.Document{Bytes: []byte("\x89PNG fake")})
	if err != nil {
		t.Fatalf("ExtractFromDocument: %v", err)
	}
	if len(pages) != 1 || len(pages[1]) != 1 {
		t.Fatalf("got %+v, want one page with one box", pages)
	}
}

func TestParseTSVDefensive(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		"garbage line without tabs",
		"5\t1\t1\t1\t1\t1\tnotanint\t0\t1\t1\t90\tx", // bad geometry: skipped
		tsvWord(1, 1, 1, 1, 50, "ok"),
	}, "\n")
	boxes := parseTSV([]byte(out), 3)
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(boxes))
	}
	if boxes[0].PageNumber != 3 {
		t.Errorf("page = %d, want 3", boxes[0].PageNumber)
	}
}

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ledongthuc/pdf"

	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/entity"
	"github.com/danielokoye/invoicescan/internal/extract"
)

// TesseractProvider is the batch variant: one synchronous run per page
// image returns every recognized word with pixel geometry straight from
// the engine. PDFs are rasterized with pdftoppm first, one PNG per page.
type TesseractProvider struct {
	extract.ConfidenceScorer

	cfg    common.OCRConfig
	runner Runner
	log    *slog.Logger
}

type TesseractOption func(*TesseractProvider)

// WithRunner replaces the exec-backed command runner, for tests.
func WithRunner(r Runner) TesseractOption {
	return func(p *TesseractProvider) { p.runner = r }
}

func NewTesseractProvider(cfg common.OCRConfig, log *slog.Logger, opts ...TesseractOption) *TesseractProvider {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	p := &TesseractProvider{cfg: cfg, runner: newExecRunner(log), log: log}
	for _, o := range opts {
		o(p)
	}
	return p
}

var pdfMagic = []byte("%PDF")

// ExtractFromDocument runs OCR over every page of doc. Non-PDF content
// is treated as a single page image.
func (p *TesseractProvider) ExtractFromDocument(ctx context.Context, doc extract.Document) (extract.Pages, error) {
	if !bytes.HasPrefix(doc.Bytes, pdfMagic) {
		boxes, err := p.ExtractFromImage(ctx, doc.Bytes)
		if err != nil {
			return nil, err
		}
		return extract.Pages{1: boxes}, nil
	}
	return p.extractPDF(ctx, doc)
}

func (p *TesseractProvider) extractPDF(ctx context.Context, doc extract.Document) (extract.Pages, error) {
	expected := countPDFPages(doc.Bytes)
	p.log.Info("rasterizing pdf for ocr", "key", doc.Key, "bytes", len(doc.Bytes), "pages", expected, "dpi", p.cfg.DPI)

	src, cleanup, err := writeTemp(doc.Bytes, "iscan-*.pdf")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	tmpDir, err := os.MkdirTemp("", "iscan-pp-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			p.log.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	args := []string{"-r", strconv.Itoa(p.cfg.DPI), "-png"}
	if p.cfg.MaxPages > 0 {
		args = append(args, "-l", strconv.Itoa(p.cfg.MaxPages))
	}
	args = append(args, src, prefix)
	if _, errb, err := p.runner.Run(ctx, p.cfg.Pdftoppm, args...); err != nil {
		return nil, &common.BackendError{Provider: "tesseract", Message: "pdftoppm: " + truncate(string(errb), 512), Cause: err}
	}

	// pdftoppm zero-pads page numbers, so lexicographic order is page order.
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if p.cfg.MaxPages > 0 && len(matches) > p.cfg.MaxPages {
		matches = matches[:p.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, &common.BackendError{Provider: "tesseract", Message: "pdftoppm produced no images"}
	}
	if expected > 0 && len(matches) != expected && p.cfg.MaxPages == 0 {
		p.log.Warn("rendered page count differs from pdf catalog", "rendered", len(matches), "expected", expected)
	}

	pages := extract.Pages{}
	for i, img := range matches {
		pageNum := i + 1
		boxes, err := p.ocrPage(ctx, img, pageNum)
		if err != nil {
			return nil, err
		}
		pages[pageNum] = boxes
		p.log.Info("page ocr done", "page", pageNum, "boxes", len(boxes))
	}
	return pages, nil
}

// ExtractFromImage runs OCR on a single image, reported as page 1.
func (p *TesseractProvider) ExtractFromImage(ctx context.Context, image []byte) ([]entity.OCRBox, error) {
	src, cleanup, err := writeTemp(image, "iscan-*.png")
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return p.ocrPage(ctx, src, 1)
}

// ocrPage runs tesseract in TSV mode over one page image.
func (p *TesseractProvider) ocrPage(ctx context.Context, path string, page int) ([]entity.OCRBox, error) {
	args := []string{path, "stdout", "-l", p.cfg.TesseractLang}
	if p.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(p.cfg.PSM))
	}
	if p.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", p.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := p.runner.Run(ctx, p.cfg.Tesseract, args...)
	if err != nil {
		return nil, &common.BackendError{Provider: "tesseract", Message: truncate(string(errb), 512), Cause: fmt.Errorf("tesseract: %w", err)}
	}
	return parseTSV(out, page), nil
}

// countPDFPages reads the page count from the PDF catalog. Best effort:
// the pdf package panics on some malformed inputs, so failures report 0
// (unknown) and rasterization decides the real page set.
func countPDFPages(b []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0
	}
	return r.NumPage()
}

func writeTemp(b []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, err
	}
	name := f.Name()
	cleanup := func() { _ = os.Remove(name) }
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return name, cleanup, nil
}

package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/entity"
	"github.com/danielokoye/invoicescan/internal/extract"
	"github.com/danielokoye/invoicescan/internal/geometry"
)

// TextractProvider is the polling variant: document extraction submits a
// backend job and queries its status at a fixed cadence until a terminal
// state. Image extraction is a single synchronous call.
type TextractProvider struct {
	extract.ConfidenceScorer

	client   *textractClient
	bucket   string
	clock    Clock
	interval time.Duration
	maxPolls int
	pageW    int
	pageH    int
	log      *slog.Logger
}

type TextractOption func(*TextractProvider)

// WithClock replaces the poll delay source, for deterministic tests.
func WithClock(c Clock) TextractOption {
	return func(p *TextractProvider) { p.clock = c }
}

func NewTextractProvider(cfg common.OCRConfig, httpc *http.Client, log *slog.Logger, opts ...TextractOption) *TextractProvider {
	if log == nil {
		log = slog.Default()
	}
	p := &TextractProvider{
		client:   newTextractClient(cfg.TextractEndpoint, httpc, log),
		bucket:   cfg.TextractBucket,
		clock:    realClock{},
		interval: cfg.PollInterval,
		maxPolls: cfg.MaxPolls,
		pageW:    cfg.PageWidth,
		pageH:    cfg.PageHeight,
		log:      log,
	}
	if p.interval <= 0 {
		p.interval = 2 * time.Second
	}
	if p.maxPolls <= 0 {
		p.maxPolls = 150
	}
	if p.pageW <= 0 {
		p.pageW = geometry.ReferencePageWidth
	}
	if p.pageH <= 0 {
		p.pageH = geometry.ReferencePageHeight
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ExtractFromDocument submits the stored document for detection and
// polls until the backend job reaches SUCCEEDED or FAILED. The loop is
// bounded by the configured poll budget and unwinds on ctx cancellation.
func (p *TextractProvider) ExtractFromDocument(ctx context.Context, doc extract.Document) (extract.Pages, error) {
	var started startDocumentTextDetectionOutput
	in := startDocumentTextDetectionInput{
		DocumentLocation: documentLocation{S3Object: s3Object{Bucket: p.bucket, Name: doc.Key}},
	}
	if err := p.client.call(ctx, "StartDocumentTextDetection", in, &started); err != nil {
		return nil, err
	}
	p.log.Info("started textract job", "backend_job_id", started.JobID, "key", doc.Key)

	for polls := 1; ; polls++ {
		var out getDocumentTextDetectionOutput
		q := getDocumentTextDetectionInput{JobID: started.JobID}
		if err := p.client.call(ctx, "GetDocumentTextDetection", q, &out); err != nil {
			return nil, err
		}

		switch out.JobStatus {
		case jobStateSucceeded:
			p.log.Info("textract job completed", "backend_job_id", started.JobID, "polls", polls, "blocks", len(out.Blocks))
			return p.parseBlocks(out.Blocks), nil
		case jobStateFailed:
			msg := out.StatusMessage
			if msg == "" {
				msg = "unknown error"
			}
			p.log.Error("textract job failed", "backend_job_id", started.JobID, "message", msg)
			return nil, &common.BackendError{Provider: "textract", Message: msg}
		case jobStateSubmitted, jobStateInProgress:
			// keep polling
		default:
			p.log.Warn("unrecognized textract job status, treating as in progress", "status", out.JobStatus)
		}

		if polls >= p.maxPolls {
			return nil, &common.BackendError{
				Provider: "textract",
				Message:  fmt.Sprintf("gave up waiting for job %s after %d polls", started.JobID, polls),
			}
		}
		// Fixed cadence between queries; no backoff.
		if err := p.clock.Sleep(ctx, p.interval); err != nil {
			return nil, fmt.Errorf("cancelled while polling job %s: %w", started.JobID, err)
		}
	}
}

// ExtractFromImage runs synchronous detection over inline image bytes.
// Everything lands on page 1.
func (p *TextractProvider) ExtractFromImage(ctx context.Context, image []byte) ([]entity.OCRBox, error) {
	var out detectDocumentTextOutput
	in := detectDocumentTextInput{Document: inlineDocument{Bytes: image}}
	if err := p.client.call(ctx, "DetectDocumentText", in, &out); err != nil {
		return nil, err
	}
	p.log.Info("textract detected blocks", "blocks", len(out.Blocks))

	var boxes []entity.OCRBox
	for _, raw := range out.Blocks {
		box, ok := p.textBox(raw, 1)
		if ok {
			boxes = append(boxes, box)
		}
	}
	return boxes, nil
}

// parseBlocks walks the block stream. PAGE markers delimit pages; only
// LINE and WORD blocks become boxes. With no marker everything stays on
// page 1.
func (p *TextractProvider) parseBlocks(raws []json.RawMessage) extract.Pages {
	pages := extract.Pages{}
	page := 1
	pages[page] = nil

	for _, raw := range raws {
		var probe struct {
			BlockType string `json:"BlockType"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			p.log.Warn("skipping undecodable block", "error", err)
			continue
		}
		if probe.BlockType == blockTypePage {
			page++
			if _, ok := pages[page]; !ok {
				pages[page] = nil
			}
			continue
		}
		box, ok := p.textBox(raw, page)
		if ok {
			pages[page] = append(pages[page], box)
		}
	}
	return pages
}

// textBox converts one raw block into a box on the given page, or
// reports false for structural, malformed or whitespace-only blocks.
func (p *TextractProvider) textBox(raw json.RawMessage, page int) (entity.OCRBox, bool) {
	blk, err := decodeBlock(raw)
	if err != nil {
		p.log.Warn("skipping malformed block", "error", err)
		return entity.OCRBox{}, false
	}
	if blk.BlockType != blockTypeLine && blk.BlockType != blockTypeWord {
		return entity.OCRBox{}, false
	}
	text := strings.TrimSpace(blk.Text)
	if text == "" {
		return entity.OCRBox{}, false
	}

	poly := make([]geometry.Point, 0, len(blk.Geometry.Polygon))
	for _, pt := range blk.Geometry.Polygon {
		poly = append(poly, geometry.Point{X: pt.X, Y: pt.Y})
	}
	rect, err := geometry.Normalize(poly, p.pageW, p.pageH)
	if err != nil {
		p.log.Warn("skipping block without geometry", "text_len", len(text), "error", err)
		return entity.OCRBox{}, false
	}

	return entity.OCRBox{
		PageNumber: page,
		Left:       rect.Left,
		Top:        rect.Top,
		Width:      rect.Width,
		Height:     rect.Height,
		Text:       text,
		Confidence: float32(blk.Confidence),
	}, true
}

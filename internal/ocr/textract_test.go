package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/extract"
)

// fakeClock records poll delays instead of sleeping.
type fakeClock struct {
	sleeps []time.Duration
	fn     func(ctx context.Context, d time.Duration) error
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	if c.fn != nil {
		return c.fn(ctx, d)
	}
	return nil
}

type pollingBackend struct {
	t           *testing.T
	getCalls    atomic.Int64
	getResponse func(call int64) string
}

func (b *pollingBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := r.Header.Get("X-Amz-Target")
		switch {
		case strings.HasSuffix(target, "StartDocumentTextDetection"):
			var in startDocumentTextDetectionInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				b.t.Errorf("decode start request: %v", err)
			}
			if in.DocumentLocation.S3Object.Name == "" {
				b.t.Error("start request missing object key")
			}
			_, _ = w.Write([]byte(`{"JobId":"backend-job-1"}`))
		case strings.HasSuffix(target, "GetDocumentTextDetection"):
			call := b.getCalls.Add(1)
			_, _ = w.Write([]byte(b.getResponse(call)))
		default:
			b.t.Errorf("unexpected target %q", target)
		}
	}
}

func newTextractForTest(t *testing.T, endpoint string, maxPolls int, clock Clock) *TextractProvider {
	t.Helper()
	cfg := common.OCRConfig{
		TextractEndpoint: endpoint,
		TextractBucket:   "documents",
		PollInterval:     2 * time.Second,
		MaxPolls:         maxPolls,
	}
	return NewTextractProvider(cfg, nil, nil, WithClock(clock))
}

const lineBlocks = `{"JobStatus":"SUCCEEDED","Blocks":[
  {"BlockType":"LINE","Text":"Invoice 42","Confidence":95,
   "Geometry":{"Polygon":[{"X":0.25,"Y":0.25},{"X":0.5,"Y":0.5}]}},
  {"BlockType":"LINE","Text":"Total 10.00","Confidence":85,
   "Geometry":{"Polygon":[{"X":0.5,"Y":0.5},{"X":0.75,"Y":0.75}]}}
]}`

func TestTextractPollsUntilSucceeded(t *testing.T) {
	backend := &pollingBackend{t: t, getResponse: func(call int64) string {
		if call == 1 {
			return `{"JobStatus":"SUBMITTED"}`
		}
		return lineBlocks
	}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	clock := &fakeClock{}
	p := newTextractForTest(t, srv.URL, 10, clock)

	pages, err := p.ExtractFromDocument(context.Background(), extract.Document{Key: "uploads/a/doc.pdf"})
	if err != nil {
		t.Fatalf("ExtractFromDocument: %v", err)
	}

	if got := backend.getCalls.Load(); got != 2 {
		t.Errorf("status queries = %d, want exactly 2", got)
	}
	if len(clock.sleeps) != 1 {
		t.Errorf("sleeps = %d, want 1 (between the two polls)", len(clock.sleeps))
	}
	for _, d := range clock.sleeps {
		if d != 2*time.Second {
			t.Errorf("poll interval = %v, want fixed 2s", d)
		}
	}

	if len(pages) != 1 {
		t.Fatalf("pages = %d, want 1 (no page marker)", len(pages))
	}
	boxes := pages[1]
	if len(boxes) != 2 {
		t.Fatalf("boxes = %d, want 2", len(boxes))
	}
	// 0.25*2480=620, 0.25*3508=877; width/height span one quarter page.
	b := boxes[0]
	if b.Left != 620 || b.Top != 877 || b.Width != 620 || b.Height != 877 {
		t.Errorf("unexpected geometry: %+v", b)
	}
	if b.Text != "Invoice 42" || b.Confidence != 95 {
		t.Errorf("unexpected box: %+v", b)
	}
}

func TestTextractBackendFailure(t *testing.T) {
	backend := &pollingBackend{t: t, getResponse: func(int64) string {
		return `{"JobStatus":"FAILED","StatusMessage":"limit exceeded"}`
	}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	p := newTextractForTest(t, srv.URL, 10, &fakeClock{})

	_, err := p.ExtractFromDocument(context.Background(), extract.Document{Key: "k"})
	if err == nil {
		t.Fatal("want error for FAILED job")
	}
	if !common.IsBackendError(err) {
		t.Errorf("want BackendError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "limit exceeded") {
		t.Errorf("error must carry the backend message, got %q", err)
	}
}

func TestTextractPollBudgetExhausted(t *testing.T) {
	backend := &pollingBackend{t: t, getResponse: func(int64) string {
		return `{"JobStatus":"IN_PROGRESS"}`
	}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	p := newTextractForTest(t, srv.URL, 3, &fakeClock{})

	_, err := p.ExtractFromDocument(context.Background(), extract.Document{Key: "k"})
	if err == nil {
		t.Fatal("want error when poll budget is exhausted")
	}
	if !common.IsBackendError(err) || !strings.Contains(err.Error(), "gave up") {
		t.Errorf("unexpected error: %v", err)
	}
	if got := backend.getCalls.Load(); got != 3 {
		t.Errorf("status queries = %d, want 3", got)
	}
}

func TestTextractPollCancellation(t *testing.T) {
	backend := &pollingBackend{t: t, getResponse: func(int64) string {
		return `{"JobStatus":"SUBMITTED"}`
	}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	clock := &fakeClock{}
	clock.fn = func(ctx context.Context, _ time.Duration) error {
		if len(clock.sleeps) >= 2 {
			cancel()
			return ctx.Err()
		}
		return nil
	}
	p := newTextractForTest(t, srv.URL, 100, clock)

	_, err := p.ExtractFromDocument(ctx, extract.Document{Key: "k"})
	if err == nil {
		t.Fatal("want error after cancellation")
	}
	if !strings.Contains(err.Error(), "cancelled while polling") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTextractParseBlocksPageMarkers(t *testing.T) {
	p := newTextractForTest(t, "http://unused", 1, &fakeClock{})

	blocks := []string{
		`{"BlockType":"LINE","Text":"page one","Confidence":90,"Geometry":{"Polygon":[{"X":0.1,"Y":0.1}]}}`,
		`{"BlockType":"PAGE"}`,
		`{"BlockType":"LINE","Text":"page two","Confidence":80,"Geometry":{"Polygon":[{"X":0.2,"Y":0.2}]}}`,
		`{"BlockType":"WORD","Text":"   ","Confidence":70,"Geometry":{"Polygon":[{"X":0.3,"Y":0.3}]}}`,
		`{"BlockType":"LINE","Text":"bad confidence","Confidence":150,"Geometry":{"Polygon":[{"X":0.1,"Y":0.1}]}}`,
		`{"BlockType":"LINE","Text":"no geometry","Confidence":50}`,
	}
	raws := make([]json.RawMessage, len(blocks))
	for i, s := range blocks {
		raws[i] = json.RawMessage(s)
	}

	pages := p.parseBlocks(raws)
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(pages))
	}
	if len(pages[1]) != 1 || pages[1][0].Text != "page one" {
		t.Errorf("unexpected page 1: %+v", pages[1])
	}
	// Whitespace-only, schema-invalid and geometry-less blocks are all
	// skipped; only the real line survives on page 2.
	if len(pages[2]) != 1 || pages[2][0].Text != "page two" || pages[2][0].PageNumber != 2 {
		t.Errorf("unexpected page 2: %+v", pages[2])
	}
}

func TestTextractExtractFromImage(t *testing.T) {
	var detectCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.Header.Get("X-Amz-Target"), "DetectDocumentText") {
			t.Errorf("unexpected target %q", r.Header.Get("X-Amz-Target"))
		}
		detectCalls.Add(1)
		_, _ = w.Write([]byte(`{"Blocks":[
			{"BlockType":"PAGE"},
			{"BlockType":"LINE","Text":"a","Confidence":90,"Geometry":{"Polygon":[{"X":0.1,"Y":0.1}]}},
			{"BlockType":"LINE","Text":"b","Confidence":91,"Geometry":{"Polygon":[{"X":0.2,"Y":0.2}]}},
			{"BlockType":"LINE","Text":"c","Confidence":92,"Geometry":{"Polygon":[{"X":0.3,"Y":0.3}]}}
		]}`))
	}))
	defer srv.Close()

	p := newTextractForTest(t, srv.URL, 1, &fakeClock{})
	boxes, err := p.ExtractFromImage(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("ExtractFromImage: %v", err)
	}
	if detectCalls.Load() != 1 {
		t.Errorf("detect calls = %d, want 1 (synchronous)", detectCalls.Load())
	}
	if len(boxes) != 3 {
		t.Fatalf("boxes = %d, want 3", len(boxes))
	}
	for _, b := range boxes {
		if b.PageNumber != 1 {
			t.Errorf("image boxes must land on page 1, got %d", b.PageNumber)
		}
	}
}

func TestQualityScoreOnProvider(t *testing.T) {
	p := newTextractForTest(t, "http://unused", 1, &fakeClock{})
	if got := p.QualityScore(nil); got != 0.0 {
		t.Errorf("QualityScore(nil) = %v, want 0", got)
	}
}

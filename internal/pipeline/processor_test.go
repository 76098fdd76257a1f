package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/constants"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/entity"
	"github.com/danielokoye/invoicescan/internal/extract"
	"github.com/danielokoye/invoicescan/internal/repository"
)

type memJobs struct {
	jobs map[uuid.UUID]*entity.Job

	completeErr error // injected MarkOCRCompleted failure
}

func newMemJobs(js ...*entity.Job) *memJobs {
	m := &memJobs{jobs: map[uuid.UUID]*entity.Job{}}
	for _, j := range js {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *memJobs) Create(_ context.Context, p repository.CreateJobParams) (*entity.Job, error) {
	j := &entity.Job{
		ID:          uuid.New(),
		Status:      constants.JobStatusPending,
		FileName:    p.FileName,
		SourceKey:   p.SourceKey,
		OCRProvider: p.OCRProvider,
		LLMProvider: p.LLMProvider,
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
	}
	cp := *j
	return &cp, nil
}

func (m *memJobs) ClaimPending(_ context.Context, id uuid.UUID) (bool, error) {
	j, ok := m.jobs[id]
	if !ok || j.Status != constants.JobStatusPending {
		return false, nil
	}
	j.Status = constants.JobStatusProcessing
	j.Progress = constants.JobStatusProcessing.Checkpoint()
	return true, nil
}

func (m *memJobs) MarkOCRCompleted(_ context.Context, id uuid.UUID) error {
	if m.completeErr != nil {
		return m.completeErr
	}
	j, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, common.ErrNotFound)
	}
	j.Status = constants.JobStatusOCRCompleted
	j.Progress = constants.JobStatusOCRCompleted.Checkpoint()
	j.ErrorMessage = nil
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	j, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, common.ErrNotFound)
	}
	j.Status = constants.JobStatusFailed
	j.Progress = constants.JobStatusFailed.Checkpoint()
	j.ErrorMessage = &message
	return nil
}

type memBoxes struct {
	byJob    map[uuid.UUID][]entity.OCRBox
	replaces int
	err      error
}

func newMemBoxes() *memBoxes {
	return &memBoxes{byJob: map[uuid.UUID][]entity.OCRBox{}}
}

func (m *memBoxes) ReplaceForJob(_ context.Context, jobID uuid.UUID, pages extract.Pages) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.replaces++
	m.byJob[jobID] = pages.Flatten()
	return len(m.byJob[jobID]), nil
}

func (m *memBoxes) ListByJob(_ context.Context, jobID uuid.UUID, page int) ([]entity.OCRBox, error) {
	var out []entity.OCRBox
	for _, b := range m.byJob[jobID] {
		if page > 0 && b.PageNumber != page {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *memBoxes) CountByJob(_ context.Context, jobID uuid.UUID) (int, error) {
	return len(m.byJob[jobID]), nil
}

type memBlobs struct {
	data map[string][]byte
}

func (m *memBlobs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("blob %q: %w", key, common.ErrNotFound)
	}
	return b, nil
}

func (m *memBlobs) Put(_ context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

type fakeProvider struct {
	extract.ConfidenceScorer
	pages extract.Pages
	err   error
}

func (f *fakeProvider) ExtractFromDocument(ctx context.Context, _ extract.Document) (extract.Pages, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func (f *fakeProvider) ExtractFromImage(context.Context, []byte) ([]entity.OCRBox, error) {
	return f.pages.Flatten(), f.err
}

func factoryFor(p extract.Provider) ProviderFactory {
	return func(name string) (extract.Provider, error) {
		if name == "none" {
			return nil, fmt.Errorf("%w: unknown ocr provider %q", common.ErrValidation, name)
		}
		return p, nil
	}
}

func pendingJob(key string) *entity.Job {
	return &entity.Job{
		ID:          uuid.New(),
		Status:      constants.JobStatusPending,
		FileName:    "doc.pdf",
		SourceKey:   key,
		OCRProvider: constants.OCRProviderTextract,
	}
}

func TestRunHappyPath(t *testing.T) {
	job := pendingJob("uploads/a/doc.pdf")
	jobs := newMemJobs(job)
	boxes := newMemBoxes()
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf bytes")}}
	provider := &fakeProvider{pages: extract.Pages{
		1: {{PageNumber: 1, Text: "a", Confidence: 80}, {PageNumber: 1, Text: "b", Confidence: 100}},
		2: {{PageNumber: 2, Text: "c", Confidence: 90}},
	}}

	o := NewOrchestrator(jobs, boxes, blobs, factoryFor(provider), nil)
	got, err := o.Run(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.QualityScore != 90.0 {
		t.Errorf("QualityScore = %v, want 90", got.QualityScore)
	}
	if got.TotalBoxes != 3 {
		t.Errorf("TotalBoxes = %d, want 3", got.TotalBoxes)
	}
	if got.PagesProcessed != 2 {
		t.Errorf("PagesProcessed = %d, want 2", got.PagesProcessed)
	}

	stored := jobs.jobs[job.ID]
	if stored.Status != constants.JobStatusOCRCompleted {
		t.Errorf("status = %s, want %s", stored.Status, constants.JobStatusOCRCompleted)
	}
	if stored.Progress != 40 {
		t.Errorf("progress = %d, want 40", stored.Progress)
	}
	if stored.ErrorMessage != nil {
		t.Errorf("error_message should be clear, got %q", *stored.ErrorMessage)
	}
}

func TestRunZeroBoxesSucceeds(t *testing.T) {
	job := pendingJob("uploads/blank.pdf")
	jobs := newMemJobs(job)
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf")}}
	provider := &fakeProvider{pages: extract.Pages{1: nil}}

	o := NewOrchestrator(jobs, newMemBoxes(), blobs, factoryFor(provider), nil)
	got, err := o.Run(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.QualityScore != 0.0 || got.TotalBoxes != 0 || got.PagesProcessed != 1 {
		t.Errorf("unexpected summary: %+v", got)
	}
	if jobs.jobs[job.ID].Status != constants.JobStatusOCRCompleted {
		t.Errorf("an empty document is still a completed OCR stage")
	}
}

func TestRunMissingJobIsFatal(t *testing.T) {
	jobs := newMemJobs()
	o := NewOrchestrator(jobs, newMemBoxes(), &memBlobs{data: map[string][]byte{}}, factoryFor(&fakeProvider{}), nil)

	_, err := o.Run(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	// Nothing to record the failure against: no rows mutated.
	if len(jobs.jobs) != 0 {
		t.Error("missing job must not create status writes")
	}
}

func TestRunMissingSourceMarksFailed(t *testing.T) {
	job := pendingJob("uploads/gone.pdf")
	jobs := newMemJobs(job)

	o := NewOrchestrator(jobs, newMemBoxes(), &memBlobs{data: map[string][]byte{}}, factoryFor(&fakeProvider{}), nil)
	_, err := o.Run(context.Background(), job.ID)
	if err == nil {
		t.Fatal("want error for missing source blob")
	}

	stored := jobs.jobs[job.ID]
	if stored.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want failed", stored.Status)
	}
	if stored.Progress != 0 {
		t.Errorf("progress = %d, want 0", stored.Progress)
	}
	if stored.ErrorMessage == nil || !strings.Contains(*stored.ErrorMessage, "fetch source") {
		t.Errorf("error_message = %v, want fetch failure recorded", stored.ErrorMessage)
	}
}

func TestRunBackendFailurePreservesMessage(t *testing.T) {
	job := pendingJob("uploads/doc.pdf")
	jobs := newMemJobs(job)
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf")}}
	provider := &fakeProvider{err: &common.BackendError{Provider: "textract", Message: "limit exceeded"}}

	o := NewOrchestrator(jobs, newMemBoxes(), blobs, factoryFor(provider), nil)
	_, err := o.Run(context.Background(), job.ID)
	if !common.IsBackendError(err) {
		t.Fatalf("got %v, want BackendError", err)
	}

	stored := jobs.jobs[job.ID]
	if stored.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want failed", stored.Status)
	}
	if stored.ErrorMessage == nil || !strings.Contains(*stored.ErrorMessage, "limit exceeded") {
		t.Errorf("backend message must be preserved, got %v", stored.ErrorMessage)
	}
}

func TestRunUnknownProviderMarksFailed(t *testing.T) {
	job := pendingJob("uploads/doc.pdf")
	job.OCRProvider = "none"
	jobs := newMemJobs(job)
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf")}}

	o := NewOrchestrator(jobs, newMemBoxes(), blobs, factoryFor(&fakeProvider{}), nil)
	_, err := o.Run(context.Background(), job.ID)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if jobs.jobs[job.ID].Status != constants.JobStatusFailed {
		t.Error("unresolvable provider must fail the job")
	}
}

func TestRunStoreFailureMarksFailed(t *testing.T) {
	job := pendingJob("uploads/doc.pdf")
	jobs := newMemJobs(job)
	boxes := newMemBoxes()
	boxes.err = errors.New("insert: connection reset")
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf")}}
	provider := &fakeProvider{pages: extract.Pages{1: {{Text: "x", Confidence: 50}}}}

	o := NewOrchestrator(jobs, boxes, blobs, factoryFor(provider), nil)
	if _, err := o.Run(context.Background(), job.ID); err == nil {
		t.Fatal("want error when coordinate storage fails")
	}
	stored := jobs.jobs[job.ID]
	if stored.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want failed", stored.Status)
	}
	if stored.ErrorMessage == nil || !strings.Contains(*stored.ErrorMessage, "store coordinates") {
		t.Errorf("error_message = %v", stored.ErrorMessage)
	}
}

func TestRunCancelledRecordsCancellation(t *testing.T) {
	job := pendingJob("uploads/doc.pdf")
	jobs := newMemJobs(job)
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf")}}
	provider := &fakeProvider{pages: extract.Pages{1: {{Text: "x"}}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOrchestrator(jobs, newMemBoxes(), blobs, factoryFor(provider), nil)
	if _, err := o.Run(ctx, job.ID); err == nil {
		t.Fatal("want error from cancelled run")
	}

	stored := jobs.jobs[job.ID]
	if stored.Status != constants.JobStatusFailed {
		t.Fatalf("status = %s, want failed", stored.Status)
	}
	if stored.ErrorMessage == nil || !strings.HasPrefix(*stored.ErrorMessage, "cancelled: ") {
		t.Errorf("error_message = %v, want cancelled prefix", stored.ErrorMessage)
	}
}

func TestRunCommitFailureKeepsStoredBoxes(t *testing.T) {
	// Box persistence and the status update are separate writes. When
	// the status commit fails after the boxes landed, the boxes stay in
	// the store while the job records the failure; the next at-least-once
	// delivery re-runs the whole replace.
	job := pendingJob("uploads/doc.pdf")
	jobs := newMemJobs(job)
	jobs.completeErr = errors.New("update: connection reset")
	boxes := newMemBoxes()
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf")}}
	provider := &fakeProvider{pages: extract.Pages{1: {{PageNumber: 1, Text: "x", Confidence: 50}}}}

	o := NewOrchestrator(jobs, boxes, blobs, factoryFor(provider), nil)
	if _, err := o.Run(context.Background(), job.ID); err == nil {
		t.Fatal("want error when the status commit fails")
	}

	n, _ := boxes.CountByJob(context.Background(), job.ID)
	if n != 1 {
		t.Fatalf("stored boxes = %d, want 1 (boxes survive the failed commit)", n)
	}
	stored := jobs.jobs[job.ID]
	if stored.Status == constants.JobStatusOCRCompleted {
		t.Fatal("job must not read ocr_completed when the commit never landed")
	}
	if stored.Status != constants.JobStatusFailed {
		t.Errorf("status = %s, want failed recorded for the operator", stored.Status)
	}
	if stored.ErrorMessage == nil || !strings.Contains(*stored.ErrorMessage, "commit ocr_completed") {
		t.Errorf("error_message = %v, want the commit failure recorded", stored.ErrorMessage)
	}
}

func TestRunReplacesBoxesOnRerun(t *testing.T) {
	job := pendingJob("uploads/doc.pdf")
	jobs := newMemJobs(job)
	boxes := newMemBoxes()
	blobs := &memBlobs{data: map[string][]byte{job.SourceKey: []byte("pdf")}}
	provider := &fakeProvider{pages: extract.Pages{
		1: {{PageNumber: 1, Text: "first", Confidence: 60}, {PageNumber: 1, Text: "run", Confidence: 60}},
	}}

	o := NewOrchestrator(jobs, boxes, blobs, factoryFor(provider), nil)
	if _, err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("first run: %v", err)
	}

	provider.pages = extract.Pages{1: {{PageNumber: 1, Text: "second", Confidence: 70}}}
	got, err := o.Run(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if got.TotalBoxes != 1 {
		t.Errorf("TotalBoxes = %d, want 1 after replace", got.TotalBoxes)
	}
	n, _ := boxes.CountByJob(context.Background(), job.ID)
	if n != 1 {
		t.Errorf("stored boxes = %d, want previous run replaced", n)
	}
	if boxes.replaces != 2 {
		t.Errorf("replaces = %d, want 2", boxes.replaces)
	}
}

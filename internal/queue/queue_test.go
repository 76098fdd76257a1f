package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/constants"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/entity"
	"github.com/danielokoye/invoicescan/internal/extract"
	"github.com/danielokoye/invoicescan/internal/pipeline"
	"github.com/danielokoye/invoicescan/internal/repository"
)

// memJobs is a minimal, concurrency-safe JobRepository backed by a map.
type memJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job

	claims    int
	completed int
}

func newMemJobs(js ...*entity.Job) *memJobs {
	m := &memJobs{jobs: map[uuid.UUID]*entity.Job{}}
	for _, j := range js {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *memJobs) Create(_ context.Context, p repository.CreateJobParams) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := &entity.Job{ID: uuid.New(), Status: constants.JobStatusPending, FileName: p.FileName, SourceKey: p.SourceKey}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
	}
	cp := *j
	return &cp, nil
}

func (m *memJobs) ClaimPending(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claims++
	j, ok := m.jobs[id]
	if !ok || j.Status != constants.JobStatusPending {
		return false, nil
	}
	j.Status = constants.JobStatusProcessing
	j.Progress = constants.JobStatusProcessing.Checkpoint()
	return true, nil
}

func (m *memJobs) MarkOCRCompleted(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, common.ErrNotFound)
	}
	j.Status = constants.JobStatusOCRCompleted
	j.Progress = constants.JobStatusOCRCompleted.Checkpoint()
	m.completed++
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, common.ErrNotFound)
	}
	j.Status = constants.JobStatusFailed
	j.ErrorMessage = &message
	return nil
}

type memBoxes struct {
	mu       sync.Mutex
	replaces int
}

func (m *memBoxes) ReplaceForJob(_ context.Context, _ uuid.UUID, pages extract.Pages) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaces++
	return pages.TotalBoxes(), nil
}

func (m *memBoxes) ListByJob(context.Context, uuid.UUID, int) ([]entity.OCRBox, error) {
	return nil, nil
}

func (m *memBoxes) CountByJob(context.Context, uuid.UUID) (int, error) { return 0, nil }

type memBlobs struct{}

func (memBlobs) Get(context.Context, string) ([]byte, error)  { return []byte("pdf"), nil }
func (memBlobs) Put(context.Context, string, []byte) error    { return nil }

type fakeProvider struct {
	extract.ConfidenceScorer
}

func (fakeProvider) ExtractFromDocument(context.Context, extract.Document) (extract.Pages, error) {
	return extract.Pages{1: {{PageNumber: 1, Text: "x", Confidence: 90}}}, nil
}

func (fakeProvider) ExtractFromImage(context.Context, []byte) ([]entity.OCRBox, error) {
	return nil, nil
}

func newTestQueue(jobs *memJobs, boxes *memBoxes, opts ...Option) *Queue {
	orch := pipeline.NewOrchestrator(jobs, boxes, memBlobs{}, func(string) (extract.Provider, error) {
		return fakeProvider{}, nil
	}, nil)
	return New(jobs, orch, nil, opts...)
}

func TestQueueProcessesJob(t *testing.T) {
	job := &entity.Job{ID: uuid.New(), Status: constants.JobStatusPending, SourceKey: "k"}
	jobs := newMemJobs(job)
	boxes := &memBoxes{}
	q := newTestQueue(jobs, boxes, WithWorkers(2))

	if err := q.Enqueue(context.Background(), job.ID); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	got, err := jobs.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != constants.JobStatusOCRCompleted {
		t.Errorf("status = %s, want %s", got.Status, constants.JobStatusOCRCompleted)
	}
	if got.Progress != 40 {
		t.Errorf("progress = %d, want 40", got.Progress)
	}
}

func TestQueueDropsDuplicateDelivery(t *testing.T) {
	job := &entity.Job{ID: uuid.New(), Status: constants.JobStatusPending, SourceKey: "k"}
	jobs := newMemJobs(job)
	boxes := &memBoxes{}
	// One worker serializes the deliveries so the second claim always
	// sees the post-claim status.
	q := newTestQueue(jobs, boxes, WithWorkers(1))

	_ = q.Enqueue(context.Background(), job.ID)
	_ = q.Enqueue(context.Background(), job.ID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if jobs.claims != 2 {
		t.Errorf("claims = %d, want 2 (both deliveries attempted)", jobs.claims)
	}
	if jobs.completed != 1 {
		t.Errorf("completed = %d, want 1 (duplicate dropped)", jobs.completed)
	}
	if boxes.replaces != 1 {
		t.Errorf("replaces = %d, want job processed exactly once", boxes.replaces)
	}
}

func TestQueueShutdownDrains(t *testing.T) {
	var js []*entity.Job
	for i := 0; i < 8; i++ {
		js = append(js, &entity.Job{ID: uuid.New(), Status: constants.JobStatusPending, SourceKey: "k"})
	}
	jobs := newMemJobs(js...)
	boxes := &memBoxes{}
	q := newTestQueue(jobs, boxes, WithWorkers(3), WithSize(16))

	for _, j := range js {
		_ = q.Enqueue(context.Background(), j.ID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if jobs.completed != len(js) {
		t.Errorf("completed = %d, want %d (shutdown drains the buffer)", jobs.completed, len(js))
	}

	// Enqueue after shutdown is a no-op, not a panic.
	if err := q.Enqueue(context.Background(), uuid.New()); err != nil {
		t.Errorf("Enqueue after shutdown: %v", err)
	}
}

package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/internal/pipeline"
	"github.com/danielokoye/invoicescan/internal/repository"
)

// Queue delivers job ids to the pipeline with at-least-once semantics:
// a buffered channel feeding a fixed worker pool. Workers claim the job
// with a compare-and-swap before running, so a duplicate delivery for a
// job already past pending is dropped, not processed twice.
type Queue struct {
	jobs    repository.JobRepository
	orch    *pipeline.Orchestrator
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan uuid.UUID
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan uuid.UUID, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func New(jobs repository.JobRepository, orch *pipeline.Orchestrator, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		jobs:    jobs,
		orch:    orch,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		ch:      make(chan uuid.UUID, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for jobID := range q.ch {
					q.process(workerID, jobID)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Queue) process(workerID int, jobID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	claimed, err := q.jobs.ClaimPending(ctx, jobID)
	if err != nil {
		q.logger.Error("claim failed", "worker_id", workerID, "job_id", jobID, "error", err)
		return
	}
	if !claimed {
		q.logger.Warn("job not claimable, dropping delivery", "worker_id", workerID, "job_id", jobID)
		return
	}

	summary, err := q.orch.Run(ctx, jobID)
	if err != nil {
		// The orchestrator already recorded the failure on the job.
		q.logger.Error("processing failed", "worker_id", workerID, "job_id", jobID, "error", err)
		return
	}
	q.logger.Info("processed job",
		"worker_id", workerID,
		"job_id", jobID,
		"quality_score", summary.QualityScore,
		"total_boxes", summary.TotalBoxes,
		"pages_processed", summary.PagesProcessed,
	)
}

// Enqueue queues a job id for processing. Blocks when the buffer is
// full rather than dropping the delivery.
func (q *Queue) Enqueue(_ context.Context, jobID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", jobID)
		return nil
	}
	select {
	case q.ch <- jobID:
		q.logger.Info("queued job for processing", "job_id", jobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", jobID)
		q.ch <- jobID
	}
	return nil
}

// Shutdown stops intake and waits for in-flight jobs until ctx expires.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/internal/blob"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/extract"
	"github.com/danielokoye/invoicescan/internal/repository"
)

// Summary reports one successful OCR run for logging by the caller.
type Summary struct {
	QualityScore   float64 `json:"quality_score"`
	TotalBoxes     int     `json:"total_boxes"`
	PagesProcessed int     `json:"pages_processed"`
}

// ProviderFactory resolves a job's configured ocr_provider name to an
// implementation.
type ProviderFactory func(name string) (extract.Provider, error)

// Orchestrator drives the OCR stage end to end: fetch source bytes,
// extract, persist coordinates, score, advance the job record. It is
// the only component that knows all the collaborators.
type Orchestrator struct {
	Jobs      repository.JobRepository
	Boxes     repository.OCRBoxRepository
	Blobs     blob.Store
	Providers ProviderFactory
	Log       *slog.Logger
}

func NewOrchestrator(jobs repository.JobRepository, boxes repository.OCRBoxRepository, blobs blob.Store, providers ProviderFactory, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{Jobs: jobs, Boxes: boxes, Blobs: blobs, Providers: providers, Log: log}
}

// Run executes the OCR stage for one job id. On success the job is
// ocr_completed at progress 40. Any failure past the job lookup marks
// the job failed (progress 0, error_message set) before the error is
// returned, so the durable record always reflects the outcome; the
// invoking task layer owns any retry policy.
//
// Side effects are staged, not transactional: a crash after the boxes
// are stored but before the status update leaves the job `processing`
// with boxes present. A re-run replaces them.
func (o *Orchestrator) Run(ctx context.Context, jobID uuid.UUID) (Summary, error) {
	job, err := o.Jobs.GetByID(ctx, jobID)
	if err != nil {
		// Nothing to record against: the job record is missing or
		// unreadable. Fatal for this invocation.
		return Summary{}, err
	}

	o.Log.Info("fetching source document", "job_id", job.ID, "key", job.SourceKey)
	src, err := o.Blobs.Get(ctx, job.SourceKey)
	if err != nil {
		return Summary{}, o.fail(ctx, jobID, fmt.Errorf("fetch source: %w", err))
	}

	provider, err := o.Providers(job.OCRProvider)
	if err != nil {
		return Summary{}, o.fail(ctx, jobID, err)
	}

	o.Log.Info("starting ocr extraction", "job_id", job.ID, "ocr_provider", job.OCRProvider, "bytes", len(src))
	pages, err := provider.ExtractFromDocument(ctx, extract.Document{Bytes: src, Key: job.SourceKey})
	if err != nil {
		return Summary{}, o.fail(ctx, jobID, err)
	}

	total, err := o.Boxes.ReplaceForJob(ctx, jobID, pages)
	if err != nil {
		return Summary{}, o.fail(ctx, jobID, fmt.Errorf("store coordinates: %w", err))
	}

	// Zero boxes is a valid outcome, not an error.
	score := provider.QualityScore(pages.Flatten())

	if err := o.Jobs.MarkOCRCompleted(ctx, jobID); err != nil {
		return Summary{}, o.fail(ctx, jobID, fmt.Errorf("commit ocr_completed: %w", err))
	}

	summary := Summary{
		QualityScore:   score,
		TotalBoxes:     total,
		PagesProcessed: len(pages),
	}
	o.Log.Info("ocr processing complete",
		"job_id", job.ID,
		"quality_score", fmt.Sprintf("%.2f", summary.QualityScore),
		"total_boxes", summary.TotalBoxes,
		"pages_processed", summary.PagesProcessed,
	)
	return summary, nil
}

// fail records the failure on the job and returns the original error.
// The write uses a detached context so a cancelled run can still leave
// a truthful record; a cancelled run is distinguishable by its message.
func (o *Orchestrator) fail(ctx context.Context, jobID uuid.UUID, cause error) error {
	msg := cause.Error()
	if ctx.Err() != nil {
		msg = "cancelled: " + msg
	}
	wctx := context.WithoutCancel(ctx)
	if err := o.Jobs.MarkFailed(wctx, jobID, msg); err != nil {
		o.Log.Error("failed to record job failure", "job_id", jobID, "cause", cause, "err", err)
	}
	if common.IsBackendError(cause) {
		o.Log.Error("ocr backend failure", "job_id", jobID, "error", cause)
	} else {
		o.Log.Error("ocr processing failed", "job_id", jobID, "error", cause)
	}
	return cause
}

package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/constants"
	"github.com/danielokoye/invoicescan/gen/ent"
	"github.com/danielokoye/invoicescan/gen/ent/job"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/entity"
)

// JobRepository is the authoritative store for job status and progress.
// Every transition commits a status together with its progress
// checkpoint, so a crash mid-pipeline leaves the row at the last
// completed checkpoint.
type JobRepository interface {
	Create(ctx context.Context, p CreateJobParams) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	// ClaimPending transitions pending -> processing with a
	// compare-and-swap on status. False means the job was already
	// claimed (duplicate queue delivery) or is past pending.
	ClaimPending(ctx context.Context, id uuid.UUID) (bool, error)
	MarkOCRCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

// CreateJobParams fixes the job's identity fields at submission time.
type CreateJobParams struct {
	FileName    string
	SourceKey   string
	OCRProvider string
	LLMProvider string
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, p CreateJobParams) (*entity.Job, error) {
	b := r.ent.Job.
		Create().
		SetFileName(p.FileName).
		SetSourceKey(p.SourceKey)
	if p.OCRProvider != "" {
		b.SetOcrProvider(p.OCRProvider)
	}
	if p.LLMProvider != "" {
		b.SetLlmProvider(p.LLMProvider)
	}
	j, err := b.Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "file_name", p.FileName, "err", err)
		return nil, err
	}
	r.log.Info("job created", "job_id", j.ID, "file_name", p.FileName, "ocr_provider", j.OcrProvider)
	return jobToEntity(j), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	j, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return jobToEntity(j), nil
}

func (r *jobRepo) ClaimPending(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Job.
		Update().
		Where(job.ID(id), job.StatusEQ(string(constants.JobStatusPending))).
		SetStatus(string(constants.JobStatusProcessing)).
		SetProgress(constants.JobStatusProcessing.Checkpoint()).
		Save(ctx)
	if err != nil {
		r.log.Error("job claim failed", "job_id", id, "err", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobRepo) MarkOCRCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusOCRCompleted)).
		SetProgress(constants.JobStatusOCRCompleted.Checkpoint()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		r.log.Error("job finish(ocr_completed) failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("job finished ocr stage", "job_id", id)
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetProgress(constants.JobStatusFailed.Checkpoint()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		r.log.Error("job finish(failed) failed", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("job failed", "job_id", id, "error", message)
	return nil
}

func jobToEntity(j *ent.Job) *entity.Job {
	return &entity.Job{
		ID:           j.ID,
		Status:       constants.JobStatus(j.Status),
		FileName:     j.FileName,
		SourceKey:    j.SourceKey,
		OCRProvider:  j.OcrProvider,
		LLMProvider:  j.LlmProvider,
		Progress:     j.Progress,
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/gen/ent"
	"github.com/danielokoye/invoicescan/gen/ent/ocrbox"
	"github.com/danielokoye/invoicescan/internal/entity"
	"github.com/danielokoye/invoicescan/internal/extract"
)

// OCRBoxRepository persists extracted boxes against a job id. Boxes are
// append-only within a run; re-running the pipeline for the same job
// replaces the previous run's boxes wholesale.
type OCRBoxRepository interface {
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, pages extract.Pages) (int, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, page int) ([]entity.OCRBox, error)
	CountByJob(ctx context.Context, jobID uuid.UUID) (int, error)
}

type boxRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewOCRBoxRepository(entc *ent.Client, log *slog.Logger) OCRBoxRepository {
	if log == nil {
		log = slog.Default()
	}
	return &boxRepo{ent: entc, log: log}
}

// ReplaceForJob deletes any boxes from a previous run and bulk-inserts
// the new set. Delete and insert are separate statements; a crash in
// between loses boxes, but the job is still `processing` at that point
// and the next at-least-once delivery re-runs the whole replace.
func (r *boxRepo) ReplaceForJob(ctx context.Context, jobID uuid.UUID, pages extract.Pages) (int, error) {
	deleted, err := r.ent.OCRBox.
		Delete().
		Where(ocrbox.JobID(jobID)).
		Exec(ctx)
	if err != nil {
		r.log.Error("box delete failed", "job_id", jobID, "err", err)
		return 0, err
	}
	if deleted > 0 {
		r.log.Info("replaced boxes from previous run", "job_id", jobID, "deleted", deleted)
	}

	var builders []*ent.OCRBoxCreate
	for pageNum, boxes := range pages {
		for _, b := range boxes {
			builders = append(builders, r.ent.OCRBox.
				Create().
				SetJobID(jobID).
				SetPageNumber(pageNum).
				SetLeft(b.Left).
				SetTop(b.Top).
				SetWidth(b.Width).
				SetHeight(b.Height).
				SetText(b.Text).
				SetConfidence(b.Confidence))
		}
	}
	if len(builders) == 0 {
		return 0, nil
	}

	created, err := r.ent.OCRBox.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.log.Error("box bulk insert failed", "job_id", jobID, "count", len(builders), "err", err)
		return 0, err
	}
	r.log.Info("stored ocr coordinates", "job_id", jobID, "count", len(created))
	return len(created), nil
}

// ListByJob returns stored boxes, filtered to one page when page > 0.
func (r *boxRepo) ListByJob(ctx context.Context, jobID uuid.UUID, page int) ([]entity.OCRBox, error) {
	q := r.ent.OCRBox.
		Query().
		Where(ocrbox.JobID(jobID))
	if page > 0 {
		q = q.Where(ocrbox.PageNumber(page))
	}
	rows, err := q.
		Order(ent.Asc(ocrbox.FieldPageNumber), ent.Asc(ocrbox.FieldTop), ent.Asc(ocrbox.FieldLeft)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.OCRBox, 0, len(rows))
	for _, row := range rows {
		out = append(out, boxToEntity(row))
	}
	return out, nil
}

func (r *boxRepo) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	return r.ent.OCRBox.
		Query().
		Where(ocrbox.JobID(jobID)).
		Count(ctx)
}

func boxToEntity(b *ent.OCRBox) entity.OCRBox {
	return entity.OCRBox{
		ID:         b.ID,
		JobID:      b.JobID,
		PageNumber: b.PageNumber,
		Left:       b.Left,
		Top:        b.Top,
		Width:      b.Width,
		Height:     b.Height,
		Text:       b.Text,
		Confidence: b.Confidence,
		FieldName:  b.FieldName,
	}
}

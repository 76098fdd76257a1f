package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danielokoye/invoicescan/constants"
	invoicescanv1 "github.com/danielokoye/invoicescan/gen/invoicescan/v1"
	"github.com/danielokoye/invoicescan/internal/blob"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/queue"
	"github.com/danielokoye/invoicescan/internal/repository"
)

// DocumentsService exposes submission, status and coordinate reads.
type DocumentsService struct {
	invoicescanv1.UnimplementedDocumentServiceServer

	jobs   repository.JobRepository
	boxes  repository.OCRBoxRepository
	blobs  blob.Store
	queue  *queue.Queue
	logger *zap.Logger
}

func NewDocumentsService(jobs repository.JobRepository, boxes repository.OCRBoxRepository, blobs blob.Store, q *queue.Queue, logger *zap.Logger) *DocumentsService {
	return &DocumentsService{jobs: jobs, boxes: boxes, blobs: blobs, queue: q, logger: logger}
}

func (s *DocumentsService) SubmitDocument(ctx context.Context, req *invoicescanv1.SubmitDocumentRequest) (*invoicescanv1.SubmitDocumentResponse, error) {
	fileName := filepath.Base(req.GetFileName())
	if fileName == "" || fileName == "." {
		return nil, status.Error(codes.InvalidArgument, "file_name is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	if constants.MapExtToFormat(ext) == "" {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	ocrProvider := req.GetOcrProvider()
	if ocrProvider != "" {
		known := false
		for _, p := range constants.OCRProviders {
			if p == ocrProvider {
				known = true
				break
			}
		}
		if !known {
			return nil, common.InvalidArgumentErrorf("unknown ocr_provider %q", ocrProvider)
		}
	}

	key := fmt.Sprintf("uploads/%s/%s", uuid.New(), fileName)
	if err := s.blobs.Put(ctx, key, req.GetContent()); err != nil {
		s.logger.Error("store upload failed", zap.String("key", key), zap.Error(err))
		return nil, common.InternalError("failed to store document")
	}

	job, err := s.jobs.Create(ctx, repository.CreateJobParams{
		FileName:    fileName,
		SourceKey:   key,
		OCRProvider: ocrProvider,
		LLMProvider: req.GetLlmProvider(),
	})
	if err != nil {
		s.logger.Error("create job failed", zap.String("file_name", fileName), zap.Error(err))
		return nil, common.InternalError("failed to create job")
	}

	if err := s.queue.Enqueue(ctx, job.ID); err != nil {
		s.logger.Error("enqueue failed", zap.String("job_id", job.ID.String()), zap.Error(err))
		return nil, common.InternalError("failed to queue job")
	}

	s.logger.Info("document submitted",
		zap.String("job_id", job.ID.String()),
		zap.String("file_name", fileName),
		zap.String("ocr_provider", job.OCRProvider),
	)
	return &invoicescanv1.SubmitDocumentResponse{
		JobId:  job.ID.String(),
		Status: string(job.Status),
	}, nil
}

func (s *DocumentsService) GetJobStatus(ctx context.Context, req *invoicescanv1.GetJobStatusRequest) (*invoicescanv1.GetJobStatusResponse, error) {
	id, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, common.NotFoundError("job not found")
		}
		s.logger.Warn("get job failed", zap.String("job_id", id.String()), zap.Error(err))
		return nil, common.InternalError("failed to load job")
	}

	resp := &invoicescanv1.GetJobStatusResponse{
		JobId:       job.ID.String(),
		Status:      string(job.Status),
		Progress:    int32(job.Progress),
		FileName:    job.FileName,
		OcrProvider: job.OCRProvider,
		LlmProvider: job.LLMProvider,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   job.UpdatedAt.Format(time.RFC3339Nano),
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	return resp, nil
}

func (s *DocumentsService) ListCoordinates(ctx context.Context, req *invoicescanv1.ListCoordinatesRequest) (*invoicescanv1.ListCoordinatesResponse, error) {
	id, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	if req.GetPageNumber() < 0 {
		return nil, status.Error(codes.InvalidArgument, "page_number must not be negative")
	}

	// Existence check so a missing job reads as NotFound, not empty.
	if _, err := s.jobs.GetByID(ctx, id); err != nil {
		if common.IsNotFound(err) {
			return nil, common.NotFoundError("job not found")
		}
		return nil, common.InternalError("failed to load job")
	}

	boxes, err := s.boxes.ListByJob(ctx, id, int(req.GetPageNumber()))
	if err != nil {
		s.logger.Warn("list coordinates failed", zap.String("job_id", id.String()), zap.Error(err))
		return nil, common.InternalError("failed to list coordinates")
	}

	out := make([]*invoicescanv1.BoundingBox, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, &invoicescanv1.BoundingBox{
			PageNumber: int32(b.PageNumber),
			Left:       int32(b.Left),
			Top:        int32(b.Top),
			Width:      int32(b.Width),
			Height:     int32(b.Height),
			Text:       b.Text,
			Confidence: b.Confidence,
		})
	}
	return &invoicescanv1.ListCoordinatesResponse{Boxes: out, Total: int32(len(out))}, nil
}

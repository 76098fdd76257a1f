// Command runocr runs the OCR pipeline once for an existing job id,
// bypassing the queue. Useful for re-running a failed or stuck job.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/danielokoye/invoicescan/internal/blob"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/extract"
	"github.com/danielokoye/invoicescan/internal/ocr"
	"github.com/danielokoye/invoicescan/internal/pipeline"
	"github.com/danielokoye/invoicescan/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <job-id-uuid>")
		os.Exit(2)
	}
	jobID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid job id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	blobs, err := blob.NewFSStore(cfg.Blob.RootDir, logger)
	if err != nil {
		logger.Error("open blob store", "error", err)
		os.Exit(1)
	}

	jobsRepo := repository.NewJobRepository(entc, logger)
	boxRepo := repository.NewOCRBoxRepository(entc, logger)
	providers := func(name string) (extract.Provider, error) {
		return ocr.NewProvider(name, cfg.OCR, &http.Client{Timeout: 45 * time.Second}, logger)
	}

	orch := pipeline.NewOrchestrator(jobsRepo, boxRepo, blobs, providers, logger)

	start := time.Now()
	summary, err := orch.Run(ctx, jobID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("ocr run failed", "job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("ocr run OK",
		"job_id", jobID,
		"quality_score", summary.QualityScore,
		"total_boxes", summary.TotalBoxes,
		"pages_processed", summary.PagesProcessed,
		"duration_ms", dur.Milliseconds(),
	)
}

package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicescanv1 "github.com/danielokoye/invoicescan/gen/invoicescan/v1"
	"github.com/danielokoye/invoicescan/internal/blob"
	"github.com/danielokoye/invoicescan/internal/common"
	"github.com/danielokoye/invoicescan/internal/extract"
	"github.com/danielokoye/invoicescan/internal/ocr"
	"github.com/danielokoye/invoicescan/internal/pipeline"
	"github.com/danielokoye/invoicescan/internal/queue"
	"github.com/danielokoye/invoicescan/internal/repository"
	"github.com/danielokoye/invoicescan/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, slogger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repository.Close(entc, pool, slogger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, slogger); err != nil {
		log.Fatalf("database health failed: %v", err)
	}
	log.Infow("database health OK")

	blobs, err := blob.NewFSStore(cfg.Blob.RootDir, slogger)
	if err != nil {
		log.Fatalf("opening blob store: %v", err)
	}

	jobsRepo := repository.NewJobRepository(entc, slogger)
	boxRepo := repository.NewOCRBoxRepository(entc, slogger)

	httpc := &http.Client{Timeout: 45 * time.Second}
	providers := func(name string) (extract.Provider, error) {
		return ocr.NewProvider(name, cfg.OCR, httpc, slogger)
	}

	orch := pipeline.NewOrchestrator(jobsRepo, boxRepo, blobs, providers, slogger)
	q := queue.New(jobsRepo, orch, slogger,
		queue.WithWorkers(cfg.Queue.Workers),
		queue.WithSize(cfg.Queue.Size),
		queue.WithJobTimeout(cfg.Queue.JobTimeout),
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewDocumentsService(jobsRepo, boxRepo, blobs, q, logger)
	invoicescanv1.RegisterDocumentServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	q.Shutdown(drainCtx)
	log.Info("stopped")
}

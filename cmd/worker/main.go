package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heladerias/audit-vision/internal/bootstrap"
	"github.com/heladerias/audit-vision/internal/config"
	"github.com/heladerias/audit-vision/internal/core/ports"
	"github.com/heladerias/audit-vision/internal/observability/logging"
	"github.com/heladerias/audit-vision/internal/observability/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	slog.SetDefault(logging.NewJSONLogger("worker", cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workerMetrics := metrics.NewWorkerMetrics("worker")
	app, err := bootstrap.New(ctx, cfg, bootstrap.Metrics{Analyze: workerMetrics})
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("worker metrics server error: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	log.Printf("worker subscribed to %s", cfg.NATSSubject)
	err = app.Queue.SubscribeAnalyzeRequested(ctx, func(handlerCtx context.Context, req ports.AnalyzeRequest) error {
		workerMetrics.StartBatch()
		start := time.Now()

		analyzeCtx, cancel := context.WithTimeout(handlerCtx, app.ItemTimeout())
		defer cancel()

		_, err := app.AnalyzeUC.AnalyzeItem(analyzeCtx, req.Local, req.Fecha, req.ItemID)
		workerMetrics.FinishBatch("worker", time.Since(start), err)
		return err
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}

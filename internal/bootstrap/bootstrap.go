package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/heladerias/audit-vision/internal/config"
	"github.com/heladerias/audit-vision/internal/core/ports"
	"github.com/heladerias/audit-vision/internal/core/usecase"
	"github.com/heladerias/audit-vision/internal/infrastructure/imaging"
	"github.com/heladerias/audit-vision/internal/infrastructure/llm/openaivision"
	"github.com/heladerias/audit-vision/internal/infrastructure/queue/nats"
	"github.com/heladerias/audit-vision/internal/infrastructure/repository/postgres"
)

// Metrics carries the optional domain-level observers; nil fields are no-ops.
type Metrics struct {
	Intake    usecase.IntakeMetrics
	Analyze   usecase.AnalyzeMetrics
	Retention usecase.RetentionMetrics
}

type App struct {
	Config config.Config
	DB     *sql.DB
	Queue  ports.MessageQueue

	IntakeUC      *usecase.PhotoIntakeUseCase
	AnalyzeUC     *usecase.AnalyzeItemUseCase
	ScoringUC     *usecase.AuditScoringUseCase
	CorrectionUC  *usecase.CorrectionUseCase
	DeviationUC   *usecase.DeviationLifecycleUseCase
	ReportingUC   *usecase.ReportingUseCase
	ArchiveUC     *usecase.ArchiveUseCase
	RetentionUC   *usecase.RetentionUseCase
	ResponsableUC *usecase.ResponsableUseCase

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, metrics Metrics) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	photoRepo := postgres.NewPhotoRepository(db)
	evaluationRepo := postgres.NewEvaluationRepository(db)
	correctionRepo := postgres.NewCorrectionRepository(db)
	auditRepo := postgres.NewAuditRepository(db)
	deviationRepo := postgres.NewDeviationRepository(db)
	decisionRepo := postgres.NewDecisionRepository(db)
	responsableRepo := postgres.NewResponsableRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	queue, err := nats.New(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	classifier := openaivision.New(cfg.VisionBaseURL, cfg.VisionAPIKey, cfg.VisionModel, openaivision.Options{
		RequestsPerSecond: cfg.VisionRPS,
		Burst:             cfg.VisionBurst,
	})
	compressor := imaging.NewCompressor()

	intakeUC := usecase.NewPhotoIntakeUseCase(photoRepo, compressor, cfg.MaxUploadMB, metrics.Intake)
	analyzeUC := usecase.NewAnalyzeItemUseCase(
		photoRepo, evaluationRepo, correctionRepo, deviationRepo, classifier, queue,
		cfg.CorrectionsLimit, metrics.Analyze)
	scoringUC := usecase.NewAuditScoringUseCase(evaluationRepo, auditRepo)
	correctionUC := usecase.NewCorrectionUseCase(correctionRepo)
	deviationUC := usecase.NewDeviationLifecycleUseCase(deviationRepo, decisionRepo)
	reportingUC := usecase.NewReportingUseCase(evaluationRepo, deviationRepo, statsRepo)
	archiveUC := usecase.NewArchiveUseCase(photoRepo)
	retentionUC := usecase.NewRetentionUseCase(photoRepo, cfg.RetentionMonths, metrics.Retention)
	responsableUC := usecase.NewResponsableUseCase(responsableRepo)

	return &App{
		Config: cfg,
		DB:     db,
		Queue:  queue,

		IntakeUC:      intakeUC,
		AnalyzeUC:     analyzeUC,
		ScoringUC:     scoringUC,
		CorrectionUC:  correctionUC,
		DeviationUC:   deviationUC,
		ReportingUC:   reportingUC,
		ArchiveUC:     archiveUC,
		RetentionUC:   retentionUC,
		ResponsableUC: responsableUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

// ItemTimeout is how long one analysis batch may run in the worker.
func (a *App) ItemTimeout() time.Duration {
	return time.Duration(a.Config.WorkerItemTimeout) * time.Second
}

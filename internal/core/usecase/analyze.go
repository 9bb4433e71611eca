package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

const DefaultCorrectionsLimit = 5

// AnalyzeItemUseCase runs the vision classifier over every stored photo of one
// (local, fecha, item), records an evaluation per photo, and opens a deviation
// for every non-passing verdict. Per-photo failures are collected, not fatal;
// evaluations recorded before a failure stay committed.
type AnalyzeItemUseCase struct {
	photos      ports.PhotoRepository
	evaluations ports.EvaluationRepository
	corrections ports.CorrectionRepository
	deviations  ports.DeviationRepository
	classifier  ports.VisionClassifier
	queue       ports.MessageQueue

	correctionsLimit int
	metrics          AnalyzeMetrics
}

// AnalyzeMetrics receives domain-level observations; a nil-safe no-op by default.
type AnalyzeMetrics interface {
	EvaluationRecorded(status domain.Status)
	DeviationCreated(tipo domain.TipoDesvio)
	PhotoAnalysisFailed()
}

type noopAnalyzeMetrics struct{}

func (noopAnalyzeMetrics) EvaluationRecorded(domain.Status)   {}
func (noopAnalyzeMetrics) DeviationCreated(domain.TipoDesvio) {}
func (noopAnalyzeMetrics) PhotoAnalysisFailed()               {}

// NewAnalyzeItemUseCase builds the analysis flow. correctionsLimit caps how
// many prior auditor corrections feed the prompt (CORRECTIONS_LIMIT, default
// 5); zero or negative keeps the default.
func NewAnalyzeItemUseCase(
	photos ports.PhotoRepository,
	evaluations ports.EvaluationRepository,
	corrections ports.CorrectionRepository,
	deviations ports.DeviationRepository,
	classifier ports.VisionClassifier,
	queue ports.MessageQueue,
	correctionsLimit int,
	metrics AnalyzeMetrics,
) *AnalyzeItemUseCase {
	if correctionsLimit <= 0 {
		correctionsLimit = DefaultCorrectionsLimit
	}
	if metrics == nil {
		metrics = noopAnalyzeMetrics{}
	}
	return &AnalyzeItemUseCase{
		photos:           photos,
		evaluations:      evaluations,
		corrections:      corrections,
		deviations:       deviations,
		classifier:       classifier,
		queue:            queue,
		correctionsLimit: correctionsLimit,
		metrics:          metrics,
	}
}

// RequestAnalysis enqueues the batch for the worker.
func (uc *AnalyzeItemUseCase) RequestAnalysis(ctx context.Context, local, fecha, itemID string) error {
	if _, ok := catalog.ByID(itemID); !ok {
		return domain.WrapError(domain.ErrInvalidInput, "request analysis", fmt.Errorf("unknown item %q", itemID))
	}
	req := ports.AnalyzeRequest{Local: local, Fecha: fecha, ItemID: itemID}
	if err := uc.queue.PublishAnalyzeRequested(ctx, req); err != nil {
		return fmt.Errorf("publish analysis request: %w", err)
	}
	return nil
}

func (uc *AnalyzeItemUseCase) AnalyzeItem(ctx context.Context, local, fecha, itemID string) (*ports.AnalyzeReport, error) {
	criterion, ok := catalog.ByID(itemID)
	if !ok {
		return nil, domain.WrapError(domain.ErrInvalidInput, "analyze item", fmt.Errorf("unknown item %q", itemID))
	}

	photos, err := uc.photos.ForItem(ctx, local, fecha, itemID)
	if err != nil {
		return nil, fmt.Errorf("load photos for item: %w", err)
	}
	if len(photos) == 0 {
		return nil, domain.WrapError(domain.ErrNotFound, "analyze item", fmt.Errorf("no photos for %s %s %s", local, fecha, itemID))
	}

	priorCorrections, err := uc.corrections.ForItem(ctx, itemID, uc.correctionsLimit)
	if err != nil {
		// Correction context is advisory; classify without it rather than abort.
		slog.Warn("load corrections failed", "item_id", itemID, "error", err)
		priorCorrections = nil
	}

	report := &ports.AnalyzeReport{Local: local, Fecha: fecha, ItemID: itemID}
	for _, photo := range photos {
		ev, err := uc.analyzePhoto(ctx, criterion, photo, priorCorrections)
		if err != nil {
			uc.metrics.PhotoAnalysisFailed()
			slog.Error("photo analysis failed",
				"local", local, "fecha", fecha, "item_id", itemID,
				"photo", photo.PhotoName, "error", err,
			)
			report.Failures = append(report.Failures, ports.PhotoFailure{
				PhotoName: photo.PhotoName,
				Error:     err.Error(),
			})
			continue
		}
		report.Evaluations = append(report.Evaluations, *ev)
	}
	return report, nil
}

func (uc *AnalyzeItemUseCase) analyzePhoto(
	ctx context.Context,
	criterion catalog.Criterion,
	photo domain.Photo,
	corrections []domain.Correction,
) (*domain.Evaluation, error) {
	verdict, err := uc.classifier.Classify(ctx, ports.ClassifyInput{
		ImageData:   photo.Data,
		MimeType:    "image/jpeg",
		Criterion:   criterion,
		Corrections: corrections,
	})
	if err != nil {
		return nil, fmt.Errorf("classify photo: %w", err)
	}

	ev := &domain.Evaluation{
		ID:                 uuid.NewString(),
		Local:              photo.Local,
		Fecha:              photo.Fecha,
		Section:            criterion.Section,
		ItemID:             criterion.ID,
		ItemName:           criterion.Name,
		Status:             verdict.Status,
		Justificacion:      verdict.Justificacion,
		DetallesObservados: verdict.DetallesObservados,
		Recomendaciones:    verdict.Recomendaciones,
		Filename:           photo.PhotoName,
		Model:              uc.classifier.Model(),
		AnalyzedAt:         time.Now().UTC(),
	}
	if err := uc.evaluations.Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("record evaluation: %w", err)
	}
	uc.metrics.EvaluationRecorded(ev.Status)

	if ev.Status != domain.StatusConforme {
		if err := uc.openDeviation(ctx, ev); err != nil {
			// The evaluation is already committed; surface the deviation
			// failure without rolling anything back.
			return nil, fmt.Errorf("open deviation: %w", err)
		}
	}
	return ev, nil
}

func (uc *AnalyzeItemUseCase) openDeviation(ctx context.Context, ev *domain.Evaluation) error {
	now := time.Now().UTC()
	prior, err := uc.deviations.CountPriorInWindow(ctx, ev.Local, ev.ItemID, now.Add(-domain.RecurrenceWindow))
	if err != nil {
		return fmt.Errorf("count prior deviations: %w", err)
	}
	deviation, err := domain.NewDeviation(uuid.NewString(), *ev, prior, now)
	if err != nil {
		return err
	}
	if err := uc.deviations.Create(ctx, &deviation); err != nil {
		return fmt.Errorf("create deviation: %w", err)
	}
	uc.metrics.DeviationCreated(deviation.TipoDesvio)
	return nil
}

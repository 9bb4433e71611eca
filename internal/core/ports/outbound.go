package ports

import (
	"context"
	"time"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/domain"
)

// PhotoRepository persists and reads compressed audit photos.
type PhotoRepository interface {
	Save(ctx context.Context, photo *domain.Photo) error
	ForItem(ctx context.Context, local, fecha, itemID string) ([]domain.Photo, error)
	All(ctx context.Context, local, fecha string) ([]domain.Photo, error)
	Counts(ctx context.Context, local, fecha string) (map[string]int, error)
	CountForItem(ctx context.Context, local, fecha, itemID string) (int, error)
	TotalSize(ctx context.Context, local, fecha string) (int64, error)
	Delete(ctx context.Context, id string) error
	ListAudits(ctx context.Context) ([]domain.AuditRef, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// EvaluationRepository records verdicts and serves the aggregation queries.
type EvaluationRepository interface {
	Create(ctx context.Context, ev *domain.Evaluation) error
	ForAudit(ctx context.Context, local, fecha string) ([]domain.Evaluation, error)
	ItemEvolution(ctx context.Context, local, itemID string) ([]domain.ItemEvolution, error)
	History(ctx context.Context) ([]domain.AuditSummary, error)
	RecurringFailures(ctx context.Context, local string, minCount int) ([]domain.RecurringFailure, error)
	SectionStatuses(ctx context.Context, local, fecha string) (map[string][]domain.Status, error)
}

// CorrectionRepository stores auditor overrides, append-only.
type CorrectionRepository interface {
	Create(ctx context.Context, c *domain.Correction) error
	ForItem(ctx context.Context, itemID string, limit int) ([]domain.Correction, error)
	Recent(ctx context.Context, limit int) ([]domain.Correction, error)
}

// AuditRepository upserts and reads the per-(local, fecha) score records.
type AuditRepository interface {
	Upsert(ctx context.Context, audit *domain.Audit) error
	Get(ctx context.Context, local, fecha string) (*domain.Audit, error)
	List(ctx context.Context, local string, limit int) ([]domain.Audit, error)
	MonthlyScores(ctx context.Context, local string, months int) ([]domain.Audit, error)
}

// DeviationFilter narrows deviation listings; zero values mean "any".
type DeviationFilter struct {
	Local    string
	Estado   domain.EstadoDesvio
	Fecha    string
	Tipo     domain.TipoDesvio
	OpenOnly bool
}

// DeviationUpdate carries the manager-assignable fields.
type DeviationUpdate struct {
	Responsable *string
	FechaLimite *time.Time
	Prioridad   *domain.Prioridad
}

// DeviationRepository manages deviation records and their lifecycle fields.
type DeviationRepository interface {
	Create(ctx context.Context, d *domain.Deviation) error
	GetByID(ctx context.Context, id string) (*domain.Deviation, error)
	List(ctx context.Context, filter DeviationFilter) ([]domain.Deviation, error)
	CountPriorInWindow(ctx context.Context, local, itemCodigo string, since time.Time) (int, error)
	UpdateAssignment(ctx context.Context, id string, update DeviationUpdate) error
	SetEstado(ctx context.Context, id string, estado domain.EstadoDesvio) error
	Close(ctx context.Context, id string, estado domain.EstadoDesvio, comentario string, closedAt time.Time) error
	DueWithin(ctx context.Context, local string, horizon time.Time) ([]domain.Deviation, error)
	KPIs(ctx context.Context, local string, now time.Time) (*domain.DeviationKPIs, error)
	TopReincidentes(ctx context.Context, local string, limit int) ([]domain.ReincidenceEntry, error)
}

// DecisionRepository stores escalation records for structural deviations.
type DecisionRepository interface {
	Create(ctx context.Context, d *domain.Decision) error
	GetByDesvio(ctx context.Context, desvioID string) (*domain.Decision, error)
	Update(ctx context.Context, id, impacto, propuesta string, estado domain.EstadoDecision) error
	ListPending(ctx context.Context, local string) ([]domain.Decision, error)
}

// ResponsableRepository manages the accountable-party reference entities.
type ResponsableRepository interface {
	Create(ctx context.Context, r *domain.Responsable) error
	ListByLocal(ctx context.Context, local string) ([]domain.Responsable, error)
	Delete(ctx context.Context, id string) error
}

// StatsReader serves the admin panel counters.
type StatsReader interface {
	Stats(ctx context.Context) (*domain.StoreStats, error)
}

// ClassifyInput is one vision-classifier request.
type ClassifyInput struct {
	ImageData   []byte
	MimeType    string
	Criterion   catalog.Criterion
	Corrections []domain.Correction
}

// VisionClassifier scores one photo against one criterion's rubrics.
// Unparseable model output degrades to a precautionary Observación verdict
// instead of an error; only transport failures error.
type VisionClassifier interface {
	Classify(ctx context.Context, input ClassifyInput) (domain.Verdict, error)
	Model() string
}

// ImageCompressor re-encodes an uploaded image to audit quality.
type ImageCompressor interface {
	Compress(data []byte) ([]byte, error)
}

// AnalyzeRequest is the message published per (local, fecha, item) batch.
type AnalyzeRequest struct {
	Local  string `json:"local"`
	Fecha  string `json:"fecha"`
	ItemID string `json:"item_id"`
}

// MessageQueue publishes/consumes analysis jobs.
type MessageQueue interface {
	PublishAnalyzeRequested(ctx context.Context, req AnalyzeRequest) error
	SubscribeAnalyzeRequested(ctx context.Context, handler func(context.Context, AnalyzeRequest) error) error
}

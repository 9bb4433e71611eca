package ports

import (
	"context"
	"io"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

// PhotoIntake is the inbound contract for photo upload and housekeeping.
type PhotoIntake interface {
	Upload(ctx context.Context, local, fecha, itemID string, body io.Reader) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
}

// ItemAnalyzer runs the classifier over the stored photos of one item.
type ItemAnalyzer interface {
	AnalyzeItem(ctx context.Context, local, fecha, itemID string) (*AnalyzeReport, error)
	RequestAnalysis(ctx context.Context, local, fecha, itemID string) error
}

// AnalyzeReport summarizes one analysis batch; per-photo failures do not
// abort the batch.
type AnalyzeReport struct {
	Local       string              `json:"local"`
	Fecha       string              `json:"fecha"`
	ItemID      string              `json:"item_id"`
	Evaluations []domain.Evaluation `json:"evaluations"`
	Failures    []PhotoFailure      `json:"failures,omitempty"`
}

// PhotoFailure reports one photo that could not be analyzed.
type PhotoFailure struct {
	PhotoName string `json:"photo_name"`
	Error     string `json:"error"`
}

// DeviationManager is the inbound contract for the remediation workflow.
type DeviationManager interface {
	Assign(ctx context.Context, id string, update DeviationUpdate) error
	Transition(ctx context.Context, id string, to domain.EstadoDesvio) error
	CloseDeviation(ctx context.Context, id, comentario string) (*domain.Deviation, error)
	ReviewOverdue(ctx context.Context, local string) (int, error)
}

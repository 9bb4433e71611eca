package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

// DeviationLifecycleUseCase manages assignment, state transitions, closure and
// the weekly overdue review. Transitions follow the explicit lifecycle graph;
// terminal deviations are immutable and reopening means a new detection.
type DeviationLifecycleUseCase struct {
	deviations ports.DeviationRepository
	decisions  ports.DecisionRepository
}

func NewDeviationLifecycleUseCase(deviations ports.DeviationRepository, decisions ports.DecisionRepository) *DeviationLifecycleUseCase {
	return &DeviationLifecycleUseCase{deviations: deviations, decisions: decisions}
}

func (uc *DeviationLifecycleUseCase) Assign(ctx context.Context, id string, update ports.DeviationUpdate) error {
	d, err := uc.deviations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load deviation: %w", err)
	}
	if d.Estado.Terminal() {
		return domain.WrapError(domain.ErrConflict, "assign deviation", fmt.Errorf("deviation %s is %s", id, d.Estado))
	}
	if update.Prioridad != nil {
		switch *update.Prioridad {
		case domain.PrioridadAlta, domain.PrioridadMedia, domain.PrioridadBaja:
		default:
			return domain.WrapError(domain.ErrInvalidInput, "assign deviation", fmt.Errorf("invalid prioridad %q", *update.Prioridad))
		}
	}
	if err := uc.deviations.UpdateAssignment(ctx, id, update); err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

func (uc *DeviationLifecycleUseCase) Transition(ctx context.Context, id string, to domain.EstadoDesvio) error {
	d, err := uc.deviations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load deviation: %w", err)
	}
	if !d.Estado.CanTransition(to) {
		return domain.WrapError(domain.ErrConflict, "transition deviation",
			fmt.Errorf("cannot move %s from %s to %s", id, d.Estado, to))
	}
	if to == domain.EstadoCumplido {
		// Closing carries a comment and the decision side effect.
		_, err := uc.CloseDeviation(ctx, id, "")
		return err
	}
	if err := uc.deviations.SetEstado(ctx, id, to); err != nil {
		return fmt.Errorf("set estado: %w", err)
	}
	return nil
}

// CloseDeviation marks the deviation cumplido. An empty comment is replaced
// with the default placeholder. Closing a structural deviation creates its
// escalation Decision; a decision that already exists is left untouched.
func (uc *DeviationLifecycleUseCase) CloseDeviation(ctx context.Context, id, comentario string) (*domain.Deviation, error) {
	d, err := uc.deviations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load deviation: %w", err)
	}
	if !d.Estado.CanTransition(domain.EstadoCumplido) {
		return nil, domain.WrapError(domain.ErrConflict, "close deviation",
			fmt.Errorf("cannot close %s from %s", id, d.Estado))
	}

	comentario = strings.TrimSpace(comentario)
	if comentario == "" {
		comentario = domain.DefaultClosureComment
	}
	closedAt := time.Now().UTC()
	if err := uc.deviations.Close(ctx, id, domain.EstadoCumplido, comentario, closedAt); err != nil {
		return nil, fmt.Errorf("close deviation: %w", err)
	}
	d.Estado = domain.EstadoCumplido
	d.ComentarioCierre = comentario
	d.FechaCierre = &closedAt

	if d.TipoDesvio == domain.TipoEstructural {
		if err := uc.escalate(ctx, d); err != nil {
			// The deviation is closed either way; escalation failure is
			// surfaced in the log and retried manually from the decisions panel.
			slog.Error("decision escalation failed", "desvio_id", id, "error", err)
		}
	}
	return d, nil
}

// CreateDecision opens the escalation record for a structural deviation.
func (uc *DeviationLifecycleUseCase) CreateDecision(ctx context.Context, desvioID string) (*domain.Decision, error) {
	d, err := uc.deviations.GetByID(ctx, desvioID)
	if err != nil {
		return nil, fmt.Errorf("load deviation: %w", err)
	}
	if d.TipoDesvio != domain.TipoEstructural {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create decision",
			fmt.Errorf("deviation %s is %s, not estructural", desvioID, d.TipoDesvio))
	}
	if err := uc.escalate(ctx, d); err != nil {
		return nil, err
	}
	return uc.decisions.GetByDesvio(ctx, desvioID)
}

func (uc *DeviationLifecycleUseCase) escalate(ctx context.Context, d *domain.Deviation) error {
	if existing, err := uc.decisions.GetByDesvio(ctx, d.ID); err == nil && existing != nil {
		return nil
	}
	now := time.Now().UTC()
	decision := &domain.Decision{
		ID:             uuid.NewString(),
		DesvioID:       d.ID,
		ItemCodigo:     d.ItemCodigo,
		Local:          d.Local,
		Contexto:       d.AIJustificacion,
		EstadoDecision: domain.DecisionPendiente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.decisions.Create(ctx, decision); err != nil {
		if domain.IsKind(err, domain.ErrConflict) {
			return nil
		}
		return fmt.Errorf("create decision: %w", err)
	}
	return nil
}

// Get loads one deviation by id.
func (uc *DeviationLifecycleUseCase) Get(ctx context.Context, id string) (*domain.Deviation, error) {
	d, err := uc.deviations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load deviation: %w", err)
	}
	return d, nil
}

// PendingDecisions lists escalations awaiting managerial review.
func (uc *DeviationLifecycleUseCase) PendingDecisions(ctx context.Context, local string) ([]domain.Decision, error) {
	decisions, err := uc.decisions.ListPending(ctx, local)
	if err != nil {
		return nil, fmt.Errorf("list pending decisions: %w", err)
	}
	return decisions, nil
}

// UpdateDecision records the managerial review outcome.
func (uc *DeviationLifecycleUseCase) UpdateDecision(ctx context.Context, id, impacto, propuesta string, estado domain.EstadoDecision) error {
	if !estado.Valid() {
		return domain.WrapError(domain.ErrInvalidInput, "update decision",
			fmt.Errorf("unknown estado %q", estado))
	}
	if err := uc.decisions.Update(ctx, id, impacto, propuesta, estado); err != nil {
		return fmt.Errorf("update decision: %w", err)
	}
	return nil
}

// ReviewOverdue marks every open deviation past its due date incumplido.
// Returns how many were marked.
func (uc *DeviationLifecycleUseCase) ReviewOverdue(ctx context.Context, local string) (int, error) {
	now := time.Now().UTC()
	due, err := uc.deviations.DueWithin(ctx, local, now)
	if err != nil {
		return 0, fmt.Errorf("list overdue deviations: %w", err)
	}
	marked := 0
	for _, d := range due {
		if d.FechaLimite == nil || !d.FechaLimite.Before(now) {
			continue
		}
		if !d.Estado.CanTransition(domain.EstadoIncumplido) {
			continue
		}
		if err := uc.deviations.SetEstado(ctx, d.ID, domain.EstadoIncumplido); err != nil {
			return marked, fmt.Errorf("mark incumplido %s: %w", d.ID, err)
		}
		marked++
	}
	return marked, nil
}

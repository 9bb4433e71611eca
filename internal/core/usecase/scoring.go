package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

// AuditScoringUseCase recomputes the per-section and global conformity scores
// for one (local, fecha) from the evaluations currently present and upserts the
// audit record. Recomputing twice from the same evaluations yields the same
// scores.
type AuditScoringUseCase struct {
	evaluations ports.EvaluationRepository
	audits      ports.AuditRepository
}

func NewAuditScoringUseCase(evaluations ports.EvaluationRepository, audits ports.AuditRepository) *AuditScoringUseCase {
	return &AuditScoringUseCase{evaluations: evaluations, audits: audits}
}

func (uc *AuditScoringUseCase) Recompute(ctx context.Context, local, fecha string) (*domain.Audit, error) {
	bySections, err := uc.evaluations.SectionStatuses(ctx, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("load section statuses: %w", err)
	}
	if len(bySections) == 0 {
		return nil, domain.WrapError(domain.ErrNotFound, "recompute audit",
			fmt.Errorf("no evaluations for %s %s", local, fecha))
	}

	scores, global := domain.ComputeScores(bySections)
	audit := &domain.Audit{
		ID:          uuid.NewString(),
		Local:       local,
		Fecha:       fecha,
		Scores:      scores,
		ScoreGlobal: global,
		ComputedAt:  time.Now().UTC(),
	}
	if err := uc.audits.Upsert(ctx, audit); err != nil {
		return nil, fmt.Errorf("upsert audit: %w", err)
	}
	return audit, nil
}

func (uc *AuditScoringUseCase) Get(ctx context.Context, local, fecha string) (*domain.Audit, error) {
	audit, err := uc.audits.Get(ctx, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("get audit: %w", err)
	}
	return audit, nil
}

// List returns the newest audit records, optionally narrowed to one local.
func (uc *AuditScoringUseCase) List(ctx context.Context, local string, limit int) ([]domain.Audit, error) {
	if limit <= 0 {
		limit = 50
	}
	audits, err := uc.audits.List(ctx, local, limit)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	return audits, nil
}

func (uc *AuditScoringUseCase) MonthlyScores(ctx context.Context, local string, months int) ([]domain.Audit, error) {
	if months <= 0 {
		months = 6
	}
	audits, err := uc.audits.MonthlyScores(ctx, local, months)
	if err != nil {
		return nil, fmt.Errorf("monthly scores: %w", err)
	}
	return audits, nil
}

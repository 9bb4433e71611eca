package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

// ReportingUseCase serves the read-side aggregations: audit history, item
// evolution, recurring failures, deviation KPIs and the weekly plan.
type ReportingUseCase struct {
	evaluations ports.EvaluationRepository
	deviations  ports.DeviationRepository
	stats       ports.StatsReader
}

func NewReportingUseCase(
	evaluations ports.EvaluationRepository,
	deviations ports.DeviationRepository,
	stats ports.StatsReader,
) *ReportingUseCase {
	return &ReportingUseCase{evaluations: evaluations, deviations: deviations, stats: stats}
}

func (uc *ReportingUseCase) AuditHistory(ctx context.Context) ([]domain.AuditSummary, error) {
	history, err := uc.evaluations.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit history: %w", err)
	}
	return history, nil
}

func (uc *ReportingUseCase) AuditResults(ctx context.Context, local, fecha string) ([]domain.Evaluation, error) {
	results, err := uc.evaluations.ForAudit(ctx, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("audit results: %w", err)
	}
	return results, nil
}

func (uc *ReportingUseCase) ItemEvolution(ctx context.Context, local, itemID string) ([]domain.ItemEvolution, error) {
	evolution, err := uc.evaluations.ItemEvolution(ctx, local, itemID)
	if err != nil {
		return nil, fmt.Errorf("item evolution: %w", err)
	}
	return evolution, nil
}

// RecurringFailures returns items whose non-passing evaluations span at least
// minCount distinct periods. Two failures inside one period count once.
func (uc *ReportingUseCase) RecurringFailures(ctx context.Context, local string, minCount int) ([]domain.RecurringFailure, error) {
	if minCount <= 0 {
		minCount = 2
	}
	failures, err := uc.evaluations.RecurringFailures(ctx, local, minCount)
	if err != nil {
		return nil, fmt.Errorf("recurring failures: %w", err)
	}
	return failures, nil
}

func (uc *ReportingUseCase) Deviations(ctx context.Context, filter ports.DeviationFilter) ([]domain.Deviation, error) {
	out, err := uc.deviations.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deviations: %w", err)
	}
	return out, nil
}

// DueWithin lists open deviations overdue or due inside the horizon (days).
func (uc *ReportingUseCase) DueWithin(ctx context.Context, local string, days int) ([]domain.Deviation, error) {
	if days <= 0 {
		days = 7
	}
	horizon := time.Now().UTC().AddDate(0, 0, days)
	out, err := uc.deviations.DueWithin(ctx, local, horizon)
	if err != nil {
		return nil, fmt.Errorf("deviations due within: %w", err)
	}
	return out, nil
}

func (uc *ReportingUseCase) KPIs(ctx context.Context, local string) (*domain.DeviationKPIs, error) {
	kpis, err := uc.deviations.KPIs(ctx, local, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("deviation kpis: %w", err)
	}
	return kpis, nil
}

func (uc *ReportingUseCase) TopReincidentes(ctx context.Context, local string, limit int) ([]domain.ReincidenceEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	top, err := uc.deviations.TopReincidentes(ctx, local, limit)
	if err != nil {
		return nil, fmt.Errorf("top reincidentes: %w", err)
	}
	return top, nil
}

// WeeklyPlan returns the top-n active deviations, recurring ones first, then
// by priority alta > media > baja.
func (uc *ReportingUseCase) WeeklyPlan(ctx context.Context, local string, n int) ([]domain.Deviation, error) {
	if n <= 0 {
		n = 10
	}
	active, err := uc.deviations.List(ctx, ports.DeviationFilter{Local: local, OpenOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list active deviations: %w", err)
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Reincidente != active[j].Reincidente {
			return active[i].Reincidente
		}
		return priorityRank(active[i].Prioridad) < priorityRank(active[j].Prioridad)
	})
	if len(active) > n {
		active = active[:n]
	}
	return active, nil
}

func priorityRank(p domain.Prioridad) int {
	switch p {
	case domain.PrioridadAlta:
		return 0
	case domain.PrioridadMedia:
		return 1
	default:
		return 2
	}
}

func (uc *ReportingUseCase) Stats(ctx context.Context) (*domain.StoreStats, error) {
	stats, err := uc.stats.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("store stats: %w", err)
	}
	return stats, nil
}

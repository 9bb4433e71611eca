package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type EvaluationRepository struct {
	db *sql.DB
}

func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) Create(ctx context.Context, ev *domain.Evaluation) error {
	detalles, err := json.Marshal(emptyIfNil(ev.DetallesObservados))
	if err != nil {
		return fmt.Errorf("marshal detalles: %w", err)
	}
	recomendaciones, err := json.Marshal(emptyIfNil(ev.Recomendaciones))
	if err != nil {
		return fmt.Errorf("marshal recomendaciones: %w", err)
	}

	const query = `
		INSERT INTO evaluations (id, local, fecha, section, item_id, item_name, status,
			justificacion, detalles_observados, recomendaciones, filename, model, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		ev.ID, ev.Local, ev.Fecha, ev.Section, ev.ItemID, ev.ItemName, string(ev.Status),
		ev.Justificacion, detalles, recomendaciones, ev.Filename, ev.Model, ev.AnalyzedAt)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

func (r *EvaluationRepository) ForAudit(ctx context.Context, local, fecha string) ([]domain.Evaluation, error) {
	const query = `
		SELECT id, local, fecha, section, item_id, item_name, status,
			justificacion, detalles_observados, recomendaciones, filename, model, analyzed_at
		FROM evaluations
		WHERE local = $1 AND fecha = $2
		ORDER BY item_id, analyzed_at`

	rows, err := r.db.QueryContext(ctx, query, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var evs []domain.Evaluation
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return evs, nil
}

func (r *EvaluationRepository) ItemEvolution(ctx context.Context, local, itemID string) ([]domain.ItemEvolution, error) {
	const query = `
		SELECT fecha, status, justificacion, analyzed_at
		FROM evaluations
		WHERE local = $1 AND item_id = $2
		ORDER BY fecha, analyzed_at`

	rows, err := r.db.QueryContext(ctx, query, local, itemID)
	if err != nil {
		return nil, fmt.Errorf("query item evolution: %w", err)
	}
	defer rows.Close()

	var points []domain.ItemEvolution
	for rows.Next() {
		var p domain.ItemEvolution
		var status string
		if err := rows.Scan(&p.Fecha, &status, &p.Justificacion, &p.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("scan item evolution: %w", err)
		}
		p.Status = domain.Status(status)
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item evolution: %w", err)
	}
	return points, nil
}

func (r *EvaluationRepository) History(ctx context.Context) ([]domain.AuditSummary, error) {
	const query = `
		SELECT local, fecha,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Conforme'),
			COUNT(*) FILTER (WHERE status = 'Observación'),
			COUNT(*) FILTER (WHERE status = 'No Conforme'),
			MAX(analyzed_at)
		FROM evaluations
		GROUP BY local, fecha
		ORDER BY fecha DESC, local`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query audit history: %w", err)
	}
	defer rows.Close()

	var summaries []domain.AuditSummary
	for rows.Next() {
		var s domain.AuditSummary
		if err := rows.Scan(&s.Local, &s.Fecha, &s.Total,
			&s.Conformes, &s.Observaciones, &s.NoConformes, &s.LastAnalyzed); err != nil {
			return nil, fmt.Errorf("scan audit summary: %w", err)
		}
		if s.Total > 0 {
			s.PctConforme = (s.Conformes*100 + s.Total/2) / s.Total
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit history: %w", err)
	}
	return summaries, nil
}

func (r *EvaluationRepository) RecurringFailures(ctx context.Context, local string, minCount int) ([]domain.RecurringFailure, error) {
	// A failure that repeats within one period still counts as one period.
	const query = `
		SELECT item_id, MAX(item_name), COUNT(*), string_agg(DISTINCT fecha, ',')
		FROM evaluations
		WHERE local = $1 AND status <> 'Conforme'
		GROUP BY item_id
		HAVING COUNT(DISTINCT fecha) >= $2
		ORDER BY COUNT(DISTINCT fecha) DESC, item_id`

	rows, err := r.db.QueryContext(ctx, query, local, minCount)
	if err != nil {
		return nil, fmt.Errorf("query recurring failures: %w", err)
	}
	defer rows.Close()

	var failures []domain.RecurringFailure
	for rows.Next() {
		var f domain.RecurringFailure
		var fechas string
		if err := rows.Scan(&f.ItemID, &f.ItemName, &f.FailCount, &fechas); err != nil {
			return nil, fmt.Errorf("scan recurring failure: %w", err)
		}
		f.Fechas = strings.Split(fechas, ",")
		failures = append(failures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recurring failures: %w", err)
	}
	return failures, nil
}

// SectionStatuses keeps only the latest evaluation per item, so re-analyzed
// items count once and superseded verdicts never reach the score.
func (r *EvaluationRepository) SectionStatuses(ctx context.Context, local, fecha string) (map[string][]domain.Status, error) {
	const query = `
		SELECT DISTINCT ON (item_id) section, status
		FROM evaluations
		WHERE local = $1 AND fecha = $2
		ORDER BY item_id, analyzed_at DESC`

	rows, err := r.db.QueryContext(ctx, query, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("query section statuses: %w", err)
	}
	defer rows.Close()

	sections := make(map[string][]domain.Status)
	for rows.Next() {
		var section, status string
		if err := rows.Scan(&section, &status); err != nil {
			return nil, fmt.Errorf("scan section status: %w", err)
		}
		sections[section] = append(sections[section], domain.Status(status))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate section statuses: %w", err)
	}
	return sections, nil
}

func scanEvaluation(rows *sql.Rows) (domain.Evaluation, error) {
	var ev domain.Evaluation
	var status string
	var detalles, recomendaciones []byte
	if err := rows.Scan(&ev.ID, &ev.Local, &ev.Fecha, &ev.Section, &ev.ItemID, &ev.ItemName,
		&status, &ev.Justificacion, &detalles, &recomendaciones,
		&ev.Filename, &ev.Model, &ev.AnalyzedAt); err != nil {
		return domain.Evaluation{}, fmt.Errorf("scan evaluation: %w", err)
	}
	ev.Status = domain.Status(status)
	if err := json.Unmarshal(detalles, &ev.DetallesObservados); err != nil {
		return domain.Evaluation{}, fmt.Errorf("unmarshal detalles: %w", err)
	}
	if err := json.Unmarshal(recomendaciones, &ev.Recomendaciones); err != nil {
		return domain.Evaluation{}, fmt.Errorf("unmarshal recomendaciones: %w", err)
	}
	return ev, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Upsert keeps one score record per (local, fecha); recomputing replaces it.
func (r *AuditRepository) Upsert(ctx context.Context, audit *domain.Audit) error {
	scores, err := json.Marshal(audit.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	const query = `
		INSERT INTO audits (id, local, fecha, scores, score_global, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (local, fecha) DO UPDATE SET
			scores = EXCLUDED.scores,
			score_global = EXCLUDED.score_global,
			computed_at = EXCLUDED.computed_at`

	_, err = r.db.ExecContext(ctx, query,
		audit.ID, audit.Local, audit.Fecha, scores, audit.ScoreGlobal, audit.ComputedAt)
	if err != nil {
		return fmt.Errorf("upsert audit: %w", err)
	}
	return nil
}

func (r *AuditRepository) Get(ctx context.Context, local, fecha string) (*domain.Audit, error) {
	const query = `
		SELECT id, local, fecha, scores, score_global, computed_at
		FROM audits
		WHERE local = $1 AND fecha = $2`

	audit, err := scanAudit(r.db.QueryRowContext(ctx, query, local, fecha))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get audit: %w", err)
	}
	return audit, nil
}

func (r *AuditRepository) List(ctx context.Context, local string, limit int) ([]domain.Audit, error) {
	const query = `
		SELECT id, local, fecha, scores, score_global, computed_at
		FROM audits
		WHERE $1 = '' OR local = $1
		ORDER BY fecha DESC, local
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, local, limit)
	if err != nil {
		return nil, fmt.Errorf("query audits: %w", err)
	}
	defer rows.Close()

	return collectAudits(rows)
}

func (r *AuditRepository) MonthlyScores(ctx context.Context, local string, months int) ([]domain.Audit, error) {
	// Oldest first so the trend chart reads left to right.
	const query = `
		SELECT id, local, fecha, scores, score_global, computed_at
		FROM (
			SELECT id, local, fecha, scores, score_global, computed_at
			FROM audits
			WHERE local = $1
			ORDER BY fecha DESC
			LIMIT $2
		) recent
		ORDER BY fecha`

	rows, err := r.db.QueryContext(ctx, query, local, months)
	if err != nil {
		return nil, fmt.Errorf("query monthly scores: %w", err)
	}
	defer rows.Close()

	return collectAudits(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAudit(row rowScanner) (*domain.Audit, error) {
	var audit domain.Audit
	var scores []byte
	if err := row.Scan(&audit.ID, &audit.Local, &audit.Fecha,
		&scores, &audit.ScoreGlobal, &audit.ComputedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(scores, &audit.Scores); err != nil {
		return nil, fmt.Errorf("unmarshal scores: %w", err)
	}
	return &audit, nil
}

func collectAudits(rows *sql.Rows) ([]domain.Audit, error) {
	var audits []domain.Audit
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		audits = append(audits, *audit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audits: %w", err)
	}
	return audits, nil
}

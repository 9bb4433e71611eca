package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

const uniqueViolation = "23505"

type DecisionRepository struct {
	db *sql.DB
}

func NewDecisionRepository(db *sql.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

// Create inserts the escalation record. The desvio_id unique constraint
// guarantees at most one decision per deviation; a second insert reports
// domain.ErrConflict for the caller to tolerate.
func (r *DecisionRepository) Create(ctx context.Context, d *domain.Decision) error {
	const query = `
		INSERT INTO decisiones (id, desvio_id, item_codigo, local, contexto,
			impacto, propuesta, estado_decision, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.DesvioID, d.ItemCodigo, d.Local, d.Contexto,
		d.Impacto, d.Propuesta, string(d.EstadoDecision), d.CreatedAt, d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (r *DecisionRepository) GetByDesvio(ctx context.Context, desvioID string) (*domain.Decision, error) {
	const query = `
		SELECT id, desvio_id, item_codigo, local, contexto,
			impacto, propuesta, estado_decision, created_at, updated_at
		FROM decisiones
		WHERE desvio_id = $1`

	d, err := scanDecisionRow(r.db.QueryRowContext(ctx, query, desvioID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get decision: %w", err)
	}
	return d, nil
}

func (r *DecisionRepository) Update(ctx context.Context, id, impacto, propuesta string, estado domain.EstadoDecision) error {
	const query = `
		UPDATE decisiones
		SET impacto = $1, propuesta = $2, estado_decision = $3, updated_at = $4
		WHERE id = $5`

	res, err := r.db.ExecContext(ctx, query, impacto, propuesta, string(estado), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update decision: %w", err)
	}
	return requireAffected(res, "update decision")
}

func (r *DecisionRepository) ListPending(ctx context.Context, local string) ([]domain.Decision, error) {
	const query = `
		SELECT id, desvio_id, item_codigo, local, contexto,
			impacto, propuesta, estado_decision, created_at, updated_at
		FROM decisiones
		WHERE estado_decision = 'pendiente' AND ($1 = '' OR local = $1)
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, local)
	if err != nil {
		return nil, fmt.Errorf("query pending decisions: %w", err)
	}
	defer rows.Close()

	var decisions []domain.Decision
	for rows.Next() {
		d, err := scanDecisionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		decisions = append(decisions, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decisions: %w", err)
	}
	return decisions, nil
}

func scanDecisionRow(row rowScanner) (*domain.Decision, error) {
	var d domain.Decision
	var estado string
	if err := row.Scan(&d.ID, &d.DesvioID, &d.ItemCodigo, &d.Local, &d.Contexto,
		&d.Impacto, &d.Propuesta, &estado, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.EstadoDecision = domain.EstadoDecision(estado)
	return &d, nil
}

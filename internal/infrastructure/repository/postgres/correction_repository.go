package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type CorrectionRepository struct {
	db *sql.DB
}

func NewCorrectionRepository(db *sql.DB) *CorrectionRepository {
	return &CorrectionRepository{db: db}
}

func (r *CorrectionRepository) Create(ctx context.Context, c *domain.Correction) error {
	const query = `
		INSERT INTO corrections (id, item_id, item_name, ai_status, corrected_status,
			ai_justificacion, correction_notes, local, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.ItemID, c.ItemName, string(c.AIStatus), string(c.CorrectedStatus),
		c.AIJustificacion, c.CorrectionNotes, c.Local, c.Fecha, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert correction: %w", err)
	}
	return nil
}

func (r *CorrectionRepository) ForItem(ctx context.Context, itemID string, limit int) ([]domain.Correction, error) {
	const query = `
		SELECT id, item_id, item_name, ai_status, corrected_status,
			ai_justificacion, correction_notes, local, fecha, created_at
		FROM corrections
		WHERE item_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("query corrections for item: %w", err)
	}
	defer rows.Close()

	return scanCorrections(rows)
}

func (r *CorrectionRepository) Recent(ctx context.Context, limit int) ([]domain.Correction, error) {
	const query = `
		SELECT id, item_id, item_name, ai_status, corrected_status,
			ai_justificacion, correction_notes, local, fecha, created_at
		FROM corrections
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent corrections: %w", err)
	}
	defer rows.Close()

	return scanCorrections(rows)
}

func scanCorrections(rows *sql.Rows) ([]domain.Correction, error) {
	var corrections []domain.Correction
	for rows.Next() {
		var c domain.Correction
		var aiStatus, correctedStatus string
		if err := rows.Scan(&c.ID, &c.ItemID, &c.ItemName, &aiStatus, &correctedStatus,
			&c.AIJustificacion, &c.CorrectionNotes, &c.Local, &c.Fecha, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan correction: %w", err)
		}
		c.AIStatus = domain.Status(aiStatus)
		c.CorrectedStatus = domain.Status(correctedStatus)
		corrections = append(corrections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corrections: %w", err)
	}
	return corrections, nil
}

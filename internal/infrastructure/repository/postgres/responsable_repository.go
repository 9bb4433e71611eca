package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type ResponsableRepository struct {
	db *sql.DB
}

func NewResponsableRepository(db *sql.DB) *ResponsableRepository {
	return &ResponsableRepository{db: db}
}

func (r *ResponsableRepository) Create(ctx context.Context, resp *domain.Responsable) error {
	const query = `
		INSERT INTO responsables (id, nombre, local, rol, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		resp.ID, resp.Nombre, resp.Local, resp.Rol, resp.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert responsable: %w", err)
	}
	return nil
}

func (r *ResponsableRepository) ListByLocal(ctx context.Context, local string) ([]domain.Responsable, error) {
	const query = `
		SELECT id, nombre, local, rol, created_at
		FROM responsables
		WHERE $1 = '' OR local = $1
		ORDER BY nombre`

	rows, err := r.db.QueryContext(ctx, query, local)
	if err != nil {
		return nil, fmt.Errorf("query responsables: %w", err)
	}
	defer rows.Close()

	var responsables []domain.Responsable
	for rows.Next() {
		var resp domain.Responsable
		if err := rows.Scan(&resp.ID, &resp.Nombre, &resp.Local, &resp.Rol, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan responsable: %w", err)
		}
		responsables = append(responsables, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responsables: %w", err)
	}
	return responsables, nil
}

func (r *ResponsableRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM responsables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete responsable: %w", err)
	}
	return requireAffected(res, "delete responsable")
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type PhotoRepository struct {
	db *sql.DB
}

func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Save(ctx context.Context, photo *domain.Photo) error {
	const query = `
		INSERT INTO photos (id, local, fecha, section, item_id, photo_name, photo_data, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		photo.ID, photo.Local, photo.Fecha, photo.Section, photo.ItemID,
		photo.PhotoName, photo.Data, photo.SizeBytes, photo.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

func (r *PhotoRepository) ForItem(ctx context.Context, local, fecha, itemID string) ([]domain.Photo, error) {
	const query = `
		SELECT id, local, fecha, section, item_id, photo_name, photo_data, size_bytes, created_at
		FROM photos
		WHERE local = $1 AND fecha = $2 AND item_id = $3
		ORDER BY photo_name`

	rows, err := r.db.QueryContext(ctx, query, local, fecha, itemID)
	if err != nil {
		return nil, fmt.Errorf("query photos for item: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func (r *PhotoRepository) All(ctx context.Context, local, fecha string) ([]domain.Photo, error) {
	const query = `
		SELECT id, local, fecha, section, item_id, photo_name, photo_data, size_bytes, created_at
		FROM photos
		WHERE local = $1 AND fecha = $2
		ORDER BY item_id, photo_name`

	rows, err := r.db.QueryContext(ctx, query, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func (r *PhotoRepository) Counts(ctx context.Context, local, fecha string) (map[string]int, error) {
	const query = `
		SELECT item_id, COUNT(*)
		FROM photos
		WHERE local = $1 AND fecha = $2
		GROUP BY item_id`

	rows, err := r.db.QueryContext(ctx, query, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("query photo counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var itemID string
		var n int
		if err := rows.Scan(&itemID, &n); err != nil {
			return nil, fmt.Errorf("scan photo count: %w", err)
		}
		counts[itemID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photo counts: %w", err)
	}
	return counts, nil
}

func (r *PhotoRepository) CountForItem(ctx context.Context, local, fecha, itemID string) (int, error) {
	const query = `SELECT COUNT(*) FROM photos WHERE local = $1 AND fecha = $2 AND item_id = $3`

	var n int
	if err := r.db.QueryRowContext(ctx, query, local, fecha, itemID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count photos for item: %w", err)
	}
	return n, nil
}

func (r *PhotoRepository) TotalSize(ctx context.Context, local, fecha string) (int64, error) {
	const query = `SELECT COALESCE(SUM(size_bytes), 0) FROM photos WHERE local = $1 AND fecha = $2`

	var size int64
	if err := r.db.QueryRowContext(ctx, query, local, fecha).Scan(&size); err != nil {
		return 0, fmt.Errorf("sum photo sizes: %w", err)
	}
	return size, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete photo rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PhotoRepository) ListAudits(ctx context.Context) ([]domain.AuditRef, error) {
	const query = `
		SELECT DISTINCT local, fecha
		FROM photos
		ORDER BY fecha DESC, local`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query audit refs: %w", err)
	}
	defer rows.Close()

	var refs []domain.AuditRef
	for rows.Next() {
		var ref domain.AuditRef
		if err := rows.Scan(&ref.Local, &ref.Fecha); err != nil {
			return nil, fmt.Errorf("scan audit ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit refs: %w", err)
	}
	return refs, nil
}

func (r *PhotoRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old photos: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete old photos rows affected: %w", err)
	}
	return int(affected), nil
}

func scanPhotos(rows *sql.Rows) ([]domain.Photo, error) {
	var photos []domain.Photo
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.Local, &p.Fecha, &p.Section, &p.ItemID,
			&p.PhotoName, &p.Data, &p.SizeBytes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

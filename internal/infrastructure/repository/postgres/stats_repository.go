package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Stats(ctx context.Context) (*domain.StoreStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM photos),
			(SELECT COUNT(*) FROM evaluations),
			(SELECT COALESCE(SUM(size_bytes), 0) FROM photos),
			(SELECT COUNT(DISTINCT (local, fecha)) FROM photos)`

	var stats domain.StoreStats
	var sizeBytes int64
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.PhotoCount, &stats.ResultCount, &sizeBytes, &stats.DistinctAudits)
	if err != nil {
		return nil, fmt.Errorf("query store stats: %w", err)
	}
	stats.PhotosSizeMB = float64(sizeBytes) / (1024 * 1024)
	return &stats, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/heladerias/audit-vision/internal/core/ports"
)

const DefaultRetentionMonths = 6

// RetentionUseCase purges photos older than the configured horizon.
// Evaluations and corrections are never purged.
type RetentionUseCase struct {
	photos        ports.PhotoRepository
	defaultMonths int
	metrics       RetentionMetrics
}

type RetentionMetrics interface {
	PhotosPurged(count int)
}

type noopRetentionMetrics struct{}

func (noopRetentionMetrics) PhotosPurged(int) {}

// NewRetentionUseCase builds the purge flow. defaultMonths is the horizon
// used when a purge request names none (RETENTION_MONTHS, default 6).
func NewRetentionUseCase(photos ports.PhotoRepository, defaultMonths int, metrics RetentionMetrics) *RetentionUseCase {
	if defaultMonths <= 0 {
		defaultMonths = DefaultRetentionMonths
	}
	if metrics == nil {
		metrics = noopRetentionMetrics{}
	}
	return &RetentionUseCase{photos: photos, defaultMonths: defaultMonths, metrics: metrics}
}

// PurgeOldPhotos deletes photos older than months (months*30 days, matching
// the retention policy). Explicit administrative action only.
func (uc *RetentionUseCase) PurgeOldPhotos(ctx context.Context, months int) (int, error) {
	if months <= 0 {
		months = uc.defaultMonths
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -months*30)
	deleted, err := uc.photos.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge old photos: %w", err)
	}
	uc.metrics.PhotosPurged(deleted)
	return deleted, nil
}

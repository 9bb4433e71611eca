package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

const DefaultMaxUploadMB = 25

type PhotoIntakeUseCase struct {
	photos     ports.PhotoRepository
	compressor ports.ImageCompressor
	maxBytes   int64
	metrics    IntakeMetrics
}

// IntakeMetrics observes accepted uploads; nil-safe no-op by default.
type IntakeMetrics interface {
	PhotoUploaded(sizeBytes int)
}

type noopIntakeMetrics struct{}

func (noopIntakeMetrics) PhotoUploaded(int) {}

// NewPhotoIntakeUseCase builds the intake flow. maxUploadMB caps the accepted
// body size (MAX_UPLOAD_MB, default 25); zero or negative keeps the default.
func NewPhotoIntakeUseCase(photos ports.PhotoRepository, compressor ports.ImageCompressor, maxUploadMB int, metrics IntakeMetrics) *PhotoIntakeUseCase {
	if maxUploadMB <= 0 {
		maxUploadMB = DefaultMaxUploadMB
	}
	if metrics == nil {
		metrics = noopIntakeMetrics{}
	}
	return &PhotoIntakeUseCase{
		photos:     photos,
		compressor: compressor,
		maxBytes:   int64(maxUploadMB) << 20,
		metrics:    metrics,
	}
}

// Upload compresses and stores one photo under the next sequential name for
// the item, e.g. "A1_003.jpg".
func (uc *PhotoIntakeUseCase) Upload(ctx context.Context, local, fecha, itemID string, body io.Reader) (*domain.Photo, error) {
	criterion, ok := catalog.ByID(itemID)
	if !ok {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload photo", fmt.Errorf("unknown item %q", itemID))
	}
	if !catalog.ValidLocal(local) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload photo", fmt.Errorf("unknown local %q", local))
	}
	if fecha == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload photo", fmt.Errorf("fecha is required"))
	}

	raw, err := io.ReadAll(io.LimitReader(body, uc.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload body: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload photo", fmt.Errorf("empty image"))
	}
	if int64(len(raw)) > uc.maxBytes {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload photo",
			fmt.Errorf("image exceeds %d MB", uc.maxBytes>>20))
	}

	compressed, err := uc.compressor.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress image: %w", err)
	}

	name, err := uc.nextPhotoName(ctx, local, fecha, itemID)
	if err != nil {
		return nil, err
	}

	photo := &domain.Photo{
		ID:        uuid.NewString(),
		Local:     local,
		Fecha:     fecha,
		Section:   criterion.Section,
		ItemID:    itemID,
		PhotoName: name,
		Data:      compressed,
		SizeBytes: len(compressed),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.photos.Save(ctx, photo); err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}
	uc.metrics.PhotoUploaded(photo.SizeBytes)
	return photo, nil
}

// PhotoCounts reports how many photos each item has for one audit.
func (uc *PhotoIntakeUseCase) PhotoCounts(ctx context.Context, local, fecha string) (map[string]int, error) {
	counts, err := uc.photos.Counts(ctx, local, fecha)
	if err != nil {
		return nil, fmt.Errorf("photo counts: %w", err)
	}
	return counts, nil
}

// TotalSize reports the stored bytes for one audit.
func (uc *PhotoIntakeUseCase) TotalSize(ctx context.Context, local, fecha string) (int64, error) {
	size, err := uc.photos.TotalSize(ctx, local, fecha)
	if err != nil {
		return 0, fmt.Errorf("photos total size: %w", err)
	}
	return size, nil
}

// CapturedAudits lists every (local, fecha) pair with photos, newest first.
func (uc *PhotoIntakeUseCase) CapturedAudits(ctx context.Context) ([]domain.AuditRef, error) {
	audits, err := uc.photos.ListAudits(ctx)
	if err != nil {
		return nil, fmt.Errorf("list captured audits: %w", err)
	}
	return audits, nil
}

func (uc *PhotoIntakeUseCase) DeletePhoto(ctx context.Context, id string) error {
	if err := uc.photos.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}

func (uc *PhotoIntakeUseCase) nextPhotoName(ctx context.Context, local, fecha, itemID string) (string, error) {
	count, err := uc.photos.CountForItem(ctx, local, fecha, itemID)
	if err != nil {
		return "", fmt.Errorf("count photos for item: %w", err)
	}
	code := strings.ReplaceAll(itemID, ".", "")
	return fmt.Sprintf("%s_%03d.jpg", code, count+1), nil
}

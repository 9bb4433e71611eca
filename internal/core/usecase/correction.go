package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

// CorrectionUseCase records auditor overrides of AI verdicts. Corrections are
// append-only and feed few-shot calibration for later classifier calls.
type CorrectionUseCase struct {
	corrections ports.CorrectionRepository
}

func NewCorrectionUseCase(corrections ports.CorrectionRepository) *CorrectionUseCase {
	return &CorrectionUseCase{corrections: corrections}
}

func (uc *CorrectionUseCase) Record(ctx context.Context, c domain.Correction) (*domain.Correction, error) {
	criterion, ok := catalog.ByID(c.ItemID)
	if !ok {
		return nil, domain.WrapError(domain.ErrInvalidInput, "record correction", fmt.Errorf("unknown item %q", c.ItemID))
	}
	if !c.AIStatus.Valid() || !c.CorrectedStatus.Valid() {
		return nil, domain.WrapError(domain.ErrInvalidInput, "record correction",
			fmt.Errorf("invalid status pair %q -> %q", c.AIStatus, c.CorrectedStatus))
	}

	c.ID = uuid.NewString()
	c.ItemName = criterion.Name
	c.CreatedAt = time.Now().UTC()
	if err := uc.corrections.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("save correction: %w", err)
	}
	return &c, nil
}

func (uc *CorrectionUseCase) ForItem(ctx context.Context, itemID string, limit int) ([]domain.Correction, error) {
	if limit <= 0 {
		limit = 5
	}
	out, err := uc.corrections.ForItem(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("corrections for item: %w", err)
	}
	return out, nil
}

func (uc *CorrectionUseCase) Recent(ctx context.Context, limit int) ([]domain.Correction, error) {
	if limit <= 0 {
		limit = 50
	}
	out, err := uc.corrections.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent corrections: %w", err)
	}
	return out, nil
}

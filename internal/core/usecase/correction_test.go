package usecase

import (
	"context"
	"testing"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

func TestRecordCorrectionFillsDerivedFields(t *testing.T) {
	repo := &fakeCorrectionRepo{}
	uc := NewCorrectionUseCase(repo)

	saved, err := uc.Record(context.Background(), domain.Correction{
		ItemID:          "A.1",
		AIStatus:        domain.StatusConforme,
		CorrectedStatus: domain.StatusNoConforme,
		CorrectionNotes: "la foto muestra residuos que el modelo ignoró",
		Local:           "Edén",
		Fecha:           "2026-08-01",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if saved.ID == "" || saved.ItemName == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("derived fields not filled: %+v", saved)
	}
	if len(repo.corrections) != 1 {
		t.Fatalf("persisted = %d, want 1", len(repo.corrections))
	}
}

func TestRecordCorrectionValidation(t *testing.T) {
	uc := NewCorrectionUseCase(&fakeCorrectionRepo{})

	if _, err := uc.Record(context.Background(), domain.Correction{
		ItemID: "nope", AIStatus: domain.StatusConforme, CorrectedStatus: domain.StatusObservacion,
	}); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown item err = %v, want invalid input", err)
	}
	if _, err := uc.Record(context.Background(), domain.Correction{
		ItemID: "A.1", AIStatus: "maybe", CorrectedStatus: domain.StatusObservacion,
	}); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("bad status err = %v, want invalid input", err)
	}
}

package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

func TestUploadNamesPhotosSequentially(t *testing.T) {
	photos := &fakePhotoRepo{}
	uc := NewPhotoIntakeUseCase(photos, passthroughCompressor{}, 0, nil)

	first, err := uc.Upload(context.Background(), "Edén", "2026-08-01", "A.10", bytes.NewReader([]byte("img-1")))
	if err != nil {
		t.Fatalf("first Upload: %v", err)
	}
	if first.PhotoName != "A10_001.jpg" {
		t.Fatalf("photo name = %q, want A10_001.jpg", first.PhotoName)
	}
	if first.Section != "A" {
		t.Fatalf("section = %q, want A", first.Section)
	}

	second, err := uc.Upload(context.Background(), "Edén", "2026-08-01", "A.10", bytes.NewReader([]byte("img-2")))
	if err != nil {
		t.Fatalf("second Upload: %v", err)
	}
	if second.PhotoName != "A10_002.jpg" {
		t.Fatalf("photo name = %q, want A10_002.jpg", second.PhotoName)
	}
}

func TestUploadValidation(t *testing.T) {
	uc := NewPhotoIntakeUseCase(&fakePhotoRepo{}, passthroughCompressor{}, 0, nil)

	if _, err := uc.Upload(context.Background(), "Edén", "2026-08-01", "Z.1", bytes.NewReader([]byte("x"))); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown item err = %v, want invalid input", err)
	}
	if _, err := uc.Upload(context.Background(), "", "2026-08-01", "A.1", bytes.NewReader([]byte("x"))); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("missing local err = %v, want invalid input", err)
	}
	if _, err := uc.Upload(context.Background(), "Edén", "2026-08-01", "A.1", bytes.NewReader(nil)); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("empty body err = %v, want invalid input", err)
	}
}

func TestUploadHonorsConfiguredSizeCap(t *testing.T) {
	uc := NewPhotoIntakeUseCase(&fakePhotoRepo{}, passthroughCompressor{}, 1, nil)

	oversize := bytes.Repeat([]byte("a"), 1<<20+1)
	if _, err := uc.Upload(context.Background(), "Edén", "2026-08-01", "A.1", bytes.NewReader(oversize)); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("oversize body err = %v, want invalid input", err)
	}

	atLimit := bytes.Repeat([]byte("a"), 1<<20)
	if _, err := uc.Upload(context.Background(), "Edén", "2026-08-01", "A.1", bytes.NewReader(atLimit)); err != nil {
		t.Fatalf("at-limit Upload: %v", err)
	}
}

func TestPhotoCounts(t *testing.T) {
	photos := &fakePhotoRepo{photos: []domain.Photo{
		{Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1"},
		{Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1"},
		{Local: "Edén", Fecha: "2026-08-01", ItemID: "B.2"},
		{Local: "España", Fecha: "2026-08-01", ItemID: "A.1"},
	}}
	uc := NewPhotoIntakeUseCase(photos, passthroughCompressor{}, 0, nil)
	counts, err := uc.PhotoCounts(context.Background(), "Edén", "2026-08-01")
	if err != nil {
		t.Fatalf("PhotoCounts: %v", err)
	}
	if counts["A.1"] != 2 || counts["B.2"] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}

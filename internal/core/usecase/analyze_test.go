package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

func TestAnalyzeItemRecordsEvaluationsAndOpensDeviations(t *testing.T) {
	photos := &fakePhotoRepo{photos: []domain.Photo{
		{ID: "p1", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_001.jpg", Data: []byte("ok-photo")},
		{ID: "p2", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_002.jpg", Data: []byte("dirty-photo")},
	}}
	evaluations := &fakeEvaluationRepo{}
	deviations := newFakeDeviationRepo()
	classifier := &fakeClassifier{verdicts: map[string]domain.Verdict{
		"ok-photo":    {Status: domain.StatusConforme, Justificacion: "limpio"},
		"dirty-photo": {Status: domain.StatusNoConforme, Justificacion: "vereda con residuos"},
	}}

	uc := NewAnalyzeItemUseCase(photos, evaluations, &fakeCorrectionRepo{}, deviations, classifier, &fakeQueue{}, 0, nil)
	report, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "A.1")
	if err != nil {
		t.Fatalf("AnalyzeItem: %v", err)
	}
	if len(report.Evaluations) != 2 {
		t.Fatalf("evaluations = %d, want 2", len(report.Evaluations))
	}
	if len(report.Failures) != 0 {
		t.Fatalf("failures = %d, want 0", len(report.Failures))
	}
	if len(deviations.byID) != 1 {
		t.Fatalf("deviations created = %d, want 1", len(deviations.byID))
	}
	for _, d := range deviations.byID {
		if d.Nivel != domain.NivelRojo || d.Prioridad != domain.PrioridadAlta {
			t.Fatalf("deviation nivel=%s prioridad=%s, want rojo/alta", d.Nivel, d.Prioridad)
		}
		if d.ItemCodigo != "A.1" || d.Local != "Edén" {
			t.Fatalf("deviation keyed %s/%s", d.Local, d.ItemCodigo)
		}
	}
}

func TestAnalyzeItemIsolatesPhotoFailures(t *testing.T) {
	photos := &fakePhotoRepo{photos: []domain.Photo{
		{ID: "p1", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_001.jpg", Data: []byte("good")},
		{ID: "p2", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_002.jpg", Data: []byte("broken")},
		{ID: "p3", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_003.jpg", Data: []byte("also-good")},
	}}
	evaluations := &fakeEvaluationRepo{}
	classifier := &fakeClassifier{failPhotos: map[string]bool{"broken": true}}

	uc := NewAnalyzeItemUseCase(photos, evaluations, &fakeCorrectionRepo{}, newFakeDeviationRepo(), classifier, &fakeQueue{}, 0, nil)
	report, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "A.1")
	if err != nil {
		t.Fatalf("AnalyzeItem: %v", err)
	}
	if len(report.Evaluations) != 2 {
		t.Fatalf("evaluations = %d, want 2", len(report.Evaluations))
	}
	if len(report.Failures) != 1 || report.Failures[0].PhotoName != "A1_002.jpg" {
		t.Fatalf("failures = %+v, want one for A1_002.jpg", report.Failures)
	}
	if len(evaluations.created) != 2 {
		t.Fatalf("persisted evaluations = %d, want 2", len(evaluations.created))
	}
}

func TestAnalyzeItemPassesCorrectionContext(t *testing.T) {
	photos := &fakePhotoRepo{photos: []domain.Photo{
		{ID: "p1", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_001.jpg", Data: []byte("x")},
	}}
	corrections := &fakeCorrectionRepo{}
	for i := 0; i < 8; i++ {
		corrections.corrections = append(corrections.corrections, domain.Correction{
			ID: "c", ItemID: "A.1", AIStatus: domain.StatusConforme,
			CorrectedStatus: domain.StatusObservacion, CreatedAt: time.Now(),
		})
	}
	classifier := &fakeClassifier{}

	uc := NewAnalyzeItemUseCase(photos, &fakeEvaluationRepo{}, corrections, newFakeDeviationRepo(), classifier, &fakeQueue{}, 0, nil)
	if _, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "A.1"); err != nil {
		t.Fatalf("AnalyzeItem: %v", err)
	}
	if len(classifier.seenContexts) != 1 {
		t.Fatalf("classifier calls = %d, want 1", len(classifier.seenContexts))
	}
	if got := len(classifier.seenContexts[0]); got != DefaultCorrectionsLimit {
		t.Fatalf("correction context size = %d, want %d", got, DefaultCorrectionsLimit)
	}
}

func TestAnalyzeItemHonorsConfiguredCorrectionsLimit(t *testing.T) {
	photos := &fakePhotoRepo{photos: []domain.Photo{
		{ID: "p1", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_001.jpg", Data: []byte("x")},
	}}
	corrections := &fakeCorrectionRepo{}
	for i := 0; i < 8; i++ {
		corrections.corrections = append(corrections.corrections, domain.Correction{
			ID: "c", ItemID: "A.1", AIStatus: domain.StatusConforme,
			CorrectedStatus: domain.StatusObservacion, CreatedAt: time.Now(),
		})
	}
	classifier := &fakeClassifier{}

	uc := NewAnalyzeItemUseCase(photos, &fakeEvaluationRepo{}, corrections, newFakeDeviationRepo(), classifier, &fakeQueue{}, 2, nil)
	if _, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "A.1"); err != nil {
		t.Fatalf("AnalyzeItem: %v", err)
	}
	if got := len(classifier.seenContexts[0]); got != 2 {
		t.Fatalf("correction context size = %d, want 2", got)
	}
}

func TestAnalyzeItemContinuesWithoutCorrections(t *testing.T) {
	photos := &fakePhotoRepo{photos: []domain.Photo{
		{ID: "p1", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_001.jpg", Data: []byte("x")},
	}}
	corrections := &fakeCorrectionRepo{fail: errors.New("db down")}
	classifier := &fakeClassifier{}

	uc := NewAnalyzeItemUseCase(photos, &fakeEvaluationRepo{}, corrections, newFakeDeviationRepo(), classifier, &fakeQueue{}, 0, nil)
	report, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "A.1")
	if err != nil {
		t.Fatalf("AnalyzeItem: %v", err)
	}
	if len(report.Evaluations) != 1 {
		t.Fatalf("evaluations = %d, want 1", len(report.Evaluations))
	}
	if classifier.seenContexts[0] != nil {
		t.Fatalf("expected empty correction context, got %v", classifier.seenContexts[0])
	}
}

func TestAnalyzeItemUnknownItem(t *testing.T) {
	uc := NewAnalyzeItemUseCase(&fakePhotoRepo{}, &fakeEvaluationRepo{}, &fakeCorrectionRepo{}, newFakeDeviationRepo(), &fakeClassifier{}, &fakeQueue{}, 0, nil)
	if _, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "Z.99"); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

func TestAnalyzeItemNoPhotos(t *testing.T) {
	uc := NewAnalyzeItemUseCase(&fakePhotoRepo{}, &fakeEvaluationRepo{}, &fakeCorrectionRepo{}, newFakeDeviationRepo(), &fakeClassifier{}, &fakeQueue{}, 0, nil)
	if _, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "A.1"); !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestAnalyzeItemThirdOccurrenceIsStructural(t *testing.T) {
	photos := &fakePhotoRepo{photos: []domain.Photo{
		{ID: "p1", Local: "Edén", Fecha: "2026-08-01", ItemID: "A.1", PhotoName: "A1_001.jpg", Data: []byte("bad")},
	}}
	deviations := newFakeDeviationRepo()
	deviations.prior = 2
	classifier := &fakeClassifier{verdicts: map[string]domain.Verdict{
		"bad": {Status: domain.StatusObservacion, Justificacion: "heladera con escarcha"},
	}}

	uc := NewAnalyzeItemUseCase(photos, &fakeEvaluationRepo{}, &fakeCorrectionRepo{}, deviations, classifier, &fakeQueue{}, 0, nil)
	if _, err := uc.AnalyzeItem(context.Background(), "Edén", "2026-08-01", "A.1"); err != nil {
		t.Fatalf("AnalyzeItem: %v", err)
	}
	for _, d := range deviations.byID {
		if d.TipoDesvio != domain.TipoEstructural {
			t.Fatalf("tipo = %s, want estructural", d.TipoDesvio)
		}
		if d.VecesDetectado != 3 || !d.Reincidente {
			t.Fatalf("veces=%d reincidente=%v, want 3/true", d.VecesDetectado, d.Reincidente)
		}
	}
}

func TestRequestAnalysisPublishes(t *testing.T) {
	queue := &fakeQueue{}
	uc := NewAnalyzeItemUseCase(&fakePhotoRepo{}, &fakeEvaluationRepo{}, &fakeCorrectionRepo{}, newFakeDeviationRepo(), &fakeClassifier{}, queue, 0, nil)
	if err := uc.RequestAnalysis(context.Background(), "España", "2026-08-01", "B.2"); err != nil {
		t.Fatalf("RequestAnalysis: %v", err)
	}
	if len(queue.published) != 1 || queue.published[0].ItemID != "B.2" {
		t.Fatalf("published = %+v", queue.published)
	}
	if err := uc.RequestAnalysis(context.Background(), "España", "2026-08-01", "nope"); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

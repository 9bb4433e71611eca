package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

func TestEvaluationRepositoryHistoryComputesPct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewEvaluationRepository(db)
	rows := sqlmock.NewRows([]string{"local", "fecha", "total", "conformes", "observaciones", "no_conformes", "last"}).
		AddRow("Edén", "2026-07", 4, 3, 1, 0, time.Now())

	mock.ExpectQuery("FROM evaluations").
		WillReturnRows(rows)

	history, err := repo.History(context.Background())
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(history))
	}
	if history[0].PctConforme != 75 {
		t.Fatalf("expected 75%% conforme, got %d", history[0].PctConforme)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEvaluationRepositoryRecurringFailuresSplitsFechas(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewEvaluationRepository(db)
	rows := sqlmock.NewRows([]string{"item_id", "item_name", "count", "fechas"}).
		AddRow("B.4", "Limpieza de mesas", 3, "2026-06,2026-07")

	mock.ExpectQuery("FROM evaluations").
		WithArgs("Edén", 2).
		WillReturnRows(rows)

	failures, err := repo.RecurringFailures(context.Background(), "Edén", 2)
	if err != nil {
		t.Fatalf("RecurringFailures() error = %v", err)
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if len(failures[0].Fechas) != 2 || failures[0].FailCount != 3 {
		t.Fatalf("unexpected failure row: %+v", failures[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEvaluationRepositoryCreateMarshalsLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewEvaluationRepository(db)
	mock.ExpectExec("INSERT INTO evaluations").
		WithArgs("e-1", "Edén", "2026-07", "B", "B.4", "Limpieza de mesas",
			"No Conforme", "Mesas sucias", []byte(`["restos visibles"]`), []byte(`[]`),
			"B4_001.jpg", "gpt-4o", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), &domain.Evaluation{
		ID:                 "e-1",
		Local:              "Edén",
		Fecha:              "2026-07",
		Section:            "B",
		ItemID:             "B.4",
		ItemName:           "Limpieza de mesas",
		Status:             domain.StatusNoConforme,
		Justificacion:      "Mesas sucias",
		DetallesObservados: []string{"restos visibles"},
		Filename:           "B4_001.jpg",
		Model:              "gpt-4o",
		AnalyzedAt:         time.Now(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEvaluationRepositorySectionStatusesGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewEvaluationRepository(db)
	rows := sqlmock.NewRows([]string{"section", "status"}).
		AddRow("A", "Conforme").
		AddRow("A", "Observación").
		AddRow("B", "No Conforme")

	mock.ExpectQuery(`SELECT DISTINCT ON \(item_id\) section, status`).
		WithArgs("Edén", "2026-07").
		WillReturnRows(rows)

	sections, err := repo.SectionStatuses(context.Background(), "Edén", "2026-07")
	if err != nil {
		t.Fatalf("SectionStatuses() error = %v", err)
	}
	if len(sections["A"]) != 2 || len(sections["B"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", sections)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

// A re-analyzed item must contribute its newest verdict only. The query keeps
// the latest row per item_id, so one item photographed and analyzed twice
// produces a single status and the score reflects the newest verdict.
func TestEvaluationRepositorySectionStatusesLatestPerItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewEvaluationRepository(db)
	rows := sqlmock.NewRows([]string{"section", "status"}).
		AddRow("A", "Conforme")

	mock.ExpectQuery(`(?s)SELECT DISTINCT ON \(item_id\) section, status.*ORDER BY item_id, analyzed_at DESC`).
		WithArgs("Edén", "2026-07").
		WillReturnRows(rows)

	sections, err := repo.SectionStatuses(context.Background(), "Edén", "2026-07")
	if err != nil {
		t.Fatalf("SectionStatuses() error = %v", err)
	}
	if len(sections["A"]) != 1 || sections["A"][0] != domain.StatusConforme {
		t.Fatalf("sections[A] = %v, want single Conforme", sections["A"])
	}
	scores, global := domain.ComputeScores(sections)
	if scores["A"] != 100 || global != 100 {
		t.Fatalf("scores = %v global = %d, want 100/100", scores, global)
	}
}

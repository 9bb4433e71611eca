package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

func deviationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "local", "auditoria_fecha", "seccion", "item_codigo", "item_descripcion",
		"nivel", "tipo_desvio", "ai_justificacion", "responsable", "fecha_deteccion",
		"fecha_limite", "estado", "fecha_cierre", "comentario_cierre",
		"reincidente", "veces_detectado", "prioridad",
	})
}

func TestDeviationRepositoryListAppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDeviationRepository(db)
	rows := deviationRows().
		AddRow("d-1", "Edén", "2026-07", "B", "B.4", "Limpieza de mesas", "rojo", "operativo",
			"", "", time.Now(), nil, "pendiente", nil, "", false, 1, "alta")

	mock.ExpectQuery("FROM desvios").
		WithArgs("Edén", "pendiente").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), ports.DeviationFilter{
		Local:  "Edén",
		Estado: domain.EstadoPendiente,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].ItemCodigo != "B.4" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeviationRepositoryCountPriorInWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDeviationRepository(db)
	since := time.Now().Add(-60 * 24 * time.Hour)
	mock.ExpectQuery("FROM desvios").
		WithArgs("Edén", "B.4", since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountPriorInWindow(context.Background(), "Edén", "B.4", since)
	if err != nil {
		t.Fatalf("CountPriorInWindow() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeviationRepositoryCloseReturnsNotFoundWhenNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDeviationRepository(db)
	mock.ExpectExec("UPDATE desvios").
		WithArgs("cumplido", "Repuesto", sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Close(context.Background(), "missing", domain.EstadoCumplido, "Repuesto", time.Now())
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeviationRepositoryUpdateAssignmentNoFieldsIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDeviationRepository(db)
	if err := repo.UpdateAssignment(context.Background(), "d-1", ports.DeviationUpdate{}); err != nil {
		t.Fatalf("UpdateAssignment() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeviationRepositoryKPIsComputesOnTimePct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDeviationRepository(db)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"abiertos", "cerrados", "en_plazo", "reincidentes", "avg_dias"}).
		AddRow(3, 4, 3, 1, 5.5)
	mock.ExpectQuery(`(?s)interval '30 days'.*interval '90 days'.*FROM desvios`).
		WithArgs("Edén", now).
		WillReturnRows(rows)

	kpis, err := repo.KPIs(context.Background(), "Edén", now)
	if err != nil {
		t.Fatalf("KPIs() error = %v", err)
	}
	if kpis.Abiertos != 3 || kpis.PctCerradosEnPlazo != 75 || kpis.ReincidentesActivos != 1 {
		t.Fatalf("unexpected kpis: %+v", kpis)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

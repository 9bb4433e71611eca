package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

func TestPhotoRepositoryCountsGroupsByItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewPhotoRepository(db)
	rows := sqlmock.NewRows([]string{"item_id", "count"}).
		AddRow("A.1", 2).
		AddRow("B.4", 1)

	mock.ExpectQuery("FROM photos").
		WithArgs("Edén", "2026-07").
		WillReturnRows(rows)

	counts, err := repo.Counts(context.Background(), "Edén", "2026-07")
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts["A.1"] != 2 || counts["B.4"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPhotoRepositoryDeleteReturnsNotFoundWhenNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewPhotoRepository(db)
	mock.ExpectExec("DELETE FROM photos").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPhotoRepositoryDeleteOlderThanReportsCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewPhotoRepository(db)
	cutoff := time.Now().Add(-180 * 24 * time.Hour)
	mock.ExpectExec("DELETE FROM photos").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7 purged, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

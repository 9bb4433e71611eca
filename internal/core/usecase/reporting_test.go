package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

func TestWeeklyPlanOrdering(t *testing.T) {
	deviations := newFakeDeviationRepo()
	add := func(id string, prioridad domain.Prioridad, reincidente bool) {
		deviations.byID[id] = &domain.Deviation{
			ID: id, Local: "Edén", ItemCodigo: "A.1",
			Estado: domain.EstadoPendiente, Prioridad: prioridad, Reincidente: reincidente,
		}
	}
	add("baja", domain.PrioridadBaja, false)
	add("alta", domain.PrioridadAlta, false)
	add("media-rec", domain.PrioridadMedia, true)
	add("media", domain.PrioridadMedia, false)

	uc := NewReportingUseCase(&fakeEvaluationRepo{}, deviations, nil)
	plan, err := uc.WeeklyPlan(context.Background(), "Edén", 3)
	if err != nil {
		t.Fatalf("WeeklyPlan: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("plan size = %d, want 3", len(plan))
	}
	if plan[0].ID != "media-rec" {
		t.Fatalf("plan[0] = %s, want the recurring one first", plan[0].ID)
	}
	if plan[1].ID != "alta" {
		t.Fatalf("plan[1] = %s, want alta", plan[1].ID)
	}
	if plan[2].ID != "media" {
		t.Fatalf("plan[2] = %s, want media", plan[2].ID)
	}
}

func TestDueWithinDefaultHorizon(t *testing.T) {
	deviations := newFakeDeviationRepo()
	in3 := time.Now().UTC().AddDate(0, 0, 3)
	in30 := time.Now().UTC().AddDate(0, 0, 30)
	deviations.byID["soon"] = &domain.Deviation{ID: "soon", Estado: domain.EstadoPendiente, FechaLimite: &in3}
	deviations.byID["later"] = &domain.Deviation{ID: "later", Estado: domain.EstadoPendiente, FechaLimite: &in30}

	uc := NewReportingUseCase(&fakeEvaluationRepo{}, deviations, nil)
	due, err := uc.DueWithin(context.Background(), "Edén", 0)
	if err != nil {
		t.Fatalf("DueWithin: %v", err)
	}
	if len(due) != 1 || due[0].ID != "soon" {
		t.Fatalf("due = %+v, want only the one inside a week", due)
	}
}

package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
	"github.com/heladerias/audit-vision/internal/core/usecase"
)

type fakeDeviationRepo struct {
	byID   map[string]*domain.Deviation
	closed map[string]string
}

func newFakeDeviationRepo(deviations ...*domain.Deviation) *fakeDeviationRepo {
	repo := &fakeDeviationRepo{
		byID:   map[string]*domain.Deviation{},
		closed: map[string]string{},
	}
	for _, d := range deviations {
		repo.byID[d.ID] = d
	}
	return repo
}

func (r *fakeDeviationRepo) Create(_ context.Context, d *domain.Deviation) error {
	r.byID[d.ID] = d
	return nil
}

func (r *fakeDeviationRepo) GetByID(_ context.Context, id string) (*domain.Deviation, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDeviationRepo) List(_ context.Context, _ ports.DeviationFilter) ([]domain.Deviation, error) {
	var out []domain.Deviation
	for _, d := range r.byID {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDeviationRepo) CountPriorInWindow(_ context.Context, _, _ string, _ time.Time) (int, error) {
	return 0, nil
}

func (r *fakeDeviationRepo) UpdateAssignment(_ context.Context, id string, update ports.DeviationUpdate) error {
	d, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Responsable != nil {
		d.Responsable = *update.Responsable
	}
	if update.FechaLimite != nil {
		d.FechaLimite = update.FechaLimite
	}
	if update.Prioridad != nil {
		d.Prioridad = *update.Prioridad
	}
	return nil
}

func (r *fakeDeviationRepo) SetEstado(_ context.Context, id string, estado domain.EstadoDesvio) error {
	d, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Estado = estado
	return nil
}

func (r *fakeDeviationRepo) Close(_ context.Context, id string, estado domain.EstadoDesvio, comentario string, closedAt time.Time) error {
	d, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Estado = estado
	d.ComentarioCierre = comentario
	d.FechaCierre = &closedAt
	r.closed[id] = comentario
	return nil
}

func (r *fakeDeviationRepo) DueWithin(_ context.Context, _ string, _ time.Time) ([]domain.Deviation, error) {
	return nil, nil
}

func (r *fakeDeviationRepo) KPIs(_ context.Context, _ string, _ time.Time) (*domain.DeviationKPIs, error) {
	return &domain.DeviationKPIs{}, nil
}

func (r *fakeDeviationRepo) TopReincidentes(_ context.Context, _ string, _ int) ([]domain.ReincidenceEntry, error) {
	return nil, nil
}

type fakeDecisionRepo struct {
	byDesvio map[string]*domain.Decision
}

func newFakeDecisionRepo() *fakeDecisionRepo {
	return &fakeDecisionRepo{byDesvio: map[string]*domain.Decision{}}
}

func (r *fakeDecisionRepo) Create(_ context.Context, d *domain.Decision) error {
	if _, ok := r.byDesvio[d.DesvioID]; ok {
		return domain.ErrConflict
	}
	r.byDesvio[d.DesvioID] = d
	return nil
}

func (r *fakeDecisionRepo) GetByDesvio(_ context.Context, desvioID string) (*domain.Decision, error) {
	d, ok := r.byDesvio[desvioID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (r *fakeDecisionRepo) Update(_ context.Context, _, _, _ string, _ domain.EstadoDecision) error {
	return nil
}

func (r *fakeDecisionRepo) ListPending(_ context.Context, _ string) ([]domain.Decision, error) {
	var out []domain.Decision
	for _, d := range r.byDesvio {
		out = append(out, *d)
	}
	return out, nil
}

func testRouter(deviations *fakeDeviationRepo, decisions *fakeDecisionRepo, config RouterConfig) http.Handler {
	deviationUC := usecase.NewDeviationLifecycleUseCase(deviations, decisions)
	rt := NewRouter(nil, nil, nil, nil, deviationUC, nil, nil, nil, nil, nil, config)
	return rt.Handler()
}

func pendingDeviation(id string, tipo domain.TipoDesvio) *domain.Deviation {
	return &domain.Deviation{
		ID:             id,
		Local:          "Edén",
		AuditoriaFecha: "2026-07",
		Seccion:        "B",
		ItemCodigo:     "B.4",
		Nivel:          domain.NivelRojo,
		TipoDesvio:     tipo,
		FechaDeteccion: time.Now().UTC(),
		Estado:         domain.EstadoPendiente,
		VecesDetectado: 1,
		Prioridad:      domain.PrioridadAlta,
	}
}

func TestGetDeviationNotFoundMapsTo404(t *testing.T) {
	handler := testRouter(newFakeDeviationRepo(), newFakeDecisionRepo(), RouterConfig{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/desvios/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCloseDeviationDefaultsComment(t *testing.T) {
	deviations := newFakeDeviationRepo(pendingDeviation("d-1", domain.TipoOperativo))
	handler := testRouter(deviations, newFakeDecisionRepo(), RouterConfig{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/desvios/d-1/cerrar", strings.NewReader(`{}`))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if deviations.closed["d-1"] != domain.DefaultClosureComment {
		t.Fatalf("expected default closure comment, got %q", deviations.closed["d-1"])
	}
}

func TestCloseStructuralDeviationCreatesDecision(t *testing.T) {
	deviations := newFakeDeviationRepo(pendingDeviation("d-2", domain.TipoEstructural))
	decisions := newFakeDecisionRepo()
	handler := testRouter(deviations, decisions, RouterConfig{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/desvios/d-2/cerrar", strings.NewReader(`{"comentario":"Repuesto"}`))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, ok := decisions.byDesvio["d-2"]; !ok {
		t.Fatalf("expected decision for d-2")
	}
}

func TestReopenTerminalDeviationIsConflict(t *testing.T) {
	d := pendingDeviation("d-3", domain.TipoOperativo)
	d.Estado = domain.EstadoCumplido
	handler := testRouter(newFakeDeviationRepo(d), newFakeDecisionRepo(), RouterConfig{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/desvios/d-3/estado", strings.NewReader(`{"estado":"pendiente"}`))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAssignDeviationParsesDueDate(t *testing.T) {
	deviations := newFakeDeviationRepo(pendingDeviation("d-4", domain.TipoOperativo))
	handler := testRouter(deviations, newFakeDecisionRepo(), RouterConfig{})

	rec := httptest.NewRecorder()
	body := `{"responsable":"Encargado Turno","fecha_limite":"2026-09-15","prioridad":"media"}`
	req := httptest.NewRequest(http.MethodPatch, "/v1/desvios/d-4", strings.NewReader(body))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	d := deviations.byID["d-4"]
	if d.Responsable != "Encargado Turno" || d.FechaLimite == nil || d.Prioridad != domain.PrioridadMedia {
		t.Fatalf("assignment not applied: %+v", d)
	}
}

func TestRateLimitMiddlewareRejectsBurstOverflow(t *testing.T) {
	handler := testRouter(newFakeDeviationRepo(), newFakeDecisionRepo(), RouterConfig{
		RateLimitRPS:   1,
		RateLimitBurst: 1,
	})

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(second.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["error"] == "" {
		t.Fatalf("expected error payload")
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

type fakePhotoRepo struct {
	photos  []domain.Photo
	deleted []string
	purged  int
	cutoff  time.Time
}

func (r *fakePhotoRepo) Save(_ context.Context, p *domain.Photo) error {
	r.photos = append(r.photos, *p)
	return nil
}

func (r *fakePhotoRepo) ForItem(_ context.Context, local, fecha, itemID string) ([]domain.Photo, error) {
	var out []domain.Photo
	for _, p := range r.photos {
		if p.Local == local && p.Fecha == fecha && p.ItemID == itemID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePhotoRepo) All(_ context.Context, local, fecha string) ([]domain.Photo, error) {
	var out []domain.Photo
	for _, p := range r.photos {
		if p.Local == local && p.Fecha == fecha {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePhotoRepo) Counts(ctx context.Context, local, fecha string) (map[string]int, error) {
	all, _ := r.All(ctx, local, fecha)
	counts := map[string]int{}
	for _, p := range all {
		counts[p.ItemID]++
	}
	return counts, nil
}

func (r *fakePhotoRepo) CountForItem(ctx context.Context, local, fecha, itemID string) (int, error) {
	photos, _ := r.ForItem(ctx, local, fecha, itemID)
	return len(photos), nil
}

func (r *fakePhotoRepo) TotalSize(ctx context.Context, local, fecha string) (int64, error) {
	all, _ := r.All(ctx, local, fecha)
	var size int64
	for _, p := range all {
		size += int64(p.SizeBytes)
	}
	return size, nil
}

func (r *fakePhotoRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakePhotoRepo) ListAudits(_ context.Context) ([]domain.AuditRef, error) {
	return nil, nil
}

func (r *fakePhotoRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	r.cutoff = cutoff
	return r.purged, nil
}

type fakeEvaluationRepo struct {
	created  []domain.Evaluation
	sections map[string][]domain.Status
	fail     error
}

func (r *fakeEvaluationRepo) Create(_ context.Context, ev *domain.Evaluation) error {
	if r.fail != nil {
		return r.fail
	}
	r.created = append(r.created, *ev)
	return nil
}

func (r *fakeEvaluationRepo) ForAudit(_ context.Context, _, _ string) ([]domain.Evaluation, error) {
	return r.created, nil
}

func (r *fakeEvaluationRepo) ItemEvolution(_ context.Context, _, _ string) ([]domain.ItemEvolution, error) {
	return nil, nil
}

func (r *fakeEvaluationRepo) History(_ context.Context) ([]domain.AuditSummary, error) {
	return nil, nil
}

func (r *fakeEvaluationRepo) RecurringFailures(_ context.Context, _ string, _ int) ([]domain.RecurringFailure, error) {
	return nil, nil
}

func (r *fakeEvaluationRepo) SectionStatuses(_ context.Context, _, _ string) (map[string][]domain.Status, error) {
	return r.sections, nil
}

type fakeCorrectionRepo struct {
	corrections []domain.Correction
	fail        error
}

func (r *fakeCorrectionRepo) Create(_ context.Context, c *domain.Correction) error {
	r.corrections = append(r.corrections, *c)
	return nil
}

func (r *fakeCorrectionRepo) ForItem(_ context.Context, itemID string, limit int) ([]domain.Correction, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	var out []domain.Correction
	for _, c := range r.corrections {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCorrectionRepo) Recent(_ context.Context, limit int) ([]domain.Correction, error) {
	out := r.corrections
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeAuditRepo struct {
	upserted []domain.Audit
}

func (r *fakeAuditRepo) Upsert(_ context.Context, a *domain.Audit) error {
	r.upserted = append(r.upserted, *a)
	return nil
}

func (r *fakeAuditRepo) Get(_ context.Context, _, _ string) (*domain.Audit, error) {
	if len(r.upserted) == 0 {
		return nil, domain.ErrNotFound
	}
	a := r.upserted[len(r.upserted)-1]
	return &a, nil
}

func (r *fakeAuditRepo) List(_ context.Context, _ string, _ int) ([]domain.Audit, error) {
	return r.upserted, nil
}

func (r *fakeAuditRepo) MonthlyScores(_ context.Context, _ string, _ int) ([]domain.Audit, error) {
	return r.upserted, nil
}

type fakeDeviationRepo struct {
	byID  map[string]*domain.Deviation
	prior int
}

func newFakeDeviationRepo() *fakeDeviationRepo {
	return &fakeDeviationRepo{byID: map[string]*domain.Deviation{}}
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
	return r.prior, nil
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
	return nil
}

func (r *fakeDeviationRepo) DueWithin(_ context.Context, _ string, horizon time.Time) ([]domain.Deviation, error) {
	var out []domain.Deviation
	for _, d := range r.byID {
		if d.Estado.Terminal() || d.FechaLimite == nil {
			continue
		}
		if !d.FechaLimite.After(horizon) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDeviationRepo) KPIs(_ context.Context, _ string, _ time.Time) (*domain.DeviationKPIs, error) {
	return &domain.DeviationKPIs{}, nil
}

func (r *fakeDeviationRepo) TopReincidentes(_ context.Context, _ string, _ int) ([]domain.ReincidenceEntry, error) {
	return nil, nil
}

type fakeDecisionRepo struct {
	byDesvio map[string]*domain.Decision
	creates  int
}

func newFakeDecisionRepo() *fakeDecisionRepo {
	return &fakeDecisionRepo{byDesvio: map[string]*domain.Decision{}}
}

func (r *fakeDecisionRepo) Create(_ context.Context, d *domain.Decision) error {
	r.creates++
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

type fakeClassifier struct {
	verdicts     map[string]domain.Verdict
	failPhotos   map[string]bool
	seenContexts [][]domain.Correction
}

func (c *fakeClassifier) Classify(_ context.Context, input ports.ClassifyInput) (domain.Verdict, error) {
	c.seenContexts = append(c.seenContexts, input.Corrections)
	key := string(input.ImageData)
	if c.failPhotos[key] {
		return domain.Verdict{}, fmt.Errorf("upstream unavailable")
	}
	if v, ok := c.verdicts[key]; ok {
		return v, nil
	}
	return domain.Verdict{Status: domain.StatusConforme, Justificacion: "ok"}, nil
}

func (c *fakeClassifier) Model() string { return "test-model" }

type fakeQueue struct {
	published []ports.AnalyzeRequest
}

func (q *fakeQueue) PublishAnalyzeRequested(_ context.Context, req ports.AnalyzeRequest) error {
	q.published = append(q.published, req)
	return nil
}

func (q *fakeQueue) SubscribeAnalyzeRequested(_ context.Context, _ func(context.Context, ports.AnalyzeRequest) error) error {
	return nil
}

type passthroughCompressor struct{}

func (passthroughCompressor) Compress(data []byte) ([]byte, error) { return data, nil }

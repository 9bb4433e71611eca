package httpadapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/usecase"
)

// RouterConfig tunes the outer middleware chain.
type RouterConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

type Router struct {
	intakeUC      *usecase.PhotoIntakeUseCase
	analyzeUC     *usecase.AnalyzeItemUseCase
	scoringUC     *usecase.AuditScoringUseCase
	correctionUC  *usecase.CorrectionUseCase
	deviationUC   *usecase.DeviationLifecycleUseCase
	reportingUC   *usecase.ReportingUseCase
	archiveUC     *usecase.ArchiveUseCase
	retentionUC   *usecase.RetentionUseCase
	responsableUC *usecase.ResponsableUseCase

	db     *sql.DB
	config RouterConfig
}

func NewRouter(
	intakeUC *usecase.PhotoIntakeUseCase,
	analyzeUC *usecase.AnalyzeItemUseCase,
	scoringUC *usecase.AuditScoringUseCase,
	correctionUC *usecase.CorrectionUseCase,
	deviationUC *usecase.DeviationLifecycleUseCase,
	reportingUC *usecase.ReportingUseCase,
	archiveUC *usecase.ArchiveUseCase,
	retentionUC *usecase.RetentionUseCase,
	responsableUC *usecase.ResponsableUseCase,
	db *sql.DB,
	config RouterConfig,
) *Router {
	return &Router{
		intakeUC:      intakeUC,
		analyzeUC:     analyzeUC,
		scoringUC:     scoringUC,
		correctionUC:  correctionUC,
		deviationUC:   deviationUC,
		reportingUC:   reportingUC,
		archiveUC:     archiveUC,
		retentionUC:   retentionUC,
		responsableUC: responsableUC,
		db:            db,
		config:        config,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", rt.healthz)
	mux.HandleFunc("GET /v1/catalogo", rt.getCatalog)
	mux.HandleFunc("GET /v1/locales", rt.getLocales)

	mux.HandleFunc("POST /v1/photos", rt.uploadPhoto)
	mux.HandleFunc("GET /v1/photos", rt.listPhotos)
	mux.HandleFunc("DELETE /v1/photos/{id}", rt.deletePhoto)
	mux.HandleFunc("GET /v1/photos/audits", rt.listCapturedAudits)

	mux.HandleFunc("POST /v1/analyze", rt.enqueueAnalysis)
	mux.HandleFunc("POST /v1/analyze/run", rt.runAnalysis)

	mux.HandleFunc("GET /v1/evaluations", rt.getEvaluations)
	mux.HandleFunc("GET /v1/evaluations/evolution", rt.getItemEvolution)
	mux.HandleFunc("GET /v1/history", rt.getHistory)
	mux.HandleFunc("GET /v1/recurring", rt.getRecurringFailures)

	mux.HandleFunc("POST /v1/corrections", rt.createCorrection)
	mux.HandleFunc("GET /v1/corrections", rt.getCorrections)

	mux.HandleFunc("POST /v1/audits/recompute", rt.recomputeAudit)
	mux.HandleFunc("GET /v1/audits", rt.getAudit)
	mux.HandleFunc("GET /v1/audits/monthly", rt.getMonthlyScores)

	mux.HandleFunc("GET /v1/desvios", rt.listDeviations)
	mux.HandleFunc("GET /v1/desvios/kpis", rt.getKPIs)
	mux.HandleFunc("GET /v1/desvios/vencimientos", rt.getDueDeviations)
	mux.HandleFunc("GET /v1/desvios/reincidentes", rt.getTopReincidentes)
	mux.HandleFunc("GET /v1/desvios/plan-semanal", rt.getWeeklyPlan)
	mux.HandleFunc("POST /v1/desvios/revisar-vencidos", rt.reviewOverdue)
	mux.HandleFunc("GET /v1/desvios/{id}", rt.getDeviation)
	mux.HandleFunc("PATCH /v1/desvios/{id}", rt.assignDeviation)
	mux.HandleFunc("POST /v1/desvios/{id}/estado", rt.transitionDeviation)
	mux.HandleFunc("POST /v1/desvios/{id}/cerrar", rt.closeDeviation)
	mux.HandleFunc("POST /v1/desvios/{id}/escalar", rt.escalateDeviation)

	mux.HandleFunc("GET /v1/decisiones", rt.listPendingDecisions)
	mux.HandleFunc("PATCH /v1/decisiones/{id}", rt.updateDecision)

	mux.HandleFunc("POST /v1/responsables", rt.createResponsable)
	mux.HandleFunc("GET /v1/responsables", rt.listResponsables)
	mux.HandleFunc("DELETE /v1/responsables/{id}", rt.deleteResponsable)

	mux.HandleFunc("GET /v1/export/csv", rt.exportCSV)
	mux.HandleFunc("GET /v1/export/xlsx", rt.exportXLSX)
	mux.HandleFunc("GET /v1/export/desvios/{format}", rt.exportDeviations)
	mux.HandleFunc("GET /v1/archive", rt.downloadArchive)

	mux.HandleFunc("GET /v1/admin/stats", rt.getStats)
	mux.HandleFunc("POST /v1/admin/purge", rt.purgePhotos)

	handler := rateLimitMiddleware(rt.config.RateLimitRPS, rt.config.RateLimitBurst, mux)
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

// healthz reports degraded instead of failing outright when the datastore
// is unreachable, so orchestrators can tell "down" from "up without DB".
func (rt *Router) healthz(w http.ResponseWriter, r *http.Request) {
	if rt.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := rt.db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "degraded", "datastore": "unreachable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) getCatalog(w http.ResponseWriter, _ *http.Request) {
	type sectionPayload struct {
		Key   string              `json:"key"`
		Name  string              `json:"name"`
		Items []catalog.Criterion `json:"items"`
	}
	sections := make([]sectionPayload, 0, len(catalog.Sections))
	for _, key := range catalog.SectionKeys() {
		sections = append(sections, sectionPayload{
			Key:   key,
			Name:  catalog.SectionName(key),
			Items: catalog.BySection(key),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": sections})
}

func (rt *Router) getLocales(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"locales": catalog.Locales})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

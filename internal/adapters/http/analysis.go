package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heladerias/audit-vision/internal/core/domain"
)

type analyzeRequest struct {
	Local  string `json:"local"`
	Fecha  string `json:"fecha"`
	ItemID string `json:"item_id"`
}

func (rt *Router) enqueueAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if err := rt.analyzeUC.RequestAnalysis(r.Context(), req.Local, req.Fecha, req.ItemID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (rt *Router) runAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	report, err := rt.analyzeUC.AnalyzeItem(r.Context(), req.Local, req.Fecha, req.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (rt *Router) getEvaluations(w http.ResponseWriter, r *http.Request) {
	local := r.URL.Query().Get("local")
	fecha := r.URL.Query().Get("fecha")
	if local == "" || fecha == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "local and fecha are required"})
		return
	}

	evaluations, err := rt.reportingUC.AuditResults(r.Context(), local, fecha)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"evaluations": evaluations})
}

func (rt *Router) getItemEvolution(w http.ResponseWriter, r *http.Request) {
	local := r.URL.Query().Get("local")
	itemID := r.URL.Query().Get("item_id")
	if local == "" || itemID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "local and item_id are required"})
		return
	}

	evolution, err := rt.reportingUC.ItemEvolution(r.Context(), local, itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"evolution": evolution})
}

func (rt *Router) getHistory(w http.ResponseWriter, r *http.Request) {
	history, err := rt.reportingUC.AuditHistory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (rt *Router) getRecurringFailures(w http.ResponseWriter, r *http.Request) {
	local := r.URL.Query().Get("local")
	if local == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "local is required"})
		return
	}

	failures, err := rt.reportingUC.RecurringFailures(r.Context(), local, queryInt(r, "min_count", 0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"failures": failures})
}

func (rt *Router) createCorrection(w http.ResponseWriter, r *http.Request) {
	var req domain.Correction
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	correction, err := rt.correctionUC.Record(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, correction)
}

func (rt *Router) getCorrections(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("item_id")
	limit := queryInt(r, "limit", 0)

	var (
		corrections []domain.Correction
		err         error
	)
	if itemID != "" {
		corrections, err = rt.correctionUC.ForItem(r.Context(), itemID, limit)
	} else {
		corrections, err = rt.correctionUC.Recent(r.Context(), limit)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"corrections": corrections})
}

func (rt *Router) recomputeAudit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Local string `json:"local"`
		Fecha string `json:"fecha"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	audit, err := rt.scoringUC.Recompute(r.Context(), req.Local, req.Fecha)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

// getAudit returns one scored audit when fecha is given, or the newest audit
// records otherwise.
func (rt *Router) getAudit(w http.ResponseWriter, r *http.Request) {
	local := r.URL.Query().Get("local")
	fecha := r.URL.Query().Get("fecha")
	if fecha == "" {
		audits, err := rt.scoringUC.List(r.Context(), local, queryInt(r, "limit", 0))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"audits": audits})
		return
	}
	if local == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "local is required"})
		return
	}

	audit, err := rt.scoringUC.Get(r.Context(), local, fecha)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, audit)
}

func (rt *Router) getMonthlyScores(w http.ResponseWriter, r *http.Request) {
	local := r.URL.Query().Get("local")
	if local == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "local is required"})
		return
	}

	audits, err := rt.scoringUC.MonthlyScores(r.Context(), local, queryInt(r, "months", 0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"audits": audits})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

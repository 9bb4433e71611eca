package httpadapter

import (
	"net/http"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

func deviationFilterFromQuery(r *http.Request) ports.DeviationFilter {
	q := r.URL.Query()
	return ports.DeviationFilter{
		Local:    q.Get("local"),
		Estado:   domain.EstadoDesvio(q.Get("estado")),
		Fecha:    q.Get("fecha"),
		Tipo:     domain.TipoDesvio(q.Get("tipo")),
		OpenOnly: q.Get("abiertos") == "true",
	}
}

func (rt *Router) listDeviations(w http.ResponseWriter, r *http.Request) {
	deviations, err := rt.reportingUC.Deviations(r.Context(), deviationFilterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"desvios": deviations})
}

func (rt *Router) getDeviation(w http.ResponseWriter, r *http.Request) {
	d, err := rt.deviationUC.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (rt *Router) assignDeviation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Responsable *string `json:"responsable"`
		FechaLimite *string `json:"fecha_limite"`
		Prioridad   *string `json:"prioridad"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	update := ports.DeviationUpdate{Responsable: req.Responsable}
	if req.FechaLimite != nil {
		limite, err := time.Parse("2006-01-02", *req.FechaLimite)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "fecha_limite must be YYYY-MM-DD"})
			return
		}
		update.FechaLimite = &limite
	}
	if req.Prioridad != nil {
		prioridad := domain.Prioridad(*req.Prioridad)
		update.Prioridad = &prioridad
	}

	if err := rt.deviationUC.Assign(r.Context(), r.PathValue("id"), update); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt *Router) transitionDeviation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Estado string `json:"estado"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if err := rt.deviationUC.Transition(r.Context(), r.PathValue("id"), domain.EstadoDesvio(req.Estado)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt *Router) closeDeviation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Comentario string `json:"comentario"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	d, err := rt.deviationUC.CloseDeviation(r.Context(), r.PathValue("id"), req.Comentario)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (rt *Router) escalateDeviation(w http.ResponseWriter, r *http.Request) {
	decision, err := rt.deviationUC.CreateDecision(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, decision)
}

func (rt *Router) reviewOverdue(w http.ResponseWriter, r *http.Request) {
	marked, err := rt.deviationUC.ReviewOverdue(r.Context(), r.URL.Query().Get("local"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"incumplidos": marked})
}

func (rt *Router) getKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := rt.reportingUC.KPIs(r.Context(), r.URL.Query().Get("local"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, kpis)
}

func (rt *Router) getDueDeviations(w http.ResponseWriter, r *http.Request) {
	due, err := rt.reportingUC.DueWithin(r.Context(), r.URL.Query().Get("local"), queryInt(r, "dias", 0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"desvios": due})
}

func (rt *Router) getTopReincidentes(w http.ResponseWriter, r *http.Request) {
	entries, err := rt.reportingUC.TopReincidentes(r.Context(), r.URL.Query().Get("local"), queryInt(r, "limit", 0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reincidentes": entries})
}

func (rt *Router) getWeeklyPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := rt.reportingUC.WeeklyPlan(r.Context(), r.URL.Query().Get("local"), queryInt(r, "n", 0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plan": plan})
}

func (rt *Router) listPendingDecisions(w http.ResponseWriter, r *http.Request) {
	decisions, err := rt.deviationUC.PendingDecisions(r.Context(), r.URL.Query().Get("local"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"decisiones": decisions})
}

func (rt *Router) updateDecision(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Impacto   string `json:"impacto"`
		Propuesta string `json:"propuesta"`
		Estado    string `json:"estado"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	err := rt.deviationUC.UpdateDecision(r.Context(), r.PathValue("id"),
		req.Impacto, req.Propuesta, domain.EstadoDecision(req.Estado))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt *Router) createResponsable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombre string `json:"nombre"`
		Local  string `json:"local"`
		Rol    string `json:"rol"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	responsable, err := rt.responsableUC.Create(r.Context(), req.Nombre, req.Local, req.Rol)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, responsable)
}

func (rt *Router) listResponsables(w http.ResponseWriter, r *http.Request) {
	responsables, err := rt.responsableUC.List(r.Context(), r.URL.Query().Get("local"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"responsables": responsables})
}

func (rt *Router) deleteResponsable(w http.ResponseWriter, r *http.Request) {
	if err := rt.responsableUC.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

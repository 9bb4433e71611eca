package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/heladerias/audit-vision/internal/export"
)

func (rt *Router) exportCSV(w http.ResponseWriter, r *http.Request) {
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
	writeTable(w, export.EvaluationTable(local, fecha, evaluations), "csv",
		fmt.Sprintf("auditoria_%s_%s.csv", local, fecha))
}

func (rt *Router) exportXLSX(w http.ResponseWriter, r *http.Request) {
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
	writeTable(w, export.EvaluationTable(local, fecha, evaluations), "xlsx",
		fmt.Sprintf("auditoria_%s_%s.xlsx", local, fecha))
}

func (rt *Router) exportDeviations(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	if format != "csv" && format != "xlsx" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "format must be csv or xlsx"})
		return
	}
	filter := deviationFilterFromQuery(r)

	deviations, err := rt.reportingUC.Deviations(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	title := "Desvíos"
	if filter.Local != "" {
		title = "Desvíos " + filter.Local
	}
	writeTable(w, export.DeviationTable(title, deviations), format, "desvios."+format)
}

// writeTable renders the table in the requested format and sets the download
// headers.
func writeTable(w http.ResponseWriter, table export.Table, format, filename string) {
	var data []byte
	var contentType string
	var err error
	switch format {
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		data, err = export.XLSX(table)
	default:
		contentType = "text/csv; charset=utf-8"
		data, err = export.CSV(table)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}

func (rt *Router) downloadArchive(w http.ResponseWriter, r *http.Request) {
	local := r.URL.Query().Get("local")
	fecha := r.URL.Query().Get("fecha")
	if local == "" || fecha == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "local and fecha are required"})
		return
	}

	data, err := rt.archiveUC.BuildArchive(r.Context(), local, fecha)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("fotos_%s_%s.zip", local, fecha)))
	_, _ = w.Write(data)
}

func (rt *Router) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := rt.reportingUC.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (rt *Router) purgePhotos(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Months int `json:"months"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	purged, err := rt.retentionUC.PurgeOldPhotos(r.Context(), req.Months)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"purged": purged})
}

package httpadapter

import (
	"net/http"
)

func (rt *Router) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	photo, err := rt.intakeUC.Upload(
		r.Context(),
		r.FormValue("local"),
		r.FormValue("fecha"),
		r.FormValue("item_id"),
		file,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

func (rt *Router) listPhotos(w http.ResponseWriter, r *http.Request) {
	local := r.URL.Query().Get("local")
	fecha := r.URL.Query().Get("fecha")
	if local == "" || fecha == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "local and fecha are required"})
		return
	}

	counts, err := rt.intakeUC.PhotoCounts(r.Context(), local, fecha)
	if err != nil {
		writeError(w, err)
		return
	}
	size, err := rt.intakeUC.TotalSize(r.Context(), local, fecha)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"counts": counts, "total_bytes": size})
}

func (rt *Router) listCapturedAudits(w http.ResponseWriter, r *http.Request) {
	audits, err := rt.intakeUC.CapturedAudits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"audits": audits})
}

func (rt *Router) deletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := rt.intakeUC.DeletePhoto(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

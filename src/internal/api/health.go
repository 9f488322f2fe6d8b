package api

import "net/http"

// CheckHealth reports whether a dataset is loaded.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	c := h.store.Current()

	response := HealthResponse{
		Healthy: c.Len() > 0,
		Lists:   c.Len(),
		Version: h.version,
	}
	if h.status != nil {
		response.Fingerprint = h.status.Fingerprint()
		if loadedAt := h.status.LoadedAt(); !loadedAt.IsZero() {
			response.LoadedAt = &loadedAt
		}
		if err := h.status.LastError(); err != nil {
			response.LastError = err.Error()
		}
	}

	if !response.Healthy {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSONData(w, response)
}

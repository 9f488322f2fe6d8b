package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/metrics"
	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

// DatasetStatus describes the last reload of the dataset. It is implemented
// by the serve command.
type DatasetStatus interface {
	Fingerprint() string
	LoadedAt() time.Time
	LastError() error
}

// Handler serves the API endpoints from the collection in store.
type Handler struct {
	store   *warninglist.Store
	metrics *metrics.Metrics
	status  DatasetStatus
	version string
}

func NewHandler(store *warninglist.Store, opts Options) *Handler {
	return &Handler{
		store:   store,
		metrics: opts.Metrics,
		status:  opts.Status,
		version: opts.Version,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(DataResponse{Data: data}); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

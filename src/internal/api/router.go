package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/warninglists/src/internal/metrics"
	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

type Options struct {
	// Metrics enables GET /metrics when set.
	Metrics *metrics.Metrics
	Status  DatasetStatus
	Version string
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(store *warninglist.Store, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(JSONContentType)

	h := NewHandler(store, opts)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/lists", h.GetLists)
		r.Get("/lists/{name}", h.GetList)

		r.Get("/lookup", h.Lookup)
		r.Post("/lookup", h.LookupBatch)

		r.Get("/health", h.CheckHealth)
	})

	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, r.URL.Path+" not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, NewAPIError(ErrCodeInvalidRequest, "method not allowed"))
	})

	return r
}

package api

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

var validate = validator.New()

// Lookup matches values given as query parameters.
// GET /api/v1/lookup?value=8.8.8.8&list=name
//
// Both parameters may be repeated, list also accepts a comma separated value.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	values := query["value"]
	if len(values) == 0 {
		WriteInvalidRequest(w, "value query parameter is required")
		return
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			WriteInvalidRequest(w, "value must not be empty")
			return
		}
	}

	var lists []string
	for _, raw := range query["list"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				lists = append(lists, name)
			}
		}
	}

	h.lookup(w, values, lists)
}

// LookupBatch matches every value of the request body.
// POST /api/v1/lookup
func (h *Handler) LookupBatch(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		WriteValidationError(w, "Invalid lookup request", validationDetails(err))
		return
	}

	h.lookup(w, req.Values, req.Lists)
}

// lookup runs every value against one collection snapshot, so a reload in
// the middle of a batch does not mix results from two datasets.
func (h *Handler) lookup(w http.ResponseWriter, values, lists []string) {
	c := h.store.Current()

	results := make([]*LookupResult, 0, len(values))
	for _, raw := range values {
		v := warninglist.Normalize(raw)

		start := time.Now()
		names, err := c.LookupValue(v, lists...)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		h.metrics.ObserveLookup(names, time.Since(start))

		result := &LookupResult{
			Value:   raw,
			Kind:    v.Kind.String(),
			Matches: make([]*MatchInfo, 0, len(names)),
		}
		for _, name := range names {
			def, err := c.Describe(name)
			if err != nil {
				WriteDomainError(w, err)
				return
			}
			result.Matches = append(result.Matches, &MatchInfo{
				Name:        def.Name,
				Description: def.Description,
				Type:        def.Type,
				Version:     def.Version,
			})
		}
		results = append(results, result)
	}

	writeJSONData(w, LookupResponse{Results: results})
}

func validationDetails(err error) map[string]interface{} {
	details := make(map[string]interface{})
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		for _, e := range verrs {
			details[e.Namespace()] = e.Tag()
		}
	}
	return details
}

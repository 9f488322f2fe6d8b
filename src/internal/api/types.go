package api

import (
	"time"

	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ListInfo describes a loaded list and how it was compiled.
type ListInfo struct {
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	Type               warninglist.ListType   `json:"type"`
	Version            int                    `json:"version"`
	MatchingAttributes []string               `json:"matching_attributes"`
	Stats              warninglist.BuildStats `json:"stats"`
	// Entries is only set by GET /lists/{name}?entries=true.
	Entries []string `json:"entries,omitempty"`
}

// ListsResponse returns all loaded lists.
type ListsResponse struct {
	Lists []*ListInfo `json:"lists"`
}

// LookupRequest is the body of POST /lookup.
type LookupRequest struct {
	Values []string `json:"values" validate:"required,min=1,max=1000,dive,required,max=2048"`
	Lists  []string `json:"lists" validate:"omitempty,dive,required"`
}

// MatchInfo identifies a list that contains the looked up value.
type MatchInfo struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Type        warninglist.ListType `json:"type"`
	Version     int                  `json:"version"`
}

// LookupResult holds the matches of one value.
type LookupResult struct {
	Value   string       `json:"value"`
	Kind    string       `json:"kind"`
	Matches []*MatchInfo `json:"matches"`
}

// LookupResponse returns results in request order.
type LookupResponse struct {
	Results []*LookupResult `json:"results"`
}

// HealthResponse reports the state of the loaded dataset.
type HealthResponse struct {
	Healthy     bool       `json:"healthy"`
	Lists       int        `json:"lists"`
	Fingerprint string     `json:"fingerprint,omitempty"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	Version     string     `json:"version,omitempty"`
}

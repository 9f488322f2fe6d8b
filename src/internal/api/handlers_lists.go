package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

// GetLists returns every loaded list.
// GET /api/v1/lists
func (h *Handler) GetLists(w http.ResponseWriter, r *http.Request) {
	c := h.store.Current()

	lists := make([]*ListInfo, 0, c.Len())
	for _, name := range c.ListNames() {
		info, err := listInfo(c, name)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		lists = append(lists, info)
	}

	writeJSONData(w, ListsResponse{Lists: lists})
}

// GetList returns a single list.
// GET /api/v1/lists/{name}?entries=true
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	withEntries := false
	if raw := r.URL.Query().Get("entries"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			WriteInvalidRequest(w, "entries must be a boolean")
			return
		}
		withEntries = v
	}

	c := h.store.Current()
	info, err := listInfo(c, name)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if withEntries {
		def, err := c.Get(name)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		info.Entries = def.List
	}

	writeJSONData(w, info)
}

func listInfo(c *warninglist.Collection, name string) (*ListInfo, error) {
	def, err := c.Describe(name)
	if err != nil {
		return nil, err
	}
	stats, err := c.Stats(name)
	if err != nil {
		return nil, err
	}
	attrs := def.MatchingAttributes
	if attrs == nil {
		attrs = []string{}
	}
	return &ListInfo{
		Name:               def.Name,
		Description:        def.Description,
		Type:               def.Type,
		Version:            def.Version,
		MatchingAttributes: attrs,
		Stats:              stats,
	}, nil
}

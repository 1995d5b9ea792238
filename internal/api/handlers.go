package api

import (
	"encoding/json"
	"net/http"

	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/store"
)

// Handler manages all API endpoints and dependencies.
type Handler struct {
	cfg     *config.Config
	store   *store.Store // nil when no index is configured
	version VersionInfo
}

// NewHandler creates a new API handler. The store may be nil.
func NewHandler(cfg *config.Config, st *store.Store, version VersionInfo) *Handler {
	return &Handler{
		cfg:     cfg,
		store:   st,
		version: version,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

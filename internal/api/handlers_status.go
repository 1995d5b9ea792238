package api

import (
	"net/http"

	"github.com/hashbox/hashbox/internal/digest"
	"github.com/hashbox/hashbox/internal/log"
)

// GetStatus returns server status information.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	algos := digest.Algorithms()
	names := make([]string, 0, len(algos))
	for _, algo := range algos {
		names = append(names, algo.String())
	}

	resp := StatusResponse{
		Version:          h.version,
		DefaultAlgorithm: h.cfg.GetDefaultAlgorithm().String(),
		Algorithms:       names,
	}

	if h.store != nil {
		if count, err := h.store.Len(); err != nil {
			log.Warnf("Failed to count index records: %v", err)
		} else {
			resp.IndexRecords = &count
		}
	}

	writeJSONData(w, resp)
}

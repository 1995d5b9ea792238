package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashbox/hashbox/internal/digest"
)

// GetAlgorithms returns the supported digest algorithms.
func (h *Handler) GetAlgorithms(w http.ResponseWriter, r *http.Request) {
	algos := digest.Algorithms()

	resp := AlgorithmsResponse{Algorithms: make([]AlgorithmInfo, 0, len(algos))}
	for _, algo := range algos {
		resp.Algorithms = append(resp.Algorithms, AlgorithmInfo{
			Name:      algo.String(),
			Size:      algo.Size(),
			HexLength: algo.HexLength(),
		})
	}

	writeJSONData(w, resp)
}

// ComputeDigest computes a digest for the posted text or base64 payload.
func (h *Handler) ComputeDigest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.GetMaxBodyBytes())

	var req DigestRequest
	if err := decodeJSON(r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteInvalidRequest(w, fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit))
			return
		}
		WriteInvalidRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	algo := h.cfg.GetDefaultAlgorithm()
	if req.Algorithm != "" {
		parsed, err := digest.Parse(req.Algorithm)
		if err != nil {
			WriteInvalidRequest(w, fmt.Sprintf("Unknown algorithm: %s", req.Algorithm))
			return
		}
		algo = parsed
	}

	var data []byte
	switch {
	case req.Text != nil && req.DataBase64 != nil:
		WriteInvalidRequest(w, "Provide either text or data_base64, not both")
		return
	case req.Text != nil:
		data = []byte(*req.Text)
	case req.DataBase64 != nil:
		decoded, err := base64.StdEncoding.DecodeString(*req.DataBase64)
		if err != nil {
			WriteInvalidRequest(w, fmt.Sprintf("Invalid base64 data: %v", err))
			return
		}
		data = decoded
	default:
		WriteInvalidRequest(w, "Provide either text or data_base64")
		return
	}

	writeJSONData(w, DigestResponse{
		Algorithm:  algo.String(),
		Digest:     digest.HexSum(algo, data),
		InputBytes: len(data),
	})
}

package api

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// AlgorithmInfo describes one supported digest algorithm.
type AlgorithmInfo struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`       // digest size in bytes
	HexLength int    `json:"hex_length"` // length of the hex rendering
}

// AlgorithmsResponse returns all supported algorithms.
type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

// DigestRequest asks for a digest of text or base64-encoded binary data.
// Exactly one of Text and DataBase64 must be set; Text is hashed as its
// UTF-8 bytes.
type DigestRequest struct {
	Algorithm  string  `json:"algorithm,omitempty"`
	Text       *string `json:"text,omitempty"`
	DataBase64 *string `json:"data_base64,omitempty"`
}

// DigestResponse returns the computed digest.
type DigestResponse struct {
	Algorithm  string `json:"algorithm"`
	Digest     string `json:"digest"`
	InputBytes int    `json:"input_bytes"`
}

// StatusResponse returns server status information.
type StatusResponse struct {
	Version          VersionInfo `json:"version"`
	DefaultAlgorithm string      `json:"default_algorithm"`
	Algorithms       []string    `json:"algorithms"`
	IndexRecords     *int        `json:"index_records,omitempty"` // nil when no index is configured
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

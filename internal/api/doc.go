// Package api provides the REST API server for hashbox.
//
// The server exposes digest computation and status over HTTP:
//   - Algorithm discovery (names, digest sizes, hex lengths)
//   - Digest computation for text or base64-encoded binary payloads
//   - Status (version, default algorithm, index record count)
//   - Health check
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "error_code",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
//
// # Access Control
//
// With private_subnets_only enabled (the default), requests from public
// addresses are rejected with 403 Forbidden. This allows binding to
// 0.0.0.0 on a LAN host without exposing the API beyond it.
package api

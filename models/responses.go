package models

// ErrorResponse is the JSON body of every non-2xx response produced by the
// HTTP layer, e.g. {"error":"Unauthorized"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
}

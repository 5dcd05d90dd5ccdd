package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse acknowledges deletions: {"status": "Deleted"}.
type StatusResponse struct {
	Status string `json:"status"`
}

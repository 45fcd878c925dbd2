package dto

// MessageResponse is returned by operations that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

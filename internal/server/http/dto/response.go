package dto

// DataResponse wraps successful payloads in the data envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse carries a human readable failure message. Listing endpoints
// include an empty data slice alongside the message.
type ErrorResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ValidationErrorResponse reports per-field registration failures.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

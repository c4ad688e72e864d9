package errors

// Response is the unified API response envelope shared between the success
// and error paths of the delivery layer.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Token   string     `json:"token,omitempty"` // Bearer token issued by signup/login
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "INVALID_CREDENTIALS"
	Details string `json:"details"` // Detailed error description
}

// FieldError describes a single field-level validation failure, returned as a
// list so clients can annotate the offending form inputs.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

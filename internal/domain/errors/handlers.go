package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "SESSION_INACTIVE"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the JSON envelope produced by the error handler middleware.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // Stable reason string
	Error   *ErrorInfo `json:"error,omitempty"`
}

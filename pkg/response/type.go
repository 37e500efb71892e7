package response

// Resp is the envelope for system endpoints such as health checks.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorResp is the error body of the chat and data endpoints.
// Intent and Data are attached when a later pipeline stage failed.
type ErrorResp struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Intent  any    `json:"intent,omitempty"`
	Data    any    `json:"data,omitempty"`
}

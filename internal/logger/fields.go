package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// Standard tracing fields propagated through the call chain.
const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldUserID is the authenticated user id for the request
	FieldUserID = "user_id"

	// FieldComponent names the subsystem emitting the log line
	FieldComponent = "component"
)

// Metric fields attached to individual log entries.
const (
	// FieldDurationMs is the elapsed time of an operation in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldStatus is an HTTP status code or operation outcome
	FieldStatus = "status"

	// FieldSize is a payload size in bytes
	FieldSize = "size"

	// FieldCount is a result count
	FieldCount = "count"
)

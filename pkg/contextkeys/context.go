package contextkeys

// Keys under which middleware stores request-scoped values in the gin
// context.
const (
	CallerKey    = "caller"
	RequestIDKey = "request_id"
)

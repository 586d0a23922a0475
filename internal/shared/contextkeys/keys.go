package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "workforce-api context key " + string(c)
}

// RequestIDKey is the key for the per-request correlation ID in context.Context.
const RequestIDKey = contextKey("requestID")

// ActorKey is the key for the authenticated principal (token subject).
const ActorKey = contextKey("actor")

// CollectionKey is the key for the collection a handler is operating on.
const CollectionKey = contextKey("collection")

// OperationKey is the key for the current operation name.
const OperationKey = contextKey("operation")

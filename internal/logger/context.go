package logger

import "context"

// requestIDKey is unexported so only this package can place or read the
// request ID, keeping it isolated from other context values.
type requestIDKey struct{}

// WithRequestID stores a request ID on the context for later retrieval.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID carried by ctx, or an empty string when
// the request never passed through the request ID middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

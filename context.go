package vesting

import "context"

type callerKey struct{}

// WithCaller returns a context carrying the caller account identity.
// Mutating entry points resolve the caller from the context for
// authorization and funding attribution.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext extracts the caller account identity, or "" if absent.
func CallerFromContext(ctx context.Context) string {
	if v := ctx.Value(callerKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

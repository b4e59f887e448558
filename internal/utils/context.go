// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// ContextKey is the type of the actor context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type ContextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c ContextKey) String() string {
	return string(c)
}

// Context keys under which the authorization middlewares store the
// authenticated actor of the request.
var (
	StudentCtxKey   = ContextKey("student")
	AgencyCtxKey    = ContextKey("agency")
	SecretaryCtxKey = ContextKey("secretary")
	SignupCtxKey    = ContextKey("signup")
)

// WithActor returns a copy of ctx carrying actor under key.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithActor(ctx, utils.AgencyCtxKey, agency)
func WithActor[T any](ctx context.Context, key ContextKey, actor T) context.Context {
	return context.WithValue(ctx, key, actor)
}

// ActorFromContext retrieves the actor stored under key.
//
// Returns the actor and an ok flag:
//   - ok == true  — value is found and has the requested type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	agency, ok := utils.ActorFromContext[*models.Agency](ctx, utils.AgencyCtxKey)
//	if !ok {
//	    // handle missing agency in context
//	}
func ActorFromContext[T any](ctx context.Context, key ContextKey) (T, bool) {
	actor, ok := ctx.Value(key).(T)
	return actor, ok
}

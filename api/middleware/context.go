package middleware

import (
	"context"

	"github.com/islandtracker/islandtracker-backend/internal/users"
)

type ctxKey uint8

const (
	userIDKey ctxKey = iota + 1
	roleKey
	principalKey
)

func fromContext[T any](ctx context.Context, key ctxKey) T {
	var zero T
	if ctx == nil {
		return zero
	}
	if v, ok := ctx.Value(key).(T); ok {
		return v
	}
	return zero
}

func withValue(ctx context.Context, key ctxKey, v any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, key, v)
}

// UserIDFromContext returns the authenticated user's id, or "".
func UserIDFromContext(ctx context.Context) string { return fromContext[string](ctx, userIDKey) }

// RoleFromContext returns "admin" or "user" for authenticated requests.
func RoleFromContext(ctx context.Context) string { return fromContext[string](ctx, roleKey) }

// PrincipalFromContext returns the user resolved by Auth, or nil.
func PrincipalFromContext(ctx context.Context) *users.UserDTO {
	return fromContext[*users.UserDTO](ctx, principalKey)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return withValue(ctx, userIDKey, userID)
}

func WithRole(ctx context.Context, role string) context.Context {
	return withValue(ctx, roleKey, role)
}

// WithPrincipal stores the resolved user along with its id and role.
func WithPrincipal(ctx context.Context, principal *users.UserDTO) context.Context {
	if principal == nil {
		return ctx
	}
	ctx = WithRole(WithUserID(ctx, principal.ID), principalRole(principal))
	return withValue(ctx, principalKey, principal)
}

// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	userRoleKey  struct{}
	requestIDKey struct{}
)

const roleAdmin = "admin"

// WithIdentity stores the authenticated user and role in one step.
func WithIdentity(ctx context.Context, id uuid.UUID, role string) context.Context {
	return WithUserRole(WithUserID(ctx, id), role)
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. A missing or nil UUID
// reports false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserRole stores the authenticated user's role in the context.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey{}, role)
}

// UserRoleFromCtx returns the role stored by the auth middleware, or "".
func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey{}).(string)
	return role
}

// HasRole reports whether the caller holds one of roles.
func HasRole(ctx context.Context, roles ...string) bool {
	got := UserRoleFromCtx(ctx)
	if got == "" {
		return false
	}
	for _, r := range roles {
		if r == got {
			return true
		}
	}
	return false
}

// IsAdminCtx reports whether the context belongs to an admin.
func IsAdminCtx(ctx context.Context) bool {
	return HasRole(ctx, roleAdmin)
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

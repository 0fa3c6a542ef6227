package utils

import (
	"context"

	"cantina-be/internal/user"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userRoleKey contextKey = "role"
)

// SetUserContext stores the verified identity for downstream handlers.
// Called by the auth middleware once the bearer token checks out.
func SetUserContext(ctx context.Context, id int64, role user.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	ctx = context.WithValue(ctx, userRoleKey, role)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func GetUserRoleFromContext(ctx context.Context) user.Role {
	role, _ := ctx.Value(userRoleKey).(user.Role)
	return role
}

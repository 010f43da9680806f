package utils

import (
	"context"

	"restaurant-ordering/internal/data/entity"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
	TokenKey  contextKey = "token"
)

// SetActorContext stores the resolved actor (id + role) in the request context.
// Resolution happens once, in the session middleware; everything downstream
// receives the actor as an explicit value.
func SetActorContext(ctx context.Context, userID uuid.UUID, role entity.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, RoleKey, string(role))
	return ctx
}

// GetActorFromContext rebuilds the actor stored by the session middleware.
func GetActorFromContext(ctx context.Context) (entity.Actor, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return entity.Actor{}, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return entity.Actor{}, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return entity.Actor{}, false
	}

	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return entity.Actor{}, false
	}

	roleStr, ok := roleVal.(string)
	if !ok {
		return entity.Actor{}, false
	}

	return entity.Actor{ID: userID, Role: entity.Role(roleStr)}, true
}

// GetTokenFromContext returns the raw session token from context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

// SetTokenContext stores the raw session token in context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

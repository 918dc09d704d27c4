package httpapi

import (
	"context"

	"github.com/cahfua/restaurant-api/internal/domain"
)

type contextKey int

const userKey contextKey = iota

// WithUser stores the authenticated user on the request context.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the authenticated user, if the guard let one through.
func UserFrom(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}

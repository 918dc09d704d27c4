package service

import (
	"context"

	"github.com/cahfua/restaurant-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceServiceInterface is what the HTTP layer sees for every entity.
type ResourceServiceInterface interface {
	List(ctx context.Context) ([]bson.M, error)
	Get(ctx context.Context, id string) (bson.M, error)
	Create(ctx context.Context, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, id string, payload map[string]any) error
	Delete(ctx context.Context, id string) error
}

// Collection is the slice of the document store a resource needs.
type Collection interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// SessionStore keeps the token → user id mapping behind the auth flow.
type SessionStore interface {
	Put(ctx context.Context, token, userID string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// UserDirectory resolves and upserts users for the OAuth flow.
type UserDirectory interface {
	UpsertGoogleUser(ctx context.Context, googleID, name, email string) (domain.User, error)
	FindUser(ctx context.Context, id primitive.ObjectID) (domain.User, bool, error)
}

// OrderPublisher emits order lifecycle events.
type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// AuthServiceInterface is the login/session surface used by the HTTP layer.
type AuthServiceInterface interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (domain.User, string, error)
	CurrentUser(ctx context.Context, token string) (domain.User, bool, error)
	Logout(ctx context.Context, token string) error
}

var _ ResourceServiceInterface = (*Resource)(nil)
var _ AuthServiceInterface = (*AuthService)(nil)

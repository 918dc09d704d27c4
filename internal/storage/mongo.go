package storage

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/cahfua/restaurant-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMissingURI is returned when the store is used without a configured
// connection string.
var ErrMissingURI = errors.New("MONGO_URI is missing in environment variables")

// Store hands out collections backed by a single lazily established Mongo
// connection. The first operation dials, every later one reuses the same
// client. A dropped connection is not retried here, the failure surfaces
// on the next operation.
type Store struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(uri, dbName string) *Store {
	return &Store{uri: uri, dbName: dbName}
}

func (s *Store) acquire(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}
	if s.uri == "" {
		return nil, ErrMissingURI
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, err
	}

	s.client = client
	s.db = client.Database(s.dbName)
	log.Println("Connected to MongoDB")
	return s.db, nil
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	return err
}

// Collection returns a handle scoped to one named collection. The handle is
// cheap, the underlying connection is shared.
func (s *Store) Collection(name string) *Collection {
	return &Collection{store: s, name: name}
}

type Collection struct {
	store *Store
	name  string
}

func (c *Collection) FindAll(ctx context.Context) ([]bson.M, error) {
	db, err := c.store.acquire(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := db.Collection(c.name).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID returns (nil, nil) when no document matches.
func (c *Collection) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	db, err := c.store.acquire(ctx)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = db.Collection(c.name).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Collection) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	db, err := c.store.acquire(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	result, err := db.Collection(c.name).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// UpdateByID replaces the given fields and returns the match count, so the
// caller can distinguish a missing document from a successful write.
func (c *Collection) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	db, err := c.store.acquire(ctx)
	if err != nil {
		return 0, err
	}

	result, err := db.Collection(c.name).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (c *Collection) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	db, err := c.store.acquire(ctx)
	if err != nil {
		return 0, err
	}

	result, err := db.Collection(c.name).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *Collection) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	db, err := c.store.acquire(ctx)
	if err != nil {
		return false, err
	}

	count, err := db.Collection(c.name).CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertGoogleUser inserts or updates the user keyed by the Google subject
// id and returns the resulting document. Name and email are refreshed on
// every login, createdAt is only set on first insert.
func (s *Store) UpsertGoogleUser(ctx context.Context, googleID, name, email string) (domain.User, error) {
	db, err := s.acquire(ctx)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"name": name, "email": email, "updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now, "isActive": true},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user domain.User
	err = db.Collection("users").
		FindOneAndUpdate(ctx, bson.M{"googleId": googleID}, update, opts).
		Decode(&user)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// FindUser loads one user by internal id, (zero, false) when absent.
func (s *Store) FindUser(ctx context.Context, id primitive.ObjectID) (domain.User, bool, error) {
	db, err := s.acquire(ctx)
	if err != nil {
		return domain.User{}, false, err
	}

	var user domain.User
	err = db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}

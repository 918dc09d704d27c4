package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cahfua/restaurant-api/internal/validate"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mutation kinds handed to the AfterWrite hook.
const (
	mutationCreated = "created"
	mutationUpdated = "updated"
	mutationDeleted = "deleted"
)

// Hooks customize the generic CRUD flow per entity. Every hook is optional.
type Hooks struct {
	// CheckRefs verifies cross-entity references before any write.
	CheckRefs func(ctx context.Context, payload map[string]any) error
	// Build maps a validated payload to the stored fields. Timestamps and
	// the id are handled by the resource itself.
	Build func(payload map[string]any) bson.M
	// Present adjusts the 201 response body, e.g. echoing reference ids in
	// the client-supplied string form.
	Present func(resp map[string]any, payload map[string]any)
	// AfterWrite runs once a mutation committed. doc is nil on delete.
	AfterWrite func(ctx context.Context, mutation, id string, doc bson.M)
}

// Resource is one CRUD service shared by all entities, parameterized by a
// validation schema and per-entity hooks.
type Resource struct {
	col    Collection
	schema validate.Schema
	hooks  Hooks
}

func NewResource(col Collection, schema validate.Schema, hooks Hooks) *Resource {
	if hooks.Build == nil {
		panic("resource requires a Build hook")
	}
	return &Resource{col: col, schema: schema, hooks: hooks}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func (r *Resource) List(ctx context.Context) ([]bson.M, error) {
	return r.col.FindAll(ctx)
}

func (r *Resource) Get(ctx context.Context, id string) (bson.M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	doc, err := r.col.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (r *Resource) Create(ctx context.Context, payload map[string]any) (map[string]any, error) {
	if errs := r.schema.Check(payload); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	if r.hooks.CheckRefs != nil {
		if err := r.hooks.CheckRefs(ctx, payload); err != nil {
			return nil, err
		}
	}

	doc := r.hooks.Build(payload)
	doc["createdAt"] = time.Now()

	id, err := r.col.Insert(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}

	resp := map[string]any{"_id": id.Hex()}
	for k, v := range doc {
		resp[k] = v
	}
	if r.hooks.Present != nil {
		r.hooks.Present(resp, payload)
	}

	if r.hooks.AfterWrite != nil {
		r.hooks.AfterWrite(ctx, mutationCreated, id.Hex(), doc)
	}
	return resp, nil
}

func (r *Resource) Update(ctx context.Context, id string, payload map[string]any) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if errs := r.schema.Check(payload); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	if r.hooks.CheckRefs != nil {
		if err := r.hooks.CheckRefs(ctx, payload); err != nil {
			return err
		}
	}

	set := r.hooks.Build(payload)
	set["updatedAt"] = time.Now()

	matched, err := r.col.UpdateByID(ctx, oid, set)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}

	if r.hooks.AfterWrite != nil {
		r.hooks.AfterWrite(ctx, mutationUpdated, id, set)
	}
	return nil
}

func (r *Resource) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := r.col.DeleteByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	if r.hooks.AfterWrite != nil {
		r.hooks.AfterWrite(ctx, mutationDeleted, id, nil)
	}
	return nil
}

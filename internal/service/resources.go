package service

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/cahfua/restaurant-api/internal/domain"
	"github.com/cahfua/restaurant-api/internal/validate"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const taxRate = 0.07

func trimmed(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return strings.TrimSpace(s)
}

// checkRestaurantRef returns a CheckRefs hook verifying the payload's
// restaurantId resolves to an existing restaurant.
func checkRestaurantRef(restaurants Collection) func(ctx context.Context, payload map[string]any) error {
	return func(ctx context.Context, payload map[string]any) error {
		id, _ := payload["restaurantId"].(string)
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return ErrUnknownRestaurant
		}
		exists, err := restaurants.Exists(ctx, oid)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUnknownRestaurant
		}
		return nil
	}
}

func NewRestaurantService(restaurants Collection) *Resource {
	schema := validate.Schema{
		{Name: "name", Kind: validate.String},
		{Name: "location", Kind: validate.String},
		{Name: "phone", Kind: validate.String},
		{Name: "hours", Kind: validate.String},
	}

	return NewResource(restaurants, schema, Hooks{
		Build: func(payload map[string]any) bson.M {
			return bson.M{
				"name":     trimmed(payload, "name"),
				"location": trimmed(payload, "location"),
				"phone":    trimmed(payload, "phone"),
				"hours":    trimmed(payload, "hours"),
			}
		},
	})
}

func NewMenuItemService(menuItems, restaurants Collection) *Resource {
	schema := validate.Schema{
		{Name: "name", Kind: validate.String},
		{Name: "description", Kind: validate.String},
		{Name: "price", Kind: validate.Number},
		{Name: "category", Kind: validate.String},
		{Name: "restaurantId", Kind: validate.String, Check: validate.ObjectIDString("restaurantId")},
		{Name: "isAvailable", Kind: validate.Bool},
		{Name: "imageUrl", Kind: validate.String},
	}

	return NewResource(menuItems, schema, Hooks{
		CheckRefs: checkRestaurantRef(restaurants),
		Build: func(payload map[string]any) bson.M {
			restaurantID, _ := primitive.ObjectIDFromHex(trimmed(payload, "restaurantId"))
			price, _ := payload["price"].(float64)
			isAvailable, _ := payload["isAvailable"].(bool)
			return bson.M{
				"name":         trimmed(payload, "name"),
				"description":  trimmed(payload, "description"),
				"price":        price,
				"category":     trimmed(payload, "category"),
				"restaurantId": restaurantID,
				"isAvailable":  isAvailable,
				"imageUrl":     trimmed(payload, "imageUrl"),
			}
		},
		// echo restaurantId as the client-supplied string for readability
		Present: func(resp map[string]any, payload map[string]any) {
			resp["restaurantId"] = trimmed(payload, "restaurantId")
		},
	})
}

func NewOrderService(orders, restaurants Collection, publisher OrderPublisher) *Resource {
	schema := validate.Schema{
		{Name: "customerName", Kind: validate.String},
		{Name: "customerPhone", Kind: validate.String},
		{Name: "restaurantId", Kind: validate.String, Check: validate.ObjectIDString("restaurantId")},
		{Name: "items", Custom: validate.OrderItems},
		{Name: "status", Kind: validate.String},
		{Name: "notes", Kind: validate.String, Optional: true},
	}

	hooks := Hooks{
		CheckRefs: checkRestaurantRef(restaurants),
		Build: func(payload map[string]any) bson.M {
			restaurantID, _ := primitive.ObjectIDFromHex(trimmed(payload, "restaurantId"))
			items := orderItemDocs(payload)
			subtotal, tax, total := computeTotals(items)
			return bson.M{
				"customerName":  trimmed(payload, "customerName"),
				"customerPhone": trimmed(payload, "customerPhone"),
				"restaurantId":  restaurantID,
				"items":         items,
				"status":        trimmed(payload, "status"),
				"notes":         trimmed(payload, "notes"),
				"subtotal":      subtotal,
				"tax":           tax,
				"total":         total,
			}
		},
		// echo string restaurantId and the submitted items for readability
		Present: func(resp map[string]any, payload map[string]any) {
			resp["restaurantId"] = trimmed(payload, "restaurantId")
			resp["items"] = payload["items"]
		},
	}

	if publisher != nil {
		hooks.AfterWrite = func(ctx context.Context, mutation, id string, doc bson.M) {
			var eventType string
			switch mutation {
			case mutationCreated:
				eventType = domain.OrderCreated
			case mutationUpdated:
				eventType = domain.OrderUpdated
			case mutationDeleted:
				eventType = domain.OrderDeleted
			}
			event := domain.OrderEvent{
				Type:      eventType,
				OrderID:   id,
				Timestamp: time.Now(),
			}
			if doc != nil {
				if rid, ok := doc["restaurantId"].(primitive.ObjectID); ok {
					event.RestaurantID = rid.Hex()
				}
				if total, ok := doc["total"].(float64); ok {
					event.Total = total
				}
			}
			if err := publisher.PublishOrderEvent(ctx, event); err != nil {
				log.Printf("Failed to publish %s event for order %s: %v", event.Type, id, err)
			}
		}
	}

	return NewResource(orders, schema, hooks)
}

func NewUserService(users Collection) *Resource {
	schema := validate.Schema{
		{Name: "name", Kind: validate.String},
		{Name: "email", Kind: validate.String},
		{Name: "isActive", Kind: validate.Bool},
	}

	return NewResource(users, schema, Hooks{
		Build: func(payload map[string]any) bson.M {
			isActive, _ := payload["isActive"].(bool)
			return bson.M{
				"name":     trimmed(payload, "name"),
				"email":    strings.ToLower(trimmed(payload, "email")),
				"isActive": isActive,
			}
		},
	})
}

// orderItemDocs maps the submitted item list to stored documents. Item
// payloads are already validated; a missing menuItemId is simply omitted.
func orderItemDocs(payload map[string]any) []bson.M {
	raw, _ := payload["items"].([]any)
	docs := make([]bson.M, 0, len(raw))
	for _, el := range raw {
		item, _ := el.(map[string]any)
		name, _ := item["name"].(string)
		qty, _ := item["qty"].(float64)
		price, _ := item["price"].(float64)

		doc := bson.M{
			"name":  strings.TrimSpace(name),
			"qty":   qty,
			"price": price,
		}
		if id, _ := item["menuItemId"].(string); id != "" {
			if oid, err := primitive.ObjectIDFromHex(id); err == nil {
				doc["menuItemId"] = oid
			}
		}
		docs = append(docs, doc)
	}
	return docs
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// computeTotals derives subtotal, tax and total from the item list. Clients
// cannot set these fields, they are always recomputed here.
func computeTotals(items []bson.M) (subtotal, tax, total float64) {
	var sum float64
	for _, item := range items {
		qty, _ := item["qty"].(float64)
		price, _ := item["price"].(float64)
		sum += qty * price
	}
	subtotal = round2(sum)
	tax = round2(subtotal * taxRate)
	total = round2(subtotal + tax)
	return subtotal, tax, total
}

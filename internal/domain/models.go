package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Location  string             `json:"location" bson:"location"`
	Phone     string             `json:"phone" bson:"phone"`
	Hours     string             `json:"hours" bson:"hours"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type MenuItem struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Price        float64            `json:"price" bson:"price"`
	Category     string             `json:"category" bson:"category"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	IsAvailable  bool               `json:"isAvailable" bson:"isAvailable"`
	ImageURL     string             `json:"imageUrl" bson:"imageUrl"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type OrderItem struct {
	MenuItemID primitive.ObjectID `json:"menuItemId,omitempty" bson:"menuItemId,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Qty        float64            `json:"qty" bson:"qty"`
	Price      float64            `json:"price" bson:"price"`
}

type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerName  string             `json:"customerName" bson:"customerName"`
	CustomerPhone string             `json:"customerPhone" bson:"customerPhone"`
	RestaurantID  primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Status        string             `json:"status" bson:"status"`
	Notes         string             `json:"notes" bson:"notes"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	Tax           float64            `json:"tax" bson:"tax"`
	Total         float64            `json:"total" bson:"total"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	GoogleID  string             `json:"googleId,omitempty" bson:"googleId,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// OrderEvent is published to Kafka on order mutations.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	OrderCreated = "order_created"
	OrderUpdated = "order_updated"
	OrderDeleted = "order_deleted"
)

package main

import (
	"log"
	"net/http"

	"github.com/cahfua/restaurant-api/config"
	httpapi "github.com/cahfua/restaurant-api/internal/api/http"
	"github.com/cahfua/restaurant-api/internal/service"
	"github.com/cahfua/restaurant-api/internal/storage"
)

func main() {
	config.LoadEnv()

	// The Mongo connection is established lazily on first use, so boot
	// succeeds even while the database is still coming up.
	store := storage.NewStore(config.MongoURI(), config.MongoDB())

	var sessions service.SessionStore
	if config.RedisConfigured() {
		sessions = storage.NewRedisSessionStore(config.MustInitRedis(), config.SessionTTL())
	} else {
		log.Println("REDIS_HOST not set, using in-memory sessions")
		sessions = storage.NewMemorySessionStore()
	}

	var publisher service.OrderPublisher
	if config.KafkaConfigured() {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter("orders"))
	}

	restaurants := store.Collection("restaurants")
	menuItems := store.Collection("menuItems")
	orders := store.Collection("orders")
	users := store.Collection("users")

	handler := &httpapi.Handler{
		Restaurants:   service.NewRestaurantService(restaurants),
		MenuItems:     service.NewMenuItemService(menuItems, restaurants),
		Orders:        service.NewOrderService(orders, restaurants, publisher),
		Users:         service.NewUserService(users),
		Auth:          service.NewAuthService(config.GoogleOAuth(), store, sessions),
		PublicBaseURL: config.PublicBaseURL(),
		LoginRedirect: config.AuthSuccessRedirect(),
		SessionTTL:    config.SessionTTL(),
	}

	router := httpapi.NewRouter(handler)

	addr := ":" + config.Port()
	log.Printf("Restaurant API starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

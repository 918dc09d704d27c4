package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// LoadEnv loads a .env file if one is present. A missing file is fine,
// production deployments set real environment variables.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return GetEnv("PORT", "3000")
}

func MongoURI() string {
	return os.Getenv("MONGO_URI")
}

func MongoDB() string {
	return GetEnv("MONGO_DB", "restaurantDB")
}

func PublicBaseURL() string {
	return GetEnv("PUBLIC_BASE_URL", "http://localhost:"+Port())
}

func AuthSuccessRedirect() string {
	return GetEnv("AUTH_SUCCESS_REDIRECT", "/")
}

func SessionTTL() time.Duration {
	hours, err := strconv.Atoi(GetEnv("SESSION_TTL_HOURS", "72"))
	if err != nil || hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}

// RedisConfigured reports whether a Redis session backend is available.
// Without it the server falls back to in-memory sessions.
func RedisConfigured() bool {
	return os.Getenv("REDIS_HOST") != ""
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// KafkaConfigured reports whether an order event broker is available.
func KafkaConfigured() bool {
	return os.Getenv("KAFKA_BROKER") != ""
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func GoogleOAuth() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_CALLBACK_URL"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/userinfo.email",
		},
		Endpoint: google.Endpoint,
	}
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	Port         string
	MongoURI     string
	MongoDB      string
	RedisURL     string
	KafkaBrokers []string
	KafkaTopic   string
	JWTSecret    string

	// DefaultAddress is the placeholder assigned to accounts that never set
	// a shipping address; checkout refuses to settle against it.
	DefaultAddress string
	// DefaultPaymentOption is stamped onto newly created carts.
	DefaultPaymentOption string

	ProductCacheTTL time.Duration
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development. A .env file is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:                  getEnv("APP_ENV", "development"),
		Port:                 getEnv("PORT", "8082"),
		MongoURI:             getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		MongoDB:              getEnv("MONGODB_DB", "qkart"),
		RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379"),
		KafkaBrokers:         strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:           getEnv("KAFKA_TOPIC", "checkout.completed"),
		JWTSecret:            getEnv("JWT_SECRET", "dev-secret"),
		DefaultAddress:       getEnv("DEFAULT_ADDRESS", "ADDRESS_NOT_SET"),
		DefaultPaymentOption: getEnv("DEFAULT_PAYMENT_OPTION", "PAYMENT_OPTION_DEFAULT"),
		ProductCacheTTL:      time.Minute * 10,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

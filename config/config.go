package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Pricing holds the deployment-configured checkout rates. Shipping is a flat
// fee, waived entirely once the subtotal exceeds FreeShippingThreshold; a
// free-shipping deployment sets the fee itself to 0.
type Pricing struct {
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64
}

// JWT_SECRET and ADMIN_API_KEY are read by the auth middleware directly; only
// the settings main wires somewhere live here.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	Pricing  Pricing
}

// Load reads the environment (plus a local .env when present) into a Config.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "fashion"),
		Pricing: Pricing{
			TaxRate:               getEnvFloat("TAX_RATE", 0.10),
			ShippingFee:           getEnvFloat("SHIPPING_FEE", 200),
			FreeShippingThreshold: getEnvFloat("FREE_SHIPPING_THRESHOLD", 3000),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("⚠️ Invalid value for %s: %q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

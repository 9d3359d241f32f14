package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	ServiceName       string `mapstructure:"SERVICE_NAME"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	RedisNotifyQueueDB int    `mapstructure:"REDIS_NOTIFY_QUEUE_DB"`

	// Base URLs for the downstream services, keyed into the gateway registry
	// and used by the typed service clients.
	AuthServiceURL         string `mapstructure:"AUTH_SERVICE_URL"`
	ArtistServiceURL       string `mapstructure:"ARTIST_SERVICE_URL"`
	HotelServiceURL        string `mapstructure:"HOTEL_SERVICE_URL"`
	BookingServiceURL      string `mapstructure:"BOOKING_SERVICE_URL"`
	PaymentServiceURL      string `mapstructure:"PAYMENT_SERVICE_URL"`
	NotificationServiceURL string `mapstructure:"NOTIFICATION_SERVICE_URL"`
	AdminServiceURL        string `mapstructure:"ADMIN_SERVICE_URL"`

	// Remote call timeout in seconds for the service HTTP clients.
	ServiceClientTimeoutSec int `mapstructure:"SERVICE_CLIENT_TIMEOUT_SEC"`

	// Credits-to-earnings conversion applied when a booking completes.
	CreditEarningsRate int64 `mapstructure:"CREDIT_EARNINGS_RATE"`

	// Stripe secret key for credit package checkout.
	StripeKey string `mapstructure:"STRIPE_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("SERVICE_NAME", "stagelink")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_NOTIFY_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AUTH_SERVICE_URL", "http://localhost:4000")
	viper.SetDefault("ARTIST_SERVICE_URL", "http://localhost:4001")
	viper.SetDefault("HOTEL_SERVICE_URL", "http://localhost:4002")
	viper.SetDefault("BOOKING_SERVICE_URL", "http://localhost:4003")
	viper.SetDefault("PAYMENT_SERVICE_URL", "http://localhost:4004")
	viper.SetDefault("NOTIFICATION_SERVICE_URL", "http://localhost:4005")
	viper.SetDefault("ADMIN_SERVICE_URL", "http://localhost:4006")
	viper.SetDefault("SERVICE_CLIENT_TIMEOUT_SEC", 10)
	viper.SetDefault("CREDIT_EARNINGS_RATE", 50)
	viper.SetDefault("STRIPE_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

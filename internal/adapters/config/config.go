package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI                    string
	Database               string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// OutboxConfig drives the event relay. Entries that failed MaxAttempts times
// stay in the outbox for inspection; zero means retry forever.
type OutboxConfig struct {
	BatchSize   int
	Interval    time.Duration
	MaxAttempts int
}

type HTTPConfig struct {
	Port          string
	BindInterface string
	SessionSecret string
	SecureCookies bool
}

type UploadConfig struct {
	Dir               string
	PublicPath        string
	MaxSize           int64
	AllowedExtensions []string
}

type CacheConfig struct {
	ProductTTL time.Duration
}

type AntiForgeryConfig struct {
	TokenTTL time.Duration
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
	Verbose      bool
}

type Config struct {
	Mongo       MongoConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Outbox      OutboxConfig
	HTTP        HTTPConfig
	Upload      UploadConfig
	Cache       CacheConfig
	AntiForgery AntiForgeryConfig
	RateLimit   RateLimitConfig
	Logger      LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "estudos"),
			Timeout:                time.Duration(getIntEnv("MONGO_TIMEOUT", 10)) * time.Second,
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         time.Duration(getIntEnv("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			ServerSelectionTimeout: time.Duration(getIntEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5)) * time.Second,
		},
		Redis: RedisConfig{
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Outbox: OutboxConfig{
			BatchSize:   getIntEnv("OUTBOX_BATCH_SIZE", 100),
			Interval:    time.Duration(getIntEnv("OUTBOX_INTERVAL", 500)) * time.Millisecond,
			MaxAttempts: getIntEnv("OUTBOX_MAX_ATTEMPTS", 10),
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
			SessionSecret: getStringEnv("SESSION_SECRET", "dev-session-secret-change-me"),
			SecureCookies: getBoolEnv("SECURE_COOKIES", false),
		},
		Upload: UploadConfig{
			Dir:               getStringEnv("UPLOAD_DIR", "./uploads"),
			PublicPath:        getStringEnv("UPLOAD_PUBLIC_PATH", "/imagens"),
			MaxSize:           int64(getIntEnv("UPLOAD_MAX_SIZE_KB", 2048)) * 1024,
			AllowedExtensions: getListEnv("UPLOAD_ALLOWED_EXTENSIONS", []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}),
		},
		Cache: CacheConfig{
			ProductTTL: time.Duration(getIntEnv("PRODUCT_CACHE_TTL", 300)) * time.Second,
		},
		AntiForgery: AntiForgeryConfig{
			TokenTTL: time.Duration(getIntEnv("ANTIFORGERY_TOKEN_TTL", 3600)) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Limit:  getIntEnv("RATE_LIMIT", 30),
			Window: time.Duration(getIntEnv("RATE_LIMIT_WINDOW", 60)) * time.Second,
		},
		RabbitMQ: RabbitMQConfig{
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			ExchangeConfigs: []ExchangeConfig{
				{
					Name:       getStringEnv("RABBITMQ_EXCHANGE_NAME", "exchange.product"),
					Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "estudos"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
			Verbose:      getBoolEnv("LOG_VERBOSE", false),
		},
	}
}

// AllowsExtension reports whether ext (with leading dot) may be uploaded.
func (c UploadConfig) AllowsExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timeouts, TTLs, thresholds)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Idempotency IdempotencyConfig
	Webhook     WebhookConfig
	RateLimit   RateLimitConfig
	SLA         SLAConfig
	Outbound    OutboundConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// Empty Brokers disables kafka; service events are then only logged.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_SERVICE_EVENT_TOPIC" default:"rma.service-events"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Backend is one of postgres, redis, memory.
type IdempotencyConfig struct {
	Backend         string        `envconfig:"IDEMPOTENCY_BACKEND" default:"postgres"`
	TTL             time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
	StaleAfter      time.Duration `envconfig:"IDEMPOTENCY_STALE_AFTER" default:"2m"`
	PurgeInterval   time.Duration `envconfig:"IDEMPOTENCY_PURGE_INTERVAL" default:"15m"`
	MaxKeyLength    int           `envconfig:"IDEMPOTENCY_MAX_KEY_LENGTH" default:"255"`
	RetryAfterSecs  int           `envconfig:"IDEMPOTENCY_RETRY_AFTER_SECONDS" default:"2"`
	MaxCapturedBody int64         `envconfig:"IDEMPOTENCY_MAX_CAPTURED_BODY" default:"1048576"`
}

type WebhookConfig struct {
	ShopifySecret string `envconfig:"SHOPIFY_WEBHOOK_SECRET" required:"true"`
	MaxBodyBytes  int64  `envconfig:"WEBHOOK_MAX_BODY_BYTES" default:"1048576"`
}

type RateLimitConfig struct {
	CustomerFormRPS   float64       `envconfig:"CUSTOMER_FORM_RPS" default:"0.2"`
	CustomerFormBurst int           `envconfig:"CUSTOMER_FORM_BURST" default:"3"`
	IdleTimeout       time.Duration `envconfig:"RATE_LIMIT_IDLE_TIMEOUT" default:"1h"`
}

// PolicyFile points at a YAML priority→offset table; empty keeps the built-in defaults.
type SLAConfig struct {
	PolicyFile string `envconfig:"SLA_POLICY_FILE"`
}

type OutboundConfig struct {
	ShopifyBaseURL string        `envconfig:"SHOPIFY_API_BASE_URL" default:"http://localhost:9100/shopify"`
	ShopifyToken   string        `envconfig:"SHOPIFY_API_TOKEN"`
	KlaviyoBaseURL string        `envconfig:"KLAVIYO_API_BASE_URL" default:"http://localhost:9100/klaviyo"`
	KlaviyoToken   string        `envconfig:"KLAVIYO_API_TOKEN"`
	Timeout        time.Duration `envconfig:"OUTBOUND_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for tools such as the migrator.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Idempotency: IdempotencyConfig{
			Backend:         "memory",
			TTL:             24 * time.Hour,
			StaleAfter:      2 * time.Minute,
			PurgeInterval:   time.Hour,
			MaxKeyLength:    255,
			RetryAfterSecs:  2,
			MaxCapturedBody: 1 << 20,
		},
		Webhook: WebhookConfig{
			ShopifySecret: "test-webhook-secret",
			MaxBodyBytes:  1 << 20,
		},
		RateLimit: RateLimitConfig{
			CustomerFormRPS:   1,
			CustomerFormBurst: 2,
			IdleTimeout:       time.Hour,
		},
		Outbound: OutboundConfig{
			Timeout: 5 * time.Second,
		},
	}
}

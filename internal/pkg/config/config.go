package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream endpoints,
//   credentials, DB connection), security settings
// - default: Values common across all environments (timeouts, toggles), standard
//   settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Hotel   UpstreamConfig `envconfig:"HOTEL"`
	Airline UpstreamConfig `envconfig:"AIRLINE"`
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Checks  ChecksConfig
	APIAuth APIAuthConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// UpstreamConfig points at one supplier-type inventory service.
type UpstreamConfig struct {
	BaseURL  string        `envconfig:"UPSTREAM_URL" required:"true"`
	User     string        `envconfig:"UPSTREAM_USER" required:"true"`
	Password string        `envconfig:"UPSTREAM_PASSWORD" required:"true"`
	Timeout  time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	KeyTTL   time.Duration `envconfig:"REDIS_KEY_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
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

// ChecksConfig holds the default toggles for the three admission dimensions.
// A request may still enable or disable each dimension per call.
type ChecksConfig struct {
	Availability     bool `envconfig:"CHECK_AVAILABILITY" default:"true"`
	CancellationFees bool `envconfig:"CHECK_CANCELLATION_FEES" default:"true"`
	TotalPrice       bool `envconfig:"CHECK_TOTAL_PRICE" default:"true"`
}

// APIAuthConfig declares the API client allowed to call the engine.
// The secret is stored as a bcrypt hash, never plaintext.
type APIAuthConfig struct {
	ClientID         string `envconfig:"API_CLIENT_ID" required:"true"`
	ClientSecretHash string `envconfig:"API_CLIENT_SECRET_HASH" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Hotel: UpstreamConfig{
			BaseURL:  "http://localhost:18081",
			User:     "test",
			Password: "test",
			Timeout:  5 * time.Second,
		},
		Airline: UpstreamConfig{
			BaseURL:  "http://localhost:18082",
			User:     "test",
			Password: "test",
			Timeout:  5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr:   "localhost:16380",
			KeyTTL: time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Checks: ChecksConfig{
			Availability:     true,
			CancellationFees: true,
			TotalPrice:       true,
		},
	}
}

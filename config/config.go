package config

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name      string   `envconfig:"APP_NAME"  default:"frontdesk"`
		Timezone  string   `envconfig:"TIMEZONE"  default:"America/New_York"`
		Timezones []string `envconfig:"TIMEZONES" default:"America/New_York,America/Chicago,America/Denver,America/Los_Angeles"`
		CORS      struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable             bool `envconfig:"ENABLE"`
			MaxRequests        int  `envconfig:"MAX_REQUESTS"         default:"300"`
			WindowSeconds      int  `envconfig:"WINDOW_SECONDS"       default:"60"`
			LoginMaxAttempts   int  `envconfig:"LOGIN_MAX_ATTEMPTS"   default:"5"`
			LoginWindowSeconds int  `envconfig:"LOGIN_WINDOW_SECONDS" default:"300"`
		} `envconfig:"RATE_LIMITER"`
		APIKey        string `envconfig:"API_KEY"`
		FeedSize      int    `envconfig:"NOTIFICATION_FEED_SIZE" default:"50"`
		DefaultSeeded bool   `envconfig:"SEED"                   default:"true"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Enable  bool `envconfig:"ENABLE"`
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"60"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"      default:"frontdesk-access"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"     default:"frontdesk-refresh"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"60"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"1440"`
	} `envconfig:"JWT"`

	Staff struct {
		DefaultPassword string `envconfig:"DEFAULT_PASSWORD" default:"frontdesk123"`
	} `envconfig:"STAFF"`

	DB struct {
		Driver   string `envconfig:"DRIVER" default:"memory"`
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Pool           struct {
				MaxOpen         int `envconfig:"MAX_OPEN"          default:"10"`
				MaxIdle         int `envconfig:"MAX_IDLE"          default:"5"`
				MaxLifetimeMins int `envconfig:"MAX_LIFETIME_MINS" default:"30"`
			} `envconfig:"POOL"`
			Read  PostgresNode `envconfig:"READ"`
			Write PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable            bool     `envconfig:"ENABLE"`
		Brokers           []string `envconfig:"BROKERS"`
		ConsumerGroup     string   `envconfig:"CONSUMER_GROUP"     default:"frontdesk"`
		NotificationTopic string   `envconfig:"NOTIFICATION_TOPIC" default:"frontdesk.notifications"`
		SASL              struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Enable      bool    `envconfig:"ENABLE"`
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			Enable          bool   `envconfig:"ENABLE"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// PostgresNode is one postgres endpoint. Reads and writes may go to different nodes.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// UsesPostgres reports whether records are kept in PostgreSQL instead of the in-memory store.
func (c *Config) UsesPostgres() bool {
	return c.DB.Driver == DriverPostgres
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.DB.Postgres.Write.Host == "" || c.DB.Postgres.Read.Host == "" {
			return errors.New("DB_POSTGRES_READ_HOST and DB_POSTGRES_WRITE_HOST are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q, expected %s or %s", c.DB.Driver, DriverMemory, DriverPostgres)
	}

	if c.App.Timezone != "" && !slices.Contains(c.App.Timezones, c.App.Timezone) {
		return fmt.Errorf("APP_TIMEZONE %q is not one of APP_TIMEZONES", c.App.Timezone)
	}

	if c.Kafka.Enable && len(c.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required when kafka is enabled")
	}

	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}

	return nil
}

var (
	conf Config
	once sync.Once
)

// Load reads .env, when present, and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Msg("No .env file, using the process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		conf = *cfg

		log.Info().Str("env", conf.Server.Env).Str("driver", conf.DB.Driver).Msg("Configuration loaded")
	})

	return &conf
}

package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"frontdesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection holds separate pools for reads and writes. With a single database both point at
// the same node.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New connects to postgres when it is the configured driver; in memory mode it returns nil.
func New(cfg *config.Config) (*Connection, error) {
	if !cfg.UsesPostgres() {
		log.Info().Str("driver", cfg.DB.Driver).Msg("Postgres disabled, records are kept in memory")

		return nil, nil
	}

	write, err := connect(cfg, "write", cfg.DB.Postgres.Write)
	if err != nil {
		return nil, err
	}

	read, err := connect(cfg, "read", cfg.DB.Postgres.Read)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// DSN renders node as a postgres URL. Credentials are escaped and the prefix is prepended to
// the database name, so "test_" turns "hotel" into "test_hotel".
func DSN(node config.PostgresNode, prefix string) *url.URL {
	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	return &url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + prefix + node.Name,
		RawQuery: query.Encode(),
	}
}

func connect(cfg *config.Config, role string, node config.PostgresNode) (*sqlx.DB, error) {
	settings := cfg.DB.Postgres
	dsn := DSN(node, settings.Prefix).String()
	attempts := max(1, settings.MaxRetry)

	logger := log.With().Str("name", role).Str("host", node.Host).Str("db", settings.Prefix+node.Name).Logger()

	var lastErr error

	for attempt := range attempts {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		db, err := sqlx.ConnectContext(ctx, driverName, dsn)
		cancel()

		if err == nil {
			db.SetMaxOpenConns(settings.Pool.MaxOpen)
			db.SetMaxIdleConns(settings.Pool.MaxIdle)
			db.SetConnMaxLifetime(time.Duration(settings.Pool.MaxLifetimeMins) * time.Minute)

			logger.Info().Msg("Connected to database")

			return db, nil
		}

		lastErr = err

		logger.Warn().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database")

		if attempt+1 < attempts {
			time.Sleep(time.Duration(settings.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("could not connect to %s database after %d attempts: %w", role, attempts, lastErr)
}

// Close releases both pools. It is safe on a nil connection.
func (c *Connection) Close() {
	if c == nil {
		return
	}

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}

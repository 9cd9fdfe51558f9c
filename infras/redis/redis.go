package redis

import (
	"context"
	"net"
	"time"

	"frontdesk/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = time.Second
)

// New connects to the primary redis node. It returns nil when redis is disabled or cannot be
// reached, and the response cache then stays in process.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	if !config.Cache.Redis.Enable {
		log.Info().Msg("Redis disabled, caching in memory")

		return nil
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:         net.JoinHostPort(primary.Host, primary.Port),
		Password:     primary.Password,
		DB:           primary.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("host", primary.Host).Msg("Redis unreachable, caching in memory")

		_ = client.Close()

		return nil
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}

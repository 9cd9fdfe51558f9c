package logger

import (
	"io"
	"os"
	"time"

	"frontdesk/config"
	"frontdesk/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel applies when LOG_LEVEL is empty or unknown.
const DefaultLevel = zerolog.InfoLevel

// Init installs the global logger: console output in development, JSON lines tagged with
// the service name everywhere else.
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(ParseLevel(cfg.Server.LogLevel))

	log.Logger = zerolog.New(Writer(cfg.Server.Env, os.Stdout)).
		With().
		Timestamp().
		Str("service", cfg.App.Name).
		Logger()

	log.Debug().Str("loglevel", zerolog.GlobalLevel().String()).Str("env", cfg.Server.Env).Msg("Logger initialized")
}

func Writer(env string, out io.Writer) io.Writer {
	if env == constant.ServerEnvProduction {
		return out
	}

	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
}

func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return DefaultLevel
	}

	return parsed
}

// ErrorWithStack logs err with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

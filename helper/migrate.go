package helper

//nolint:revive
import (
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/postgres"
	"frontdesk/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// Actions lists every action with a one-line summary, in the order they are offered.
var Actions = []struct {
	Action  Action
	Summary string
}{
	{ActionUp, "Apply every pending migration"},
	{ActionStepUp, "Apply the next pending migration"},
	{ActionDown, "Roll back the latest migration"},
	{ActionDrop, "Roll back every migration"},
}

// ParseAction maps a command line argument onto a migration action.
func ParseAction(arg string) (Action, error) {
	switch action := Action(arg); action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop:
		return action, nil
	default:
		return "", fmt.Errorf("%w %q, use 'up', 'down', 'drop' or 'step-up'", ErrUnknownAction, arg)
	}
}

// DatabaseURL builds the migrate connection string for the write database.
func DatabaseURL(config *config.Config) string {
	dsn := postgres.DSN(config.DB.Postgres.Write, config.DB.Postgres.Prefix)

	query := dsn.Query()
	query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, DatabaseURL(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action Action) error {
	if !config.UsesPostgres() {
		log.Info().Str("driver", config.DB.Driver).Msg("Nothing to migrate, records are kept in memory")

		return nil
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		log.Warn().Err(verr).Msg("Could not read schema version")
	}

	log.Info().Str("action", string(action)).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

// AutoMigrate brings the schema up to date when enabled in config.
func AutoMigrate(config *config.Config) error {
	if !config.DB.Postgres.AutoMigrate {
		return nil
	}

	return Runner(config, ActionUp)
}

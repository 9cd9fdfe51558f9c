package main

import (
	"os"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newRootCmd offers one subcommand per migration action, each handed to run.
func newRootCmd(run func(helper.Action) error) *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the front desk database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, entry := range helper.Actions {
		action := entry.Action

		root.AddCommand(&cobra.Command{
			Use:   string(action),
			Short: entry.Summary,
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return run(action)
			},
		})
	}

	return root
}

func main() {
	cfg := config.Get()
	logger.Init(cfg)

	root := newRootCmd(func(action helper.Action) error {
		return helper.Runner(cfg, action)
	})

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}

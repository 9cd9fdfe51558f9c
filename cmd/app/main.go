package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Front Desk API
// @version 1.0
// @description Hotel front desk backend: guests, check-in, rooms, reservations, tasks and loyalty.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	if err := server.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")

		stop()
		os.Exit(1)
	}
}

package di

import (
	"context"
	"time"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	checkinModel "frontdesk/internal/domains/checkin/model"
	checkinRepository "frontdesk/internal/domains/checkin/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepository "frontdesk/internal/domains/guest/repository"
	helpModel "frontdesk/internal/domains/help/model"
	helpRepository "frontdesk/internal/domains/help/repository"
	loyaltyModel "frontdesk/internal/domains/loyalty/model"
	loyaltyRepository "frontdesk/internal/domains/loyalty/repository"
	reservationModel "frontdesk/internal/domains/reservation/model"
	reservationRepository "frontdesk/internal/domains/reservation/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	settingsModel "frontdesk/internal/domains/settings/model"
	settingsRepository "frontdesk/internal/domains/settings/repository"
	staffModel "frontdesk/internal/domains/staff/model"
	staffRepository "frontdesk/internal/domains/staff/repository"
	taskModel "frontdesk/internal/domains/task/model"
	taskRepository "frontdesk/internal/domains/task/repository"
	"frontdesk/seed"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	"frontdesk/shared/notify"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// catalogDeps are the collaborators every catalog shares.
type catalogDeps struct {
	cache    cache.Cache
	cfg      *config.Config
	otel     otel.Otel
	notifier notify.Notifier
}

func provideCatalogDeps(cache cache.Cache, cfg *config.Config, otel otel.Otel, notifier notify.Notifier) catalogDeps {
	return catalogDeps{cache: cache, cfg: cfg, otel: otel, notifier: notifier}
}

func provideGuestCatalog(repo guestRepository.Guest, deps catalogDeps) *catalog.Catalog[guestModel.Guest] {
	return catalog.New[guestModel.Guest](guestModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideQueueCatalog(repo checkinRepository.Queue, deps catalogDeps) *catalog.Catalog[checkinModel.QueueEntry] {
	return catalog.New[checkinModel.QueueEntry](checkinModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideRoomCatalog(repo roomRepository.Room, deps catalogDeps) *catalog.Catalog[roomModel.Room] {
	return catalog.New[roomModel.Room](roomModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideReservationCatalog(repo reservationRepository.Reservation, deps catalogDeps) *catalog.Catalog[reservationModel.Reservation] {
	return catalog.New[reservationModel.Reservation](reservationModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideTaskCatalog(repo taskRepository.Task, deps catalogDeps) *catalog.Catalog[taskModel.Task] {
	return catalog.New[taskModel.Task](taskModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideMemberCatalog(repo loyaltyRepository.Member, deps catalogDeps) *catalog.Catalog[loyaltyModel.Member] {
	return catalog.New[loyaltyModel.Member](loyaltyModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideTransactionCatalog(repo loyaltyRepository.Transaction, deps catalogDeps) *catalog.Catalog[loyaltyModel.Transaction] {
	return catalog.New[loyaltyModel.Transaction](loyaltyModel.TransactionDefinition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideStaffCatalog(repo staffRepository.Staff, deps catalogDeps) *catalog.Catalog[staffModel.Staff] {
	return catalog.New[staffModel.Staff](staffModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideSettingsCatalog(repo settingsRepository.Settings, deps catalogDeps) *catalog.Catalog[settingsModel.Settings] {
	return catalog.New[settingsModel.Settings](settingsModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

func provideSupportRequestCatalog(repo helpRepository.SupportRequest, deps catalogDeps) *catalog.Catalog[helpModel.SupportRequest] {
	return catalog.New[helpModel.SupportRequest](helpModel.Definition, repo, deps.cache, deps.cfg, deps.otel, deps.notifier)
}

// provideServer prepares the process around the HTTP server: schema, seed data and the
// notification listener, with their teardown registered for shutdown.
func provideServer(
	cfg *config.Config,
	routes router.Router,
	app middleware.AppMiddleware,
	auth middleware.AuthRole,
	db *postgres.Connection,
	redisClient *goRedis.Client,
	kafkaClient kafka.Client,
	tracer otel.Otel,
	seeder *seed.Seeder,
	notifier notify.Notifier,
) (*http.HTTP, error) {
	if err := helper.AutoMigrate(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := seeder.Run(ctx); err != nil {
		cancel()

		return nil, err
	}

	go notifier.Listen(ctx)

	server := http.New(cfg, routes, app, auth)

	server.OnShutdown(func() {
		cancel()

		if kafkaClient != nil {
			if err := kafkaClient.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close kafka client")
			}
		}

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close redis client")
			}
		}

		db.Close()

		flush, done := context.WithTimeout(context.Background(), time.Duration(cfg.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
		defer done()

		if err := tracer.Shutdown(flush); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	})

	return server, nil
}

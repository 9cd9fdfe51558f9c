//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/permissions"
	"frontdesk/seed"
	"frontdesk/shared/cache"
	"frontdesk/shared/notify"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	authService "frontdesk/internal/domains/auth/service"
	checkinRepository "frontdesk/internal/domains/checkin/repository"
	checkinService "frontdesk/internal/domains/checkin/service"
	dashboardService "frontdesk/internal/domains/dashboard/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	helpRepository "frontdesk/internal/domains/help/repository"
	helpService "frontdesk/internal/domains/help/service"
	loyaltyRepository "frontdesk/internal/domains/loyalty/repository"
	loyaltyService "frontdesk/internal/domains/loyalty/service"
	reservationRepository "frontdesk/internal/domains/reservation/repository"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	settingsRepository "frontdesk/internal/domains/settings/repository"
	settingsService "frontdesk/internal/domains/settings/service"
	staffRepository "frontdesk/internal/domains/staff/repository"
	staffService "frontdesk/internal/domains/staff/service"
	taskRepository "frontdesk/internal/domains/task/repository"
	taskService "frontdesk/internal/domains/task/service"

	authHandler "frontdesk/internal/handlers/auth"
	checkinHandler "frontdesk/internal/handlers/checkin"
	dashboardHandler "frontdesk/internal/handlers/dashboard"
	guestHandler "frontdesk/internal/handlers/guest"
	helpHandler "frontdesk/internal/handlers/help"
	loyaltyHandler "frontdesk/internal/handlers/loyalty"
	notificationHandler "frontdesk/internal/handlers/notification"
	reservationHandler "frontdesk/internal/handlers/reservation"
	roomHandler "frontdesk/internal/handlers/room"
	settingsHandler "frontdesk/internal/handlers/settings"
	staffHandler "frontdesk/internal/handlers/staff"
	taskHandler "frontdesk/internal/handlers/task"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	notify.New,
	provideCatalogDeps,
)

var seeding = wire.NewSet(
	seed.Load,
	seed.ProvideProgram,
	seed.ProvideGuide,
	seed.NewSeeder,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	provideGuestCatalog,
	guestService.New,
)

var checkinDomain = wire.NewSet(
	checkinRepository.New,
	provideQueueCatalog,
	checkinService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	provideRoomCatalog,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	provideReservationCatalog,
	reservationService.New,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	provideTaskCatalog,
	taskService.New,
)

var loyaltyDomain = wire.NewSet(
	loyaltyRepository.NewMember,
	loyaltyRepository.NewTransaction,
	provideMemberCatalog,
	provideTransactionCatalog,
	loyaltyService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	provideStaffCatalog,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	provideSettingsCatalog,
	settingsService.New,
)

var helpDomain = wire.NewSet(
	helpRepository.New,
	provideSupportRequestCatalog,
	helpService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	guestDomain,
	checkinDomain,
	roomDomain,
	reservationDomain,
	taskDomain,
	loyaltyDomain,
	staffDomain,
	authDomain,
	settingsDomain,
	helpDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	dashboardHandler.New,
	guestHandler.New,
	checkinHandler.New,
	roomHandler.New,
	reservationHandler.New,
	taskHandler.New,
	loyaltyHandler.New,
	settingsHandler.New,
	helpHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		seeding,
		domains,
		routing,
		provideServer,
	)

	return &http.HTTP{}, nil
}

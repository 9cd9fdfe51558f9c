package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/checkin"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/help"
	"frontdesk/internal/handlers/loyalty"
	"frontdesk/internal/handlers/notification"
	"frontdesk/internal/handlers/reservation"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/settings"
	"frontdesk/internal/handlers/staff"
	"frontdesk/internal/handlers/task"

	"github.com/go-chi/chi/v5"
)

// APIPrefix is the mount point of every versioned endpoint.
const APIPrefix = "/v1"

type DomainHandlers struct {
	Auth         auth.Handler
	Staff        staff.Handler
	Dashboard    dashboard.Handler
	Guest        guest.Handler
	CheckIn      checkin.Handler
	Room         room.Handler
	Reservation  reservation.Handler
	Task         task.Handler
	Loyalty      loyalty.Handler
	Settings     settings.Handler
	Help         help.Handler
	Notification notification.Handler
}

// mounter is a handler that registers its own route group.
type mounter interface {
	Router(router chi.Router)
}

func (d *DomainHandlers) mounters() []mounter {
	return []mounter{
		&d.Auth,
		&d.Staff,
		&d.Dashboard,
		&d.Guest,
		&d.CheckIn,
		&d.Room,
		&d.Reservation,
		&d.Task,
		&d.Loyalty,
		&d.Settings,
		&d.Help,
		&d.Notification,
	}
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(APIPrefix, func(routerGroup chi.Router) {
		for _, handler := range r.DomainHandlers.mounters() {
			handler.Router(routerGroup)
		}
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

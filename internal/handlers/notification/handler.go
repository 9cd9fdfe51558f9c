package notification

import (
	"net/http"
	"strconv"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/notify"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	notifier notify.Notifier
	otel     otel.Otel
}

func New(notifier notify.Notifier, otel otel.Otel) Handler {
	return Handler{
		notifier: notifier,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/notifications", handler.GetNotifications)
}

// GetNotifications
// @Summary Recent notifications
// @Description Newest first. Without a limit the whole feed is returned.
// @Tags Notification
// @Produce json
// @Param limit query int false "Maximum number of notifications"
// @Success 200 {object} response.Data[[]notify.Notification]
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	limit, _ := strconv.Atoi(r.URL.Query().Get(constant.RequestParamLimit))

	response.WithJSON(w, http.StatusOK, handler.notifier.Recent(limit))
}

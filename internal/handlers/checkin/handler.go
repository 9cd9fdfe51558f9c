package checkin

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/checkin/model/dto"
	"frontdesk/internal/domains/checkin/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramGuestID = "guestID"

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/check-in", func(routerGroup chi.Router) {
		routerGroup.Get("/guests", handler.LookupGuests)
		routerGroup.Post("/walk-ins", handler.WalkIn)
		routerGroup.Get("/queue", handler.GetQueue)
		routerGroup.Post("/queue", handler.Enqueue)
		routerGroup.Post("/queue/{id}", handler.ProcessArrival)
		routerGroup.Patch("/queue/{id}/status", handler.UpdateQueueStatus)
		routerGroup.Post("/{guestID}", handler.CheckIn)
	})
}

// LookupGuests
// @Summary Find guests to check in
// @Description Matches name, email or phone; an empty query returns every guest.
// @Tags Check-in
// @Produce json
// @Param q query string false "Name, email or phone"
// @Success 200 {object} response.Data[guestDto.GetGuestsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/check-in/guests [get]
// @Security BearerAuth
func (handler *Handler) LookupGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LookupGuests")
	defer scope.End()

	res, err := handler.service.Lookup(ctx, r.URL.Query().Get(constant.RequestParamQuery))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to look up guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CheckIn
// @Summary Check in a reserved guest
// @Tags Check-in
// @Produce json
// @Param guestID path string true "Guest ID"
// @Success 200 {object} response.Notified[any]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Guest is not Reserved"
// @Failure 500 {object} response.Error
// @Router /v1/check-in/{guestID} [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	notification, err := handler.service.CheckIn(ctx, chi.URLParam(r, paramGuestID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked in")

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// WalkIn
// @Summary Check in a guest without a reservation
// @Tags Check-in
// @Accept json
// @Produce json
// @Param request body dto.WalkInRequest true "Walk-in guest"
// @Success 201 {object} response.Notified[guestDto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-in/walk-ins [post]
// @Security BearerAuth
func (handler *Handler) WalkIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WalkIn")
	defer scope.End()

	req := dto.WalkInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, notification, err := handler.service.WalkIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in walk-in guest")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusCreated, res, notification)
}

// GetQueue
// @Summary Today's arrival queue
// @Tags Check-in
// @Produce json
// @Success 200 {object} response.Data[dto.QueueResponse]
// @Failure 500 {object} response.Error
// @Router /v1/check-in/queue [get]
// @Security BearerAuth
func (handler *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQueue")
	defer scope.End()

	res, err := handler.service.Queue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get arrival queue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Enqueue
// @Summary Add an expected arrival to the queue
// @Tags Check-in
// @Accept json
// @Produce json
// @Param request body dto.CreateQueueEntryRequest true "Arrival"
// @Success 201 {object} response.Notified[dto.QueueEntryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-in/queue [post]
// @Security BearerAuth
func (handler *Handler) Enqueue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Enqueue")
	defer scope.End()

	req := dto.CreateQueueEntryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, notification, err := handler.service.Enqueue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to enqueue arrival")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusCreated, res, notification)
}

// ProcessArrival
// @Summary Check in a queued arrival and remove it from the queue
// @Tags Check-in
// @Produce json
// @Param id path string true "Queue entry ID"
// @Success 200 {object} response.Notified[any]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-in/queue/{id} [post]
// @Security BearerAuth
func (handler *Handler) ProcessArrival(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessArrival")
	defer scope.End()

	notification, err := handler.service.ProcessArrival(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process arrival")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// UpdateQueueStatus
// @Summary Change the status of a queued arrival
// @Tags Check-in
// @Accept json
// @Produce json
// @Param id path string true "Queue entry ID"
// @Param request body gDto.UpdateStatusRequest true "priority, waiting or processing"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-in/queue/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateQueueStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQueueStatus")
	defer scope.End()

	req := gDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := handler.service.SetQueueStatus(ctx, chi.URLParam(r, constant.RequestParamID), req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update arrival status")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

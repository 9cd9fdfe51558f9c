package room

import (
	"context"
	"net/http"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Patch("/{id}/status", handler.UpdateRoomStatus)
		routerGroup.Patch("/{id}/cleaning-status", handler.UpdateCleaningStatus)
		routerGroup.Post("/{id}/reserve", handler.ReserveRoom)
		routerGroup.Post("/{id}/checkout", handler.CheckoutRoom)
		routerGroup.Post("/{id}/cleaning-requests", handler.RequestCleaning)
		routerGroup.Post("/{id}/image", handler.UploadImage)
	})
}

// GetRooms
// @Summary Search rooms
// @Description Case-insensitive substring search over room number, type, status and guest name.
// @Tags Room
// @Produce json
// @Param q query string false "Search text"
// @Param status query string false "Available, Occupied, Maintenance or Reserved"
// @Param type query string false "Standard, Deluxe, Suite or Presidential"
// @Param cleaning_status query string false "Clean or Needs Cleaning"
// @Param floor query int false "Floor"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()
	filter := shared.ExactFilter(model.TableName, map[string]string{
		model.FieldStatus:         query.Get(model.FieldStatus),
		model.FieldType:           query.Get(model.FieldType),
		model.FieldCleaningStatus: query.Get(model.FieldCleaningStatus),
		model.FieldFloor:          query.Get(model.FieldFloor),
	})

	res, err := handler.service.Search(ctx, query.Get(constant.RequestParamQuery), queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRoom
// @Summary Add a room
// @Description The room number is the identifier; adding an existing number is a conflict.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Notified[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, notification, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusCreated, res, notification)
}

// GetSummary
// @Summary Room counters
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.RoomSummaryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomSummary")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to summarise rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomByID
// @Summary Get a room by number
// @Tags Room
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRoom
// @Summary Update a room
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param request body dto.UpdateRoomRequest true "Changed fields"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// DeleteRoom
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} response.Notified[any]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	notification, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// UpdateRoomStatus
// @Summary Change a room's occupancy status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param request body gDto.UpdateStatusRequest true "Available, Occupied, Maintenance or Reserved"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	handler.updateAxis(w, r, ".UpdateRoomStatus", handler.service.SetStatus)
}

// UpdateCleaningStatus
// @Summary Change a room's cleaning status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param request body gDto.UpdateStatusRequest true "Clean or Needs Cleaning"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/cleaning-status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCleaningStatus(w http.ResponseWriter, r *http.Request) {
	handler.updateAxis(w, r, ".UpdateCleaningStatus", handler.service.SetCleaningStatus)
}

// ReserveRoom
// @Summary Reserve an available room
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param request body dto.ReserveRoomRequest false "Guest"
// @Success 200 {object} response.Notified[any]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room is not available"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/reserve [post]
// @Security BearerAuth
func (handler *Handler) ReserveRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReserveRoom")
	defer scope.End()

	req := dto.ReserveRoomRequest{}

	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	notification, err := handler.service.Reserve(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve room")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// CheckoutRoom
// @Summary Check the guest out of an occupied room
// @Tags Room
// @Produce json
// @Param id path string true "Room number"
// @Success 200 {object} response.Notified[any]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room is not occupied"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckoutRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutRoom")
	defer scope.End()

	notification, err := handler.service.Checkout(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out room")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// RequestCleaning
// @Summary Request housekeeping for a room
// @Description Raises a "Clean room <id>" task and marks the room as needing cleaning.
// @Tags Room
// @Produce json
// @Param id path string true "Room number"
// @Success 201 {object} response.Notified[any]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/cleaning-requests [post]
// @Security BearerAuth
func (handler *Handler) RequestCleaning(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestCleaning")
	defer scope.End()

	notification, err := handler.service.RequestCleaning(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request cleaning")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusCreated, nil, notification)
}

// UploadImage
// @Summary Upload a room picture
// @Description Accepts a multipart "image" file or a JSON body {"image": "<data URL>"}.
// @Tags Room
// @Accept mpfd
// @Accept json
// @Produce json
// @Param id path string true "Room number"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Notified[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomImage")
	defer scope.End()

	req := dto.UploadImageRequest{}

	if strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse multipart form")

			response.WithError(w, failure.BadRequest(err))

			return
		}

		file, fileHeader, err := r.FormFile(constant.FormImage)
		if err == nil {
			req.Image = fileHeader
			req.ImageFile = file

			defer file.Close()
		}

		if err := validator.ValidateStruct(&req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	} else if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, notification, err := handler.service.UploadImage(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room image")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, res, notification)
}

func (handler *Handler) updateAxis(w http.ResponseWriter, r *http.Request, scopeName string, set func(ctx context.Context, id, label string) (notify.Notification, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+scopeName)
	defer scope.End()

	req := gDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := set(ctx, chi.URLParam(r, constant.RequestParamID), req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

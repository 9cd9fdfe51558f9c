package help

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/help/model"
	"frontdesk/internal/domains/help/model/dto"
	"frontdesk/internal/domains/help/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Help
	otel    otel.Otel
}

func New(service service.Help, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/help", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuide)
		routerGroup.Post("/support-requests", handler.SubmitSupportRequest)
		routerGroup.Get("/support-requests", handler.GetSupportRequests)
		routerGroup.Patch("/support-requests/{id}/status", handler.UpdateSupportRequestStatus)
	})
}

// GetGuide
// @Summary Help and support
// @Description Support channels and frequently asked questions.
// @Tags Help
// @Produce json
// @Success 200 {object} response.Data[model.Guide]
// @Router /v1/help [get]
// @Security BearerAuth
func (handler *Handler) GetGuide(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuide")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Guide())
}

// SubmitSupportRequest
// @Summary Contact support
// @Tags Help
// @Accept json
// @Produce json
// @Param request body dto.CreateSupportRequest true "Support request"
// @Success 201 {object} response.Notified[dto.SupportRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/help/support-requests [post]
// @Security BearerAuth
func (handler *Handler) SubmitSupportRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitSupportRequest")
	defer scope.End()

	req := dto.CreateSupportRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, notification, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit support request")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusCreated, res, notification)
}

// GetSupportRequests
// @Summary Search support requests
// @Tags Help
// @Produce json
// @Param q query string false "Search text"
// @Param status query string false "Open or Resolved"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSupportRequestsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/help/support-requests [get]
// @Security BearerAuth
func (handler *Handler) GetSupportRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSupportRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()
	filter := shared.ExactFilter(model.TableName, map[string]string{
		model.FieldStatus: query.Get(model.FieldStatus),
	})

	res, err := handler.service.Search(ctx, query.Get(constant.RequestParamQuery), queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search support requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateSupportRequestStatus
// @Summary Open or resolve a support request
// @Tags Help
// @Accept json
// @Produce json
// @Param id path string true "Support request ID"
// @Param request body gDto.UpdateStatusRequest true "Open or Resolved"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/help/support-requests/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSupportRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSupportRequestStatus")
	defer scope.End()

	req := gDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := handler.service.SetStatus(ctx, chi.URLParam(r, constant.RequestParamID), req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update support request status")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

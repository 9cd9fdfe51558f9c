package loyalty

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/loyalty/model"
	"frontdesk/internal/domains/loyalty/model/dto"
	"frontdesk/internal/domains/loyalty/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Loyalty
	otel    otel.Otel
}

func New(service service.Loyalty, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/loyalty", func(routerGroup chi.Router) {
		routerGroup.Get("/program", handler.GetProgram)
		routerGroup.Route("/members", func(members chi.Router) {
			members.Get("/", handler.GetMembers)
			members.Post("/", handler.CreateMember)
			members.Get("/{id}", handler.GetMemberByID)
			members.Patch("/{id}", handler.UpdateMember)
			members.Delete("/{id}", handler.DeleteMember)
			members.Patch("/{id}/tier", handler.UpdateTier)
			members.Post("/{id}/points", handler.AddPoints)
			members.Post("/{id}/redemptions", handler.Redeem)
			members.Get("/{id}/history", handler.GetHistory)
		})
	})
}

// GetProgram
// @Summary Loyalty tiers and rewards
// @Tags Loyalty
// @Produce json
// @Success 200 {object} response.Data[dto.ProgramResponse]
// @Router /v1/loyalty/program [get]
// @Security BearerAuth
func (handler *Handler) GetProgram(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProgram")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Program(ctx))
}

// GetMembers
// @Summary Search loyalty members
// @Description Case-insensitive substring search over name, email and id.
// @Tags Loyalty
// @Produce json
// @Param q query string false "Search text"
// @Param tier query string false "Bronze, Silver, Gold or Diamond"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetMembersResponse]
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members [get]
// @Security BearerAuth
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()
	filter := shared.ExactFilter(model.TableName, map[string]string{
		model.FieldTier: query.Get(model.FieldTier),
	})

	res, err := handler.service.Search(ctx, query.Get(constant.RequestParamQuery), queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search loyalty members")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateMember
// @Summary Enroll a loyalty member
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "Member"
// @Success 201 {object} response.Notified[dto.MemberResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members [post]
// @Security BearerAuth
func (handler *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMember")
	defer scope.End()

	req := dto.CreateMemberRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, notification, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create loyalty member")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusCreated, res, notification)
}

// GetMemberByID
// @Summary Get a loyalty member
// @Tags Loyalty
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Data[dto.MemberResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMemberByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMemberByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get loyalty member")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateMember
// @Summary Update a loyalty member
// @Description Points may be set directly; the tier is left untouched.
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Changed fields"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMember")
	defer scope.End()

	req := dto.UpdateMemberRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update loyalty member")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// DeleteMember
// @Summary Remove a loyalty member
// @Tags Loyalty
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Notified[any]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMember")
	defer scope.End()

	notification, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete loyalty member")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// UpdateTier
// @Summary Change a member's tier
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body gDto.UpdateStatusRequest true "Bronze, Silver, Gold or Diamond"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members/{id}/tier [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTier")
	defer scope.End()

	req := gDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := handler.service.SetTier(ctx, chi.URLParam(r, constant.RequestParamID), req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update loyalty tier")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// AddPoints
// @Summary Add points to a member
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.AddPointsRequest true "Points"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members/{id}/points [post]
// @Security BearerAuth
func (handler *Handler) AddPoints(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPoints")
	defer scope.End()

	req := dto.AddPointsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := handler.service.AddPoints(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add loyalty points")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// Redeem
// @Summary Redeem a reward
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.RedeemRequest true "Reward"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error "Insufficient points"
// @Failure 404 {object} response.Error "Unknown member or reward"
// @Failure 409 {object} response.Error "Reward not available"
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members/{id}/redemptions [post]
// @Security BearerAuth
func (handler *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Redeem")
	defer scope.End()

	req := dto.RedeemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	notification, err := handler.service.Redeem(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to redeem reward")

		response.WithError(w, err)

		return
	}

	response.WithNotification(w, http.StatusOK, nil, notification)
}

// GetHistory
// @Summary Point history of a member
// @Tags Loyalty
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Data[dto.HistoryResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/members/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	res, err := handler.service.History(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get loyalty history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

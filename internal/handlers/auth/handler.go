package auth

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const errMissingIdentity = "missing staff identity"

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/refresh", handler.RefreshToken)
		routerGroup.Get("/me", handler.Me)
		routerGroup.Put("/password", handler.ChangePassword)
	})
}

// fail answers with err. Rejected credentials are routine at a front desk and are logged as
// warnings so they do not drown real faults.
func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	event := log.Error()
	if failure.GetCode(err) < http.StatusInternalServerError {
		event = log.Warn()
	}

	event.Err(err).Msg(msg)
	response.WithError(w, err)
}

// staffID is the identity the auth middleware put in the context.
func staffID(r *http.Request) (string, error) {
	id, _ := r.Context().Value(constant.ContextKeyUserID).(string)
	if id == "" {
		return "", failure.Unauthorized(errMissingIdentity)
	}

	return id, nil
}

// Login
// @Summary Login a staff member
// @Description Exchange an email and password for an access and refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Staff logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error "Invalid email or password"
// @Failure 403 {object} response.Error "Account deactivated"
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid login request")

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		fail(w, scope, err, "login rejected")

		return
	}

	scope.SetAttribute("staff.id", res.Staff.ID)
	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken
// @Summary Refresh a token pair
// @Description Issue a new token pair from a valid refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse] "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	var req dto.RefreshTokenRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid refresh request")

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		fail(w, scope, err, "refresh rejected")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Me
// @Summary Current staff member
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[staffDto.StaffResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	id, err := staffID(r)
	if err != nil {
		fail(w, scope, err, "request without identity")

		return
	}

	res, err := handler.service.Me(ctx, id)
	if err != nil {
		fail(w, scope, err, "failed to get current staff")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword
// @Summary Change own password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} response.Notified[any]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	id, err := staffID(r)
	if err != nil {
		fail(w, scope, err, "request without identity")

		return
	}

	var req dto.ChangePasswordRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid password change request")

		return
	}

	notification, err := handler.service.ChangePassword(ctx, req, id)
	if err != nil {
		fail(w, scope, err, "password change rejected")

		return
	}

	scope.AddEvent("password changed")
	response.WithNotification(w, http.StatusOK, nil, notification)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	staffModel "frontdesk/internal/domains/staff/model"
	staffDto "frontdesk/internal/domains/staff/model/dto"
	staffRepo "frontdesk/internal/domains/staff/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const errInvalidCredentials = "invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Me(ctx context.Context, staffID string) (staffDto.StaffResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, staffID string) (notify.Notification, error)
}

type serviceImpl struct {
	staffRepo  staffRepo.Staff
	cache      cache.Cache
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	notifier   notify.Notifier
}

func New(staffRepo staffRepo.Staff, cache cache.Cache, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, notifier notify.Notifier) Auth {
	return &serviceImpl{
		staffRepo:  staffRepo,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		notifier:   notifier,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	emailFilter := gDto.And(gDto.Eq(staffModel.TableName, staffModel.FieldEmail, req.Email))

	staff, err := s.staffRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(errInvalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, staff.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(errInvalidCredentials) //nolint:wrapcheck
	}

	if !staff.Active {
		return res, failure.Forbidden("staff account is deactivated") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(staff.ID, staff.Email, staff.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	lastLogin := dto.UpdateLastLoginRequest{LastLogin: now}

	fields := shared.TransformFields(lastLogin, staff.ID)

	if password.NeedsRehash(staff.Password) {
		if rehashed, err := password.Hash(req.Password); err == nil {
			fields[staffModel.FieldPassword] = rehashed
		}
	}

	if err := s.staffRepo.Update(ctx, fields, emailFilter); err != nil {
		log.Warn().Err(err).Str("staff_id", staff.ID).Msg("failed to update last login")
	} else {
		staff.LastLogin = &now

		shared.InvalidateCaches(ctx, s.cache, staffModel.EntityName+":")
	}

	res.FromTokenPair(tokenPair)
	res.Staff.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context, staffID string) (res staffDto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.get(ctx, staffID)
	if err != nil {
		return res, err
	}

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, staffID string) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.get(ctx, staffID)
	if err != nil {
		return res, err
	}

	if err := password.Verify(req.CurrentPassword, staff.Password); err != nil {
		return res, failure.BadRequestFromString("current password is incorrect") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if errors.Is(err, password.ErrPasswordTooLong) {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return res, fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, shared.Username(ctx))

	if err = s.staffRepo.Update(ctx, updatedFields, shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return res, fmt.Errorf("failed to update password: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, staffModel.EntityName+":")

	return s.notifier.Notify(ctx, staffModel.EntityName, staffID, "Password Updated", "Your password has been changed successfully."), nil
}

func (s *serviceImpl) get(ctx context.Context, staffID string) (staffModel.Staff, error) {
	staff, err := s.staffRepo.Get(ctx, shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return staff, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == "" {
		return staff, failure.NotFound("staff not found") //nolint:wrapcheck
	}

	return staff, nil
}

package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/password"

	"github.com/rs/zerolog/log"
)

type Staff interface {
	Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, notify.Notification, error)
	Update(ctx context.Context, id string, req dto.UpdateStaffRequest) (notify.Notification, error)
	Delete(ctx context.Context, id string) (notify.Notification, error)
}

type serviceImpl struct {
	catalog *catalog.Catalog[model.Staff]
	cfg     *config.Config
	otel    otel.Otel
}

func New(catalog *catalog.Catalog[model.Staff], cfg *config.Config, otel otel.Otel) Staff {
	return &serviceImpl{
		catalog: catalog,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	page, err := s.catalog.Search(ctx, query, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, page.Total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	staff, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(staff)

	return res, nil
}

// Create adds a staff account; without a password the configured default is used.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, notification notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err := s.catalog.Count(ctx, shared.ExactFilter(model.TableName, map[string]string{model.FieldEmail: req.Email}))
	if err != nil {
		return res, notification, err
	}

	if taken > 0 {
		return res, notification, failure.Conflict(fmt.Sprintf("email %s is already registered", req.Email)) //nolint:wrapcheck
	}

	plain := req.Password
	if plain == "" {
		plain = s.cfg.Staff.DefaultPassword
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, notification, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := req.ToModel(shared.Username(ctx), hashed)

	notification, err = s.catalog.Create(ctx, staff)
	if err != nil {
		return res, notification, err
	}

	res.FromModel(staff)

	return res, notification, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateStaffRequest) (notify.Notification, error) {
	return s.catalog.Update(ctx, id, req.ToUpdate())
}

// Delete removes another staff account; removing your own is refused.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res notify.Notification, err error) {
	if current, _ := ctx.Value(constant.ContextKeyUserID).(string); current == id {
		return res, failure.Conflict("you cannot delete your own account") //nolint:wrapcheck
	}

	return s.catalog.Delete(ctx, id)
}

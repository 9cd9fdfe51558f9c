package service

import (
	"context"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
)

type Guest interface {
	Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, notify.Notification, error)
	Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (notify.Notification, error)
	SetStatus(ctx context.Context, id, label string) (notify.Notification, error)
	Delete(ctx context.Context, id string) (notify.Notification, error)
}

type serviceImpl struct {
	catalog *catalog.Catalog[model.Guest]
}

func New(catalog *catalog.Catalog[model.Guest]) Guest {
	return &serviceImpl{
		catalog: catalog,
	}
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	page, err := s.catalog.Search(ctx, query, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, page.Total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	guest, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, notification notify.Notification, err error) {
	guest := req.ToModel(shared.Username(ctx))

	notification, err = s.catalog.Create(ctx, guest)
	if err != nil {
		return res, notification, err
	}

	res.FromModel(guest)

	return res, notification, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (notify.Notification, error) {
	return s.catalog.Update(ctx, id, req.ToUpdate())
}

func (s *serviceImpl) SetStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.catalog.SetStatus(ctx, id, model.FieldStatus, label)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (notify.Notification, error) {
	return s.catalog.Delete(ctx, id)
}

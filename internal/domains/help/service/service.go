package service

import (
	"context"

	"frontdesk/internal/domains/help/model"
	"frontdesk/internal/domains/help/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
)

const (
	titleSent       = "Support Request Sent"
	descriptionSent = "We've received your support request and will respond shortly."
)

type Help interface {
	Guide() model.Guide
	Submit(ctx context.Context, req dto.CreateSupportRequest) (dto.SupportRequestResponse, notify.Notification, error)
	Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSupportRequestsResponse, error)
	SetStatus(ctx context.Context, id, label string) (notify.Notification, error)
}

type serviceImpl struct {
	catalog *catalog.Catalog[model.SupportRequest]
	guide   model.Guide
}

func New(catalog *catalog.Catalog[model.SupportRequest], guide model.Guide) Help {
	return &serviceImpl{
		catalog: catalog,
		guide:   guide,
	}
}

func (s *serviceImpl) Guide() model.Guide {
	return s.guide
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.CreateSupportRequest) (res dto.SupportRequestResponse, notification notify.Notification, err error) {
	request := req.ToModel(shared.Username(ctx))

	if err = s.catalog.Insert(ctx, request); err != nil {
		return res, notification, err
	}

	res.FromModel(request)

	return res, s.catalog.Announce(ctx, request.ID, titleSent, descriptionSent), nil
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSupportRequestsResponse, err error) {
	page, err := s.catalog.Search(ctx, query, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, page.Total, params.Limit)

	return res, nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.catalog.SetStatus(ctx, id, model.FieldStatus, label)
}

package service

import (
	"context"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
	"frontdesk/shared/timezone"

	"github.com/shopspring/decimal"
)

type Reservation interface {
	Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, notify.Notification, error)
	Update(ctx context.Context, id string, req dto.UpdateReservationRequest) (notify.Notification, error)
	SetStatus(ctx context.Context, id, label string) (notify.Notification, error)
	SetPaymentStatus(ctx context.Context, id, label string) (notify.Notification, error)
	Delete(ctx context.Context, id string) (notify.Notification, error)
	RevenueOn(ctx context.Context, day time.Time) (decimal.Decimal, error)
}

type serviceImpl struct {
	catalog *catalog.Catalog[model.Reservation]
	otel    otel.Otel
}

func New(catalog *catalog.Catalog[model.Reservation], otel otel.Otel) Reservation {
	return &serviceImpl{
		catalog: catalog,
		otel:    otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	page, err := s.catalog.Search(ctx, query, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, page.Total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	reservation, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, notification notify.Notification, err error) {
	reservation := req.ToModel(shared.Username(ctx))

	notification, err = s.catalog.Create(ctx, reservation)
	if err != nil {
		return res, notification, err
	}

	res.FromModel(reservation)

	return res, notification, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateReservationRequest) (notify.Notification, error) {
	return s.catalog.Update(ctx, id, req.ToUpdate())
}

func (s *serviceImpl) SetStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.catalog.SetStatus(ctx, id, model.FieldStatus, label)
}

func (s *serviceImpl) SetPaymentStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.catalog.SetStatus(ctx, id, model.FieldPaymentStatus, label)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (notify.Notification, error) {
	return s.catalog.Delete(ctx, id)
}

// RevenueOn sums the paid reservations whose check-in falls on day.
func (s *serviceImpl) RevenueOn(ctx context.Context, day time.Time) (res decimal.Decimal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevenueOn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start := timezone.StartOfDay(day)

	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldPaymentStatus, model.PaymentPaid),
		gDto.GreaterEq(model.TableName, model.FieldCheckIn, start).Named("check_in_from"),
		gDto.LessEq(model.TableName, model.FieldCheckIn, timezone.EndOfDay(day)).Named("check_in_to"),
	)

	page, err := s.catalog.Search(ctx, "", gDto.QueryParams{}, filter)
	if err != nil {
		return res, err
	}

	res = decimal.Zero
	for _, reservation := range page.Items {
		res = res.Add(reservation.TotalAmount)
	}

	return res, nil
}

package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) time.Time {
	return time.Date(2025, 5, day, 0, 0, 0, 0, timezone.GetLocation())
}

func seedReservations() []model.Reservation {
	return []model.Reservation{
		{ID: "RES-1001", GuestName: "Jennifer Smith", RoomType: "Deluxe", RoomNumber: "304", CheckIn: date(18), CheckOut: date(21), Status: model.StatusConfirmed, PaymentStatus: model.PaymentPaid, TotalAmount: decimal.NewFromInt(540)},
		{ID: "RES-1002", GuestName: "Michael Chen", RoomType: "Suite", RoomNumber: "501", CheckIn: date(18), CheckOut: date(20), Status: model.StatusConfirmed, PaymentStatus: model.PaymentPartiallyPaid, TotalAmount: decimal.NewFromInt(640)},
		{ID: "RES-1003", GuestName: "Emma Davis", RoomType: "Standard", RoomNumber: "215", CheckIn: date(18), CheckOut: date(19), Status: model.StatusPending, PaymentStatus: model.PaymentPaid, TotalAmount: decimal.RequireFromString("119.50")},
		{ID: "RES-1004", GuestName: "Robert Wilson", RoomType: "Deluxe", RoomNumber: "412", CheckIn: date(19), CheckOut: date(22), Status: model.StatusPending, PaymentStatus: model.PaymentPaid, TotalAmount: decimal.NewFromInt(540)},
	}
}

func newService(t *testing.T) service.Reservation {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	store := repository.NewMemoryRepository[model.Reservation](model.EntityName, model.FieldID, ot)
	require.NoError(t, store.InsertBulk(context.Background(), seedReservations()))

	return service.New(catalog.New[model.Reservation](model.Definition, store, cache.NewMemoryCache(ot), cfg, ot, notify.New(cfg, nil)), ot)
}

func ids(res dto.GetReservationsResponse) []string {
	got := []string{}
	for _, reservation := range res.Reservations {
		got = append(got, reservation.ID)
	}

	return got
}

func TestReservationService_Search(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "guest name", query: "chen", want: []string{"RES-1002"}},
		{name: "room type", query: "DELUXE", want: []string{"RES-1001", "RES-1004"}},
		{name: "room number", query: "215", want: []string{"RES-1003"}},
		{name: "id", query: "res-100", want: []string{"RES-1001", "RES-1002", "RES-1003", "RES-1004"}},
		{name: "no match", query: "penthouse", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newService(t).Search(context.Background(), tt.query, gDto.QueryParams{}, gDto.FilterGroup{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res))
		})
	}
}

func TestReservationService_Delete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	notification, err := svc.Delete(ctx, "RES-1002")
	require.NoError(t, err)
	assert.Equal(t, "Reservation Deleted", notification.Title)

	res, err := svc.Search(ctx, "", gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, []string{"RES-1001", "RES-1003", "RES-1004"}, ids(res))

	_, err = svc.Delete(ctx, "RES-1002")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestReservationService_Create(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, notification, err := svc.Create(ctx, dto.CreateReservationRequest{
		GuestName:   "Sarah Johnson",
		RoomType:    "Suite",
		RoomNumber:  "502",
		CheckIn:     "2025-05-20",
		CheckOut:    "2025-05-23",
		TotalAmount: decimal.NewFromInt(960),
	})
	require.NoError(t, err)
	assert.Contains(t, created.ID, model.IDPrefix)
	assert.Equal(t, model.StatusPending, created.Status.Label)
	assert.Equal(t, model.PaymentUnpaid, created.PaymentStatus.Label)
	assert.Equal(t, 3, created.Nights)
	assert.Equal(t, "$960.00", created.AmountLabel)
	assert.Equal(t, "Reservation Created", notification.Title)

	res, err := svc.Search(ctx, "", gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, res.Reservations[0].ID)
}

func TestReservationService_Selectors(t *testing.T) {
	tests := []struct {
		name     string
		set      func(svc service.Reservation) error
		wantCode int
	}{
		{
			name: "confirm",
			set: func(svc service.Reservation) error {
				_, err := svc.SetStatus(context.Background(), "RES-1003", model.StatusConfirmed)

				return err
			},
		},
		{
			name: "partially paid",
			set: func(svc service.Reservation) error {
				_, err := svc.SetPaymentStatus(context.Background(), "RES-1001", model.PaymentPartiallyPaid)

				return err
			},
		},
		{
			name: "payment label on status axis",
			set: func(svc service.Reservation) error {
				_, err := svc.SetStatus(context.Background(), "RES-1001", model.PaymentPaid)

				return err
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown reservation",
			set: func(svc service.Reservation) error {
				_, err := svc.SetPaymentStatus(context.Background(), "RES-9999", model.PaymentPaid)

				return err
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set(newService(t))
			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestReservationService_RevenueOn(t *testing.T) {
	revenue, err := newService(t).RevenueOn(context.Background(), date(18).Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "659.50", revenue.StringFixed(2))
}

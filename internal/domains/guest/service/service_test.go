package service_test

import (
	"context"
	"net/http"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) service.Guest {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	store := repository.NewMemoryRepository[model.Guest](model.EntityName, model.FieldID, ot)

	require.NoError(t, store.InsertBulk(context.Background(), []model.Guest{
		{ID: "G1001", Name: "Jennifer Lawrence", Email: "jennifer@example.com", Phone: "555-123-4567", Status: model.StatusCheckedIn, RoomNumber: "301", VIP: true, LoyaltyTier: "Diamond", LoyaltyPoints: 15400},
		{ID: "G1002", Name: "Michael Brown", Email: "michael@example.com", Phone: "555-987-6543", Status: model.StatusReserved, RoomNumber: "205", LoyaltyTier: "Gold", LoyaltyPoints: 7800},
	}))

	return service.New(catalog.New[model.Guest](model.Definition, store, cache.NewMemoryCache(ot), cfg, ot, notify.New(cfg, nil)))
}

func TestGuestService_Search(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter gDto.FilterGroup
		want   []string
	}{
		{name: "jennifer only", query: "Jennifer", want: []string{"Jennifer Lawrence"}},
		{name: "empty query returns everybody", query: "", want: []string{"Jennifer Lawrence", "Michael Brown"}},
		{name: "phone digits", query: "987-65", want: []string{"Michael Brown"}},
		{name: "nobody", query: "Thomas", want: []string{}},
		{
			name:   "status filter",
			filter: gDto.FilterGroup{Filters: []any{gDto.Filter{Field: model.FieldStatus, Value: model.StatusReserved, Operator: gDto.FilterOperatorEq}}},
			want:   []string{"Michael Brown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)

			res, err := svc.Search(context.Background(), tt.query, gDto.QueryParams{}, tt.filter)
			require.NoError(t, err)

			got := []string{}
			for _, guest := range res.Guests {
				got = append(got, guest.Name)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), res.TotalData)
		})
	}
}

func TestGuestService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateGuestRequest
		wantStatus string
	}{
		{
			name:       "defaults to reserved",
			req:        dto.CreateGuestRequest{Name: "Ada Walker", Email: "ada@example.com", Phone: "555-000-1111", CheckIn: "2025-06-01", CheckOut: "2025-06-04"},
			wantStatus: model.StatusReserved,
		},
		{
			name:       "keeps explicit status",
			req:        dto.CreateGuestRequest{Name: "Ada Walker", Email: "ada@example.com", Phone: "555-000-1111", Status: model.StatusConfirmed},
			wantStatus: model.StatusConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			ctx := context.Background()

			created, notification, err := svc.Create(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, "Guest Created", notification.Title)
			assert.Equal(t, tt.wantStatus, created.Status.Label)
			assert.Equal(t, tt.req.CheckIn, created.CheckIn)

			res, err := svc.Search(ctx, "", gDto.QueryParams{}, gDto.FilterGroup{})
			require.NoError(t, err)
			assert.Len(t, res.Guests, 3)
			assert.Equal(t, created.ID, res.Guests[0].ID)
		})
	}
}

func TestGuestService_SetStatus(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	notification, err := svc.SetStatus(ctx, "G1002", model.StatusNoShow)
	require.NoError(t, err)
	assert.Equal(t, "Guest G1002 status changed to No Show.", notification.Description)

	guest, err := svc.Get(ctx, "G1002")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNoShow, guest.Status.Label)
	assert.Equal(t, "red", string(guest.Status.Tone))
	assert.Equal(t, "205", guest.RoomNumber)

	_, err = svc.SetStatus(ctx, "G1002", "Gone")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestGuestService_Update(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	phone := "555-111-2222"
	vip := true

	_, err := svc.Update(ctx, "G1002", dto.UpdateGuestRequest{Phone: &phone, VIP: &vip})
	require.NoError(t, err)

	guest, err := svc.Get(ctx, "G1002")
	require.NoError(t, err)
	assert.Equal(t, phone, guest.Phone)
	assert.True(t, guest.VIP)
	assert.Equal(t, model.StatusReserved, guest.Status.Label)

	_, err = svc.Update(ctx, "G4040", dto.UpdateGuestRequest{Phone: &phone})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

package guest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/internal/handlers/guest"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuests(t *testing.T) *catalog.Catalog[model.Guest] {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	store := repository.NewMemoryRepository[model.Guest](model.EntityName, model.FieldID, ot)

	require.NoError(t, store.InsertBulk(context.Background(), []model.Guest{
		{ID: "G1001", Name: "Jennifer Lawrence", Email: "jennifer@example.com", Phone: "555-123-4567", Status: model.StatusCheckedIn},
	}))

	return catalog.New[model.Guest](model.Definition, store, cache.NewMemoryCache(ot), cfg, ot, notify.New(cfg, nil))
}

func post(t *testing.T, guests *catalog.Catalog[model.Guest], body string) (int, map[string]any) {
	t.Helper()

	handler := guest.New(service.New(guests), mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	req := httptest.NewRequest(http.MethodPost, "/guests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return rec.Code, res
}

func TestHandler_CreateGuest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
		wantCount int
	}{
		{
			name:      "complete guest",
			body:      `{"name":"Sarah Williams","email":"sarah@example.com","phone":"555-222-3333"}`,
			wantCode:  http.StatusCreated,
			wantCount: 2,
		},
		{
			name:      "missing email and phone",
			body:      `{"name":"Sarah Williams"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "email is required",
			wantCount: 1,
		},
		{
			name:      "invalid email",
			body:      `{"name":"Sarah Williams","email":"sarah","phone":"555-222-3333"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "email",
			wantCount: 1,
		},
		{
			name:      "unknown status",
			body:      `{"name":"Sarah Williams","email":"sarah@example.com","phone":"555-222-3333","status":"Lost"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "status",
			wantCount: 1,
		},
		{
			name:      "empty body",
			wantCode:  http.StatusBadRequest,
			wantError: "request body is required",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guests := newGuests(t)

			code, body := post(t, guests, tt.body)
			assert.Equal(t, tt.wantCode, code)

			if tt.wantError != "" {
				assert.Contains(t, body["error"], tt.wantError)
			} else {
				assert.Equal(t, "Sarah Williams", body["data"].(map[string]any)["name"])
			}

			count, err := guests.Count(context.Background(), gDto.FilterGroup{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

package service_test

import (
	"context"
	"net/http"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/help/model"
	"frontdesk/internal/domains/help/model/dto"
	"frontdesk/internal/domains/help/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) service.Help {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	store := repository.NewMemoryRepository[model.SupportRequest](model.EntityName, model.FieldID, ot)

	guide := model.Guide{
		Channels: []model.Channel{{Name: "Call Support", Action: "+1 (555) 987-6543", Icon: "phone"}},
		FAQ:      []model.FAQ{{Question: "How do I process a check-in?", Answer: "Open the Check In page."}},
	}

	return service.New(catalog.New[model.SupportRequest](model.Definition, store, cache.NewMemoryCache(ot), cfg, ot, notify.New(cfg, nil)), guide)
}

func TestHelpService_Guide(t *testing.T) {
	guide := newService(t).Guide()

	require.Len(t, guide.Channels, 1)
	assert.Equal(t, "Call Support", guide.Channels[0].Name)
	require.Len(t, guide.FAQ, 1)
}

func TestHelpService_Submit(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	res, notification, err := svc.Submit(ctx, dto.CreateSupportRequest{
		Name:    "Alex Rivera",
		Email:   "alex@hotel.test",
		Subject: "Printer offline",
		Message: "The key card printer at desk 2 is offline.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Support Request Sent", notification.Title)
	assert.Equal(t, "We've received your support request and will respond shortly.", notification.Description)
	assert.Equal(t, model.StatusOpen, res.Status.Label)

	list, err := svc.Search(ctx, "printer", gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, list.SupportRequests, 1)
	assert.Equal(t, res.ID, list.SupportRequests[0].ID)

	notification, err = svc.SetStatus(ctx, res.ID, model.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, "Support Request Status Updated", notification.Title)

	_, err = svc.SetStatus(ctx, res.ID, "Escalated")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

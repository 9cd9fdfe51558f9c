package service_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/checkin/model"
	"frontdesk/internal/domains/checkin/model/dto"
	"frontdesk/internal/domains/checkin/service"
	guestModel "frontdesk/internal/domains/guest/model"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    service.CheckIn
	guests *catalog.Catalog[guestModel.Guest]
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	store := cache.NewMemoryCache(ot)
	notifier := notify.New(cfg, nil)
	ctx := context.Background()

	guestRepo := repository.NewMemoryRepository[guestModel.Guest](guestModel.EntityName, guestModel.FieldID, ot)
	require.NoError(t, guestRepo.InsertBulk(ctx, []guestModel.Guest{
		{ID: "G1001", Name: "Jennifer Lawrence", Email: "jennifer@example.com", Phone: "555-123-4567", Status: guestModel.StatusCheckedIn},
		{ID: "G1002", Name: "Michael Brown", Email: "michael@example.com", Phone: "555-987-6543", Status: guestModel.StatusReserved},
	}))

	day := time.Date(2025, 5, 18, 0, 0, 0, 0, timezone.GetLocation())
	queueRepo := repository.NewMemoryRepository[model.QueueEntry](model.EntityName, model.FieldID, ot)
	require.NoError(t, queueRepo.InsertBulk(ctx, []model.QueueEntry{
		{ID: "Q1", GuestName: "John Smith", RoomNumber: "204", ArrivalTime: dto.At(day, "15:30"), Status: model.StatusPriority},
		{ID: "Q2", GuestID: "G1002", GuestName: "Michael Brown", RoomNumber: "205", ArrivalTime: dto.At(day, "15:45"), Status: model.StatusWaiting},
	}))

	guests := catalog.New[guestModel.Guest](guestModel.Definition, guestRepo, store, cfg, ot, notifier)
	queue := catalog.New[model.QueueEntry](model.Definition, queueRepo, store, cfg, ot, notifier)

	return fixture{svc: service.New(guests, queue, ot), guests: guests}
}

func TestCheckInService_Lookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Lookup(ctx, "")
	require.NoError(t, err)
	assert.Len(t, res.Guests, 2)
	assert.Equal(t, 2, res.TotalData)

	res, err = f.svc.Lookup(ctx, "Jennifer")
	require.NoError(t, err)
	require.Len(t, res.Guests, 1)
	assert.Equal(t, "Jennifer Lawrence", res.Guests[0].Name)

	res, err = f.svc.Lookup(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, res.Guests)
}

func TestCheckInService_CheckInConcurrently(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const callers = 8

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)

	for range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := f.svc.CheckIn(ctx, "G1002")

			switch {
			case err == nil:
				succeeded.Add(1)
			case failure.GetCode(err) == http.StatusConflict:
				conflicts.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(callers-1), conflicts.Load())
}

func TestCheckInService_CheckIn(t *testing.T) {
	tests := []struct {
		name     string
		guestID  string
		wantCode int
	}{
		{name: "reserved guest", guestID: "G1002"},
		{name: "already checked in", guestID: "G1001", wantCode: http.StatusConflict},
		{name: "unknown guest", guestID: "G9999", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			notification, err := f.svc.CheckIn(ctx, tt.guestID)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Empty(t, notification.Title)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Guest Checked In", notification.Title)
			assert.Equal(t, "Guest ID: G1002 has been successfully checked in.", notification.Description)

			guest, err := f.guests.Get(ctx, tt.guestID)
			require.NoError(t, err)
			assert.Equal(t, guestModel.StatusCheckedIn, guest.Status)

			_, err = f.svc.CheckIn(ctx, tt.guestID)
			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		})
	}
}

func TestCheckInService_WalkIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	guest, notification, err := f.svc.WalkIn(ctx, dto.WalkInRequest{Name: "Ada Walker", Email: "ada@example.com", Phone: "555-000-1111", RoomNumber: "102"})
	require.NoError(t, err)
	assert.Equal(t, guestModel.StatusCheckedIn, guest.Status.Label)
	assert.NotEmpty(t, guest.CheckIn)
	assert.Contains(t, notification.Description, guest.ID)

	res, err := f.svc.Lookup(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, res.Guests, 1)
	assert.Equal(t, guest.ID, res.Guests[0].ID)
}

func TestCheckInService_Queue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	queue, err := f.svc.Queue(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, queue.Total)
	assert.Equal(t, "3:30 PM", queue.Queue[0].ArrivalTime)
	assert.Equal(t, "priority", queue.Queue[0].Status.Label)

	_, _, err = f.svc.Enqueue(ctx, dto.CreateQueueEntryRequest{GuestName: "Sarah Williams", RoomNumber: "103", ArrivalTime: "16:15"})
	require.NoError(t, err)

	queue, err = f.svc.Queue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, queue.Total)
}

func TestCheckInService_ProcessArrival(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	notification, err := f.svc.ProcessArrival(ctx, "Q2")
	require.NoError(t, err)
	assert.Equal(t, "Guest ID: G1002 has been successfully checked in.", notification.Description)

	guest, err := f.guests.Get(ctx, "G1002")
	require.NoError(t, err)
	assert.Equal(t, guestModel.StatusCheckedIn, guest.Status)

	queue, err := f.svc.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, queue.Queue, 1)
	assert.Equal(t, "Q1", queue.Queue[0].ID)

	_, err = f.svc.ProcessArrival(ctx, "Q2")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

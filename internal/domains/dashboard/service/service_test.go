package service_test

import (
	"context"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	checkinModel "frontdesk/internal/domains/checkin/model"
	checkinDto "frontdesk/internal/domains/checkin/model/dto"
	checkinService "frontdesk/internal/domains/checkin/service"
	"frontdesk/internal/domains/dashboard/service"
	guestModel "frontdesk/internal/domains/guest/model"
	reservationModel "frontdesk/internal/domains/reservation/model"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) service.Dashboard {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	memory := cache.NewMemoryCache(ot)
	notifier := notify.New(cfg, nil)
	ctx := context.Background()
	today := timezone.StartOfDay(timezone.Now())

	roomRepo := repository.NewMemoryRepository[roomModel.Room](roomModel.EntityName, roomModel.FieldID, ot)
	require.NoError(t, roomRepo.InsertBulk(ctx, []roomModel.Room{
		{ID: "101", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, CleaningStatus: roomModel.CleaningClean},
		{ID: "102", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, CleaningStatus: roomModel.CleaningNeedsCleaning},
		{ID: "201", Type: roomModel.TypeDeluxe, Status: roomModel.StatusOccupied, CleaningStatus: roomModel.CleaningClean},
	}))

	guestRepo := repository.NewMemoryRepository[guestModel.Guest](guestModel.EntityName, guestModel.FieldID, ot)
	require.NoError(t, guestRepo.InsertBulk(ctx, []guestModel.Guest{
		{ID: "G1001", Name: "Jennifer Lawrence", Status: guestModel.StatusCheckedIn},
		{ID: "G1002", Name: "Michael Brown", Status: guestModel.StatusReserved},
		{ID: "G1003", Name: "Sarah Johnson", Status: guestModel.StatusCheckedIn},
	}))

	queueRepo := repository.NewMemoryRepository[checkinModel.QueueEntry](checkinModel.EntityName, checkinModel.FieldID, ot)
	require.NoError(t, queueRepo.InsertBulk(ctx, []checkinModel.QueueEntry{
		{ID: "Q2", GuestName: "Maria Garcia", RoomNumber: "315", ArrivalTime: checkinDto.At(today, "15:45"), Status: checkinModel.StatusWaiting},
		{ID: "Q1", GuestName: "John Smith", RoomNumber: "204", ArrivalTime: checkinDto.At(today, "15:30"), Status: checkinModel.StatusPriority},
	}))

	reservationRepo := repository.NewMemoryRepository[reservationModel.Reservation](reservationModel.EntityName, reservationModel.FieldID, ot)
	require.NoError(t, reservationRepo.InsertBulk(ctx, []reservationModel.Reservation{
		{ID: "RES-1", CheckIn: today, PaymentStatus: reservationModel.PaymentPaid, TotalAmount: decimal.RequireFromString("540")},
		{ID: "RES-2", CheckIn: today, PaymentStatus: reservationModel.PaymentUnpaid, TotalAmount: decimal.RequireFromString("640")},
		{ID: "RES-3", CheckIn: today.AddDate(0, 0, 1), PaymentStatus: reservationModel.PaymentPaid, TotalAmount: decimal.RequireFromString("99")},
	}))

	rooms := catalog.New[roomModel.Room](roomModel.Definition, roomRepo, memory, cfg, ot, notifier)
	guests := catalog.New[guestModel.Guest](guestModel.Definition, guestRepo, memory, cfg, ot, notifier)
	queue := catalog.New[checkinModel.QueueEntry](checkinModel.Definition, queueRepo, memory, cfg, ot, notifier)
	reservations := catalog.New[reservationModel.Reservation](reservationModel.Definition, reservationRepo, memory, cfg, ot, notifier)

	return service.New(
		rooms,
		guests,
		checkinService.New(guests, queue, ot),
		reservationService.New(reservations, ot),
		ot,
	)
}

func TestDashboardService_Overview(t *testing.T) {
	res, err := newService(t).Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.AvailableRooms)
	assert.Equal(t, 2, res.Stats.CurrentGuests)
	assert.Equal(t, 2, res.Stats.TodaysCheckIns)
	assert.Equal(t, "$540.00", res.Stats.TodaysRevenueLabel)

	require.Len(t, res.Queue.Queue, 2)
	assert.Equal(t, "Q1", res.Queue.Queue[0].ID)

	assert.Equal(t, 2, res.RoomTypes[0].Available)
	assert.Equal(t, 1, res.RoomTypes[1].Occupied)
}

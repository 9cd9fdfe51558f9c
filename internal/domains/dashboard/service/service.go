package service

import (
	"context"

	"frontdesk/infras/otel"
	checkinService "frontdesk/internal/domains/checkin/service"
	"frontdesk/internal/domains/dashboard/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"

	"golang.org/x/sync/errgroup"
)

type Dashboard interface {
	Overview(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	rooms        *catalog.Catalog[roomModel.Room]
	guests       *catalog.Catalog[guestModel.Guest]
	checkIn      checkinService.CheckIn
	reservations reservationService.Reservation
	otel         otel.Otel
}

func New(
	rooms *catalog.Catalog[roomModel.Room],
	guests *catalog.Catalog[guestModel.Guest],
	checkIn checkinService.CheckIn,
	reservations reservationService.Reservation,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		rooms:        rooms,
		guests:       guests,
		checkIn:      checkIn,
		reservations: reservations,
		otel:         otel,
	}
}

// Overview computes the reception dashboard from the current records.
func (s *serviceImpl) Overview(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var rooms catalog.Page[roomModel.Room]

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		rooms, err = s.rooms.Search(egCtx, "", gDto.QueryParams{}, gDto.FilterGroup{})

		return err
	})

	eg.Go(func() (err error) {
		res.Stats.CurrentGuests, err = s.guests.Count(egCtx, shared.ExactFilter(guestModel.TableName, map[string]string{
			guestModel.FieldStatus: guestModel.StatusCheckedIn,
		}))

		return err
	})

	eg.Go(func() (err error) {
		res.Queue, err = s.checkIn.Queue(egCtx)

		return err
	})

	eg.Go(func() error {
		revenue, err := s.reservations.RevenueOn(egCtx, timezone.Now())
		if err != nil {
			return err
		}

		res.Stats.SetRevenue(revenue)

		return nil
	})

	if err = eg.Wait(); err != nil {
		return res, err
	}

	res.FromRooms(rooms.Items)
	res.Stats.TodaysCheckIns = res.Queue.Total

	for _, entry := range res.RoomDistribution {
		if entry.Label == roomModel.StatusAvailable {
			res.Stats.AvailableRooms = entry.Count
		}
	}

	return res, nil
}

package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/checkin/model"
	"frontdesk/internal/domains/checkin/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	titleCheckedIn       = "Guest Checked In"
	descriptionCheckedIn = "Guest ID: %s has been successfully checked in."
)

type CheckIn interface {
	Lookup(ctx context.Context, query string) (guestDto.GetGuestsResponse, error)
	CheckIn(ctx context.Context, guestID string) (notify.Notification, error)
	WalkIn(ctx context.Context, req dto.WalkInRequest) (guestDto.GuestResponse, notify.Notification, error)
	Queue(ctx context.Context) (dto.QueueResponse, error)
	Enqueue(ctx context.Context, req dto.CreateQueueEntryRequest) (dto.QueueEntryResponse, notify.Notification, error)
	SetQueueStatus(ctx context.Context, id, label string) (notify.Notification, error)
	ProcessArrival(ctx context.Context, id string) (notify.Notification, error)
}

type serviceImpl struct {
	guests *catalog.Catalog[guestModel.Guest]
	queue  *catalog.Catalog[model.QueueEntry]
	otel   otel.Otel

	// mu serializes guest status transitions so a guest is checked in at most once.
	mu sync.Mutex
}

func New(guests *catalog.Catalog[guestModel.Guest], queue *catalog.Catalog[model.QueueEntry], otel otel.Otel) CheckIn {
	return &serviceImpl{
		guests: guests,
		queue:  queue,
		otel:   otel,
	}
}

// Lookup finds guests to check in by name, email or phone. An empty query lists every guest.
func (s *serviceImpl) Lookup(ctx context.Context, query string) (res guestDto.GetGuestsResponse, err error) {
	res.Guests = []guestDto.GuestResponse{}

	page, err := s.guests.Search(ctx, query, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, page.Total, 0)

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, guestID string) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.checkIn(ctx, guestID); err != nil {
		return res, err
	}

	return s.guests.Announce(ctx, guestID, titleCheckedIn, fmt.Sprintf(descriptionCheckedIn, guestID)), nil
}

func (s *serviceImpl) WalkIn(ctx context.Context, req dto.WalkInRequest) (res guestDto.GuestResponse, notification notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WalkIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guestReq := req.ToGuestRequest(timezone.Now())
	guest := guestReq.ToModel(shared.Username(ctx))

	if err = s.guests.Insert(ctx, guest); err != nil {
		return res, notification, err
	}

	res.FromModel(guest)

	return res, s.guests.Announce(ctx, guest.ID, titleCheckedIn, fmt.Sprintf(descriptionCheckedIn, guest.ID)), nil
}

// Queue lists today's arrivals, earliest first.
func (s *serviceImpl) Queue(ctx context.Context) (res dto.QueueResponse, err error) {
	page, err := s.queue.Search(ctx, "", gDto.QueryParams{SortBy: model.FieldArrivalTime, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items)

	return res, nil
}

func (s *serviceImpl) Enqueue(ctx context.Context, req dto.CreateQueueEntryRequest) (res dto.QueueEntryResponse, notification notify.Notification, err error) {
	entry := req.ToModel(shared.Username(ctx), timezone.Now())

	notification, err = s.queue.Create(ctx, entry)
	if err != nil {
		return res, notification, err
	}

	res.FromModel(entry)

	return res, notification, nil
}

func (s *serviceImpl) SetQueueStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.queue.SetStatus(ctx, id, model.FieldStatus, label)
}

// ProcessArrival takes an arrival off the queue; a linked guest who is still Reserved is checked in with it.
func (s *serviceImpl) ProcessArrival(ctx context.Context, id string) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessArrival")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.queue.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if entry.GuestID != "" {
		err = s.checkIn(ctx, entry.GuestID)

		switch {
		case err == nil:
		case failure.GetCode(err) == http.StatusConflict || failure.GetCode(err) == http.StatusNotFound:
			log.Warn().Err(err).Str("guest_id", entry.GuestID).Msg("arrival processed without changing the guest")
		default:
			return res, err
		}
	}

	if err = s.queue.Remove(ctx, id); err != nil {
		return res, err
	}

	subject := entry.GuestID
	if subject == "" {
		subject = entry.ID
	}

	return s.queue.Announce(ctx, id, titleCheckedIn, fmt.Sprintf(descriptionCheckedIn, subject)), nil
}

// checkIn moves a Reserved guest to Checked-in; the caller holds s.mu.
func (s *serviceImpl) checkIn(ctx context.Context, guestID string) error {
	guest, err := s.guests.Get(ctx, guestID)
	if err != nil {
		return err
	}

	if guest.Status != guestModel.StatusReserved {
		return failure.Conflictf("guest %s is %s and cannot be checked in", guestID, guest.Status) //nolint:wrapcheck
	}

	return s.guests.Write(ctx, guestID, map[string]any{guestModel.FieldStatus: guestModel.StatusCheckedIn})
}

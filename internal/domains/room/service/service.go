package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	taskModel "frontdesk/internal/domains/task/model"
	taskDto "frontdesk/internal/domains/task/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/base64"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Room interface {
	Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, notify.Notification, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (notify.Notification, error)
	SetStatus(ctx context.Context, id, label string) (notify.Notification, error)
	SetCleaningStatus(ctx context.Context, id, label string) (notify.Notification, error)
	Reserve(ctx context.Context, id string, req dto.ReserveRoomRequest) (notify.Notification, error)
	Checkout(ctx context.Context, id string) (notify.Notification, error)
	RequestCleaning(ctx context.Context, id string) (notify.Notification, error)
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.RoomResponse, notify.Notification, error)
	Delete(ctx context.Context, id string) (notify.Notification, error)
	Summary(ctx context.Context) (dto.RoomSummaryResponse, error)
}

type serviceImpl struct {
	catalog *catalog.Catalog[model.Room]
	tasks   *catalog.Catalog[taskModel.Task]
	s3      s3.S3
	otel    otel.Otel

	// mu guards status transitions checked against the current room status.
	mu sync.Mutex
}

// New wires the room catalog; storage may be nil, in which case images are kept inline as data URLs.
func New(catalog *catalog.Catalog[model.Room], tasks *catalog.Catalog[taskModel.Task], storage s3.S3, otel otel.Otel) Room {
	return &serviceImpl{
		catalog: catalog,
		tasks:   tasks,
		s3:      storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	page, err := s.catalog.Search(ctx, query, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, page.Total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	room, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, notification notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.catalog.Exists(ctx, req.ID)
	if err != nil {
		return res, notification, err
	}

	if exist {
		return res, notification, failure.Conflictf("room %s already exists", req.ID) //nolint:wrapcheck
	}

	image := req.Image
	if image != "" {
		if image, err = s.storeDataURL(ctx, req.ID, req.Image); err != nil {
			return res, notification, err
		}
	}

	room := req.ToModel(shared.Username(ctx), image)

	notification, err = s.catalog.Create(ctx, room)
	if err != nil {
		return res, notification, err
	}

	res.FromModel(room)

	return res, notification, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (notify.Notification, error) {
	return s.catalog.Update(ctx, id, req.ToUpdate())
}

func (s *serviceImpl) SetStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.catalog.SetStatus(ctx, id, model.FieldStatus, label)
}

func (s *serviceImpl) SetCleaningStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.catalog.SetStatus(ctx, id, model.FieldCleaningStatus, label)
}

// Reserve holds an available room, optionally for a named guest.
func (s *serviceImpl) Reserve(ctx context.Context, id string, req dto.ReserveRoomRequest) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReserveRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if room.Status != model.StatusAvailable {
		return res, failure.Conflictf("room %s is %s and cannot be reserved", id, room.Status) //nolint:wrapcheck
	}

	mod := map[string]any{model.FieldStatus: model.StatusReserved}
	if req.GuestName != "" {
		mod[model.FieldGuestName] = req.GuestName
	}

	if err = s.catalog.Write(ctx, id, mod); err != nil {
		return res, err
	}

	return s.catalog.Announce(ctx, id, "Room Reserved", fmt.Sprintf("Room %s has been reserved.", id)), nil
}

// Checkout frees an occupied room.
func (s *serviceImpl) Checkout(ctx context.Context, id string) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckoutRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if room.Status != model.StatusOccupied {
		return res, failure.Conflictf("room %s is %s and cannot be checked out", id, room.Status) //nolint:wrapcheck
	}

	err = s.catalog.Write(ctx, id, map[string]any{
		model.FieldStatus:    model.StatusAvailable,
		model.FieldGuestName: constant.Empty,
	})
	if err != nil {
		return res, err
	}

	return s.catalog.Announce(ctx, id, "Guest Checked Out", fmt.Sprintf("Room %s has been checked out.", id)), nil
}

// RequestCleaning raises a housekeeping task and flags the room.
func (s *serviceImpl) RequestCleaning(ctx context.Context, id string) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestCleaning")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.catalog.Get(ctx, id); err != nil {
		return res, err
	}

	task := taskDto.NewCleaningTask(id, shared.Username(ctx), timezone.Now())
	if err = s.tasks.Insert(ctx, task); err != nil {
		return res, err
	}

	if err = s.catalog.Write(ctx, id, map[string]any{model.FieldCleaningStatus: model.CleaningNeedsCleaning}); err != nil {
		return res, err
	}

	log.Info().Str("room", id).Str("task", task.ID).Msg("cleaning task raised")

	return s.catalog.Announce(ctx, id, "Cleaning Request Submitted", fmt.Sprintf("Cleaning request submitted for Room %s.", id)), nil
}

// UploadImage replaces the room picture. With object storage the previous object is removed.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.RoomResponse, notification notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadRoomImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, notification, err
	}

	var image string

	switch {
	case req.Image != nil && req.ImageFile != nil:
		image, err = s.storeFile(ctx, id, req)
	case req.DataURL != "":
		image, err = s.storeDataURL(ctx, id, req.DataURL)
	default:
		err = failure.BadRequestFromString("image is required")
	}

	if err != nil {
		return res, notification, err
	}

	if err = s.catalog.Write(ctx, id, map[string]any{model.FieldImage: image}); err != nil {
		return res, notification, err
	}

	s.deleteStored(ctx, room.Image)

	room.Image = image
	res.FromModel(room)

	return res, s.catalog.Announce(ctx, id, "Room Image Updated", fmt.Sprintf("Room %s image has been updated.", id)), nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res notify.Notification, err error) {
	room, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if res, err = s.catalog.Delete(ctx, id); err != nil {
		return res, err
	}

	s.deleteStored(ctx, room.Image)

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.RoomSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomSummary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	byStatus := func(label string) gDto.FilterGroup {
		return shared.ExactFilter(model.TableName, map[string]string{model.FieldStatus: label})
	}

	counts := []struct {
		target *int
		filter gDto.FilterGroup
	}{
		{&res.Total, gDto.FilterGroup{}},
		{&res.Available, byStatus(model.StatusAvailable)},
		{&res.Occupied, byStatus(model.StatusOccupied)},
		{&res.Reserved, byStatus(model.StatusReserved)},
		{&res.Maintenance, byStatus(model.StatusMaintenance)},
		{&res.NeedsCleaning, shared.ExactFilter(model.TableName, map[string]string{model.FieldCleaningStatus: model.CleaningNeedsCleaning})},
	}

	for _, count := range counts {
		if *count.target, err = s.catalog.Count(ctx, count.filter); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) storeFile(ctx context.Context, id string, req dto.UploadImageRequest) (string, error) {
	data, err := io.ReadAll(req.ImageFile)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read image: %w", err)
	}

	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	if s.s3 == nil {
		return base64.Encode(contentType, data), nil
	}

	return s.upload(ctx, id, contentType, data)
}

func (s *serviceImpl) storeDataURL(ctx context.Context, id, dataURL string) (string, error) {
	contentType, data, err := base64.Decode(dataURL)
	if err != nil {
		return constant.Empty, failure.BadRequest(err) //nolint:wrapcheck
	}

	if s.s3 == nil {
		return dataURL, nil
	}

	return s.upload(ctx, id, contentType, data)
}

func (s *serviceImpl) upload(ctx context.Context, id, contentType string, data []byte) (string, error) {
	url, err := s.s3.Upload(ctx, imageKey(id, base64.Extension(contentType)), contentType, data)
	if err != nil {
		log.Error().Err(err).Str("room", id).Msg("failed to upload room image")

		return constant.Empty, fmt.Errorf("failed to upload room image: %w", err)
	}

	return url, nil
}

// deleteStored removes a previously uploaded object; inline images need no cleanup.
func (s *serviceImpl) deleteStored(ctx context.Context, image string) {
	if s.s3 == nil || image == "" {
		return
	}

	if _, err := s.s3.Remove(ctx, image); err != nil {
		log.Warn().Err(err).Str("image", image).Msg("failed to delete previous room image")
	}
}

func imageKey(id, extension string) string {
	return path.Join(model.ImageDir, fmt.Sprintf("%s-%s.%s", id, uuid.NewString()[:8], extension))
}

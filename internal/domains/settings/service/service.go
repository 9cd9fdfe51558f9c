package service

import (
	"context"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/settings/model"
	"frontdesk/internal/domains/settings/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	"frontdesk/shared/notify"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	titleSaved       = "Settings saved"
	descriptionSaved = "Your changes have been saved successfully."
)

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Save(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, notify.Notification, error)
}

type serviceImpl struct {
	catalog *catalog.Catalog[model.Settings]
	cfg     *config.Config
	otel    otel.Otel
}

func New(catalog *catalog.Catalog[model.Settings], cfg *config.Config, otel otel.Otel) Settings {
	return &serviceImpl{
		catalog: catalog,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	settings, err := s.catalog.Get(ctx, model.HotelID)
	if err != nil {
		return res, err
	}

	res.FromModel(settings, s.cfg.App.Timezones)

	return res, nil
}

// Save overwrites the hotel settings, creating the record on first save.
func (s *serviceImpl) Save(ctx context.Context, req dto.UpdateSettingsRequest) (res dto.SettingsResponse, notification notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveSettings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.catalog.Exists(ctx, model.HotelID)
	if err != nil {
		return res, notification, err
	}

	if exist {
		err = s.catalog.Write(ctx, model.HotelID, req.ToUpdate())
	} else {
		err = s.catalog.Insert(ctx, req.ToModel(shared.Username(ctx)))
	}

	if err != nil {
		return res, notification, err
	}

	if err := timezone.SetLocation(req.Timezone); err != nil {
		log.Warn().Err(err).Msg("failed to apply hotel timezone")
	}

	if res, err = s.Get(ctx); err != nil {
		return res, notification, err
	}

	return res, s.catalog.Announce(ctx, model.HotelID, titleSaved, descriptionSaved), nil
}

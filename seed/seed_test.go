package seed_test

import (
	"context"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	checkinRepo "frontdesk/internal/domains/checkin/repository"
	guestRepo "frontdesk/internal/domains/guest/repository"
	loyaltyRepo "frontdesk/internal/domains/loyalty/repository"
	reservationRepo "frontdesk/internal/domains/reservation/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	settingsRepo "frontdesk/internal/domains/settings/repository"
	staffModel "frontdesk/internal/domains/staff/model"
	staffRepo "frontdesk/internal/domains/staff/repository"
	taskRepo "frontdesk/internal/domains/task/repository"
	"frontdesk/seed"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)

	assert.Len(t, data.Program.Tiers, 4)
	assert.Equal(t, "Gold", data.Program.EligibleTier(12000))

	reward, ok := data.Program.Reward("R1")
	require.True(t, ok)
	assert.Equal(t, 15000, reward.PointsCost)

	assert.Len(t, data.Help.Channels, 3)
	assert.Len(t, data.Help.FAQ, 4)
	assert.Equal(t, "How do I process a check-in?", data.Help.FAQ[0].Question)
}

func TestParseInvalid(t *testing.T) {
	_, err := seed.Parse([]byte("guests: [unclosed"))
	assert.Error(t, err)
}

type stores struct {
	rooms roomRepo.Room
	staff staffRepo.Staff
}

func run(t *testing.T, cfg *config.Config) stores {
	t.Helper()

	ot := mocks.NewOtel()
	data, err := seed.Load()
	require.NoError(t, err)

	s := stores{rooms: roomRepo.New(nil, ot), staff: staffRepo.New(nil, ot)}
	seeder := seed.NewSeeder(
		data,
		cfg,
		guestRepo.New(nil, ot),
		checkinRepo.New(nil, ot),
		s.rooms,
		reservationRepo.New(nil, ot),
		taskRepo.New(nil, ot),
		loyaltyRepo.NewMember(nil, ot),
		s.staff,
		settingsRepo.New(nil, ot),
	)

	require.NoError(t, seeder.Run(context.Background()))
	require.NoError(t, seeder.Run(context.Background()))

	return s
}

func TestSeeder_Run(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.DefaultSeeded = true
	cfg.Staff.DefaultPassword = "frontdesk123"

	s := run(t, cfg)
	ctx := context.Background()

	count, err := s.rooms.Count(ctx, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 5, count, "seeding twice must not duplicate rooms")

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{SortBy: "created_at", SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, rooms, 5)
	assert.Equal(t, "101", rooms[0].ID)
	assert.Equal(t, "129", rooms[0].Price.String())

	presidential, err := s.rooms.Get(ctx, shared.FilterByID("401", roomModel.FieldID, roomModel.TableName))
	require.NoError(t, err)
	assert.Equal(t, roomModel.CleaningNeedsCleaning, presidential.CleaningStatus)

	manager, err := s.staff.Get(ctx, shared.ExactFilter(staffModel.TableName, map[string]string{staffModel.FieldEmail: "manager@grandhotel.com"}))
	require.NoError(t, err)
	assert.True(t, manager.Active)
	assert.NoError(t, password.Verify("frontdesk123", manager.Password))
}

func TestSeeder_RunDisabled(t *testing.T) {
	s := run(t, &config.Config{})

	count, err := s.rooms.Count(context.Background(), gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

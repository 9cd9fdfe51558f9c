// Package seed loads the embedded sample tables into empty repositories at start-up.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"frontdesk/config"
	checkinModel "frontdesk/internal/domains/checkin/model"
	checkinDto "frontdesk/internal/domains/checkin/model/dto"
	checkinRepo "frontdesk/internal/domains/checkin/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	helpModel "frontdesk/internal/domains/help/model"
	loyaltyModel "frontdesk/internal/domains/loyalty/model"
	loyaltyRepo "frontdesk/internal/domains/loyalty/repository"
	reservationModel "frontdesk/internal/domains/reservation/model"
	reservationRepo "frontdesk/internal/domains/reservation/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	settingsModel "frontdesk/internal/domains/settings/model"
	settingsDto "frontdesk/internal/domains/settings/model/dto"
	settingsRepo "frontdesk/internal/domains/settings/repository"
	staffModel "frontdesk/internal/domains/staff/model"
	staffRepo "frontdesk/internal/domains/staff/repository"
	taskModel "frontdesk/internal/domains/task/model"
	taskRepo "frontdesk/internal/domains/task/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/password"
	"frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var raw []byte

type guestRow struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone"`
	Status        string `yaml:"status"`
	RoomNumber    string `yaml:"room_number"`
	CheckIn       *int   `yaml:"check_in"`
	CheckOut      *int   `yaml:"check_out"`
	VIP           bool   `yaml:"vip"`
	LoyaltyTier   string `yaml:"loyalty_tier"`
	LoyaltyPoints int    `yaml:"loyalty_points"`
}

type queueRow struct {
	GuestID     string `yaml:"guest_id"`
	GuestName   string `yaml:"guest_name"`
	RoomNumber  string `yaml:"room_number"`
	ArrivalTime string `yaml:"arrival_time"`
	Status      string `yaml:"status"`
}

type roomRow struct {
	ID             string `yaml:"id"`
	Type           string `yaml:"type"`
	Beds           string `yaml:"beds"`
	Floor          int    `yaml:"floor"`
	Status         string `yaml:"status"`
	GuestName      string `yaml:"guest_name"`
	CleaningStatus string `yaml:"cleaning_status"`
	Price          string `yaml:"price"`
}

type reservationRow struct {
	ID            string `yaml:"id"`
	GuestName     string `yaml:"guest_name"`
	RoomType      string `yaml:"room_type"`
	RoomNumber    string `yaml:"room_number"`
	CheckIn       int    `yaml:"check_in"`
	CheckOut      int    `yaml:"check_out"`
	Status        string `yaml:"status"`
	PaymentStatus string `yaml:"payment_status"`
	TotalAmount   string `yaml:"total_amount"`
}

type taskRow struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	AssignedTo string `yaml:"assigned_to"`
	Priority   string `yaml:"priority"`
	Status     string `yaml:"status"`
	DueDay     int    `yaml:"due_day"`
	DueTime    string `yaml:"due_time"`
}

type memberRow struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Tier     string `yaml:"tier"`
	Points   int    `yaml:"points"`
	Joined   int    `yaml:"joined"`
	LastStay *int   `yaml:"last_stay"`
}

type staffRow struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
}

type settingsRow struct {
	HotelName     string `yaml:"hotel_name"`
	ContactEmail  string `yaml:"contact_email"`
	Phone         string `yaml:"phone"`
	Address       string `yaml:"address"`
	Timezone      string `yaml:"timezone"`
	Hour24        bool   `yaml:"hour24"`
	Notifications struct {
		Email       bool `yaml:"email"`
		SMS         bool `yaml:"sms"`
		Desktop     bool `yaml:"desktop"`
		CheckIn     bool `yaml:"check_in_alerts"`
		Maintenance bool `yaml:"maintenance_alerts"`
	} `yaml:"notifications"`
	Security struct {
		TwoFactor      bool `yaml:"two_factor"`
		SessionTimeout bool `yaml:"session_timeout"`
	} `yaml:"security"`
}

// Data is the parsed content of seed.yaml.
type Data struct {
	Guests       []guestRow           `yaml:"guests"`
	Queue        []queueRow           `yaml:"queue"`
	Rooms        []roomRow            `yaml:"rooms"`
	Reservations []reservationRow     `yaml:"reservations"`
	Tasks        []taskRow            `yaml:"tasks"`
	Members      []memberRow          `yaml:"members"`
	Staff        []staffRow           `yaml:"staff"`
	Settings     settingsRow          `yaml:"settings"`
	Program      loyaltyModel.Program `yaml:"loyalty"`
	Help         helpModel.Guide      `yaml:"help"`
}

func Load() (Data, error) {
	return Parse(raw)
}

func Parse(content []byte) (Data, error) {
	data := Data{}

	if err := yaml.Unmarshal(content, &data); err != nil {
		return data, fmt.Errorf("failed to parse seed data: %w", err)
	}

	return data, nil
}

// ProvideProgram exposes the loyalty tiers and rewards.
func ProvideProgram(data Data) loyaltyModel.Program {
	return data.Program
}

// ProvideGuide exposes the help page content.
func ProvideGuide(data Data) helpModel.Guide {
	return data.Help
}

type Seeder struct {
	data         Data
	cfg          *config.Config
	guests       guestRepo.Guest
	queue        checkinRepo.Queue
	rooms        roomRepo.Room
	reservations reservationRepo.Reservation
	tasks        taskRepo.Task
	members      loyaltyRepo.Member
	staff        staffRepo.Staff
	settings     settingsRepo.Settings
}

func NewSeeder(
	data Data,
	cfg *config.Config,
	guests guestRepo.Guest,
	queue checkinRepo.Queue,
	rooms roomRepo.Room,
	reservations reservationRepo.Reservation,
	tasks taskRepo.Task,
	members loyaltyRepo.Member,
	staff staffRepo.Staff,
	settings settingsRepo.Settings,
) *Seeder {
	return &Seeder{
		data:         data,
		cfg:          cfg,
		guests:       guests,
		queue:        queue,
		rooms:        rooms,
		reservations: reservations,
		tasks:        tasks,
		members:      members,
		staff:        staff,
		settings:     settings,
	}
}

// Run fills every empty table. Tables that already hold records are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.App.DefaultSeeded {
		log.Info().Msg("seeding disabled")

		return nil
	}

	now := timezone.Now()
	today := timezone.StartOfDay(now)

	staff, err := s.data.staffMembers(now, s.cfg.Staff.DefaultPassword)
	if err != nil {
		return err
	}

	rooms, err := s.data.roomRecords(now)
	if err != nil {
		return err
	}

	reservations, err := s.data.reservationRecords(now, today)
	if err != nil {
		return err
	}

	steps := []func() error{
		func() error { return fill[guestModel.Guest](ctx, s.guests, guestModel.EntityName, s.data.guestRecords(now, today)) },
		func() error { return fill[checkinModel.QueueEntry](ctx, s.queue, checkinModel.EntityName, s.data.queueRecords(now, today)) },
		func() error { return fill[roomModel.Room](ctx, s.rooms, roomModel.EntityName, rooms) },
		func() error { return fill[reservationModel.Reservation](ctx, s.reservations, reservationModel.EntityName, reservations) },
		func() error { return fill[taskModel.Task](ctx, s.tasks, taskModel.EntityName, s.data.taskRecords(now, today)) },
		func() error { return fill[loyaltyModel.Member](ctx, s.members, loyaltyModel.EntityName, s.data.memberRecords(now, today)) },
		func() error { return fill[staffModel.Staff](ctx, s.staff, staffModel.EntityName, staff) },
		func() error { return fill[settingsModel.Settings](ctx, s.settings, settingsModel.EntityName, []settingsModel.Settings{s.data.settingsRecord(now)}) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

func fill[T any](ctx context.Context, store repository.Store[T], entity string, records []T) error {
	count, err := store.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count %s before seeding: %w", entity, err)
	}

	if count > 0 {
		log.Debug().Str("entity", entity).Int("count", count).Msg("table already seeded")

		return nil
	}

	if len(records) == 0 {
		return nil
	}

	if err := store.InsertBulk(ctx, records); err != nil {
		return fmt.Errorf("failed to seed %s: %w", entity, err)
	}

	log.Info().Str("entity", entity).Int("count", len(records)).Msg("seeded")

	return nil
}

// metadata gives the idx-th seed row a creation time one second older than the previous one, so
// newest-first ordering keeps the file order.
func metadata(now time.Time, idx int) gModel.Metadata {
	return gModel.NewMetadata(constant.ContextSystem, now.Add(-time.Duration(idx)*time.Second))
}

func offset(today time.Time, days *int) *time.Time {
	if days == nil {
		return nil
	}

	day := today.AddDate(0, 0, *days)

	return &day
}

func (d Data) guestRecords(now, today time.Time) []guestModel.Guest {
	guests := make([]guestModel.Guest, len(d.Guests))
	for i, row := range d.Guests {
		guests[i] = guestModel.Guest{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Phone:         row.Phone,
			Status:        row.Status,
			RoomNumber:    row.RoomNumber,
			CheckIn:       offset(today, row.CheckIn),
			CheckOut:      offset(today, row.CheckOut),
			VIP:           row.VIP,
			LoyaltyTier:   row.LoyaltyTier,
			LoyaltyPoints: row.LoyaltyPoints,
			Metadata:      metadata(now, i),
		}
	}

	return guests
}

func (d Data) queueRecords(now, today time.Time) []checkinModel.QueueEntry {
	entries := make([]checkinModel.QueueEntry, len(d.Queue))
	for i, row := range d.Queue {
		entries[i] = checkinModel.QueueEntry{
			ID:          shared.NewID(checkinModel.IDPrefix),
			GuestID:     row.GuestID,
			GuestName:   row.GuestName,
			RoomNumber:  row.RoomNumber,
			ArrivalTime: checkinDto.At(today, row.ArrivalTime),
			Status:      row.Status,
			Metadata:    metadata(now, i),
		}
	}

	return entries
}

func (d Data) roomRecords(now time.Time) ([]roomModel.Room, error) {
	rooms := make([]roomModel.Room, len(d.Rooms))
	for i, row := range d.Rooms {
		price, err := decimal.NewFromString(row.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for room %s: %w", row.ID, err)
		}

		rooms[i] = roomModel.Room{
			ID:             row.ID,
			Type:           row.Type,
			Beds:           row.Beds,
			Floor:          row.Floor,
			Status:         row.Status,
			GuestName:      row.GuestName,
			CleaningStatus: row.CleaningStatus,
			Price:          price,
			Metadata:       metadata(now, i),
		}
	}

	return rooms, nil
}

func (d Data) reservationRecords(now, today time.Time) ([]reservationModel.Reservation, error) {
	reservations := make([]reservationModel.Reservation, len(d.Reservations))
	for i, row := range d.Reservations {
		amount, err := decimal.NewFromString(row.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid total amount for reservation %s: %w", row.ID, err)
		}

		reservations[i] = reservationModel.Reservation{
			ID:            row.ID,
			GuestName:     row.GuestName,
			RoomType:      row.RoomType,
			RoomNumber:    row.RoomNumber,
			CheckIn:       today.AddDate(0, 0, row.CheckIn),
			CheckOut:      today.AddDate(0, 0, row.CheckOut),
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			TotalAmount:   amount,
			Metadata:      metadata(now, i),
		}
	}

	return reservations, nil
}

func (d Data) taskRecords(now, today time.Time) []taskModel.Task {
	tasks := make([]taskModel.Task, len(d.Tasks))
	for i, row := range d.Tasks {
		tasks[i] = taskModel.Task{
			ID:         row.ID,
			Title:      row.Title,
			AssignedTo: row.AssignedTo,
			Priority:   row.Priority,
			Status:     row.Status,
			DueDate:    checkinDto.At(today.AddDate(0, 0, row.DueDay), row.DueTime),
			Metadata:   metadata(now, i),
		}
	}

	return tasks
}

func (d Data) memberRecords(now, today time.Time) []loyaltyModel.Member {
	members := make([]loyaltyModel.Member, len(d.Members))
	for i, row := range d.Members {
		members[i] = loyaltyModel.Member{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			Phone:    row.Phone,
			Tier:     row.Tier,
			Points:   row.Points,
			Joined:   today.AddDate(0, 0, row.Joined),
			LastStay: offset(today, row.LastStay),
			Metadata: metadata(now, i),
		}
	}

	return members
}

func (d Data) staffMembers(now time.Time, defaultPassword string) ([]staffModel.Staff, error) {
	hashed, err := password.Hash(defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default staff password: %w", err)
	}

	staff := make([]staffModel.Staff, len(d.Staff))
	for i, row := range d.Staff {
		staff[i] = staffModel.Staff{
			ID:       shared.NewID(staffModel.IDPrefix),
			Email:    row.Email,
			Password: hashed,
			Name:     row.Name,
			Role:     row.Role,
			Active:   true,
			Metadata: metadata(now, i),
		}
	}

	return staff, nil
}

func (d Data) settingsRecord(now time.Time) settingsModel.Settings {
	row := d.Settings
	req := settingsDto.UpdateSettingsRequest{
		HotelName:    row.HotelName,
		ContactEmail: row.ContactEmail,
		Phone:        row.Phone,
		Address:      row.Address,
		Timezone:     row.Timezone,
		Hour24:       row.Hour24,
		Notifications: settingsDto.NotificationPreferences{
			Email:       row.Notifications.Email,
			SMS:         row.Notifications.SMS,
			Desktop:     row.Notifications.Desktop,
			CheckIn:     row.Notifications.CheckIn,
			Maintenance: row.Notifications.Maintenance,
		},
		Security: settingsDto.SecurityPreferences{
			TwoFactor:      row.Security.TwoFactor,
			SessionTimeout: row.Security.SessionTimeout,
		},
	}

	settings := req.ToModel(constant.ContextSystem)
	settings.Metadata = metadata(now, 0)

	return settings
}

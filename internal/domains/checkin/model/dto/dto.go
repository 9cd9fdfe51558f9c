package dto

import (
	"time"

	"frontdesk/internal/domains/checkin/model"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"
)

// WalkInRequest registers a guest who arrives without a reservation.
type WalkInRequest struct {
	Name       string `json:"name"                  validate:"required"`
	Email      string `json:"email"                 validate:"required,email"`
	Phone      string `json:"phone"                 validate:"required"`
	RoomNumber string `json:"room_number"           validate:"required"`
	CheckOut   string `json:"check_out,omitempty"   validate:"omitempty,datetime=2006-01-02"`
	VIP        bool   `json:"vip,omitempty"`
}

func (r *WalkInRequest) ToGuestRequest(today time.Time) guestDto.CreateGuestRequest {
	return guestDto.CreateGuestRequest{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Status:     guestModel.StatusCheckedIn,
		RoomNumber: r.RoomNumber,
		CheckIn:    today.Format(constant.DayFormat),
		CheckOut:   r.CheckOut,
		VIP:        r.VIP,
	}
}

type CreateQueueEntryRequest struct {
	GuestID     string `json:"guest_id,omitempty"`
	GuestName   string `json:"guest_name"         validate:"required"`
	RoomNumber  string `json:"room_number"        validate:"required"`
	ArrivalTime string `json:"arrival_time"       validate:"required,datetime=15:04"`
	Status      string `json:"status,omitempty"   validate:"omitempty,status=queue.status"`
}

// ToModel places the arrival on today's date at the requested clock time.
func (r *CreateQueueEntryRequest) ToModel(username string, today time.Time) model.QueueEntry {
	entryStatus := r.Status
	if entryStatus == "" {
		entryStatus = model.StatusWaiting
	}

	return model.QueueEntry{
		ID:          shared.NewID(model.IDPrefix),
		GuestID:     r.GuestID,
		GuestName:   r.GuestName,
		RoomNumber:  r.RoomNumber,
		ArrivalTime: At(today, r.ArrivalTime),
		Status:      entryStatus,
		Metadata:    gModel.NewMetadata(username, timezone.Now()),
	}
}

// At combines the date of day with a "15:04" clock; a malformed clock keeps day as is.
func At(day time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return day
	}

	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location())
}

type QueueEntryResponse struct {
	ID          string       `json:"id"`
	GuestID     string       `json:"guest_id,omitempty"`
	GuestName   string       `json:"guest_name"`
	RoomNumber  string       `json:"room_number"`
	ArrivalTime string       `json:"arrival_time"`
	Status      status.Badge `json:"status"`
}

func (r *QueueEntryResponse) FromModel(m model.QueueEntry) {
	r.ID = m.ID
	r.GuestID = m.GuestID
	r.GuestName = m.GuestName
	r.RoomNumber = m.RoomNumber
	r.ArrivalTime = timezone.Format(m.ArrivalTime, constant.ClockFormat)
	r.Status = model.StatusAxis.Badge(m.Status)
}

type QueueResponse struct {
	Queue []QueueEntryResponse `json:"queue"`
	Total int                  `json:"total"`
}

func (r *QueueResponse) FromModels(models []model.QueueEntry) {
	r.Total = len(models)

	r.Queue = make([]QueueEntryResponse, len(models))
	for i, mod := range models {
		r.Queue[i].FromModel(mod)
	}
}

package dto

import (
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"
)

type CreateGuestRequest struct {
	Name          string `json:"name"                     validate:"required"`
	Email         string `json:"email"                    validate:"required,email"`
	Phone         string `json:"phone"                    validate:"required"`
	Status        string `json:"status,omitempty"         validate:"omitempty,status=guest.status"`
	RoomNumber    string `json:"room_number,omitempty"`
	CheckIn       string `json:"check_in,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	CheckOut      string `json:"check_out,omitempty"      validate:"omitempty,datetime=2006-01-02"`
	VIP           bool   `json:"vip,omitempty"`
	LoyaltyTier   string `json:"loyalty_tier,omitempty"   validate:"omitempty,oneof=Bronze Silver Gold Diamond"`
	LoyaltyPoints int    `json:"loyalty_points,omitempty" validate:"omitempty,min=0"`
}

// ToModel builds a new guest; an unset status means the guest is expected, not yet arrived.
func (r *CreateGuestRequest) ToModel(username string) model.Guest {
	guestStatus := r.Status
	if guestStatus == "" {
		guestStatus = model.StatusReserved
	}

	return model.Guest{
		ID:            shared.NewID(model.IDPrefix),
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Status:        guestStatus,
		RoomNumber:    r.RoomNumber,
		CheckIn:       shared.ParseTime(constant.DayFormat, r.CheckIn),
		CheckOut:      shared.ParseTime(constant.DayFormat, r.CheckOut),
		VIP:           r.VIP,
		LoyaltyTier:   r.LoyaltyTier,
		LoyaltyPoints: r.LoyaltyPoints,
		Metadata:      gModel.NewMetadata(username, timezone.Now()),
	}
}

type UpdateGuestRequest struct {
	Name          *string `json:"name,omitempty"           validate:"omitempty,min=1"`
	Email         *string `json:"email,omitempty"          validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty"          validate:"omitempty,min=1"`
	RoomNumber    *string `json:"room_number,omitempty"`
	CheckIn       *string `json:"check_in,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	CheckOut      *string `json:"check_out,omitempty"      validate:"omitempty,datetime=2006-01-02"`
	VIP           *bool   `json:"vip,omitempty"`
	LoyaltyTier   *string `json:"loyalty_tier,omitempty"   validate:"omitempty,oneof=Bronze Silver Gold Diamond"`
	LoyaltyPoints *int    `json:"loyalty_points,omitempty" validate:"omitempty,min=0"`
}

// ToUpdate lists the columns the request changes; the status is edited through its own selector.
func (r *UpdateGuestRequest) ToUpdate() map[string]any {
	mod := map[string]any{}

	if r.Name != nil {
		mod[model.FieldName] = *r.Name
	}

	if r.Email != nil {
		mod[model.FieldEmail] = *r.Email
	}

	if r.Phone != nil {
		mod[model.FieldPhone] = *r.Phone
	}

	if r.RoomNumber != nil {
		mod[model.FieldRoomNumber] = *r.RoomNumber
	}

	if r.CheckIn != nil {
		mod[model.FieldCheckIn] = shared.ParseTime(constant.DayFormat, *r.CheckIn)
	}

	if r.CheckOut != nil {
		mod[model.FieldCheckOut] = shared.ParseTime(constant.DayFormat, *r.CheckOut)
	}

	if r.VIP != nil {
		mod[model.FieldVIP] = *r.VIP
	}

	if r.LoyaltyTier != nil {
		mod[model.FieldLoyaltyTier] = *r.LoyaltyTier
	}

	if r.LoyaltyPoints != nil {
		mod[model.FieldLoyaltyPoints] = *r.LoyaltyPoints
	}

	return mod
}

type GuestResponse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Status        status.Badge `json:"status"`
	RoomNumber    string       `json:"room_number"`
	CheckIn       string       `json:"check_in"`
	CheckOut      string       `json:"check_out"`
	VIP           bool         `json:"vip"`
	LoyaltyTier   string       `json:"loyalty_tier"`
	LoyaltyPoints int          `json:"loyalty_points"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(m model.Guest) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.Status = model.StatusAxis.Badge(m.Status)
	r.RoomNumber = m.RoomNumber
	r.CheckIn = shared.FormatTime(m.CheckIn, constant.DayFormat)
	r.CheckOut = shared.FormatTime(m.CheckOut, constant.DayFormat)
	r.VIP = m.VIP
	r.LoyaltyTier = m.LoyaltyTier
	r.LoyaltyPoints = m.LoyaltyPoints
	r.Metadata.FromModel(m.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

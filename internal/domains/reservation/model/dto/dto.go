package dto

import (
	"fmt"
	"time"

	"frontdesk/internal/domains/reservation/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	GuestName     string          `json:"guest_name"               validate:"required,max=100"`
	RoomType      string          `json:"room_type"                validate:"required,oneof=Standard Deluxe Suite Presidential"`
	RoomNumber    string          `json:"room_number"              validate:"required"`
	CheckIn       string          `json:"check_in"                 validate:"required,datetime=2006-01-02"`
	CheckOut      string          `json:"check_out"                validate:"required,datetime=2006-01-02"`
	Status        string          `json:"status,omitempty"         validate:"omitempty,status=reservation.status"`
	PaymentStatus string          `json:"payment_status,omitempty" validate:"omitempty,status=reservation.payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"             validate:"gte=0"`
}

// ToModel builds a reservation; new ones are Pending and Unpaid unless stated.
func (r *CreateReservationRequest) ToModel(user string) model.Reservation {
	reservationStatus := r.Status
	if reservationStatus == "" {
		reservationStatus = model.StatusPending
	}

	payment := r.PaymentStatus
	if payment == "" {
		payment = model.PaymentUnpaid
	}

	return model.Reservation{
		ID:            shared.NewID(model.IDPrefix),
		GuestName:     r.GuestName,
		RoomType:      r.RoomType,
		RoomNumber:    r.RoomNumber,
		CheckIn:       day(r.CheckIn),
		CheckOut:      day(r.CheckOut),
		Status:        reservationStatus,
		PaymentStatus: payment,
		TotalAmount:   r.TotalAmount,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateReservationRequest struct {
	GuestName   *string          `json:"guest_name,omitempty"   validate:"omitempty,min=1,max=100"`
	RoomType    *string          `json:"room_type,omitempty"    validate:"omitempty,oneof=Standard Deluxe Suite Presidential"`
	RoomNumber  *string          `json:"room_number,omitempty"  validate:"omitempty,min=1"`
	CheckIn     *string          `json:"check_in,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	CheckOut    *string          `json:"check_out,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
}

func (r *UpdateReservationRequest) ToUpdate() map[string]any {
	mod := map[string]any{}

	if r.GuestName != nil {
		mod[model.FieldGuestName] = *r.GuestName
	}

	if r.RoomType != nil {
		mod[model.FieldRoomType] = *r.RoomType
	}

	if r.RoomNumber != nil {
		mod[model.FieldRoomNumber] = *r.RoomNumber
	}

	if r.CheckIn != nil {
		mod[model.FieldCheckIn] = day(*r.CheckIn)
	}

	if r.CheckOut != nil {
		mod[model.FieldCheckOut] = day(*r.CheckOut)
	}

	if r.TotalAmount != nil {
		mod[model.FieldTotalAmount] = *r.TotalAmount
	}

	return mod
}

type ReservationResponse struct {
	ID            string          `json:"id"`
	GuestName     string          `json:"guest_name"`
	RoomType      string          `json:"room_type"`
	RoomNumber    string          `json:"room_number"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Nights        int             `json:"nights"`
	Status        status.Badge    `json:"status"`
	PaymentStatus status.Badge    `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountLabel   string          `json:"amount_label"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.GuestName = m.GuestName
	r.RoomType = m.RoomType
	r.RoomNumber = m.RoomNumber
	r.CheckIn = shared.FormatTime(&m.CheckIn, constant.DayFormat)
	r.CheckOut = shared.FormatTime(&m.CheckOut, constant.DayFormat)
	r.Nights = nights(m.CheckIn, m.CheckOut)
	r.Status = model.StatusAxis.Badge(m.Status)
	r.PaymentStatus = model.PaymentAxis.Badge(m.PaymentStatus)
	r.TotalAmount = m.TotalAmount
	r.AmountLabel = fmt.Sprintf(constant.CurrencyFormat, m.TotalAmount.StringFixed(2))
	r.Metadata.FromModel(m.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

func day(value string) time.Time {
	if parsed := shared.ParseTime(constant.DayFormat, value); parsed != nil {
		return *parsed
	}

	return time.Time{}
}

// nights is zero when either date is missing or check-out does not follow check-in.
func nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return 0
	}

	return int(checkOut.Sub(checkIn).Hours() / 24) //nolint:mnd
}

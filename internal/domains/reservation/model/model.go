package model

import (
	"time"

	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
	"frontdesk/shared/status"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"
	Title      = "Reservation"
	IDPrefix   = "RES-"

	FieldID            = "id"
	FieldGuestName     = "guest_name"
	FieldRoomType      = "room_type"
	FieldRoomNumber    = "room_number"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldTotalAmount   = "total_amount"
)

const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"

	PaymentPaid          = "Paid"
	PaymentUnpaid        = "Unpaid"
	PaymentPending       = "Pending"
	PaymentPartiallyPaid = "Partially Paid"
)

var StatusAxis = status.Register("reservation.status", status.Axis{
	Name:  "status",
	Field: FieldStatus,
	Options: []status.Option{
		{Label: StatusConfirmed, Tone: status.ToneGreen, Icon: "check-circle"},
		{Label: StatusPending, Tone: status.ToneYellow, Icon: "clock"},
	},
})

var PaymentAxis = status.Register("reservation.payment_status", status.Axis{
	Name:  "payment status",
	Field: FieldPaymentStatus,
	Options: []status.Option{
		{Label: PaymentPaid, Tone: status.ToneGreen, Icon: "check-circle"},
		{Label: PaymentUnpaid, Tone: status.ToneRed, Icon: "circle-dollar-sign"},
		{Label: PaymentPending, Tone: status.ToneYellow, Icon: "clock"},
		{Label: PaymentPartiallyPaid, Tone: status.ToneBlue, Icon: "credit-card"},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldID, FieldGuestName, FieldRoomType, FieldRoomNumber},
	Axes:         []status.Axis{StatusAxis, PaymentAxis},
}

// Reservation dates are calendar days; check-out is not required to follow check-in.
type Reservation struct {
	ID            string          `db:"id"`
	GuestName     string          `db:"guest_name"`
	RoomType      string          `db:"room_type"`
	RoomNumber    string          `db:"room_number"`
	CheckIn       time.Time       `db:"check_in"`
	CheckOut      time.Time       `db:"check_out"`
	Status        string          `db:"status"`
	PaymentStatus string          `db:"payment_status"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	model.Metadata
}

func (r Reservation) GetID() string {
	return r.ID
}

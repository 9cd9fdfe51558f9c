package model

import (
	"time"

	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
	"frontdesk/shared/status"
)

const (
	TableName  = "guests"
	EntityName = "guest"
	Title      = "Guest"
	IDPrefix   = "G"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldStatus        = "status"
	FieldRoomNumber    = "room_number"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldVIP           = "vip"
	FieldLoyaltyTier   = "loyalty_tier"
	FieldLoyaltyPoints = "loyalty_points"
)

const (
	StatusReserved  = "Reserved"
	StatusCheckedIn = "Checked In"
	StatusConfirmed = "Confirmed"
	StatusNoShow    = "No Show"
)

// StatusAxis is referenced by the `status=guest.status` validation tag.
var StatusAxis = status.Register("guest.status", status.Axis{
	Name:  "status",
	Field: FieldStatus,
	Options: []status.Option{
		{Label: StatusCheckedIn, Tone: status.ToneBlue, Icon: "user"},
		{Label: StatusReserved, Tone: status.ToneGreen, Icon: "clock"},
		{Label: StatusConfirmed, Tone: status.ToneGreen, Icon: "check-circle"},
		{Label: StatusNoShow, Tone: status.ToneRed, Icon: "clock"},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldName, FieldEmail, FieldPhone},
	Axes:         []status.Axis{StatusAxis},
}

type Guest struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	Status        string     `db:"status"`
	RoomNumber    string     `db:"room_number"`
	CheckIn       *time.Time `db:"check_in"`
	CheckOut      *time.Time `db:"check_out"`
	VIP           bool       `db:"vip"`
	LoyaltyTier   string     `db:"loyalty_tier"`
	LoyaltyPoints int        `db:"loyalty_points"`
	model.Metadata
}

func (g Guest) GetID() string {
	return g.ID
}

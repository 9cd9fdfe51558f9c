package model

import (
	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
	"frontdesk/shared/status"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"
	Title      = "Room"
	ImageDir   = "rooms"

	FieldID             = "id"
	FieldType           = "type"
	FieldBeds           = "beds"
	FieldFloor          = "floor"
	FieldStatus         = "status"
	FieldGuestName      = "guest_name"
	FieldCleaningStatus = "cleaning_status"
	FieldPrice          = "price"
	FieldImage          = "image"
)

const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
	StatusReserved    = "Reserved"

	CleaningClean         = "Clean"
	CleaningNeedsCleaning = "Needs Cleaning"
)

const (
	TypeStandard     = "Standard"
	TypeDeluxe       = "Deluxe"
	TypeSuite        = "Suite"
	TypePresidential = "Presidential"
)

// Types lists the room types in the order they are offered.
var Types = []string{TypeStandard, TypeDeluxe, TypeSuite, TypePresidential}

var StatusAxis = status.Register("room.status", status.Axis{
	Name:  "status",
	Field: FieldStatus,
	Options: []status.Option{
		{Label: StatusAvailable, Tone: status.ToneGreen, Icon: "check-circle"},
		{Label: StatusOccupied, Tone: status.ToneBlue, Icon: "user"},
		{Label: StatusMaintenance, Tone: status.ToneRed, Icon: "wrench"},
		{Label: StatusReserved, Tone: status.ToneYellow, Icon: "clock"},
	},
})

var CleaningAxis = status.Register("room.cleaning_status", status.Axis{
	Name:  "cleaning status",
	Field: FieldCleaningStatus,
	Options: []status.Option{
		{Label: CleaningClean, Tone: status.ToneGreen, Icon: "sparkles"},
		{Label: CleaningNeedsCleaning, Tone: status.ToneYellow, Icon: "spray-can"},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldID, FieldType, FieldStatus, FieldGuestName},
	Axes:         []status.Axis{StatusAxis, CleaningAxis},
}

// Room is keyed by its room number.
type Room struct {
	ID             string          `db:"id"`
	Type           string          `db:"type"`
	Beds           string          `db:"beds"`
	Floor          int             `db:"floor"`
	Status         string          `db:"status"`
	GuestName      string          `db:"guest_name"`
	CleaningStatus string          `db:"cleaning_status"`
	Price          decimal.Decimal `db:"price"`
	Image          string          `db:"image"`
	model.Metadata
}

func (r Room) GetID() string {
	return r.ID
}

package model

import (
	"time"

	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
	"frontdesk/shared/status"
)

const (
	TableName  = "check_in_queue"
	EntityName = "queue"
	Title      = "Arrival"
	IDPrefix   = "Q"

	FieldID          = "id"
	FieldGuestID     = "guest_id"
	FieldGuestName   = "guest_name"
	FieldRoomNumber  = "room_number"
	FieldArrivalTime = "arrival_time"
	FieldStatus      = "status"
)

const (
	StatusPriority   = "priority"
	StatusWaiting    = "waiting"
	StatusProcessing = "processing"
)

var StatusAxis = status.Register("queue.status", status.Axis{
	Name:  "status",
	Field: FieldStatus,
	Options: []status.Option{
		{Label: StatusPriority, Tone: status.ToneRed, Icon: "alert-circle"},
		{Label: StatusWaiting, Tone: status.ToneYellow, Icon: "clock"},
		{Label: StatusProcessing, Tone: status.ToneBlue, Icon: "loader"},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldGuestName, FieldRoomNumber},
	Axes:         []status.Axis{StatusAxis},
}

// QueueEntry is an expected arrival waiting at the desk.
type QueueEntry struct {
	ID          string    `db:"id"`
	GuestID     string    `db:"guest_id"`
	GuestName   string    `db:"guest_name"`
	RoomNumber  string    `db:"room_number"`
	ArrivalTime time.Time `db:"arrival_time"`
	Status      string    `db:"status"`
	model.Metadata
}

func (q QueueEntry) GetID() string {
	return q.ID
}

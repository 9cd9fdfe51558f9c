package model

import (
	"time"

	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
	"frontdesk/shared/status"
)

const (
	TableName  = "tasks"
	EntityName = "task"
	Title      = "Task"
	IDPrefix   = "T"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAssignedTo  = "assigned_to"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldDueDate     = "due_date"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

var StatusAxis = status.Register("task.status", status.Axis{
	Name:  "status",
	Field: FieldStatus,
	Options: []status.Option{
		{Label: StatusPending, Tone: status.ToneYellow, Icon: "clock"},
		{Label: StatusInProgress, Tone: status.ToneBlue, Icon: "user"},
		{Label: StatusCompleted, Tone: status.ToneGreen, Icon: "check-circle-2"},
	},
})

// PriorityAxis only colours priorities; it is edited with the rest of the task, not through a selector.
var PriorityAxis = status.Register("task.priority", status.Axis{
	Name:  "priority",
	Field: FieldPriority,
	Options: []status.Option{
		{Label: PriorityLow, Tone: status.ToneBlue},
		{Label: PriorityMedium, Tone: status.ToneYellow},
		{Label: PriorityHigh, Tone: status.ToneOrange},
		{Label: PriorityUrgent, Tone: status.ToneRed},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldTitle, FieldAssignedTo, FieldID},
	Axes:         []status.Axis{StatusAxis},
}

type Task struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	AssignedTo  string    `db:"assigned_to"`
	Priority    string    `db:"priority"`
	Status      string    `db:"status"`
	DueDate     time.Time `db:"due_date"`
	model.Metadata
}

func (t Task) GetID() string {
	return t.ID
}

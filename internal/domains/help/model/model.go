package model

import (
	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
	"frontdesk/shared/status"
)

const (
	TableName  = "support_requests"
	EntityName = "support_request"
	Title      = "Support Request"
	IDPrefix   = "SR"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldStatus  = "status"
)

const (
	StatusOpen     = "Open"
	StatusResolved = "Resolved"
)

var StatusAxis = status.Register("support_request.status", status.Axis{
	Name:  "status",
	Field: FieldStatus,
	Options: []status.Option{
		{Label: StatusOpen, Tone: status.ToneYellow, Icon: "mail"},
		{Label: StatusResolved, Tone: status.ToneGreen, Icon: "check-circle"},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldName, FieldEmail, FieldSubject},
	Axes:         []status.Axis{StatusAxis},
}

type SupportRequest struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Status  string `db:"status"`
	model.Metadata
}

func (s SupportRequest) GetID() string {
	return s.ID
}

type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer"   json:"answer"`
}

// Channel is a way to reach support besides the contact form.
type Channel struct {
	Name        string `yaml:"name"        json:"name"`
	Description string `yaml:"description" json:"description"`
	Action      string `yaml:"action"      json:"action"`
	Icon        string `yaml:"icon"        json:"icon"`
}

type Guide struct {
	Channels []Channel `yaml:"channels" json:"channels"`
	FAQ      []FAQ     `yaml:"faq"      json:"faq"`
}

package model

import (
	"time"

	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	"frontdesk/shared/model"
	"frontdesk/shared/status"
)

const (
	TableName  = "staff"
	EntityName = "staff"
	Title      = "Staff Member"
	IDPrefix   = "S"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

var RoleAxis = status.Register("staff.role", status.Axis{
	Name:  "role",
	Field: FieldRole,
	Options: []status.Option{
		{Label: constant.RoleManager, Tone: status.ToneBlue, Icon: "shield"},
		{Label: constant.RoleFrontDesk, Tone: status.ToneGreen, Icon: "concierge-bell"},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldName, FieldEmail},
	Axes:         []status.Axis{RoleAxis},
}

// Staff is a front-desk user. Password holds the bcrypt hash.
type Staff struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

func (s Staff) GetID() string {
	return s.ID
}

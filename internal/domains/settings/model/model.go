package model

import (
	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
)

const (
	TableName  = "settings"
	EntityName = "settings"
	Title      = "Settings"

	// HotelID identifies the single settings record.
	HotelID = "hotel"

	FieldID                   = "id"
	FieldHotelName            = "hotel_name"
	FieldContactEmail         = "contact_email"
	FieldPhone                = "phone"
	FieldAddress              = "address"
	FieldTimezone             = "timezone"
	FieldHour24               = "hour24"
	FieldEmailNotifications   = "email_notifications"
	FieldSMSNotifications     = "sms_notifications"
	FieldDesktopNotifications = "desktop_notifications"
	FieldCheckInAlerts        = "check_in_alerts"
	FieldMaintenanceAlerts    = "maintenance_alerts"
	FieldTwoFactor            = "two_factor"
	FieldSessionTimeout       = "session_timeout"
)

var Definition = catalog.Definition{
	Entity:  EntityName,
	Title:   Title,
	Table:   TableName,
	FieldID: FieldID,
}

type Settings struct {
	ID                   string `db:"id"`
	HotelName            string `db:"hotel_name"`
	ContactEmail         string `db:"contact_email"`
	Phone                string `db:"phone"`
	Address              string `db:"address"`
	Timezone             string `db:"timezone"`
	Hour24               bool   `db:"hour24"`
	EmailNotifications   bool   `db:"email_notifications"`
	SMSNotifications     bool   `db:"sms_notifications"`
	DesktopNotifications bool   `db:"desktop_notifications"`
	CheckInAlerts        bool   `db:"check_in_alerts"`
	MaintenanceAlerts    bool   `db:"maintenance_alerts"`
	TwoFactor            bool   `db:"two_factor"`
	SessionTimeout       bool   `db:"session_timeout"`
	model.Metadata
}

func (s Settings) GetID() string {
	return s.ID
}

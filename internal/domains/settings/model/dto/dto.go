package dto

import (
	"frontdesk/internal/domains/settings/model"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type NotificationPreferences struct {
	Email       bool `json:"email"`
	SMS         bool `json:"sms"`
	Desktop     bool `json:"desktop"`
	CheckIn     bool `json:"check_in_alerts"`
	Maintenance bool `json:"maintenance_alerts"`
}

type SecurityPreferences struct {
	TwoFactor      bool `json:"two_factor"`
	SessionTimeout bool `json:"session_timeout"`
}

// UpdateSettingsRequest replaces every setting at once, like saving the settings page.
type UpdateSettingsRequest struct {
	HotelName     string                  `json:"hotel_name"    validate:"required,max=100"`
	ContactEmail  string                  `json:"contact_email" validate:"required,email"`
	Phone         string                  `json:"phone"         validate:"required,max=30"`
	Address       string                  `json:"address"       validate:"required,max=255"`
	Timezone      string                  `json:"timezone"      validate:"required,timezone"`
	Hour24        bool                    `json:"hour24"`
	Notifications NotificationPreferences `json:"notifications"`
	Security      SecurityPreferences     `json:"security"`
}

func (r *UpdateSettingsRequest) ToUpdate() map[string]any {
	return map[string]any{
		model.FieldHotelName:            r.HotelName,
		model.FieldContactEmail:         r.ContactEmail,
		model.FieldPhone:                r.Phone,
		model.FieldAddress:              r.Address,
		model.FieldTimezone:             r.Timezone,
		model.FieldHour24:               r.Hour24,
		model.FieldEmailNotifications:   r.Notifications.Email,
		model.FieldSMSNotifications:     r.Notifications.SMS,
		model.FieldDesktopNotifications: r.Notifications.Desktop,
		model.FieldCheckInAlerts:        r.Notifications.CheckIn,
		model.FieldMaintenanceAlerts:    r.Notifications.Maintenance,
		model.FieldTwoFactor:            r.Security.TwoFactor,
		model.FieldSessionTimeout:       r.Security.SessionTimeout,
	}
}

func (r *UpdateSettingsRequest) ToModel(user string) model.Settings {
	return model.Settings{
		ID:                   model.HotelID,
		HotelName:            r.HotelName,
		ContactEmail:         r.ContactEmail,
		Phone:                r.Phone,
		Address:              r.Address,
		Timezone:             r.Timezone,
		Hour24:               r.Hour24,
		EmailNotifications:   r.Notifications.Email,
		SMSNotifications:     r.Notifications.SMS,
		DesktopNotifications: r.Notifications.Desktop,
		CheckInAlerts:        r.Notifications.CheckIn,
		MaintenanceAlerts:    r.Notifications.Maintenance,
		TwoFactor:            r.Security.TwoFactor,
		SessionTimeout:       r.Security.SessionTimeout,
		Metadata:             gModel.NewMetadata(user, timezone.Now()),
	}
}

type SettingsResponse struct {
	HotelName     string                  `json:"hotel_name"`
	ContactEmail  string                  `json:"contact_email"`
	Phone         string                  `json:"phone"`
	Address       string                  `json:"address"`
	Timezone      string                  `json:"timezone"`
	Timezones     []string                `json:"timezones"`
	Hour24        bool                    `json:"hour24"`
	Notifications NotificationPreferences `json:"notifications"`
	Security      SecurityPreferences     `json:"security"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(m model.Settings, timezones []string) {
	r.HotelName = m.HotelName
	r.ContactEmail = m.ContactEmail
	r.Phone = m.Phone
	r.Address = m.Address
	r.Timezone = m.Timezone
	r.Timezones = timezones
	r.Hour24 = m.Hour24
	r.Notifications = NotificationPreferences{
		Email:       m.EmailNotifications,
		SMS:         m.SMSNotifications,
		Desktop:     m.DesktopNotifications,
		CheckIn:     m.CheckInAlerts,
		Maintenance: m.MaintenanceAlerts,
	}
	r.Security = SecurityPreferences{
		TwoFactor:      m.TwoFactor,
		SessionTimeout: m.SessionTimeout,
	}
	r.Metadata.FromModel(m.Metadata)
}

package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"frontdesk/shared/base64"
	"frontdesk/shared/failure"
	"frontdesk/shared/status"
	"frontdesk/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestForm struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Guests   int    `json:"guests"   validate:"gte=1,lte=8"`
	RoomType string `json:"room_type" validate:"oneof=Standard Deluxe Suite"`
}

func validGuest() guestForm {
	return guestForm{Name: "Maria Garcia", Email: "maria@example.com", Guests: 2, RoomType: "Deluxe"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *guestForm)
		wantErr string
	}{
		{name: "valid", mutate: func(*guestForm) {}},
		{name: "missing name", mutate: func(g *guestForm) { g.Name = "" }, wantErr: "name is required"},
		{name: "invalid email", mutate: func(g *guestForm) { g.Email = "maria" }, wantErr: "email must be a valid email address"},
		{name: "too many guests", mutate: func(g *guestForm) { g.Guests = 9 }, wantErr: "guests"},
		{name: "no guests", mutate: func(g *guestForm) { g.Guests = 0 }, wantErr: "guests"},
		{name: "unknown room type", mutate: func(g *guestForm) { g.RoomType = "Loft" }, wantErr: "room_type must be one of Standard, Deluxe, Suite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guest := validGuest()
			tt.mutate(&guest)

			err := validator.ValidateStruct(&guest)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "required", field: "101", tag: "required"},
		{name: "required but empty", field: "", tag: "required", wantErr: true},
		{name: "email", field: "front.desk@hotel.test", tag: "email"},
		{name: "not an email", field: "front.desk", tag: "email", wantErr: true},
		{name: "floor in range", field: 3, tag: "gte=1,lte=20"},
		{name: "floor out of range", field: 30, tag: "gte=1,lte=20", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Maria Garcia","email":"maria@example.com","guests":2,"room_type":"Suite"}`},
		{name: "invalid field", body: `{"name":"Maria Garcia","email":"maria","guests":2,"room_type":"Suite"}`, wantErr: "email"},
		{name: "malformed", body: `{"name":"Maria Garcia","email":}`, wantErr: "failed to decode request body"},
		{name: "empty object", body: `{}`, wantErr: "name is required"},
		{name: "empty body", body: ``, wantErr: "request body is required"},
		{name: "two documents", body: `{"name":"a"} {"name":"b"}`, wantErr: "single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form guestForm

			err := validator.Validate(strings.NewReader(tt.body), &form)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, "Maria Garcia", form.Name)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type roomImage struct {
	File    *multipart.FileHeader `json:"-"     validate:"required_without=DataURL,omitempty,mimetypes=image/jpeg image/png,maxfilesize=1"`
	DataURL string                `json:"image" validate:"required_without=File,omitempty,mimetypes=image/jpeg image/png,maxfilesize=1"`
}

func upload(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "room.png",
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
		Size:     size,
	}
}

func TestFileValidation(t *testing.T) {
	small := base64.Encode("image/png", make([]byte, 512))
	large := base64.Encode("image/png", make([]byte, 1<<20+1))

	tests := []struct {
		name    string
		data    roomImage
		wantErr bool
	}{
		{name: "uploaded png", data: roomImage{File: upload("image/png", 2048)}},
		{name: "uploaded gif", data: roomImage{File: upload("image/gif", 2048)}, wantErr: true},
		{name: "uploaded too large", data: roomImage{File: upload("image/jpeg", 3<<20)}, wantErr: true},
		{name: "inline png", data: roomImage{DataURL: small}},
		{name: "inline text", data: roomImage{DataURL: base64.Encode("text/plain", []byte("hi"))}, wantErr: true},
		{name: "inline too large", data: roomImage{DataURL: large}, wantErr: true},
		{name: "remote url", data: roomImage{DataURL: "https://cdn.hotel.test/rooms/101.png"}, wantErr: true},
		{name: "neither", data: roomImage{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

type statusChange struct {
	Status string `json:"status" validate:"required,status=validator_test.task"`
}

type hotelSettings struct {
	Timezone string `json:"timezone" validate:"required,timezone"`
}

type roomPrice struct {
	Price decimal.Decimal `json:"price" validate:"required,gt=0"`
}

func TestStatusValidation(t *testing.T) {
	status.Register("validator_test.task", status.Axis{
		Name:    "status",
		Field:   "status",
		Options: []status.Option{{Label: "Pending"}, {Label: "In Progress"}, {Label: "Completed"}},
	})

	require.NoError(t, validator.Validate(strings.NewReader(`{"status":"In Progress"}`), &statusChange{}))

	err := validator.Validate(strings.NewReader(`{"status":"Done"}`), &statusChange{})
	require.Error(t, err)
	assert.Equal(t, "status must be one of Pending, In Progress, Completed", err.Error())
}

func TestTimezoneValidation(t *testing.T) {
	require.NoError(t, validator.ValidateStruct(&hotelSettings{Timezone: "America/Chicago"}))

	err := validator.ValidateStruct(&hotelSettings{Timezone: "Europe/Paris"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "America/Los_Angeles")
}

func TestDecimalValidation(t *testing.T) {
	assert.NoError(t, validator.Validate(strings.NewReader(`{"price":"129.00"}`), &roomPrice{}))
	assert.Error(t, validator.Validate(strings.NewReader(`{}`), &roomPrice{}))
	assert.Error(t, validator.Validate(strings.NewReader(`{"price":"-5"}`), &roomPrice{}))
}

type passwordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type stayDates struct {
	CheckIn string `json:"check_in" validate:"required,datetime=2006-01-02"`
	Type    string `json:"type"     validate:"omitempty,oneof=Standard Deluxe Suite"`
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{
			name: "nefield uses the json name of the other field",
			data: &passwordChange{CurrentPassword: "frontdesk123", NewPassword: "frontdesk123", ConfirmPassword: "frontdesk123"},
			want: "new_password must differ from current_password",
		},
		{
			name: "eqfield",
			data: &passwordChange{CurrentPassword: "frontdesk123", NewPassword: "n3w-secret", ConfirmPassword: "n3w-secreT"},
			want: "confirm_password must match new_password",
		},
		{
			name: "min",
			data: &passwordChange{CurrentPassword: "frontdesk123", NewPassword: "short", ConfirmPassword: "short"},
			want: "new_password must be at least 8",
		},
		{
			name: "datetime layout is spelled out",
			data: &stayDates{CheckIn: "15/03/2024"},
			want: "check_in must be a date formatted as YYYY-MM-DD",
		},
		{
			name: "oneof options are comma separated",
			data: &stayDates{CheckIn: "2024-03-15", Type: "Penthouse"},
			want: "type must be one of Standard, Deluxe, Suite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			switch data := tt.data.(type) {
			case *passwordChange:
				err = validator.ValidateStruct(data)
			case *stayDates:
				err = validator.ValidateStruct(data)
			}

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

package dto

import (
	"fmt"
	"mime/multipart"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	ID             string          `json:"id"                        validate:"required,numeric"`
	Type           string          `json:"type"                      validate:"required,oneof=Standard Deluxe Suite Presidential"`
	Beds           string          `json:"beds"                      validate:"required"`
	Floor          int             `json:"floor"                     validate:"required,min=1"`
	Status         string          `json:"status,omitempty"          validate:"omitempty,status=room.status"`
	CleaningStatus string          `json:"cleaning_status,omitempty" validate:"omitempty,status=room.cleaning_status"`
	GuestName      string          `json:"guest_name,omitempty"`
	Price          decimal.Decimal `json:"price"                     validate:"required,gt=0"`
	Image          string          `json:"image,omitempty"           validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
}

// ToModel builds the room; image is the stored location of the uploaded picture, if any.
func (r *CreateRoomRequest) ToModel(user, image string) model.Room {
	roomStatus := r.Status
	if roomStatus == "" {
		roomStatus = model.StatusAvailable
	}

	cleaning := r.CleaningStatus
	if cleaning == "" {
		cleaning = model.CleaningClean
	}

	return model.Room{
		ID:             r.ID,
		Type:           r.Type,
		Beds:           r.Beds,
		Floor:          r.Floor,
		Status:         roomStatus,
		GuestName:      r.GuestName,
		CleaningStatus: cleaning,
		Price:          r.Price,
		Image:          image,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	Type      *string          `json:"type,omitempty"       validate:"omitempty,oneof=Standard Deluxe Suite Presidential"`
	Beds      *string          `json:"beds,omitempty"       validate:"omitempty,min=1"`
	Floor     *int             `json:"floor,omitempty"      validate:"omitempty,min=1"`
	GuestName *string          `json:"guest_name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

func (r *UpdateRoomRequest) ToUpdate() map[string]any {
	mod := map[string]any{}

	if r.Type != nil {
		mod[model.FieldType] = *r.Type
	}

	if r.Beds != nil {
		mod[model.FieldBeds] = *r.Beds
	}

	if r.Floor != nil {
		mod[model.FieldFloor] = *r.Floor
	}

	if r.GuestName != nil {
		mod[model.FieldGuestName] = *r.GuestName
	}

	if r.Price != nil {
		mod[model.FieldPrice] = *r.Price
	}

	return mod
}

type ReserveRoomRequest struct {
	GuestName string `json:"guest_name,omitempty"`
}

// UploadImageRequest carries either a multipart file or a base64 data URL.
type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"-"     validate:"required_without=DataURL,omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"     validate:"-"`
	DataURL   string                `json:"image" validate:"required_without=Image,omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
}

type RoomResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Beds           string          `json:"beds"`
	Floor          int             `json:"floor"`
	Status         status.Badge    `json:"status"`
	GuestName      string          `json:"guest_name"`
	CleaningStatus status.Badge    `json:"cleaning_status"`
	Price          decimal.Decimal `json:"price"`
	PriceLabel     string          `json:"price_label"`
	Image          string          `json:"image,omitempty"`
	Reservable     bool            `json:"reservable"`
	CheckoutReady  bool            `json:"checkout_ready"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Type = m.Type
	r.Beds = m.Beds
	r.Floor = m.Floor
	r.Status = model.StatusAxis.Badge(m.Status)
	r.GuestName = m.GuestName
	r.CleaningStatus = model.CleaningAxis.Badge(m.CleaningStatus)
	r.Price = m.Price
	r.PriceLabel = fmt.Sprintf(constant.CurrencyFormat, m.Price.StringFixed(2))
	r.Image = m.Image
	r.Reservable = m.Status == model.StatusAvailable
	r.CheckoutReady = m.Status == model.StatusOccupied
	r.Metadata.FromModel(m.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type RoomSummaryResponse struct {
	Total         int `json:"total"`
	Available     int `json:"available"`
	Occupied      int `json:"occupied"`
	Reserved      int `json:"reserved"`
	Maintenance   int `json:"maintenance"`
	NeedsCleaning int `json:"needs_cleaning"`
}

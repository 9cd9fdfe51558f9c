package dto

import (
	"fmt"

	checkinDto "frontdesk/internal/domains/checkin/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/status"

	"github.com/shopspring/decimal"
)

// LabelCleaning is the distribution slice for rooms waiting on housekeeping, whatever their status.
const LabelCleaning = "Cleaning"

type StatsResponse struct {
	AvailableRooms     int             `json:"available_rooms"`
	CurrentGuests      int             `json:"current_guests"`
	TodaysCheckIns     int             `json:"todays_check_ins"`
	TodaysRevenue      decimal.Decimal `json:"todays_revenue"`
	TodaysRevenueLabel string          `json:"todays_revenue_label"`
}

func (r *StatsResponse) SetRevenue(amount decimal.Decimal) {
	r.TodaysRevenue = amount
	r.TodaysRevenueLabel = fmt.Sprintf(constant.CurrencyFormat, amount.StringFixed(2))
}

type DistributionEntry struct {
	Label string      `json:"label"`
	Count int         `json:"count"`
	Tone  status.Tone `json:"tone"`
}

type RoomTypeOverview struct {
	Type       string `json:"type"`
	Total      int    `json:"total"`
	Available  int    `json:"available"`
	Occupied   int    `json:"occupied"`
	OutOfOrder int    `json:"out_of_order"`
}

type DashboardResponse struct {
	Stats            StatsResponse             `json:"stats"`
	RoomDistribution []DistributionEntry       `json:"room_distribution"`
	RoomTypes        []RoomTypeOverview        `json:"room_types"`
	Queue            checkinDto.QueueResponse `json:"queue"`
}

// FromRooms fills the room distribution and the per-type overview. Every room status and room
// type is listed even when no room has it.
func (r *DashboardResponse) FromRooms(rooms []roomModel.Room) {
	counts := map[string]int{}
	cleaning := 0
	index := map[string]int{}

	r.RoomTypes = make([]RoomTypeOverview, len(roomModel.Types))
	for i, roomType := range roomModel.Types {
		r.RoomTypes[i].Type = roomType
		index[roomType] = i
	}

	for _, room := range rooms {
		counts[room.Status]++

		if room.CleaningStatus == roomModel.CleaningNeedsCleaning {
			cleaning++
		}

		i, ok := index[room.Type]
		if !ok {
			i = len(r.RoomTypes)
			index[room.Type] = i
			r.RoomTypes = append(r.RoomTypes, RoomTypeOverview{Type: room.Type})
		}

		overview := &r.RoomTypes[i]
		overview.Total++

		switch room.Status {
		case roomModel.StatusAvailable:
			overview.Available++
		case roomModel.StatusOccupied:
			overview.Occupied++
		case roomModel.StatusMaintenance:
			overview.OutOfOrder++
		}
	}

	r.RoomDistribution = make([]DistributionEntry, 0, len(roomModel.StatusAxis.Options)+1)
	for _, option := range roomModel.StatusAxis.Options {
		r.RoomDistribution = append(r.RoomDistribution, DistributionEntry{Label: option.Label, Count: counts[option.Label], Tone: option.Tone})
	}

	r.RoomDistribution = append(r.RoomDistribution, DistributionEntry{
		Label: LabelCleaning,
		Count: cleaning,
		Tone:  roomModel.CleaningAxis.Badge(roomModel.CleaningNeedsCleaning).Tone,
	})
}

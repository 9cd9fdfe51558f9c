package dto

import (
	"frontdesk/internal/domains/loyalty/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"
)

type CreateMemberRequest struct {
	Name   string `json:"name"             validate:"required,max=100"`
	Email  string `json:"email"            validate:"required,email"`
	Phone  string `json:"phone,omitempty"  validate:"omitempty,max=20"`
	Tier   string `json:"tier,omitempty"   validate:"omitempty,status=loyalty.tier"`
	Points int    `json:"points,omitempty" validate:"omitempty,min=0"`
}

// ToModel enrolls a member today; without an explicit tier the member starts at Bronze.
func (r *CreateMemberRequest) ToModel(user string) model.Member {
	tier := r.Tier
	if tier == "" {
		tier = model.TierBronze
	}

	now := timezone.Now()

	return model.Member{
		ID:       shared.NewID(model.IDPrefix),
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Tier:     tier,
		Points:   r.Points,
		Joined:   timezone.StartOfDay(now),
		Metadata: gModel.NewMetadata(user, now),
	}
}

type UpdateMemberRequest struct {
	Name   *string `json:"name,omitempty"   validate:"omitempty,min=1,max=100"`
	Email  *string `json:"email,omitempty"  validate:"omitempty,email"`
	Phone  *string `json:"phone,omitempty"  validate:"omitempty,max=20"`
	Points *int    `json:"points,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateMemberRequest) ToUpdate() map[string]any {
	mod := map[string]any{}

	if r.Name != nil {
		mod[model.FieldName] = *r.Name
	}

	if r.Email != nil {
		mod[model.FieldEmail] = *r.Email
	}

	if r.Phone != nil {
		mod[model.FieldPhone] = *r.Phone
	}

	if r.Points != nil {
		mod[model.FieldPoints] = *r.Points
	}

	return mod
}

type AddPointsRequest struct {
	Points int    `json:"points"         validate:"required,gt=0"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=255"`
}

type RedeemRequest struct {
	RewardID string `json:"reward_id" validate:"required"`
}

type MemberResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Tier         status.Badge `json:"tier"`
	Points       int          `json:"points"`
	EligibleTier string       `json:"eligible_tier"`
	Joined       string       `json:"joined"`
	LastStay     string       `json:"last_stay,omitempty"`
	gDto.Metadata
}

func (r *MemberResponse) FromModel(m model.Member, program model.Program) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.Tier = model.TierAxis.Badge(m.Tier)
	r.Points = m.Points
	r.EligibleTier = program.EligibleTier(m.Points)
	r.Joined = shared.FormatTime(&m.Joined, constant.DayFormat)
	r.LastStay = shared.FormatTime(m.LastStay, constant.DayFormat)
	r.Metadata.FromModel(m.Metadata)
}

type GetMembersResponse struct {
	Members   []MemberResponse `json:"members"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetMembersResponse) FromModels(models []model.Member, program model.Program, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Members = make([]MemberResponse, len(models))
	for i, mod := range models {
		r.Members[i].FromModel(mod, program)
	}
}

type TransactionResponse struct {
	ID       string `json:"id"`
	MemberID string `json:"member_id"`
	Kind     string `json:"kind"`
	Points   int    `json:"points"`
	RewardID string `json:"reward_id,omitempty"`
	Note     string `json:"note,omitempty"`
	At       string `json:"at"`
}

func (r *TransactionResponse) FromModel(m model.Transaction) {
	r.ID = m.ID
	r.MemberID = m.MemberID
	r.Kind = m.Kind
	r.Points = m.Points
	r.RewardID = m.RewardID
	r.Note = m.Note
	r.At = timezone.Format(m.CreatedAt, constant.DayTimeFormat)
}

type HistoryResponse struct {
	MemberID     string                `json:"member_id"`
	Balance      int                   `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

type ProgramResponse struct {
	Tiers   []model.Tier   `json:"tiers"`
	Rewards []model.Reward `json:"rewards"`
}

// NewTransaction records a points movement; redemptions carry the reward they paid for.
func NewTransaction(memberID, kind string, points int, rewardID, note, user string) model.Transaction {
	return model.Transaction{
		ID:       shared.NewID(model.TransactionIDPrefix),
		MemberID: memberID,
		Kind:     kind,
		Points:   points,
		RewardID: rewardID,
		Note:     note,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

package model

import (
	"time"

	"frontdesk/shared/catalog"
	"frontdesk/shared/model"
	"frontdesk/shared/status"
)

const (
	TableName  = "loyalty_members"
	EntityName = "member"
	Title      = "Member"
	IDPrefix   = "G"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldTier     = "tier"
	FieldPoints   = "points"
	FieldJoined   = "joined"
	FieldLastStay = "last_stay"
)

const (
	TransactionTableName  = "loyalty_transactions"
	TransactionEntityName = "point_transaction"
	TransactionTitle      = "Point Transaction"
	TransactionIDPrefix   = "PT"

	FieldMemberID = "member_id"
	FieldKind     = "kind"
	FieldRewardID = "reward_id"
	FieldNote     = "note"
)

const (
	TierBronze  = "Bronze"
	TierSilver  = "Silver"
	TierGold    = "Gold"
	TierDiamond = "Diamond"

	KindEarn   = "earn"
	KindRedeem = "redeem"
)

var TierAxis = status.Register("loyalty.tier", status.Axis{
	Name:  "tier",
	Field: FieldTier,
	Options: []status.Option{
		{Label: TierBronze, Tone: status.ToneOrange, Icon: "star"},
		{Label: TierSilver, Tone: status.ToneGray, Icon: "award"},
		{Label: TierGold, Tone: status.ToneYellow, Icon: "gift"},
		{Label: TierDiamond, Tone: status.ToneBlue, Icon: "badge-percent"},
	},
})

var Definition = catalog.Definition{
	Entity:       EntityName,
	Title:        Title,
	Table:        TableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldName, FieldEmail, FieldID},
	Axes:         []status.Axis{TierAxis},
}

var TransactionDefinition = catalog.Definition{
	Entity:       TransactionEntityName,
	Title:        TransactionTitle,
	Table:        TransactionTableName,
	FieldID:      FieldID,
	SearchFields: []string{FieldMemberID, FieldRewardID, FieldNote},
}

// Member is a guest enrolled in the loyalty program. Tier and points are edited independently.
type Member struct {
	ID       string     `db:"id"`
	Name     string     `db:"name"`
	Email    string     `db:"email"`
	Phone    string     `db:"phone"`
	Tier     string     `db:"tier"`
	Points   int        `db:"points"`
	Joined   time.Time  `db:"joined"`
	LastStay *time.Time `db:"last_stay"`
	model.Metadata
}

func (m Member) GetID() string {
	return m.ID
}

type Transaction struct {
	ID       string `db:"id"`
	MemberID string `db:"member_id"`
	Kind     string `db:"kind"`
	Points   int    `db:"points"`
	RewardID string `db:"reward_id"`
	Note     string `db:"note"`
	model.Metadata
}

func (t Transaction) GetID() string {
	return t.ID
}

type Tier struct {
	Name           string   `json:"name"            yaml:"name"`
	RequiredPoints int      `json:"required_points" yaml:"required_points"`
	Benefits       []string `json:"benefits"        yaml:"benefits"`
}

type Reward struct {
	ID         string `json:"id"          yaml:"id"`
	Name       string `json:"name"        yaml:"name"`
	PointsCost int    `json:"points_cost" yaml:"points_cost"`
	Available  bool   `json:"available"   yaml:"available"`
}

// Program is the static reference data of the loyalty scheme.
type Program struct {
	Tiers   []Tier   `yaml:"tiers"`
	Rewards []Reward `yaml:"rewards"`
}

// EligibleTier is the highest tier whose threshold the points reach. It never changes a member's tier.
func (p Program) EligibleTier(points int) string {
	eligible := ""
	threshold := -1

	for _, tier := range p.Tiers {
		if tier.RequiredPoints <= points && tier.RequiredPoints > threshold {
			eligible, threshold = tier.Name, tier.RequiredPoints
		}
	}

	return eligible
}

func (p Program) Reward(id string) (Reward, bool) {
	for _, reward := range p.Rewards {
		if reward.ID == id {
			return reward, true
		}
	}

	return Reward{}, false
}

package service

import (
	"context"
	"fmt"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/loyalty/model"
	"frontdesk/internal/domains/loyalty/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"

	"github.com/rs/zerolog/log"
)

type Loyalty interface {
	Program(ctx context.Context) dto.ProgramResponse
	Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMembersResponse, error)
	Get(ctx context.Context, id string) (dto.MemberResponse, error)
	Create(ctx context.Context, req dto.CreateMemberRequest) (dto.MemberResponse, notify.Notification, error)
	Update(ctx context.Context, id string, req dto.UpdateMemberRequest) (notify.Notification, error)
	SetTier(ctx context.Context, id, tier string) (notify.Notification, error)
	Delete(ctx context.Context, id string) (notify.Notification, error)
	AddPoints(ctx context.Context, id string, req dto.AddPointsRequest) (notify.Notification, error)
	Redeem(ctx context.Context, id string, req dto.RedeemRequest) (notify.Notification, error)
	History(ctx context.Context, id string) (dto.HistoryResponse, error)
}

type serviceImpl struct {
	members      *catalog.Catalog[model.Member]
	transactions *catalog.Catalog[model.Transaction]
	program      model.Program
	otel         otel.Otel

	// guards read-modify-write of member points
	mu sync.Mutex
}

func New(members *catalog.Catalog[model.Member], transactions *catalog.Catalog[model.Transaction], program model.Program, otel otel.Otel) Loyalty {
	return &serviceImpl{
		members:      members,
		transactions: transactions,
		program:      program,
		otel:         otel,
	}
}

func (s *serviceImpl) Program(_ context.Context) dto.ProgramResponse {
	return dto.ProgramResponse{
		Tiers:   s.program.Tiers,
		Rewards: s.program.Rewards,
	}
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMembersResponse, err error) {
	page, err := s.members.Search(ctx, query, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, s.program, page.Total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MemberResponse, err error) {
	member, err := s.members.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(member, s.program)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMemberRequest) (res dto.MemberResponse, notification notify.Notification, err error) {
	member := req.ToModel(shared.Username(ctx))

	notification, err = s.members.Create(ctx, member)
	if err != nil {
		return res, notification, err
	}

	res.FromModel(member, s.program)

	return res, notification, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateMemberRequest) (notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.members.Update(ctx, id, req.ToUpdate())
}

func (s *serviceImpl) SetTier(ctx context.Context, id, tier string) (notify.Notification, error) {
	return s.members.SetStatus(ctx, id, model.FieldTier, tier)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (notify.Notification, error) {
	return s.members.Delete(ctx, id)
}

func (s *serviceImpl) AddPoints(ctx context.Context, id string, req dto.AddPointsRequest) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPoints")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Points <= 0 {
		return res, failure.BadRequestFromString("points must be a positive number") //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.members.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.move(ctx, member, model.KindEarn, req.Points, "", req.Note); err != nil {
		return res, err
	}

	return s.members.Announce(ctx, id,
		"Points Added",
		fmt.Sprintf("%d points added for %s.", req.Points, member.Name),
	), nil
}

// Redeem spends the reward's cost from the member's balance.
func (s *serviceImpl) Redeem(ctx context.Context, id string, req dto.RedeemRequest) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Redeem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reward, ok := s.program.Reward(req.RewardID)
	if !ok {
		return res, failure.NotFound("reward not found") //nolint:wrapcheck
	}

	if !reward.Available {
		return res, failure.Conflict(fmt.Sprintf("reward %s is not available", reward.ID)) //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.members.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if member.Points < reward.PointsCost {
		return res, failure.BadRequestFromString( //nolint:wrapcheck
			fmt.Sprintf("insufficient points: %s needs %d, member has %d", reward.Name, reward.PointsCost, member.Points),
		)
	}

	if err = s.move(ctx, member, model.KindRedeem, -reward.PointsCost, reward.ID, reward.Name); err != nil {
		return res, err
	}

	return s.members.Announce(ctx, id,
		"Reward Redeemed",
		fmt.Sprintf("Reward ID: %s has been successfully redeemed for guest %s.", reward.ID, id),
	), nil
}

// History lists the member's point transactions, newest first.
func (s *serviceImpl) History(ctx context.Context, id string) (res dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	member, err := s.members.Get(ctx, id)
	if err != nil {
		return res, err
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}
	filter := shared.ExactFilter(model.TransactionTableName, map[string]string{model.FieldMemberID: id})

	page, err := s.transactions.Search(ctx, "", params, filter)
	if err != nil {
		return res, err
	}

	res.MemberID = member.ID
	res.Balance = member.Points
	res.Transactions = make([]dto.TransactionResponse, len(page.Items))

	for i, transaction := range page.Items {
		res.Transactions[i].FromModel(transaction)
	}

	return res, nil
}

// move records a signed points delta, then applies it to the member; the caller holds s.mu.
// A transaction whose points could not be applied is removed again so the history matches
// the balance.
func (s *serviceImpl) move(ctx context.Context, member model.Member, kind string, delta int, rewardID, note string) error {
	transaction := dto.NewTransaction(member.ID, kind, delta, rewardID, note, shared.Username(ctx))
	if err := s.transactions.Insert(ctx, transaction); err != nil {
		return err
	}

	err := s.members.Write(ctx, member.ID, map[string]any{model.FieldPoints: member.Points + delta})
	if err == nil {
		return nil
	}

	if rmErr := s.transactions.Remove(ctx, transaction.ID); rmErr != nil {
		log.Error().Err(rmErr).Str("member", member.ID).Str("transaction", transaction.ID).Msg("points were not applied but transaction is still recorded")
	}

	return err
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/loyalty/model"
	"frontdesk/internal/domains/loyalty/model/dto"
	"frontdesk/internal/domains/loyalty/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"
	repoMocks "frontdesk/shared/repository/mocks"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var program = model.Program{
	Tiers: []model.Tier{
		{Name: model.TierBronze, RequiredPoints: 0},
		{Name: model.TierSilver, RequiredPoints: 5000},
		{Name: model.TierGold, RequiredPoints: 10000},
		{Name: model.TierDiamond, RequiredPoints: 25000},
	},
	Rewards: []model.Reward{
		{ID: "R1", Name: "Free Night Stay", PointsCost: 15000, Available: true},
		{ID: "R2", Name: "Spa Treatment", PointsCost: 5000, Available: true},
		{ID: "R3", Name: "Airport Transfer", PointsCost: 2500, Available: true},
		{ID: "R9", Name: "Retired Voucher", PointsCost: 100, Available: false},
	},
}

func seedMembers() []model.Member {
	joined := time.Date(2023, 1, 10, 0, 0, 0, 0, timezone.GetLocation())

	return []model.Member{
		{ID: "G1001", Name: "Jennifer Smith", Email: "jennifer.smith@example.com", Tier: model.TierDiamond, Points: 15400, Joined: joined},
		{ID: "G1002", Name: "Michael Chen", Email: "m.chen@example.com", Tier: model.TierGold, Points: 7800, Joined: joined},
		{ID: "G1003", Name: "Emma Davis", Email: "emma.davis@example.com", Tier: model.TierBronze, Points: 1200, Joined: joined},
	}
}

func newService(t *testing.T) service.Loyalty {
	t.Helper()

	ot := mocks.NewOtel()

	memberStore := repository.NewMemoryRepository[model.Member](model.EntityName, model.FieldID, ot)
	require.NoError(t, memberStore.InsertBulk(context.Background(), seedMembers()))

	return buildService(memberStore, repository.NewMemoryRepository[model.Transaction](model.TransactionEntityName, model.FieldID, ot))
}

func buildService(memberStore repository.Store[model.Member], transactionStore repository.Store[model.Transaction]) service.Loyalty {
	ot := mocks.NewOtel()
	cfg := &config.Config{}
	notifier := notify.New(cfg, nil)

	members := catalog.New[model.Member](model.Definition, memberStore, cache.NewMemoryCache(ot), cfg, ot, notifier)
	transactions := catalog.New[model.Transaction](model.TransactionDefinition, transactionStore, cache.NewMemoryCache(ot), cfg, ot, notifier)

	return service.New(members, transactions, program, ot)
}

func TestProgram_EligibleTier(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{points: 0, want: model.TierBronze},
		{points: 4999, want: model.TierBronze},
		{points: 5000, want: model.TierSilver},
		{points: 15400, want: model.TierGold},
		{points: 30000, want: model.TierDiamond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, program.EligibleTier(tt.points))
	}
}

func TestLoyaltyService_Search(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name", query: "jennifer", want: []string{"G1001"}},
		{name: "email", query: "m.chen@", want: []string{"G1002"}},
		{name: "id", query: "g1003", want: []string{"G1003"}},
		{name: "none", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newService(t).Search(context.Background(), tt.query, gDto.QueryParams{}, gDto.FilterGroup{})
			require.NoError(t, err)

			got := []string{}
			for _, member := range res.Members {
				got = append(got, member.ID)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoyaltyService_TierIsNotDerived(t *testing.T) {
	member, err := newService(t).Get(context.Background(), "G1001")
	require.NoError(t, err)
	assert.Equal(t, model.TierDiamond, member.Tier.Label)
	assert.Equal(t, model.TierGold, member.EligibleTier)
}

func TestLoyaltyService_AddPoints(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	notification, err := svc.AddPoints(ctx, "G1003", dto.AddPointsRequest{Points: 300, Note: "Stay"})
	require.NoError(t, err)
	assert.Equal(t, "Points Added", notification.Title)

	member, err := svc.Get(ctx, "G1003")
	require.NoError(t, err)
	assert.Equal(t, 1500, member.Points)
	assert.Equal(t, model.TierBronze, member.Tier.Label)

	_, err = svc.AddPoints(ctx, "G1003", dto.AddPointsRequest{Points: 0})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.AddPoints(ctx, "G9999", dto.AddPointsRequest{Points: 10})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestLoyaltyService_AddPointsTransactionNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()
	ctx := context.Background()

	memberStore := repository.NewMemoryRepository[model.Member](model.EntityName, model.FieldID, ot)
	require.NoError(t, memberStore.InsertBulk(ctx, seedMembers()))

	transactionStore := repoMocks.NewMockStore[model.Transaction](ctrl)
	transactionStore.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	svc := buildService(memberStore, transactionStore)

	_, err := svc.AddPoints(ctx, "G1003", dto.AddPointsRequest{Points: 300})
	require.ErrorContains(t, err, "failed to create point_transaction")

	member, err := svc.Get(ctx, "G1003")
	require.NoError(t, err)
	assert.Equal(t, 1200, member.Points, "points move only once the transaction is recorded")
}

func TestLoyaltyService_AddPointsBalanceNotWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()
	ctx := context.Background()

	memberStore := repoMocks.NewMockStore[model.Member](ctrl)
	memberStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return(seedMembers()[2], nil)
	memberStore.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	memberStore.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	transactionStore := repository.NewMemoryRepository[model.Transaction](model.TransactionEntityName, model.FieldID, ot)

	svc := buildService(memberStore, transactionStore)

	_, err := svc.AddPoints(ctx, "G1003", dto.AddPointsRequest{Points: 300})
	require.ErrorContains(t, err, "failed to update member")

	count, err := transactionStore.Count(ctx, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Zero(t, count, "the recorded transaction is removed when the balance is not written")
}

func TestLoyaltyService_Redeem(t *testing.T) {
	tests := []struct {
		name       string
		member     string
		reward     string
		wantCode   int
		wantPoints int
	}{
		{name: "enough points", member: "G1001", reward: "R1", wantPoints: 400},
		{name: "gold member", member: "G1002", reward: "R2", wantPoints: 2800},
		{name: "insufficient points", member: "G1003", reward: "R3", wantCode: http.StatusBadRequest, wantPoints: 1200},
		{name: "unknown reward", member: "G1001", reward: "R42", wantCode: http.StatusNotFound, wantPoints: 15400},
		{name: "unavailable reward", member: "G1001", reward: "R9", wantCode: http.StatusConflict, wantPoints: 15400},
		{name: "unknown member", member: "G9999", reward: "R3", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			ctx := context.Background()

			notification, err := svc.Redeem(ctx, tt.member, dto.RedeemRequest{RewardID: tt.reward})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Reward Redeemed", notification.Title)
				assert.Equal(t, "Reward ID: "+tt.reward+" has been successfully redeemed for guest "+tt.member+".", notification.Description)
			}

			if tt.wantPoints == 0 {
				return
			}

			member, err := svc.Get(ctx, tt.member)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPoints, member.Points)
		})
	}
}

func TestLoyaltyService_History(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.AddPoints(ctx, "G1002", dto.AddPointsRequest{Points: 200})
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, "G1002", dto.RedeemRequest{RewardID: "R3"})
	require.NoError(t, err)

	history, err := svc.History(ctx, "G1002")
	require.NoError(t, err)
	assert.Equal(t, 5500, history.Balance)
	require.Len(t, history.Transactions, 2)
	assert.Equal(t, model.KindRedeem, history.Transactions[0].Kind)
	assert.Equal(t, -2500, history.Transactions[0].Points)
	assert.Equal(t, "R3", history.Transactions[0].RewardID)
	assert.Equal(t, model.KindEarn, history.Transactions[1].Kind)

	other, err := svc.History(ctx, "G1001")
	require.NoError(t, err)
	assert.Empty(t, other.Transactions)

	_, err = svc.History(ctx, "G9999")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestLoyaltyService_SetTier(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	notification, err := svc.SetTier(ctx, "G1003", model.TierSilver)
	require.NoError(t, err)
	assert.Equal(t, "Member G1003 tier changed to Silver.", notification.Description)

	member, err := svc.Get(ctx, "G1003")
	require.NoError(t, err)
	assert.Equal(t, 1200, member.Points)

	_, err = svc.SetTier(ctx, "G1003", "Platinum")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

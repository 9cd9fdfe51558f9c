package repository_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/dto"
	"frontdesk/shared/model"
	"frontdesk/shared/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type reservation struct {
	ID            string          `db:"id"`
	GuestName     string          `db:"guest_name"`
	PaymentStatus string          `db:"payment_status"`
	Nights        int             `db:"nights"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Note          *string         `db:"note"`
	model.Metadata
}

func seeded(t *testing.T) *repository.MemoryRepository[reservation] {
	t.Helper()

	repo := repository.NewMemoryRepository[reservation]("reservation", "id", mocks.NewOtel())
	err := repo.InsertBulk(context.Background(), []reservation{
		{ID: "R1", GuestName: "Jennifer Lawrence", PaymentStatus: "Paid", Nights: 5, TotalAmount: decimal.RequireFromString("1495.00")},
		{ID: "R2", GuestName: "Michael Brown", PaymentStatus: "Unpaid", Nights: 4, TotalAmount: decimal.RequireFromString("796.00")},
		{ID: "R3", GuestName: "Maria Garcia", PaymentStatus: "Paid", Nights: 2, TotalAmount: decimal.RequireFromString("258.00")},
	})
	assert.NoError(t, err)

	return repo
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq}}}
}

func TestMemoryRepository_InsertPrepends(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, reservation{ID: "R4", GuestName: "Ada Walker"}))

	all, err := repo.GetAll(ctx, dto.QueryParams{}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Equal(t, "R4", all[0].ID)
	assert.Len(t, all, 4)
}

func TestMemoryRepository_GetAll(t *testing.T) {
	tests := []struct {
		name   string
		params dto.QueryParams
		filter dto.FilterGroup
		want   []string
	}{
		{name: "store order", want: []string{"R1", "R2", "R3"}},
		{
			name:   "eq filter",
			filter: dto.FilterGroup{Filters: []any{dto.Filter{Field: "payment_status", Value: "Paid", Operator: dto.FilterOperatorEq}}},
			want:   []string{"R1", "R3"},
		},
		{
			name: "or group",
			filter: dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{
				dto.Filter{Field: "guest_name", Value: "brown", Operator: dto.FilterOperatorLike},
				dto.Filter{Field: "id", Value: "R3", Operator: dto.FilterOperatorEq},
			}},
			want: []string{"R2", "R3"},
		},
		{
			name:   "decimal comparison",
			filter: dto.FilterGroup{Filters: []any{dto.Filter{Field: "total_amount", Value: "800", Operator: dto.FilterOperatorGreaterEq}}},
			want:   []string{"R1"},
		},
		{
			name:   "in filter",
			filter: dto.FilterGroup{Filters: []any{dto.Filter{Field: "id", Value: []string{"R1", "R2"}, Operator: dto.FilterOperatorIn}}},
			want:   []string{"R1", "R2"},
		},
		{name: "sort ascending", params: dto.QueryParams{SortBy: "nights", SortDir: dto.SortDirAsc}, want: []string{"R3", "R2", "R1"}},
		{name: "sort descending", params: dto.QueryParams{SortBy: "guest_name", SortDir: dto.SortDirDesc}, want: []string{"R2", "R3", "R1"}},
		{name: "unknown sort column keeps order", params: dto.QueryParams{SortBy: "nope"}, want: []string{"R1", "R2", "R3"}},
		{name: "second page", params: dto.QueryParams{Page: 2, Limit: 2}, want: []string{"R3"}},
		{name: "page past the end", params: dto.QueryParams{Page: 3, Limit: 2}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seeded(t)

			all, err := repo.GetAll(context.Background(), tt.params, tt.filter)
			assert.NoError(t, err)

			got := []string{}
			for _, item := range all {
				got = append(got, item.ID)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()
	note := "late arrival"
	now := time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC)

	err := repo.Update(ctx, map[string]any{
		"payment_status": "Partially Paid",
		"note":           &note,
		"nights":         int64(6),
		"modified_at":    now,
		"modified_by":    "staff-1",
	}, byID("R2"))
	assert.NoError(t, err)

	got, err := repo.Get(ctx, byID("R2"))
	assert.NoError(t, err)
	assert.Equal(t, "Partially Paid", got.PaymentStatus)
	assert.Equal(t, 6, got.Nights)
	assert.Equal(t, "late arrival", *got.Note)
	assert.Equal(t, now, got.ModifiedAt)
	assert.Equal(t, "Michael Brown", got.GuestName)

	other, err := repo.Get(ctx, byID("R1"))
	assert.NoError(t, err)
	assert.Equal(t, "Paid", other.PaymentStatus)

	assert.Error(t, repo.Update(ctx, map[string]any{"unknown": 1}, byID("R2")))
	assert.Error(t, repo.Update(ctx, map[string]any{"nights": "six"}, byID("R2")))
	assert.Error(t, repo.Update(ctx, map[string]any{"nights": 1}, dto.FilterGroup{}))
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, byID("R2")))

	all, err := repo.GetAll(ctx, dto.QueryParams{}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"R1", "R3"}, []string{all[0].ID, all[1].ID})

	exist, err := repo.Exist(ctx, byID("R2"))
	assert.NoError(t, err)
	assert.False(t, exist)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryRepository_GetMissingReturnsZero(t *testing.T) {
	repo := seeded(t)

	got, err := repo.Get(context.Background(), byID("R9"))
	assert.NoError(t, err)
	assert.Empty(t, got.ID)
}

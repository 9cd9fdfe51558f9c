package shared_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"frontdesk/infras/otel/mocks"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("vip"))

	value := shared.ConvertStringToBool("true")
	require.NotNil(t, value)
	assert.True(t, *value)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no records", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 25, limit: 0, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "single page", total: 4, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name   string `db:"name"`
		Active bool   `db:"active"`
		Floor  int    `db:"floor"`
		Note   string
	}

	fields := shared.TransformFields(update{Name: "Maria Garcia", Floor: 2, Note: "ignored"}, "S0001")

	assert.Equal(t, "Maria Garcia", fields["name"])
	assert.Equal(t, 2, fields["floor"])
	assert.NotContains(t, fields, "active")
	assert.NotContains(t, fields, "Note")
	assert.Equal(t, "S0001", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("101", "id", "rooms")

	require.Len(t, group.Filters, 1)
	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	assert.Equal(t, dto.Eq("rooms", "id", "101"), group.Filters[0])

	where, args := group.GetWhereClause()
	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "101"}, args)
}

func TestSearchFilter(t *testing.T) {
	empty := shared.SearchFilter("", "guests", "name")
	assert.True(t, empty.IsEmpty())

	noFields := shared.SearchFilter("john", "guests")
	assert.True(t, noFields.IsEmpty())

	group := shared.SearchFilter("john", "guests", "name", "email")

	where, args := group.GetWhereClause()
	assert.Equal(t, `(LOWER(guests.name) LIKE LOWER(:q_0) ESCAPE '\' OR LOWER(guests.email) LIKE LOWER(:q_1) ESCAPE '\')`, where)
	assert.Equal(t, map[string]any{"q_0": "%john%", "q_1": "%john%"}, args)

	assert.True(t, group.Match(map[string]any{"name": "Sarah Johnson", "email": "sarah@example.com"}))
	assert.False(t, group.Match(map[string]any{"name": "Emma Wilson", "email": "emma@example.com"}))
}

func TestSearchFilter_QueryIsTakenAsTyped(t *testing.T) {
	michael := map[string]any{"name": "Michael Brown"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "exact word", query: "Brown", want: true},
		{name: "inner space", query: "l B", want: true},
		{name: "trailing space", query: "Brown ", want: false},
		{name: "leading space", query: " Michael", want: false},
		{name: "only spaces", query: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := shared.SearchFilter(tt.query, "guests", "name")

			assert.False(t, group.IsEmpty())
			assert.Equal(t, tt.want, group.Match(michael))
		})
	}
}

func TestExactFilter(t *testing.T) {
	group := shared.ExactFilter("rooms", map[string]string{
		"type":   "Suite",
		"status": " Available ",
		"floor":  "",
	})

	where, args := group.GetWhereClause()
	assert.Equal(t, "(rooms.status = :status AND rooms.type = :type)", where)
	assert.Equal(t, map[string]any{"status": "Available", "type": "Suite"}, args)

	empty := shared.ExactFilter("rooms", map[string]string{"status": ""})
	assert.True(t, empty.IsEmpty())
}

func TestMergeFilters(t *testing.T) {
	search := shared.SearchFilter("101", "rooms", "id")
	exact := shared.ExactFilter("rooms", map[string]string{"status": "Occupied"})

	merged := shared.MergeFilters(search, dto.FilterGroup{}, exact)
	require.Len(t, merged.Filters, 2)

	assert.True(t, merged.Match(map[string]any{"id": "101", "status": "Occupied"}))
	assert.False(t, merged.Match(map[string]any{"id": "101", "status": "Available"}))

	none := shared.MergeFilters(dto.FilterGroup{}, dto.Or())
	assert.True(t, none.IsEmpty())
	assert.True(t, none.Match(map[string]any{"id": "102"}))
}

func TestNewID(t *testing.T) {
	pattern := regexp.MustCompile(`^T[0-9A-F]{8}$`)

	first, second := shared.NewID("T"), shared.NewID("T")

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestUsername(t *testing.T) {
	assert.Equal(t, constant.ContextSystem, shared.Username(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "S0002")
	assert.Equal(t, "S0002", shared.Username(ctx))
}

func TestParseAndFormatTime(t *testing.T) {
	assert.Nil(t, shared.ParseTime(constant.DayFormat, " "))
	assert.Nil(t, shared.ParseTime(constant.DayFormat, "tomorrow"))
	assert.Empty(t, shared.FormatTime(nil, constant.DayFormat))

	parsed := shared.ParseTime(constant.DayFormat, "2024-03-15")
	require.NotNil(t, parsed)
	assert.Equal(t, "2024-03-15", shared.FormatTime(parsed, constant.DayFormat))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:101", shared.BuildCacheKey("room:get", "101"))

	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.ExactFilter("rooms", map[string]string{"status": "Available"})

	key := shared.BuildCacheKeyWithQuery("room:search", params, filter)
	assert.Equal(t, key, shared.BuildCacheKeyWithQuery("room:search", params, filter))
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("room:search", dto.QueryParams{Page: 2, Limit: 10}, filter))
}

func TestInvalidateCaches(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache(mocks.NewOtel())

	require.NoError(t, store.Save(ctx, "room:get:101", "101", 60))
	require.NoError(t, store.Save(ctx, "task:get:T1", "T1", 60))

	shared.InvalidateCaches(ctx, store, "room:")
	shared.InvalidateCaches(ctx, nil, "task:")

	var value string
	require.ErrorIs(t, store.Get(ctx, "room:get:101", &value), cache.Nil)
	require.NoError(t, store.Get(ctx, "task:get:T1", &value))
	assert.Equal(t, "T1", value)
}

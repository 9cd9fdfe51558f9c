package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type audit struct {
	CreatedAt string `db:"created_at"`
	CreatedBy string `db:"created_by"`
}

type room struct {
	ID       string `db:"id"`
	Status   string `db:"status"`
	Note     string
	Skipped  string `db:"-"`
	TypeName string `db:"type_name" table:"room_types" column:"name"`
	audit
}

func newRoomRepository() *SQLRepository[room] {
	return NewSQLRepository[room]("room", "rooms", "id", nil, mocks.NewOtel())
}

func TestSQLRepository_Columns(t *testing.T) {
	repo := newRoomRepository()

	assert.Equal(t, []string{"id", "status", "created_at", "created_by"}, repo.insertColumns)
	assert.Equal(t,
		"rooms.id, rooms.status, room_types.name AS type_name, rooms.created_at, rooms.created_by",
		repo.selectList(),
	)
	assert.Equal(t, "rooms.id, rooms.status", repo.selectList("id", "status"))
}

func TestSQLRepository_OrderBy(t *testing.T) {
	repo := newRoomRepository()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "default", params: dto.QueryParams{}, want: "ORDER BY rooms.created_at DESC"},
		{name: "ascending column", params: dto.QueryParams{SortBy: "status", SortDir: dto.SortDirAsc}, want: "ORDER BY rooms.status ASC"},
		{name: "descending column", params: dto.QueryParams{SortBy: "id", SortDir: dto.SortDirDesc}, want: "ORDER BY rooms.id DESC"},
		{name: "joined column falls back", params: dto.QueryParams{SortBy: "name"}, want: "ORDER BY rooms.created_at DESC"},
		{name: "injection falls back", params: dto.QueryParams{SortBy: "id; DROP TABLE rooms"}, want: "ORDER BY rooms.created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderBy(tt.params))
		})
	}
}

func TestSQLRepository_UpdateGuards(t *testing.T) {
	repo := newRoomRepository()
	ctx := context.Background()

	err := repo.Update(ctx, map[string]any{"status": "Cleaning"}, dto.FilterGroup{})
	require.ErrorIs(t, err, errRequiredFilter)

	err = repo.Update(ctx, map[string]any{"type_name": "Suite"}, dto.And(dto.Eq("rooms", "id", "101")))
	require.ErrorIs(t, err, ErrUnknownColumn)

	require.ErrorIs(t, repo.Delete(ctx, dto.And()), errRequiredFilter)

	_, err = repo.Exist(ctx, dto.FilterGroup{})
	require.ErrorIs(t, err, errRequiredFilter)
}

func TestSQLRepository_Fail(t *testing.T) {
	repo := newRoomRepository()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, code: http.StatusConflict},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, code: http.StatusConflict},
		{name: "other postgres error", err: &pq.Error{Code: "42P01"}, code: http.StatusInternalServerError},
		{name: "connection error", err: errors.New("connection refused"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := mocks.NewScope()

			err := repo.fail(scope, "insert data", tt.err)

			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Len(t, scope.(*mocks.Scope).Errors, 1)
		})
	}
}

func TestSQLRepository_BuildWhereClause(t *testing.T) {
	repo := newRoomRepository()

	where, args := repo.BuildWhereClause(dto.And(dto.Eq("rooms", "status", "Available")))
	assert.Equal(t, "WHERE (rooms.status = :status)", where)
	assert.Equal(t, map[string]any{"status": "Available"}, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestSQLRepository_BuildWhereClauseEscapesLike(t *testing.T) {
	repo := newRoomRepository()

	tests := []struct {
		name     string
		value    string
		wantArg  string
		matches  string
		excludes string
	}{
		{name: "underscore", value: "_", wantArg: `%\_%`, matches: "suite_a", excludes: "suite"},
		{name: "percent", value: "100%", wantArg: `%100\%%`, matches: "100% clean", excludes: "1000 clean"},
		{name: "backslash", value: `a\b`, wantArg: `%a\\b%`, matches: `a\b`, excludes: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := dto.And(dto.Like("rooms", "status", tt.value))

			where, args := repo.BuildWhereClause(group)
			assert.Equal(t, `WHERE (LOWER(rooms.status) LIKE LOWER(:status) ESCAPE '\')`, where)
			assert.Equal(t, map[string]any{"status": tt.wantArg}, args)

			assert.True(t, group.Match(map[string]any{"status": tt.matches}))
			assert.False(t, group.Match(map[string]any{"status": tt.excludes}))
		})
	}
}

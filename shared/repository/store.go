package repository

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/dto"
)

// Store is the persistence contract every domain repository is built on.
type Store[T any] interface {
	Insert(ctx context.Context, model T) error
	InsertBulk(ctx context.Context, models []T) error
	Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error)
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error)
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter dto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error
	Delete(ctx context.Context, filter dto.FilterGroup) error
}

// New picks the SQL repository when a postgres connection is available and the in-memory one otherwise.
func New[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Store[T] {
	if dbConnection == nil || dbConnection.Write == nil {
		return NewMemoryRepository[T](entitasName, primaryColumn, otl)
	}

	return NewSQLRepository[T](entitasName, tableName, primaryColumn, dbConnection, otl)
}

package repository

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

// MemoryRepository keeps records in a slice, newest first, and evaluates filter groups in process.
type MemoryRepository[T any] struct {
	mu            sync.RWMutex
	records       []T
	otel          otel.Otel
	entitas       string
	primaryColumn string
	fields        map[string][]int
}

func NewMemoryRepository[T any](entitasName, primaryColumn string, otl otel.Otel) *MemoryRepository[T] {
	var zero T

	return &MemoryRepository[T]{
		otel:          otl,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		fields:        fieldIndexes(reflect.TypeOf(zero), nil),
	}
}

// Insert prepends the record so the newest entry is listed first.
func (repo *MemoryRepository[T]) Insert(ctx context.Context, model T) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records = slices.Insert(repo.records, 0, model)

	return nil
}

// InsertBulk appends records in the given order; used for seeding.
func (repo *MemoryRepository[T]) InsertBulk(ctx context.Context, models []T) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertBulk", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records = append(repo.records, models...)

	return nil
}

// Get returns the first matching record, or the zero value when nothing matches.
func (repo *MemoryRepository[T]) Get(ctx context.Context, filter dto.FilterGroup, _ ...string) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, record := range repo.records {
		if filter.Match(repo.row(record)) {
			return record, nil
		}
	}

	var zero T

	return zero, nil
}

func (repo *MemoryRepository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, _ ...string) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	models := []T{}

	for _, record := range repo.records {
		if filter.Match(repo.row(record)) {
			models = append(models, record)
		}
	}
	repo.mu.RUnlock()

	if _, ok := repo.fields[params.SortBy]; ok {
		desc := params.Descending()

		slices.SortStableFunc(models, func(left, right T) int {
			cmp := dto.Compare(repo.column(left, params.SortBy), repo.column(right, params.SortBy))
			if desc {
				return -cmp
			}

			return cmp
		})
	}

	return paginate(models, params), nil
}

func (repo *MemoryRepository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return false, errRequiredFilter
	}

	count, err := repo.Count(ctx, filter)

	return count > 0, err
}

func (repo *MemoryRepository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0

	for _, record := range repo.records {
		if filter.Match(repo.row(record)) {
			count++
		}
	}

	return count, nil
}

// Update writes the given columns onto every matching record.
func (repo *MemoryRepository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for idx := range repo.records {
		if !filter.Match(repo.row(repo.records[idx])) {
			continue
		}

		updated := repo.records[idx]
		if err := repo.apply(&updated, mod); err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
		}

		repo.records[idx] = updated
	}

	return nil
}

// Delete removes every matching record and keeps the rest in order.
func (repo *MemoryRepository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records = slices.DeleteFunc(repo.records, func(record T) bool {
		return filter.Match(repo.row(record))
	})

	return nil
}

func (repo *MemoryRepository[T]) row(record T) map[string]any {
	row := make(map[string]any, len(repo.fields))

	value := reflect.ValueOf(record)
	for name, index := range repo.fields {
		row[name] = value.FieldByIndex(index).Interface()
	}

	return row
}

func (repo *MemoryRepository[T]) column(record T, name string) any {
	return reflect.ValueOf(record).FieldByIndex(repo.fields[name]).Interface()
}

func (repo *MemoryRepository[T]) apply(record *T, mod map[string]any) error {
	target := reflect.ValueOf(record).Elem()

	for name, raw := range mod {
		index, ok := repo.fields[name]
		if !ok {
			return fmt.Errorf("unknown column %q", name)
		}

		field := target.FieldByIndex(index)
		value := reflect.ValueOf(raw)

		for value.IsValid() && value.Kind() == reflect.Pointer && field.Kind() != reflect.Pointer {
			if value.IsNil() {
				value = reflect.Value{}

				break
			}

			value = value.Elem()
		}

		switch {
		case !value.IsValid():
			field.SetZero()
		case value.Type().AssignableTo(field.Type()):
			field.Set(value)
		case value.Type().ConvertibleTo(field.Type()):
			field.Set(value.Convert(field.Type()))
		default:
			return fmt.Errorf("column %q cannot hold %s", name, value.Type())
		}
	}

	return nil
}

func paginate[T any](models []T, params dto.QueryParams) []T {
	if params.Limit <= 0 {
		return models
	}

	start := params.Offset()
	if start >= len(models) {
		return []T{}
	}

	end := min(start+params.Limit, len(models))

	return models[start:end]
}

// fieldIndexes maps every db tag, including those of embedded structs, to its field index path.
func fieldIndexes(reflectType reflect.Type, parent []int) map[string][]int {
	fields := map[string][]int{}

	if reflectType == nil || reflectType.Kind() != reflect.Struct {
		return fields
	}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		index := append(slices.Clone(parent), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			for name, nested := range fieldIndexes(field.Type, index) {
				fields[name] = nested
			}

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		fields[dbTag] = index
	}

	return fields
}

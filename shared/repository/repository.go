package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
	ErrUnknownColumn  = errors.New("unknown column")
)

type column struct {
	name  string
	table string
	alias string
}

// selector renders the column for a SELECT list.
func (c column) selector() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

type namedStmt = sqlx.NamedStmt

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// SQLRepository maps T onto a postgres table using its db tags. Fields tagged with another
// table are only read, through the join returned by T's optional GetJoinQuery method.
type SQLRepository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	insertColumns []string
}

type joiner interface {
	GetJoinQuery() string
}

func NewSQLRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) *SQLRepository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return &SQLRepository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		insertColumns: insertColumns,
	}
}

func (repo *SQLRepository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, op))
}

// fail records err on the span and translates constraint violations into client failures.
func (repo *SQLRepository[T]) fail(scope otel.Scope, action string, err error) error {
	scope.TraceError(err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflictf("%s already exists", repo.entitas)
		case constant.PqErrorCodeFkViolation:
			return failure.Conflictf("%s references a record that does not exist", repo.entitas)
		}
	}

	logger.ErrorWithStack(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, err)
}

func (repo *SQLRepository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.insertColumns))
	for idx, col := range repo.insertColumns {
		placeholders[idx] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
}

func (repo *SQLRepository[T]) exec(ctx context.Context, exec execer, op, action, query string, arg any) error {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *SQLRepository[T]) Insert(ctx context.Context, model T) error {
	return repo.exec(ctx, repo.db.Write, "Insert", "insert data", repo.insertQuery(), model)
}

func (repo *SQLRepository[T]) InsertBulk(ctx context.Context, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.exec(ctx, repo.db.Write, "InsertBulk", "bulk insert data", repo.insertQuery(), models)
}

func (repo *SQLRepository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)

	err := repo.read(ctx, "Exist", "check exist data", query, args, func(stmt *namedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	})

	return exist, err
}

// Get returns the zero value when nothing matches.
func (repo *SQLRepository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns...), repo.table, repo.join, where)

	var model T

	err := repo.read(ctx, "Get", "get data", query, args, func(stmt *namedStmt) error {
		err := stmt.GetContext(ctx, &model, args)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}

		return err
	})

	return model, err
}

func (repo *SQLRepository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s", repo.selectList(columns...), repo.table, repo.join, where, repo.orderBy(params))

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()
		query += " LIMIT :limit OFFSET :offset"
	}

	var models []T

	err := repo.read(ctx, "GetAll", "get all data", query, args, func(stmt *namedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	})

	return models, err
}

func (repo *SQLRepository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	var count int

	err := repo.read(ctx, "Count", "count data", query, args, func(stmt *namedStmt) error {
		return stmt.GetContext(ctx, &count, args)
	})

	return count, err
}

// Update sets the given columns on every matching row. An empty filter is refused so a missing
// id can never rewrite the whole table.
func (repo *SQLRepository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	if len(mod) == 0 {
		return nil
	}

	assignments := make([]string, 0, len(mod))

	for _, col := range slices.Sorted(maps.Keys(mod)) {
		if !slices.Contains(repo.insertColumns, col) {
			return fmt.Errorf("%w %q on %s", ErrUnknownColumn, col, repo.table)
		}

		// Columns are bound with a set_ prefix so they cannot clash with filter arguments.
		args["set_"+col] = mod[col]
		assignments = append(assignments, fmt.Sprintf("%s = :set_%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	return repo.exec(ctx, repo.db.Write, "Update", "update data", query, args)
}

func (repo *SQLRepository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, repo.db.Write, "Delete", "delete data", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

func (repo *SQLRepository[T]) read(ctx context.Context, op, action, query string, args map[string]any, run func(stmt *namedStmt) error) error {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err := run(stmt); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *SQLRepository[T]) selectList(only ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		selected = append(selected, col.selector())
	}

	return strings.Join(selected, ", ")
}

// orderBy falls back to the default sort when the requested column does not belong to the table.
func (repo *SQLRepository[T]) orderBy(params dto.QueryParams) string {
	sortBy, dir := params.SortBy, dto.SortDirAsc
	if params.Descending() {
		dir = dto.SortDirDesc
	}

	if !repo.hasColumn(sortBy) {
		sortBy, dir = constant.DefaultValueSortBy, constant.DefaultValueSortDir
	}

	if !repo.hasColumn(sortBy) {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s.%s %s", repo.table, sortBy, strings.ToUpper(dir))
}

func (repo *SQLRepository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

func (repo *SQLRepository[T]) hasColumn(name string) bool {
	return name != "" && slices.ContainsFunc(repo.columns, func(col column) bool {
		return col.name == name && col.table == repo.table
	})
}

// getColumns walks db tags, descending into embedded structs such as the audit fields.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}

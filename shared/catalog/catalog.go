// Package catalog implements the searchable, status-editable record list that every front-desk
// resource is built on: guests, rooms, reservations, tasks and loyalty members differ only in
// their Definition.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheSearch = "search"
	cacheGet    = "get"
)

// Record is anything with a stable identifier.
type Record interface {
	GetID() string
}

// Definition parameterises a catalog by entity shape.
type Definition struct {
	Entity       string
	Title        string
	Table        string
	FieldID      string
	SearchFields []string
	Axes         []status.Axis
}

// Axis returns the status axis stored in field.
func (d Definition) Axis(field string) (status.Axis, bool) {
	for _, axis := range d.Axes {
		if axis.Field == field {
			return axis, true
		}
	}

	return status.Axis{}, false
}

type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type Catalog[T Record] struct {
	def      Definition
	store    repository.Store[T]
	cache    cache.Cache
	cfg      *config.Config
	otel     otel.Otel
	notifier notify.Notifier
}

func New[T Record](def Definition, store repository.Store[T], cache cache.Cache, cfg *config.Config, otel otel.Otel, notifier notify.Notifier) *Catalog[T] {
	return &Catalog[T]{
		def:      def,
		store:    store,
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
		notifier: notifier,
	}
}

func (c *Catalog[T]) Definition() Definition {
	return c.def
}

// Search returns the records where at least one search field contains query, ignoring case,
// narrowed further by filter. An empty query keeps every record.
func (c *Catalog[T]) Search(ctx context.Context, query string, params dto.QueryParams, filter dto.FilterGroup) (res Page[T], err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.scopeName("Search"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	merged := shared.MergeFilters(shared.SearchFilter(query, c.def.Table, c.def.SearchFields...), filter)
	cacheKey := shared.BuildCacheKeyWithQuery(c.cacheKey(cacheSearch), params, merged)

	if err = c.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msgf("cache hit for %s search", c.def.Entity)

		return res, nil
	}

	total, err := c.store.Count(ctx, merged)
	if err != nil {
		log.Error().Err(err).Msgf("failed to count %s", c.def.Entity)

		return res, fmt.Errorf("failed to count %s: %w", c.def.Entity, err)
	}

	items, err := c.store.GetAll(ctx, params, merged)
	if err != nil {
		log.Error().Err(err).Msgf("failed to search %s", c.def.Entity)

		return res, fmt.Errorf("failed to search %s: %w", c.def.Entity, err)
	}

	if items == nil {
		items = []T{}
	}

	res = Page[T]{Items: items, Total: total}

	if err := c.cache.Save(ctx, cacheKey, res, c.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache search result")
	}

	return res, nil
}

func (c *Catalog[T]) Get(ctx context.Context, id string) (res T, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.scopeName("Get"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(c.cacheKey(cacheGet), id)
	if err = c.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = c.store.Get(ctx, c.byID(id))
	if err != nil {
		log.Error().Err(err).Msgf("failed to get %s", c.def.Entity)

		return res, fmt.Errorf("failed to get %s: %w", c.def.Entity, err)
	}

	if res.GetID() == "" {
		return res, failure.NotFound(c.def.Entity + " not found") //nolint:wrapcheck
	}

	if err := c.cache.Save(ctx, cacheKey, res, c.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msgf("failed to cache %s", c.def.Entity)
	}

	return res, nil
}

func (c *Catalog[T]) Count(ctx context.Context, filter dto.FilterGroup) (res int, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.scopeName("Count"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = c.store.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.def.Entity, err)
	}

	return res, nil
}

// Create stores record ahead of every existing one.
func (c *Catalog[T]) Create(ctx context.Context, record T) (res notify.Notification, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.scopeName("Create"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.Insert(ctx, record); err != nil {
		return res, err
	}

	return c.Announce(ctx, record.GetID(),
		c.def.Title+" Created",
		fmt.Sprintf("New %s %s has been successfully added to the system.", strings.ToLower(c.def.Title), record.GetID()),
	), nil
}

// Update writes mod onto the record.
func (c *Catalog[T]) Update(ctx context.Context, id string, mod map[string]any) (res notify.Notification, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.scopeName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.write(ctx, id, c.Stamp(ctx, mod)); err != nil {
		return res, err
	}

	return c.Announce(ctx, id, c.def.Title+" Updated", fmt.Sprintf("%s %s has been updated.", c.def.Title, id)), nil
}

// SetStatus replaces exactly one status field; only the modification metadata changes with it.
func (c *Catalog[T]) SetStatus(ctx context.Context, id, field, label string) (res notify.Notification, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.scopeName("SetStatus"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	axis, ok := c.def.Axis(field)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("%s has no %s", c.def.Entity, field)) //nolint:wrapcheck
	}

	if err = axis.Validate(label); err != nil {
		return res, err
	}

	if err = c.write(ctx, id, c.Stamp(ctx, map[string]any{field: label})); err != nil {
		return res, err
	}

	return c.Announce(ctx, id,
		c.def.Title+" Status Updated",
		fmt.Sprintf("%s %s %s changed to %s.", c.def.Title, id, axis.Name, label),
	), nil
}

// Delete removes the record with id and nothing else.
func (c *Catalog[T]) Delete(ctx context.Context, id string) (res notify.Notification, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.scopeName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.Remove(ctx, id); err != nil {
		return res, err
	}

	return c.Announce(ctx, id, c.def.Title+" Deleted", fmt.Sprintf("%s %s has been removed.", c.def.Title, id)), nil
}

// Insert stores record ahead of every existing one without announcing it.
func (c *Catalog[T]) Insert(ctx context.Context, record T) error {
	if err := c.store.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msgf("failed to create %s", c.def.Entity)

		return fmt.Errorf("failed to create %s: %w", c.def.Entity, err)
	}

	c.invalidate(ctx)

	return nil
}

// Remove deletes the record with id without announcing it.
func (c *Catalog[T]) Remove(ctx context.Context, id string) error {
	if err := c.mustExist(ctx, id); err != nil {
		return err
	}

	if err := c.store.Delete(ctx, c.byID(id)); err != nil {
		log.Error().Err(err).Msgf("failed to delete %s", c.def.Entity)

		return fmt.Errorf("failed to delete %s: %w", c.def.Entity, err)
	}

	c.invalidate(ctx)

	return nil
}

func (c *Catalog[T]) Exists(ctx context.Context, id string) (bool, error) {
	exist, err := c.store.Exist(ctx, c.byID(id))
	if err != nil {
		return false, fmt.Errorf("failed to check if %s exists: %w", c.def.Entity, err)
	}

	return exist, nil
}

// Write applies mod without announcing it, for domain operations that phrase their own notification.
func (c *Catalog[T]) Write(ctx context.Context, id string, mod map[string]any) error {
	return c.write(ctx, id, c.Stamp(ctx, mod))
}

// Announce emits a notification about the record with id.
func (c *Catalog[T]) Announce(ctx context.Context, id, title, description string) notify.Notification {
	return c.notifier.Notify(ctx, c.def.Entity, id, title, description)
}

// Stamp adds the modification metadata of the current user to mod.
func (c *Catalog[T]) Stamp(ctx context.Context, mod map[string]any) map[string]any {
	mod[constant.FieldModifiedAt] = timezone.Now()
	mod[constant.FieldModifiedBy] = shared.Username(ctx)

	return mod
}

func (c *Catalog[T]) write(ctx context.Context, id string, mod map[string]any) error {
	if err := c.mustExist(ctx, id); err != nil {
		return err
	}

	if err := c.store.Update(ctx, mod, c.byID(id)); err != nil {
		log.Error().Err(err).Msgf("failed to update %s", c.def.Entity)

		return fmt.Errorf("failed to update %s: %w", c.def.Entity, err)
	}

	c.invalidate(ctx)

	return nil
}

func (c *Catalog[T]) mustExist(ctx context.Context, id string) error {
	exist, err := c.store.Exist(ctx, c.byID(id))
	if err != nil {
		log.Error().Err(err).Msgf("failed to check if %s exists", c.def.Entity)

		return fmt.Errorf("failed to check if %s exists: %w", c.def.Entity, err)
	}

	if !exist {
		return failure.NotFound(c.def.Entity + " not found") //nolint:wrapcheck
	}

	return nil
}

func (c *Catalog[T]) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, c.cache, c.def.Entity+":")
}

func (c *Catalog[T]) byID(id string) dto.FilterGroup {
	return shared.FilterByID(id, c.def.FieldID, c.def.Table)
}

func (c *Catalog[T]) cacheKey(kind string) string {
	return c.def.Entity + ":" + kind
}

func (c *Catalog[T]) scopeName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelServiceScopeName, c.def.Entity, method)
}

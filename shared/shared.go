package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// ParseTime parses value in the application timezone; empty or malformed values yield nil.
func ParseTime(layout, value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parsed, err := timezone.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("failed to parse time")

		return nil
	}

	return &parsed
}

// FormatTime renders t in the application timezone; nil renders empty.
func FormatTime(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return timezone.Format(*t, layout)
}

// Username identifies the staff member acting in ctx, or the system when nobody is signed in.
func Username(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return constant.ContextSystem
	}

	return user
}

// NewID returns prefix followed by eight upper-case hex characters, e.g. "T1A2B3C4D".
func NewID(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

// SearchFilter builds an OR group matching query as a case-insensitive substring of any field.
// The query is used as typed, spaces included. An empty query yields an empty group, which
// matches every record.
func SearchFilter(query, table string, fields ...string) dto.FilterGroup {
	if query == "" || len(fields) == 0 {
		return dto.FilterGroup{}
	}

	group := dto.Or()

	for idx, field := range fields {
		group.Filters = append(group.Filters, dto.Like(table, field, query).Named(fmt.Sprintf("q_%d", idx)))
	}

	return group
}

// ExactFilter ANDs an equality filter for every non-empty value in fields, keyed by column.
func ExactFilter(table string, fields map[string]string) dto.FilterGroup {
	columns := make([]string, 0, len(fields))
	for column, value := range fields {
		if strings.TrimSpace(value) != "" {
			columns = append(columns, column)
		}
	}

	slices.Sort(columns)

	group := dto.And()
	for _, column := range columns {
		group.Filters = append(group.Filters, dto.Eq(table, column, strings.TrimSpace(fields[column])))
	}

	return group
}

// MergeFilters ANDs the non-empty groups together.
func MergeFilters(groups ...dto.FilterGroup) dto.FilterGroup {
	merged := dto.And()

	for _, group := range groups {
		if group.IsEmpty() {
			continue
		}

		merged.Filters = append(merged.Filters, group)
	}

	return merged
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from the paging params and filter tree.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{params, filter})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key")

		return BuildCacheKey(prefix, fmt.Sprintf("%v", params))
	}

	hash := fnv.New64a()
	_, _ = hash.Write(raw)

	return BuildCacheKey(prefix, strconv.FormatUint(hash.Sum64(), 16))
}

// InvalidateCaches drops every key under prefix.
func InvalidateCaches(ctx context.Context, store cache.Cache, prefix string) {
	if store == nil {
		return
	}

	if err := store.Clear(ctx, prefix+constant.Wildcard); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

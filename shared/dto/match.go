package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Match reports whether a record, given as a column→value map, satisfies the filter.
// It mirrors GetWhereClause for stores that evaluate filters in process.
func (f *Filter) Match(record map[string]any) bool {
	value, ok := record[f.Field]

	switch f.Operator {
	case FilterIsNull:
		return !ok || isNil(value)
	case FilterIsNotNull:
		return ok && !isNil(value)
	case FilterPlainQuery:
		return false
	}

	if !ok {
		return false
	}

	switch f.Operator {
	case FilterOperatorEq:
		return compare(value, f.Value) == 0
	case FilterOperatorNotEq:
		return compare(value, f.Value) != 0
	case FilterOperatorLike:
		return strings.Contains(strings.ToLower(stringify(value)), strings.ToLower(stringify(f.Value)))
	case FilterOperatorLessEq:
		return compare(value, f.Value) <= 0
	case FilterOperatorGreaterEq:
		return compare(value, f.Value) >= 0
	case FilterOperatorIn:
		candidates := reflect.ValueOf(f.Value)
		if candidates.Kind() != reflect.Slice && candidates.Kind() != reflect.Array {
			return compare(value, f.Value) == 0
		}

		for idx := range candidates.Len() {
			if compare(value, candidates.Index(idx).Interface()) == 0 {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// Match reports whether a record satisfies the group. An empty group matches everything;
// a group without an operator combines its filters with AND.
func (f *FilterGroup) Match(record map[string]any) bool {
	if len(f.Filters) == 0 {
		return true
	}

	anyOf := strings.EqualFold(f.Operator, FilterGroupOperatorOr)

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(record)
		case FilterGroup:
			matched = fill.Match(record)
		default:
			continue
		}

		if anyOf && matched {
			return true
		}

		if !anyOf && !matched {
			return false
		}
	}

	return !anyOf
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func deref(value any) any {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return nil
	}

	return rv.Interface()
}

func stringify(value any) string {
	switch v := deref(value).(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case decimal.Decimal:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toFloat(value any) (float64, bool) {
	rv := reflect.ValueOf(deref(value))
	if !rv.IsValid() {
		return 0, false
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// compare orders two loosely typed values: numbers numerically, times chronologically,
// decimals exactly, and everything else by string form.
func compare(left, right any) int {
	left, right = deref(left), deref(right)

	if l, ok := left.(decimal.Decimal); ok {
		if r, err := decimal.NewFromString(stringify(right)); err == nil {
			return l.Cmp(r)
		}
	}

	if l, ok := left.(time.Time); ok {
		switch r := right.(type) {
		case time.Time:
			return l.Compare(r)
		case string:
			if parsed, err := time.Parse(time.RFC3339, r); err == nil {
				return l.Compare(parsed)
			}

			return strings.Compare(l.Format(time.DateOnly), r)
		}
	}

	if l, ok := left.(bool); ok {
		if r, ok := right.(bool); ok {
			switch {
			case l == r:
				return 0
			case !l:
				return -1
			default:
				return 1
			}
		}
	}

	if l, ok := toFloat(left); ok {
		if r, ok := toFloat(right); ok {
			switch {
			case l < r:
				return -1
			case l > r:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(stringify(left), stringify(right))
}

// Compare exposes the ordering used by Match so stores can sort with the same semantics.
func Compare(left, right any) int {
	return compare(left, right)
}

package validator

import (
	"errors"
	"strings"
	"unicode"

	"frontdesk/config"
	"frontdesk/shared/status"

	val "github.com/go-playground/validator/v10"
)

// messages are keyed by validation tag. {field} is the json name of the field and {param}
// the tag parameter, rewritten for tags whose raw parameter means nothing to a client.
var messages = map[string]string{
	"required":         "{field} is required",
	"required_without": "{field} is required when {param} is empty",
	"gt":               "{field} must be greater than {param}",
	"gte":              "{field} must be greater than or equal to {param}",
	"lte":              "{field} must be less than or equal to {param}",
	"min":              "{field} must be at least {param}",
	"max":              "{field} must be at most {param}",
	"oneof":            "{field} must be one of {param}",
	"email":            "{field} must be a valid email address",
	"numeric":          "{field} must contain digits only",
	"datetime":         "{field} must be a date formatted as {param}",
	"eqfield":          "{field} must match {param}",
	"nefield":          "{field} must differ from {param}",
	"mimetypes":        "{field} must be one of {param}",
	"maxfilesize":      "{field} must be at most {param} MB",
	"status":           "{field} must be one of {param}",
	"timezone":         "{field} must be one of {param}",
}

// dateLayouts names the Go reference layouts used in datetime tags.
var dateLayouts = map[string]string{
	"2006-01-02":                "YYYY-MM-DD",
	"2006-01-02T15:04:05Z07:00": "an RFC 3339 timestamp",
	"15:04":                     "HH:MM",
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		text := strings.ReplaceAll(template, "{field}", valErr.Field())

		return strings.ReplaceAll(text, "{param}", param(valErr))
	}

	return valErrors.Error()
}

func param(valErr val.FieldError) string {
	raw := valErr.Param()

	switch valErr.Tag() {
	case "status":
		if axis, ok := status.Lookup(raw); ok {
			return strings.Join(axis.Labels(), ", ")
		}
	case "timezone":
		return strings.Join(config.Get().App.Timezones, ", ")
	case "oneof", "mimetypes":
		return strings.Join(strings.Fields(raw), ", ")
	case "datetime":
		if layout, ok := dateLayouts[raw]; ok {
			return layout
		}
	case "eqfield", "nefield", "required_without":
		return snake(raw)
	}

	return raw
}

// snake turns a Go field name into the json name used by the DTOs, e.g. NewPassword to
// new_password and DataURL to data_url.
func snake(name string) string {
	var (
		b    strings.Builder
		prev rune
	)

	for _, r := range name {
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))

		prev = r
	}

	return b.String()
}

package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/shared/base64"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/status"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

const megabyte = 1 << 20

// fileOf reports the content type and size of an uploaded file or an inline data URL.
func fileOf(field val.FieldLevel) (contentType string, size int64, ok bool) {
	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return value.Header.Get(constant.RequestHeaderContentType), value.Size, true
	case string:
		contentType = base64.ContentType(value)

		return contentType, int64(base64.Size(value)), contentType != ""
	default:
		return "", 0, false
	}
}

// mimetypes accepts files whose content type is one of the space separated parameters.
func mimetypes(field val.FieldLevel) bool {
	contentType, _, ok := fileOf(field)

	return ok && slices.Contains(strings.Fields(field.Param()), contentType)
}

// maxFileSize accepts files up to the parameter in megabytes.
func maxFileSize(field val.FieldLevel) bool {
	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	_, size, ok := fileOf(field)

	return ok && float64(size) <= limit*megabyte
}

// statusLabel accepts the labels of the axis registered under the tag parameter.
func statusLabel(field val.FieldLevel) bool {
	axis, ok := status.Lookup(field.Param())

	return ok && axis.Has(field.Field().String())
}

// hotelTimezone accepts the hotel timezones offered in settings.
func hotelTimezone(field val.FieldLevel) bool {
	zone := field.Field().String()
	if !slices.Contains(config.Get().App.Timezones, zone) {
		return false
	}

	_, err := time.LoadLocation(zone)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if amount, ok := field.Interface().(decimal.Decimal); ok {
			return amount.InexactFloat64()
		}

		return nil
	}, decimal.Decimal{})

	for tag, fn := range map[string]val.Func{
		"status":      statusLabel,
		"mimetypes":   mimetypes,
		"maxfilesize": maxFileSize,
		"timezone":    hotelTimezone,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
}

// Validate decodes one JSON document from r into data and validates it. Decoding and
// validation problems are returned as bad request failures.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(data)
	if errors.Is(err, io.EOF) {
		return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if decoder.More() {
		return failure.BadRequestFromString("request body must contain a single JSON object") //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

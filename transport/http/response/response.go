// Package response writes the JSON envelopes every handler answers with.
package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/shared/notify"
)

// Data, Error, Message and Notified document the envelopes for swagger. Writers below share a
// single envelope so a body never carries two shapes.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Notified is the payload of a mutation: the affected record, if any, and the toast to show for it.
type Notified[T any] struct {
	Data         *T                  `json:"data,omitempty"`
	Notification notify.Notification `json:"notification"`
}

type envelope struct {
	Data         any                  `json:"data,omitempty"`
	Error        string               `json:"error,omitempty"`
	Message      string               `json:"message,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, envelope{Message: message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, envelope{Data: payload})
}

// WithNotification answers a mutation with the affected record and the toast describing it.
// A nil payload leaves data out.
func WithNotification(writer http.ResponseWriter, code int, payload any, notification notify.Notification) {
	write(writer, code, envelope{Data: payload, Notification: &notification})
}

// WithError answers with the status carried by err. Server-side causes are logged and
// replaced by a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)
	}

	write(writer, code, envelope{Error: failure.Public(err)})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// write encodes before touching the header so a payload that cannot be encoded still gets a 500.
func write(writer http.ResponseWriter, code int, body envelope) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(body); err != nil {
		logger.ErrorWithStack(err)

		buf.Reset()
		code = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(envelope{Error: failure.Public(err)})
	}

	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	header.Set(constant.ResponseHeaderNoSniff, "nosniff")
	writer.WriteHeader(code)

	if _, err := writer.Write(buf.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}

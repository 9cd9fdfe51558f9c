// Package base64 handles images sent inline as data URLs, e.g. "data:image/png;base64,iVBOR...".
package base64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	scheme = "data:"
	marker = ";base64,"
)

var ErrNotDataURL = errors.New("value is not a base64 data URL")

// split returns the content type and the encoded payload of a data URL.
func split(dataURL string) (contentType, payload string, ok bool) {
	rest, ok := strings.CutPrefix(dataURL, scheme)
	if !ok {
		return "", "", false
	}

	contentType, payload, ok = strings.Cut(rest, marker)
	if !ok || contentType == "" {
		return "", "", false
	}

	return contentType, payload, true
}

// ContentType returns the media type of a data URL, or empty when value is not one.
func ContentType(value string) string {
	contentType, _, _ := split(value)

	return contentType
}

// Size is the number of bytes the payload decodes to, without decoding it. It is -1 when value
// is not a data URL.
func Size(value string) int {
	_, payload, ok := split(value)
	if !ok {
		return -1
	}

	return base64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload[max(0, len(payload)-2):], "=")
}

// Decode splits a data URL into its content type and payload bytes.
func Decode(dataURL string) (contentType string, data []byte, err error) {
	contentType, payload, ok := split(dataURL)
	if !ok {
		return "", nil, ErrNotDataURL
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return contentType, data, nil
}

// Encode renders data as a data URL of the given content type.
func Encode(contentType string, data []byte) string {
	return scheme + contentType + marker + base64.StdEncoding.EncodeToString(data)
}

// Extension returns the file extension for an image content type, without the dot.
func Extension(contentType string) string {
	_, subtype, found := strings.Cut(contentType, "/")
	if !found {
		return ""
	}

	subtype, _, _ = strings.Cut(subtype, "+")

	if subtype == "jpeg" {
		return "jpg"
	}

	return subtype
}

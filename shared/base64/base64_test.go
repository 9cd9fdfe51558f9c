package base64_test

import (
	"testing"

	"frontdesk/shared/base64"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestContentType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "png", input: pixel, want: "image/png"},
		{name: "svg with suffix", input: "data:image/svg+xml;base64,PHN2Zz4=", want: "image/svg+xml"},
		{name: "empty", input: ""},
		{name: "missing scheme", input: "image/png;base64,iVBORw0KGgo="},
		{name: "scheme in the middle", input: "x-data:image/png;base64,iVBORw0KGgo="},
		{name: "not base64", input: "data:image/png,iVBORw0KGgo="},
		{name: "no media type", input: "data:;base64,iVBORw0KGgo="},
		{name: "remote url", input: "https://cdn.hotel.test/rooms/101.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base64.ContentType(tt.input))
		})
	}
}

func TestSize(t *testing.T) {
	assert.Equal(t, -1, base64.Size("https://cdn.hotel.test/rooms/101.png"))
	assert.Equal(t, 0, base64.Size("data:text/plain;base64,"))

	for _, data := range []string{"a", "ab", "abc", "abcd", "Hello World"} {
		encoded := base64.Encode("text/plain", []byte(data))
		assert.Equal(t, len(data), base64.Size(encoded), data)
	}

	_, decoded, err := base64.Decode(pixel)
	require.NoError(t, err)
	assert.Equal(t, len(decoded), base64.Size(pixel))
}

func TestDecodeEncode(t *testing.T) {
	contentType, data, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, "Hello World", string(data))

	assert.Equal(t, "data:text/plain;base64,SGVsbG8gV29ybGQ=", base64.Encode(contentType, data))

	_, _, err = base64.Decode("https://cdn.hotel.test/rooms/101.png")
	require.ErrorIs(t, err, base64.ErrNotDataURL)

	_, _, err = base64.Decode("data:image/png;base64,not*base64")
	require.Error(t, err)
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"image/jpeg":    "jpg",
		"image/png":     "png",
		"image/webp":    "webp",
		"image/svg+xml": "svg",
		"png":           "",
	}

	for contentType, want := range tests {
		assert.Equal(t, want, base64.Extension(contentType), contentType)
	}
}

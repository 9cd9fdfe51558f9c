package kafka_test

import (
	"math"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomEvent struct {
	RoomID string `json:"room_id"`
	Status string `json:"status"`
}

func TestMessage_EncodeDecode(t *testing.T) {
	msg, err := kafka.Message{
		Key:     "101",
		Value:   roomEvent{RoomID: "101", Status: "Cleaning"},
		Headers: map[string]string{"entity": "room"},
	}.Encode("frontdesk.rooms")
	require.NoError(t, err)

	assert.Equal(t, "frontdesk.rooms", msg.Topic)
	assert.Equal(t, []byte("101"), msg.Key)
	assert.JSONEq(t, `{"room_id":"101","status":"Cleaning"}`, string(msg.Value))

	headers := map[string]string{}
	for _, header := range msg.Headers {
		headers[header.Key] = string(header.Value)
	}

	assert.Equal(t, map[string]string{"content-type": "application/json", "entity": "room"}, headers)

	decoded, err := kafka.Decode[roomEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, roomEvent{RoomID: "101", Status: "Cleaning"}, decoded)
}

func TestMessage_EncodeRejectsUnsupportedValue(t *testing.T) {
	_, err := kafka.Message{Key: "bad", Value: math.Inf(1)}.Encode("frontdesk.rooms")
	assert.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	msg, err := kafka.Message{Key: "101", Value: "not an object"}.Encode("frontdesk.rooms")
	require.NoError(t, err)

	_, err = kafka.Decode[roomEvent](msg)
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	assert.Nil(t, kafka.New(&config.Config{}))
}

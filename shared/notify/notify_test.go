package notify_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifier_RecentKeepsNewestFirst(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.FeedSize = 2

	notifier := notify.New(cfg, nil)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	first := notifier.Notify(ctx, "room", "101", "Room Status Updated", "Room 101 status changed to Maintenance.")
	notifier.Notify(ctx, "task", "T1001", "Task Status Updated", "Task T1001 status changed to Completed.")
	third := notifier.Notify(ctx, "room", "102", "Room Reserved", "Room 102 has been reserved.")

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "staff-1", first.CreatedBy)

	recent := notifier.Recent(0)
	assert.Len(t, recent, 2)
	assert.Equal(t, third.ID, recent[0].ID)
	assert.Equal(t, "Task Status Updated", recent[1].Title)

	assert.Len(t, notifier.Recent(1), 1)
}

func TestNotifier_PublishesToKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.NotificationTopic = "frontdesk.notifications"

	client.EXPECT().
		Publish(gomock.Any(), "frontdesk.notifications", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)

			notification, ok := messages[0].Value.(notify.Notification)
			assert.True(t, ok)
			assert.Equal(t, "Guest Checked In", notification.Title)
			assert.Equal(t, notification.ID, messages[0].Key)
			assert.Equal(t, "guest", messages[0].Headers["entity"])

			return nil
		})

	notifier := notify.New(cfg, client)
	notifier.Notify(context.Background(), "guest", "G1002", "Guest Checked In", "Guest ID: G1002 has been successfully checked in.")

	assert.Empty(t, notifier.Recent(0), "published notifications reach the feed through the consumer")
}

func TestNotifier_KeepsLocallyWhenPublishFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true

	client.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	notifier := notify.New(cfg, client)
	notifier.Notify(context.Background(), "task", "T1", "Task Completed", "Task T1 has been completed.")

	assert.Len(t, notifier.Recent(10), 1)
}

func TestNotifier_ListenWithoutKafkaReturns(t *testing.T) {
	notifier := notify.New(&config.Config{}, nil)

	done := make(chan struct{})
	go func() {
		notifier.Listen(context.Background())
		close(done)
	}()

	<-done
}

func TestNotifier_ListenFillsFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.ConsumerGroup = "frontdesk"
	cfg.Kafka.NotificationTopic = "frontdesk.notifications"

	published := notify.Notification{ID: "n-1", Title: "Room Reserved", Description: "Room 102 has been reserved."}

	client.EXPECT().
		Subscribe(gomock.Any(), "frontdesk", "frontdesk.notifications", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, topic string, handle kafka.Handler) error {
			for _, value := range []any{published, published, "garbage"} {
				msg, err := kafka.Message{Key: "n-1", Value: value}.Encode(topic)
				require.NoError(t, err)

				if value == "garbage" {
					assert.Error(t, handle(ctx, msg))
				} else {
					assert.NoError(t, handle(ctx, msg))
				}
			}

			return nil
		})

	notifier := notify.New(cfg, client)
	notifier.Listen(context.Background())

	recent := notifier.Recent(0)
	require.Len(t, recent, 1, "duplicate deliveries are recorded once")
	assert.Equal(t, "Room Reserved", recent[0].Title)
}

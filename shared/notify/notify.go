package notify

//go:generate go run go.uber.org/mock/mockgen -source=./notify.go -destination=./mocks/notify_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	defaultFeedSize = 50
	headerEntity    = "entity"
)

// Notification is the confirmation shown to staff after a successful change.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Entity      string    `json:"entity,omitempty"`
	EntityID    string    `json:"entity_id,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Notifier interface {
	Notify(ctx context.Context, entity, entityID, title, description string) Notification
	Recent(limit int) []Notification
	Listen(ctx context.Context)
}

type notifierImpl struct {
	mu     sync.RWMutex
	feed   []Notification
	size   int
	cfg    *config.Config
	client kafka.Client
}

// New keeps a bounded feed of recent notifications. With kafka enabled every notification is
// published to the notification topic and the feed is filled from that topic by Listen.
func New(cfg *config.Config, client kafka.Client) Notifier {
	size := cfg.App.FeedSize
	if size <= 0 {
		size = defaultFeedSize
	}

	if !cfg.Kafka.Enable {
		client = nil
	}

	return &notifierImpl{
		size:   size,
		cfg:    cfg,
		client: client,
	}
}

func (n *notifierImpl) Notify(ctx context.Context, entity, entityID, title, description string) Notification {
	notification := Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Entity:      entity,
		EntityID:    entityID,
		CreatedAt:   timezone.Now(),
	}

	notification.CreatedBy, _ = ctx.Value(constant.ContextKeyUserID).(string)

	log.Info().
		Str("entity", entity).
		Str("entity_id", entityID).
		Str("title", title).
		Msg(description)

	if n.client == nil {
		n.record(notification)

		return notification
	}

	err := n.client.Publish(ctx, n.cfg.Kafka.NotificationTopic, kafka.Message{
		Key:     notification.ID,
		Value:   notification,
		Headers: map[string]string{headerEntity: entity},
	})
	if err != nil {
		log.Error().Err(err).Str("title", title).Msg("failed to publish notification, keeping it locally")

		n.record(notification)
	}

	return notification
}

// Recent returns up to limit notifications, newest first.
func (n *notifierImpl) Recent(limit int) []Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if limit <= 0 || limit > len(n.feed) {
		limit = len(n.feed)
	}

	recent := make([]Notification, limit)
	copy(recent, n.feed[:limit])

	return recent
}

// Listen consumes the notification topic into the feed until ctx is done. Without kafka it returns at once.
func (n *notifierImpl) Listen(ctx context.Context) {
	if n.client == nil {
		return
	}

	err := n.client.Subscribe(ctx, n.cfg.Kafka.ConsumerGroup, n.cfg.Kafka.NotificationTopic, n.consume)
	if err != nil {
		log.Error().Err(err).Msg("notification listener stopped")
	}
}

func (n *notifierImpl) consume(_ context.Context, message kafkaGo.Message) error {
	notification, err := kafka.Decode[Notification](message)
	if err != nil {
		return err //nolint:wrapcheck
	}

	n.record(notification)

	return nil
}

func (n *notifierImpl) record(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, existing := range n.feed {
		if existing.ID == notification.ID {
			return
		}
	}

	n.feed = append([]Notification{notification}, n.feed...)
	if len(n.feed) > n.size {
		n.feed = n.feed[:n.size]
	}
}

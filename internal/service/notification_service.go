package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/bookshop-service/internal/events"
)

// ActivityPublisher forwards serialized events to an external channel.
type ActivityPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	publisher  ActivityPublisher
	channel    string
	timeout    time.Duration
}

// NewNotificationService creates the service. publisher may be nil, in which
// case events are only logged. A positive timeout bounds each publish.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, publisher ActivityPublisher, channel string, timeout time.Duration) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		publisher:  publisher,
		channel:    channel,
		timeout:    timeout,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventReviewSubmitted, n.handleReviewSubmitted)
	n.dispatcher.Subscribe(events.EventReviewDeleted, n.handleReviewDeleted)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("username", event.Actor))
	return nil
}

func (n *NotificationService) handleReviewSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReviewSubmitted",
		zap.String("isbn", event.ISBN),
		zap.String("username", event.Actor))
	return n.forward(ctx, event)
}

func (n *NotificationService) handleReviewDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReviewDeleted",
		zap.String("isbn", event.ISBN),
		zap.String("username", event.Actor))
	return n.forward(ctx, event)
}

func (n *NotificationService) forward(ctx context.Context, event events.Event) error {
	if n.publisher == nil || strings.TrimSpace(n.channel) == "" {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}
	if err := n.publisher.Publish(ctx, n.channel, payload); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	n.logger.Debug("event forwarded",
		zap.String("channel", n.channel),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
	return nil
}

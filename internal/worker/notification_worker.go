package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/bookshop-service/internal/config"
	"github.com/spec-kit/bookshop-service/internal/events"
	"github.com/spec-kit/bookshop-service/internal/persistence"
	"github.com/spec-kit/bookshop-service/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to dispatcher.
// Review events are forwarded to the Redis activity channel when redis is
// non-nil, otherwise they are only logged.
func StartNotificationWorker(dispatcher events.Dispatcher, redis *persistence.Redis, cfg config.RedisConfig, logger *zap.Logger) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}

	var publisher service.ActivityPublisher
	if redis != nil {
		publisher = redis
	}

	notifications := service.NewNotificationService(dispatcher, logger, publisher, cfg.ActivityChannel, cfg.PublishTimeout())
	notifications.RegisterHandlers()
	return notifications
}

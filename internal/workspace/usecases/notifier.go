package usecases

import (
	"context"
	"errors"
	"log/slog"

	"hubble-workspace/internal/infra/async"
	"hubble-workspace/internal/workspace/domain"
)

const (
	NotificationsTopic async.BrokerTopicName = "notifications"

	NotificationShowEvent  = "show"
	NotificationCloseEvent = "close"
)

func NewBrokerNotifier(broker async.InternalBroker) *BrokerNotifier {
	return &BrokerNotifier{
		broker: broker,
	}
}

var _ Notifier = (*BrokerNotifier)(nil)

// BrokerNotifier publishes notifications on the internal broker. Nobody
// listening is not an error.
type BrokerNotifier struct {
	broker async.InternalBroker
}

func (n *BrokerNotifier) Show(ctx context.Context, message string, category domain.Category) {
	n.publish(ctx, async.BrokerMessage{
		Event: NotificationShowEvent,
		Value: domain.Notification{Message: message, Category: category, Open: true},
	})
}

func (n *BrokerNotifier) Close(ctx context.Context) {
	n.publish(ctx, async.BrokerMessage{
		Event: NotificationCloseEvent,
		Value: domain.Notification{Open: false},
	})
}

func (n *BrokerNotifier) publish(ctx context.Context, msg async.BrokerMessage) {
	err := n.broker.Publish(ctx, NotificationsTopic, msg)
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing notification", slog.String("error", err.Error()))
	}
}

package interfaces

import (
	"context"

	"seyren-notifier/domain/entities"
)

// NotificationService delivers check state changes through one channel.
type NotificationService interface {
	// SendNotification notifies the subscription that the check changed state.
	// A nil error means the notification was delivered or deliberately skipped.
	SendNotification(ctx context.Context, check *entities.Check, subscription *entities.Subscription, alerts []entities.Alert) error

	// CanHandle reports whether the service delivers subscriptions of the given type.
	CanHandle(subscriptionType entities.SubscriptionType) bool

	// String returns the channel name.
	String() string
}

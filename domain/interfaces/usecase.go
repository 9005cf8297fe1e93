package interfaces

import (
	"context"

	"seyren-notifier/domain/dto"
	"seyren-notifier/domain/entities"
)

// DispatchNotificationUseCase fans a check state change out to its subscriptions.
type DispatchNotificationUseCase interface {
	// Execute notifies every subscription through the channels able to handle it.
	Execute(ctx context.Context, params DispatchParams) (*dto.DispatchResult, error)
}

// DispatchParams represents parameters for dispatching a notification.
type DispatchParams struct {
	Check         *entities.Check         `json:"check"`
	Subscriptions []entities.Subscription `json:"subscriptions"`
	Alerts        []entities.Alert        `json:"alerts"`
}

// Package usecases contains application use cases that orchestrate business logic.
// It implements dispatching check state changes to subscription channels.
package usecases

import (
	"context"
	"strings"
	"time"

	"seyren-notifier/domain/dto"
	"seyren-notifier/domain/entities"
	"seyren-notifier/domain/errors"
	"seyren-notifier/domain/interfaces"
)

const (
	skipReasonDisabled  = "disabled"
	skipReasonIgnored   = "ignored"
	skipReasonUnhandled = "unhandled"
)

// dispatchNotificationUseCase implements the DispatchNotificationUseCase interface.
type dispatchNotificationUseCase struct {
	services           []interfaces.NotificationService
	deliveryRepository interfaces.DeliveryRepository
	metrics            interfaces.NotificationMetrics
	logger             interfaces.Logger
}

// NewDispatchNotificationUseCase creates a new dispatch use case. Services are
// tried in the given order; deliveryRepository may be nil.
func NewDispatchNotificationUseCase(
	services []interfaces.NotificationService,
	deliveryRepository interfaces.DeliveryRepository,
	metrics interfaces.NotificationMetrics,
	logger interfaces.Logger,
) interfaces.DispatchNotificationUseCase {
	return &dispatchNotificationUseCase{
		services:           services,
		deliveryRepository: deliveryRepository,
		metrics:            metrics,
		logger:             logger,
	}
}

// Execute notifies every subscription of the check through the capable services.
func (uc *dispatchNotificationUseCase) Execute(
	ctx context.Context,
	params interfaces.DispatchParams,
) (*dto.DispatchResult, error) {
	if err := uc.validateParams(params); err != nil {
		return nil, err
	}

	check := params.Check
	uc.logger.Info("Dispatching notification",
		"check", check.ID,
		"name", check.Name,
		"state", check.State,
		"subscriptions", len(params.Subscriptions))

	result := &dto.DispatchResult{
		Timestamp: time.Now().UTC(),
		CheckID:   check.ID,
		CheckName: check.Name,
		State:     check.State,
		Outcomes:  make([]dto.SubscriptionOutcome, 0, len(params.Subscriptions)),
	}

	for i := range params.Subscriptions {
		outcome := uc.dispatch(ctx, check, &params.Subscriptions[i], params.Alerts)
		result.Outcomes = append(result.Outcomes, outcome)

		switch outcome.Status {
		case dto.OutcomeSent:
			result.Summary.Sent++
		case dto.OutcomeFailed:
			result.Summary.Failed++
		default:
			result.Summary.Skipped++
		}
	}
	result.Summary.TotalSubscriptions = len(params.Subscriptions)

	uc.logger.Info("Notification dispatched",
		"check", check.ID,
		"sent", result.Summary.Sent,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped)

	return result, nil
}

// validateParams validates the dispatch parameters.
func (uc *dispatchNotificationUseCase) validateParams(params interfaces.DispatchParams) error {
	validationErr := &errors.ValidationError{}

	if params.Check == nil {
		validationErr.AddFieldError("check", "check is required")
	} else {
		if strings.TrimSpace(params.Check.ID) == "" {
			validationErr.AddFieldError("check.id", "check id is required")
		}
		if strings.TrimSpace(params.Check.Name) == "" {
			validationErr.AddFieldError("check.name", "check name is required")
		}
	}

	if len(params.Subscriptions) == 0 {
		validationErr.AddFieldError("subscriptions", "at least one subscription is required")
	}

	if validationErr.HasErrors() {
		return validationErr
	}

	return nil
}

// dispatch notifies a single subscription.
func (uc *dispatchNotificationUseCase) dispatch(
	ctx context.Context,
	check *entities.Check,
	subscription *entities.Subscription,
	alerts []entities.Alert,
) dto.SubscriptionOutcome {
	outcome := dto.SubscriptionOutcome{
		SubscriptionID: subscription.ID,
		Type:           subscription.Type,
		Target:         subscription.Target,
	}

	if !subscription.Enabled {
		outcome.Status = dto.OutcomeDisabled
		uc.metrics.IncrementSkipped(skipReasonDisabled)
		return outcome
	}

	if subscription.Ignores(check.State) {
		outcome.Status = dto.OutcomeIgnored
		uc.metrics.IncrementSkipped(skipReasonIgnored)
		return outcome
	}

	var failures []string
	for _, service := range uc.services {
		if !service.CanHandle(subscription.Type) {
			continue
		}

		channel := service.String()
		outcome.Channels = append(outcome.Channels, channel)

		start := time.Now()
		err := service.SendNotification(ctx, check, subscription, alerts)
		elapsed := time.Since(start)
		uc.metrics.ObserveDuration(channel, elapsed.Seconds())

		delivery := &entities.Delivery{
			CheckID:          check.ID,
			CheckName:        check.Name,
			State:            check.State,
			SubscriptionID:   subscription.ID,
			SubscriptionType: subscription.Type,
			Target:           subscription.Target,
			Channel:          channel,
			Status:           entities.DeliveryStatusSent,
			Duration:         elapsed,
		}

		if err != nil {
			uc.logger.Error("Failed to send notification",
				"check", check.ID,
				"channel", channel,
				"target", subscription.Target,
				"error", err)
			uc.metrics.IncrementFailed(channel)
			delivery.Status = entities.DeliveryStatusFailed
			delivery.Error = err.Error()
			failures = append(failures, err.Error())
		} else {
			uc.metrics.IncrementSent(channel)
		}

		uc.recordDelivery(ctx, delivery)
	}

	switch {
	case len(outcome.Channels) == 0:
		outcome.Status = dto.OutcomeUnhandled
		uc.metrics.IncrementSkipped(skipReasonUnhandled)
		uc.logger.Warn("No notification service handles subscription",
			"check", check.ID,
			"type", subscription.Type,
			"target", subscription.Target)
	case len(failures) > 0:
		outcome.Status = dto.OutcomeFailed
		outcome.Error = strings.Join(failures, "; ")
	default:
		outcome.Status = dto.OutcomeSent
	}

	return outcome
}

// recordDelivery saves the delivery if a repository is configured.
func (uc *dispatchNotificationUseCase) recordDelivery(ctx context.Context, delivery *entities.Delivery) {
	if uc.deliveryRepository == nil {
		return
	}

	if err := uc.deliveryRepository.Save(ctx, delivery); err != nil {
		// Log error but don't fail the dispatch
		uc.logger.Warn("Failed to save delivery to repository", "error", err)
	}
}

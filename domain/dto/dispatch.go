// Package dto contains data transfer objects for dispatch results.
package dto

import (
	"time"

	"seyren-notifier/domain/entities"
)

// OutcomeStatus represents what happened to a single subscription.
type OutcomeStatus string

const (
	// OutcomeSent indicates every capable channel delivered the notification.
	OutcomeSent OutcomeStatus = "sent"
	// OutcomeFailed indicates at least one channel failed.
	OutcomeFailed OutcomeStatus = "failed"
	// OutcomeDisabled indicates the subscription is disabled.
	OutcomeDisabled OutcomeStatus = "disabled"
	// OutcomeIgnored indicates the subscription ignores the check's current state.
	OutcomeIgnored OutcomeStatus = "ignored"
	// OutcomeUnhandled indicates no registered channel handles the subscription type.
	OutcomeUnhandled OutcomeStatus = "unhandled"
)

// DispatchResult represents the complete outcome of dispatching one check state change.
type DispatchResult struct {
	Timestamp time.Time             `json:"timestamp"`
	CheckID   string                `json:"check_id"`
	CheckName string                `json:"check_name"`
	State     entities.AlertType    `json:"state"`
	Outcomes  []SubscriptionOutcome `json:"outcomes"`
	Summary   DispatchSummary       `json:"summary"`
}

// SubscriptionOutcome represents the result for a single subscription.
type SubscriptionOutcome struct {
	SubscriptionID string                    `json:"subscription_id,omitempty"`
	Type           entities.SubscriptionType `json:"type"`
	Target         string                    `json:"target"`
	Status         OutcomeStatus             `json:"status"`
	Channels       []string                  `json:"channels,omitempty"`
	Error          string                    `json:"error,omitempty"`
}

// DispatchSummary provides summary statistics.
type DispatchSummary struct {
	TotalSubscriptions int `json:"total_subscriptions"`
	Sent               int `json:"sent"`
	Failed             int `json:"failed"`
	Skipped            int `json:"skipped"`
}

// HasFailures reports whether any subscription failed.
func (r *DispatchResult) HasFailures() bool {
	return r.Summary.Failed > 0
}

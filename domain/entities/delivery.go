package entities

import (
	"time"
)

// DeliveryStatus represents the outcome of a single notification attempt.
type DeliveryStatus string

const (
	// DeliveryStatusSent indicates the channel accepted the notification.
	DeliveryStatusSent DeliveryStatus = "sent"
	// DeliveryStatusFailed indicates the channel returned an error.
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// Delivery records one attempt to notify a subscription about a check.
type Delivery struct {
	ID               string
	CheckID          string
	CheckName        string
	State            AlertType
	SubscriptionID   string
	SubscriptionType SubscriptionType
	Target           string
	Channel          string
	Status           DeliveryStatus
	Error            string
	Duration         time.Duration
	CreatedAt        time.Time
}

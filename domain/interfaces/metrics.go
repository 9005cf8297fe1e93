package interfaces

// NotificationMetrics records notification outcomes.
type NotificationMetrics interface {
	// IncrementSent counts a notification accepted by a channel.
	IncrementSent(channel string)

	// IncrementFailed counts a notification a channel failed to deliver.
	IncrementFailed(channel string)

	// IncrementSkipped counts a subscription that was not notified.
	IncrementSkipped(reason string)

	// ObserveDuration records how long a channel took to handle a notification.
	ObserveDuration(channel string, seconds float64)
}

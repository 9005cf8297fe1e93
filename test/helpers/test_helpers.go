package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"seyren-notifier/domain/entities"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// RandomID generates a random check or subscription identifier
func RandomID() string {
	return uuid.NewString()
}

// RandomCheck generates a check in the given state
func RandomCheck(state entities.AlertType) *entities.Check {
	id := RandomID()
	return &entities.Check{
		ID:      id,
		Name:    "check-" + id[:8],
		Target:  "servers.*.load",
		State:   state,
		Enabled: true,
	}
}

// Subscription generates an enabled subscription of the given type
func Subscription(subscriptionType entities.SubscriptionType, target string) *entities.Subscription {
	return &entities.Subscription{
		ID:      RandomID(),
		Target:  target,
		Type:    subscriptionType,
		Enabled: true,
	}
}

// Alerts generates one alert per target for the check
func Alerts(check *entities.Check, from entities.AlertType, targets ...string) []entities.Alert {
	alerts := make([]entities.Alert, 0, len(targets))
	for i, target := range targets {
		alerts = append(alerts, entities.Alert{
			ID:        RandomID(),
			CheckID:   check.ID,
			Target:    target,
			Value:     float64(10 * (i + 1)),
			Warn:      5,
			Error:     20,
			FromType:  from,
			ToType:    check.State,
			Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		})
	}
	return alerts
}

// AssertEventually asserts that a condition is met within a timeout
func AssertEventually(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	require.Fail(t, message)
}

// SkipIfShort skips the test if running in short mode
func SkipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping test in short mode")
	}
}

package commands

import (
	"fmt"
	"strings"

	"seyren-notifier/domain/entities"
)

// parseAlertType parses a check state, case-insensitively.
func parseAlertType(s string) (entities.AlertType, error) {
	state := entities.AlertType(strings.ToUpper(strings.TrimSpace(s)))
	if !state.IsValid() {
		return "", fmt.Errorf("unknown state %q", s)
	}
	return state, nil
}

// parseSubscriptionType parses a subscription type, case-insensitively.
func parseSubscriptionType(s string) (entities.SubscriptionType, error) {
	subscriptionType := entities.SubscriptionType(strings.ToUpper(strings.TrimSpace(s)))
	if !subscriptionType.IsValid() {
		return "", fmt.Errorf("unknown subscription type %q", s)
	}
	return subscriptionType, nil
}

// Package notifier provides notification channel implementations.
package notifier

import (
	"context"
	"fmt"
	"strings"

	"seyren-notifier/domain/entities"
	domainerrors "seyren-notifier/domain/errors"
	"seyren-notifier/domain/interfaces"
)

// CampfireChannel is the channel name reported by the Campfire notifier.
const CampfireChannel = "campfire"

// campfireNotifier implements the NotificationService interface for Campfire.
type campfireNotifier struct {
	config    interfaces.NotificationConfig
	newClient interfaces.CampfireClientFactory
	logger    interfaces.Logger
}

// NewCampfireNotifier creates a new Campfire notifier. Settings are read from
// config on every notification.
func NewCampfireNotifier(
	config interfaces.NotificationConfig,
	newClient interfaces.CampfireClientFactory,
	logger interfaces.Logger,
) interfaces.NotificationService {
	return &campfireNotifier{
		config:    config,
		newClient: newClient,
		logger:    logger,
	}
}

// SendNotification posts the check state to the configured Campfire room.
func (n *campfireNotifier) SendNotification(
	ctx context.Context,
	check *entities.Check,
	subscription *entities.Subscription,
	_ []entities.Alert,
) error {
	subdomain := strings.TrimSpace(n.config.CampfireSubdomain())
	apiToken := strings.TrimSpace(n.config.CampfireAPIToken())
	roomName := strings.TrimSpace(n.config.CampfireRoom())

	if subdomain == "" || apiToken == "" {
		n.logger.Warn("Campfire requires CAMPFIRE_SUBDOMAIN and CAMPFIRE_APITOKEN to be set before sending notifications to Campfire",
			"check", check.ID,
			"target", subscription.Target)
		return nil
	}

	client, err := n.newClient(subdomain, apiToken)
	if err != nil {
		return n.failed(subscription, err)
	}

	var room *entities.Room
	if roomName == "" {
		rooms, err := client.Rooms(ctx)
		if err != nil {
			return n.failed(subscription, err)
		}
		if len(rooms) > 0 {
			room = &rooms[0]
		}
	} else {
		room, err = client.FindRoomByName(ctx, roomName)
		if err != nil {
			return n.failed(subscription, err)
		}
	}

	// An account without rooms, or without the named room, is not reported.
	if room == nil {
		return nil
	}

	if err := client.Join(ctx, room.ID); err != nil {
		return n.failed(subscription, err)
	}

	if err := client.Speak(ctx, room.ID, FormatMessage(n.config.BaseURL(), check)); err != nil {
		return n.failed(subscription, err)
	}

	n.logger.Debug("Campfire notification sent",
		"check", check.ID,
		"room", room.Name,
		"target", subscription.Target)

	return nil
}

// CanHandle reports whether the subscription type is Campfire.
func (n *campfireNotifier) CanHandle(subscriptionType entities.SubscriptionType) bool {
	return subscriptionType == entities.SubscriptionTypeCampfire
}

// String returns the channel name.
func (n *campfireNotifier) String() string {
	return CampfireChannel
}

func (n *campfireNotifier) failed(subscription *entities.Subscription, err error) error {
	return domainerrors.NewNotificationFailedError(CampfireChannel, subscription.Target, err)
}

// FormatMessage builds the one-line chat message for the check's current state.
// States other than OK, WARN and ERROR yield an empty message.
func FormatMessage(baseURL string, check *entities.Check) string {
	tag := stateTag(check.State)
	if tag == "" {
		return ""
	}

	return fmt.Sprintf("Seyren Alert! Service %s changed to state [%s] | %s", check.Name, tag, CheckURL(baseURL, check))
}

// CheckURL links to the check in the Seyren UI.
func CheckURL(baseURL string, check *entities.Check) string {
	return baseURL + "/#/checks/" + check.ID
}

func stateTag(state entities.AlertType) string {
	switch state {
	case entities.AlertTypeError:
		return "CRIT"
	case entities.AlertTypeWarn:
		return "WARN"
	case entities.AlertTypeOK:
		return "OK"
	default:
		return ""
	}
}

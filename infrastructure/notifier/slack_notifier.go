package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"seyren-notifier/domain/entities"
	domainerrors "seyren-notifier/domain/errors"
	"seyren-notifier/domain/interfaces"
)

// SlackChannel is the channel name reported by the Slack notifier.
const SlackChannel = "slack"

// slackNotifier implements the NotificationService interface for Slack.
type slackNotifier struct {
	config     interfaces.NotificationConfig
	logger     interfaces.Logger
	httpClient *http.Client
}

// NewSlackNotifier creates a new Slack notifier posting through the incoming
// webhook configured in config.
func NewSlackNotifier(
	config interfaces.NotificationConfig,
	httpClient *http.Client,
	logger interfaces.Logger,
) interfaces.NotificationService {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	return &slackNotifier{
		config:     config,
		logger:     logger,
		httpClient: httpClient,
	}
}

// SendNotification sends the check state change to the subscription's Slack channel.
func (n *slackNotifier) SendNotification(
	ctx context.Context,
	check *entities.Check,
	subscription *entities.Subscription,
	alerts []entities.Alert,
) error {
	webhookURL := strings.TrimSpace(n.config.SlackWebhookURL())
	if webhookURL == "" {
		n.logger.Warn("Slack requires SLACK_WEBHOOK_URL to be set before sending notifications to Slack",
			"check", check.ID,
			"target", subscription.Target)
		return nil
	}

	message := n.buildMessage(check, subscription, alerts)

	if payload, err := json.Marshal(message); err == nil {
		n.logger.Debug("Sending Slack message", "payload", string(payload))
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, webhookURL, n.httpClient, message); err != nil {
		return n.failed(subscription, classifyWebhookError(err))
	}

	n.logger.Debug("Slack notification sent", "check", check.ID, "target", subscription.Target)
	return nil
}

// CanHandle reports whether the subscription type is Slack.
func (n *slackNotifier) CanHandle(subscriptionType entities.SubscriptionType) bool {
	return subscriptionType == entities.SubscriptionTypeSlack
}

// String returns the channel name.
func (n *slackNotifier) String() string {
	return SlackChannel
}

func (n *slackNotifier) failed(subscription *entities.Subscription, err error) error {
	return domainerrors.NewNotificationFailedError(SlackChannel, subscription.Target, err)
}

// classifyWebhookError maps a webhook failure to a domain error, keeping the cause.
func classifyWebhookError(err error) error {
	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		kind := domainerrors.ErrConnection
		switch statusErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = domainerrors.ErrUnauthorized
		case http.StatusNotFound:
			kind = domainerrors.ErrNotFound
		}
		return domainerrors.WrapDomainError(kind, err).WithDetails("status", statusErr.Code)
	}

	return domainerrors.WrapDomainError(domainerrors.ErrConnection, err)
}

// buildMessage constructs a Slack webhook message from the check and its alerts.
func (n *slackNotifier) buildMessage(
	check *entities.Check,
	subscription *entities.Subscription,
	alerts []entities.Alert,
) *slack.WebhookMessage {
	baseURL := n.config.BaseURL()

	fields := make([]slack.AttachmentField, 0, len(alerts))
	for _, alert := range alerts {
		fields = append(fields, slack.AttachmentField{
			Title: alert.Target,
			Value: fmt.Sprintf("%s → %s (value %g, warn %g, error %g)",
				alert.FromType, alert.ToType, alert.Value, alert.Warn, alert.Error),
			Short: false,
		})
	}

	attachment := slack.Attachment{
		Color:     stateColor(check.State),
		Title:     fmt.Sprintf("%s is %s", check.Name, check.State),
		TitleLink: CheckURL(baseURL, check),
		Text:      check.Description,
		Fields:    fields,
		Footer:    "Seyren",
	}
	if ts := latestTimestamp(alerts); ts > 0 {
		attachment.Ts = json.Number(strconv.FormatInt(ts, 10))
	}

	return &slack.WebhookMessage{
		Text:        FormatMessage(baseURL, check),
		Attachments: []slack.Attachment{attachment},
		Channel:     subscription.Target,
		Username:    "Seyren",
		IconEmoji:   ":rotating_light:",
	}
}

// stateColor returns the attachment color for the state.
func stateColor(state entities.AlertType) string {
	switch state {
	case entities.AlertTypeOK:
		return "good"
	case entities.AlertTypeWarn:
		return "warning"
	case entities.AlertTypeError:
		return "danger"
	default:
		return "#cccccc"
	}
}

func latestTimestamp(alerts []entities.Alert) int64 {
	var latest time.Time
	for _, alert := range alerts {
		if alert.Timestamp.After(latest) {
			latest = alert.Timestamp
		}
	}
	if latest.IsZero() {
		return 0
	}
	return latest.Unix()
}

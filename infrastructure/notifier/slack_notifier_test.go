package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seyren-notifier/domain/entities"
	domainerrors "seyren-notifier/domain/errors"
	"seyren-notifier/test/helpers"
	"seyren-notifier/test/mocks"
)

func TestSlackNotifier_SendNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var received slack.WebhookMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	config := mocks.NewMockNotificationConfig(ctrl)
	config.EXPECT().SlackWebhookURL().Return(srv.URL).AnyTimes()
	config.EXPECT().BaseURL().Return(baseURL).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	n := NewSlackNotifier(config, srv.Client(), logger)

	check := helpers.RandomCheck(entities.AlertTypeWarn)
	sub := helpers.Subscription(entities.SubscriptionTypeSlack, "#ops")
	alerts := helpers.Alerts(check, entities.AlertTypeOK, "servers.web1.load", "servers.web2.load")

	require.NoError(t, n.SendNotification(helpers.TestContext(t), check, sub, alerts))

	assert.Equal(t, FormatMessage(baseURL, check), received.Text)
	assert.Equal(t, "#ops", received.Channel)
	require.Len(t, received.Attachments, 1)
	attachment := received.Attachments[0]
	assert.Equal(t, "warning", attachment.Color)
	assert.Equal(t, baseURL+"/#/checks/"+check.ID, attachment.TitleLink)
	require.Len(t, attachment.Fields, 2)
	assert.Equal(t, "servers.web1.load", attachment.Fields[0].Title)
	assert.Contains(t, attachment.Fields[0].Value, "OK → WARN")
	assert.Equal(t, strconv.FormatInt(alerts[0].Timestamp.Unix(), 10), attachment.Ts.String())
	assert.Equal(t, "Seyren", received.Username)
}

func TestSlackNotifier_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := mocks.NewMockNotificationConfig(ctrl)
	config.EXPECT().SlackWebhookURL().Return("  ")

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).Times(1)

	n := NewSlackNotifier(config, nil, logger)
	check := helpers.RandomCheck(entities.AlertTypeError)
	sub := helpers.Subscription(entities.SubscriptionTypeSlack, "#ops")

	require.NoError(t, n.SendNotification(helpers.TestContext(t), check, sub, nil))
}

func TestSlackNotifier_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no_service"))
	}))
	defer srv.Close()

	config := mocks.NewMockNotificationConfig(ctrl)
	config.EXPECT().SlackWebhookURL().Return(srv.URL).AnyTimes()
	config.EXPECT().BaseURL().Return(baseURL).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	n := NewSlackNotifier(config, srv.Client(), logger)
	check := helpers.RandomCheck(entities.AlertTypeError)
	sub := helpers.Subscription(entities.SubscriptionTypeSlack, "#ops")

	err := n.SendNotification(helpers.TestContext(t), check, sub, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "#ops")
	assert.Contains(t, err.Error(), "404")

	var statusErr slack.StatusCodeError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)

	var domainErr *domainerrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusNotFound, domainErr.Details["status"])
}

func TestSlackNotifier_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	config := mocks.NewMockNotificationConfig(ctrl)
	config.EXPECT().SlackWebhookURL().Return(srv.URL).AnyTimes()
	config.EXPECT().BaseURL().Return(baseURL).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	n := NewSlackNotifier(config, srv.Client(), logger)
	check := helpers.RandomCheck(entities.AlertTypeError)
	sub := helpers.Subscription(entities.SubscriptionTypeSlack, "#ops")

	ctx, cancel := context.WithTimeout(helpers.TestContext(t), 20*time.Millisecond)
	defer cancel()

	err := n.SendNotification(ctx, check, sub, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
	assert.True(t, errors.Is(err, domainerrors.ErrConnection))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClassifyWebhookError(t *testing.T) {
	err := classifyWebhookError(slack.StatusCodeError{Code: http.StatusForbidden, Status: "403 Forbidden"})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	err = classifyWebhookError(slack.StatusCodeError{Code: http.StatusBadGateway, Status: "502 Bad Gateway"})
	assert.True(t, errors.Is(err, domainerrors.ErrConnection))
	assert.Contains(t, err.Error(), "502")
}

func TestSlackNotifier_CanHandle(t *testing.T) {
	n := NewSlackNotifier(nil, nil, nil)

	assert.True(t, n.CanHandle(entities.SubscriptionTypeSlack))
	assert.False(t, n.CanHandle(entities.SubscriptionTypeCampfire))
	assert.Equal(t, "slack", n.String())
}

func TestStateColor(t *testing.T) {
	assert.Equal(t, "good", stateColor(entities.AlertTypeOK))
	assert.Equal(t, "warning", stateColor(entities.AlertTypeWarn))
	assert.Equal(t, "danger", stateColor(entities.AlertTypeError))
	assert.Equal(t, "#cccccc", stateColor(entities.AlertTypeUnknown))
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"seyren-notifier/domain/dto"
	"seyren-notifier/domain/entities"
	"seyren-notifier/domain/interfaces"
	"seyren-notifier/infrastructure/config"
	"seyren-notifier/test/mocks"
)

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNotifyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUseCase := mocks.NewMockDispatchNotificationUseCase(ctrl)
	app := &App{Container: &config.Container{DispatchNotificationUseCase: mockUseCase}}

	t.Run("dispatches one subscription", func(t *testing.T) {
		mockUseCase.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params interfaces.DispatchParams) (*dto.DispatchResult, error) {
				assert.Equal(t, "5127e2f4", params.Check.ID)
				assert.Equal(t, "api-latency", params.Check.Name)
				assert.Equal(t, entities.AlertTypeWarn, params.Check.State)
				require.Len(t, params.Subscriptions, 1)
				assert.Equal(t, entities.SubscriptionTypeCampfire, params.Subscriptions[0].Type)
				assert.Equal(t, "ops", params.Subscriptions[0].Target)
				assert.True(t, params.Subscriptions[0].Enabled)

				return &dto.DispatchResult{
					CheckID: params.Check.ID,
					Summary: dto.DispatchSummary{TotalSubscriptions: 1, Sent: 1},
				}, nil
			})

		out, err := execute(NewNotifyCommand(app),
			"--check-id", "5127e2f4", "--check-name", "api-latency", "--state", "warn", "--target", "ops")
		require.NoError(t, err)

		var result dto.DispatchResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "5127e2f4", result.CheckID)
	})

	t.Run("reports failures", func(t *testing.T) {
		mockUseCase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(&dto.DispatchResult{
			Summary: dto.DispatchSummary{TotalSubscriptions: 1, Failed: 1},
		}, nil)

		out, err := execute(NewNotifyCommand(app),
			"--check-id", "1", "--check-name", "n", "--output", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 1 subscriptions failed")
		assert.Contains(t, out, "failed: 1")
	})

	t.Run("invalid state", func(t *testing.T) {
		_, err := execute(NewNotifyCommand(app), "--check-id", "1", "--check-name", "n", "--state", "CRIT")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown state")
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := execute(NewNotifyCommand(app), "--check-id", "1", "--check-name", "n", "--type", "telegram")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown subscription type")
	})

	t.Run("missing required flags", func(t *testing.T) {
		_, err := execute(NewNotifyCommand(app), "--check-id", "1")
		require.Error(t, err)
	})
}

func TestRoomsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newApp := func(subdomain, token string, client interfaces.CampfireClient) (*App, *[]string) {
		settings := mocks.NewMockNotificationConfig(ctrl)
		settings.EXPECT().CampfireSubdomain().Return(subdomain).AnyTimes()
		settings.EXPECT().CampfireAPIToken().Return(token).AnyTimes()

		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

		var built []string
		factory := func(subdomain, apiToken string) (interfaces.CampfireClient, error) {
			built = append(built, subdomain+":"+apiToken)
			if client == nil {
				return nil, errors.New("no client")
			}
			return client, nil
		}

		return &App{Container: &config.Container{
			Settings:        settings,
			Logger:          mockLogger,
			CampfireFactory: factory,
		}}, &built
	}

	t.Run("lists rooms", func(t *testing.T) {
		client := mocks.NewMockCampfireClient(ctrl)
		client.EXPECT().Rooms(gomock.Any()).Return([]entities.Room{{ID: 1, Name: "Ops"}}, nil)
		app, built := newApp(" acme ", "token", client)

		out, err := execute(NewRoomsCommand(app), "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "name: Ops")
		assert.Equal(t, []string{"acme:token"}, *built)
	})

	t.Run("not configured", func(t *testing.T) {
		app, built := newApp("", "token", nil)

		_, err := execute(NewRoomsCommand(app))
		require.Error(t, err)
		assert.Empty(t, *built)
	})

	t.Run("client error", func(t *testing.T) {
		client := mocks.NewMockCampfireClient(ctrl)
		client.EXPECT().Rooms(gomock.Any()).Return(nil, errors.New("status 401"))
		app, _ := newApp("acme", "token", client)

		_, err := execute(NewRoomsCommand(app))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list rooms")
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(NewVersionCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Seyren Notifier")
	assert.Contains(t, out, "Version:    "+Version)
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"notify", "rooms", "serve", "version"}, names)

	out, err := execute(root, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Seyren Notifier")
}

func TestApp_RunClosesContainer(t *testing.T) {
	newApp := func(t *testing.T) (*App, sqlmock.Sqlmock) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		require.NoError(t, err)

		return &App{Container: &config.Container{
			DB:                          gormDB,
			Logger:                      mocks.NewMockLogger(ctrl),
			DispatchNotificationUseCase: mocks.NewMockDispatchNotificationUseCase(ctrl),
		}}, mock
	}

	t.Run("after a failing command", func(t *testing.T) {
		app, mock := newApp(t)
		mock.ExpectClose()

		root := newRootCommand(app)
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"notify", "--check-id", "1", "--check-name", "n", "--state", "CRIT"})

		err := app.run(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown state")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("after a successful command", func(t *testing.T) {
		app, mock := newApp(t)
		mock.ExpectClose()

		root := newRootCommand(app)
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"version"})

		require.NoError(t, app.run(root))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParseHelpers(t *testing.T) {
	state, err := parseAlertType(" error ")
	require.NoError(t, err)
	assert.Equal(t, entities.AlertTypeError, state)

	_, err = parseAlertType("")
	assert.Error(t, err)

	subType, err := parseSubscriptionType("Slack")
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionTypeSlack, subType)
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"seyren-notifier/domain/entities"
	"seyren-notifier/domain/interfaces"
)

// NewNotifyCommand creates the notify command.
func NewNotifyCommand(app *App) *cobra.Command {
	var (
		checkID          string
		checkName        string
		description      string
		state            string
		subscriptionType string
		target           string
		outputFormat     string
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a check state change to one subscription",
		Long: `Dispatches a single check state change to a subscription through every
channel able to handle its type, then prints the dispatch result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			alertType, err := parseAlertType(state)
			if err != nil {
				return err
			}

			subType, err := parseSubscriptionType(subscriptionType)
			if err != nil {
				return err
			}

			params := interfaces.DispatchParams{
				Check: &entities.Check{
					ID:          strings.TrimSpace(checkID),
					Name:        strings.TrimSpace(checkName),
					Description: description,
					State:       alertType,
					Enabled:     true,
				},
				Subscriptions: []entities.Subscription{{
					Target:  target,
					Type:    subType,
					Enabled: true,
				}},
			}

			result, err := app.Container.DispatchNotificationUseCase.Execute(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to dispatch notification: %w", err)
			}

			if err := NewOutputFormatter(outputFormat, cmd.OutOrStdout()).Print(result); err != nil {
				return err
			}

			if result.HasFailures() {
				return fmt.Errorf("%d of %d subscriptions failed", result.Summary.Failed, result.Summary.TotalSubscriptions)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&checkID, "check-id", "", "check identifier")
	cmd.Flags().StringVar(&checkName, "check-name", "", "check name")
	cmd.Flags().StringVar(&description, "description", "", "check description")
	cmd.Flags().StringVar(&state, "state", string(entities.AlertTypeError), "new check state (OK, WARN, ERROR, ...)")
	cmd.Flags().StringVar(&subscriptionType, "type", string(entities.SubscriptionTypeCampfire), "subscription type")
	cmd.Flags().StringVar(&target, "target", "", "subscription target")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatJSON, "output format (json, yaml)")

	_ = cmd.MarkFlagRequired("check-id")
	_ = cmd.MarkFlagRequired("check-name")

	return cmd
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewRoomsCommand creates the rooms command.
func NewRoomsCommand(app *App) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List the Campfire rooms visible to the configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			settings := app.Container.Settings
			subdomain := strings.TrimSpace(settings.CampfireSubdomain())
			apiToken := strings.TrimSpace(settings.CampfireAPIToken())
			if subdomain == "" || apiToken == "" {
				return fmt.Errorf("campfire subdomain and API token must be configured")
			}

			client, err := app.Container.CampfireFactory(subdomain, apiToken)
			if err != nil {
				return fmt.Errorf("failed to create campfire client: %w", err)
			}

			rooms, err := client.Rooms(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			app.Container.Logger.Debug("Listed Campfire rooms", "count", len(rooms))

			return NewOutputFormatter(outputFormat, cmd.OutOrStdout()).Print(rooms)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatJSON, "output format (json, yaml)")

	return cmd
}

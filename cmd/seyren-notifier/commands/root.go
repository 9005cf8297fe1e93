package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"seyren-notifier/infrastructure/config"
)

// App carries the state shared by all commands.
type App struct {
	ConfigPath string
	Container  *config.Container
}

// Execute runs the root command and releases the container afterwards,
// including when the command fails.
func Execute() error {
	app := &App{}
	return app.run(newRootCommand(app))
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&App{})
}

func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seyren-notifier",
		Short: "Seyren alert notification gateway",
		Long: `Delivers Seyren check state changes to chat channels such as Campfire
and Slack, either one-off from the command line or through an HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return app.init()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "config file path")

	// Add commands
	rootCmd.AddCommand(
		NewNotifyCommand(app),
		NewRoomsCommand(app),
		NewServeCommand(app),
		NewVersionCommand(),
	)

	return rootCmd
}

func (a *App) init() error {
	if a.Container != nil {
		return nil
	}

	cfg, err := config.LoadConfig(a.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	container, err := config.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	a.Container = container

	return nil
}

// run executes root and closes the container whatever the outcome.
func (a *App) run(root *cobra.Command) (err error) {
	defer func() {
		if closeErr := a.close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return root.Execute()
}

func (a *App) close() error {
	if a.Container == nil {
		return nil
	}
	return a.Container.Close()
}

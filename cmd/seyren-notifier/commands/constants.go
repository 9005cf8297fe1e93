// Package commands provides CLI command implementations for the Seyren notifier.
package commands

// Output format constants.
const (
	// OutputFormatJSON represents JSON output format.
	OutputFormatJSON = "json"
	// OutputFormatYAML represents YAML output format.
	OutputFormatYAML = "yaml"
)

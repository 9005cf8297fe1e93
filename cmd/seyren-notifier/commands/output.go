package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// OutputFormatter handles output formatting for commands.
type OutputFormatter struct {
	format string
	out    io.Writer
}

// NewOutputFormatter creates a new output formatter writing to out, or to
// stdout when out is nil.
func NewOutputFormatter(format string, out io.Writer) *OutputFormatter {
	if out == nil {
		out = os.Stdout
	}
	return &OutputFormatter{
		format: format,
		out:    out,
	}
}

// Print formats and prints the data according to the specified format.
func (f *OutputFormatter) Print(data interface{}) error {
	// First convert to JSON so both formats share the json tags
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(jsonBytes, &generic); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	switch f.format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(f.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(generic)

	case OutputFormatYAML:
		yamlBytes, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		_, err = f.out.Write(yamlBytes)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// ValidateFormat checks if the output format is valid.
func ValidateFormat(format string) error {
	switch format {
	case OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (supported: json, yaml)", format)
	}
}

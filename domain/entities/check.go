// Package entities contains the core domain entities for the notifier.
// It defines checks, subscriptions, alerts and the records kept about deliveries.
package entities

// AlertType represents the state a check can be in.
type AlertType string

const (
	// AlertTypeUnknown is the state of a check that has not been evaluated yet.
	AlertTypeUnknown AlertType = "UNKNOWN"
	// AlertTypeOK indicates the check is within its thresholds.
	AlertTypeOK AlertType = "OK"
	// AlertTypeWarn indicates the warn threshold has been crossed.
	AlertTypeWarn AlertType = "WARN"
	// AlertTypeError indicates the error threshold has been crossed.
	AlertTypeError AlertType = "ERROR"
	// AlertTypeException indicates the check could not be evaluated.
	AlertTypeException AlertType = "EXCEPTION"
)

// AlertTypes lists every known alert type.
var AlertTypes = []AlertType{
	AlertTypeUnknown,
	AlertTypeOK,
	AlertTypeWarn,
	AlertTypeError,
	AlertTypeException,
}

// IsValid reports whether t is one of the known alert types.
func (t AlertType) IsValid() bool {
	for _, known := range AlertTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Check represents a monitored condition and its current state.
type Check struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Target      string    `json:"target,omitempty"`
	State       AlertType `json:"state"`
	Enabled     bool      `json:"enabled"`
}

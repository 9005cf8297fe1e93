package entities

import (
	"time"
)

// Alert is a historical record of a check changing state for one target.
type Alert struct {
	ID        string    `json:"id,omitempty"`
	CheckID   string    `json:"check_id"`
	Target    string    `json:"target"`
	Value     float64   `json:"value"`
	Warn      float64   `json:"warn"`
	Error     float64   `json:"error"`
	FromType  AlertType `json:"from_type"`
	ToType    AlertType `json:"to_type"`
	Timestamp time.Time `json:"timestamp"`
}

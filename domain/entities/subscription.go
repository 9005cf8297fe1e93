package entities

import "encoding/json"

// SubscriptionType identifies the channel a subscription is delivered through.
type SubscriptionType string

const (
	SubscriptionTypeEmail     SubscriptionType = "EMAIL"
	SubscriptionTypePagerDuty SubscriptionType = "PAGERDUTY"
	SubscriptionTypeHipChat   SubscriptionType = "HIPCHAT"
	SubscriptionTypeHubot     SubscriptionType = "HUBOT"
	SubscriptionTypeFlowdock  SubscriptionType = "FLOWDOCK"
	SubscriptionTypeHTTP      SubscriptionType = "HTTP"
	SubscriptionTypeIrcCat    SubscriptionType = "IRCCAT"
	SubscriptionTypePushover  SubscriptionType = "PUSHOVER"
	SubscriptionTypeSlack     SubscriptionType = "SLACK"
	SubscriptionTypeSNMP      SubscriptionType = "SNMP"
	SubscriptionTypeTwilio    SubscriptionType = "TWILIO"
	SubscriptionTypeCampfire  SubscriptionType = "CAMPFIRE"
	SubscriptionTypeVictorOps SubscriptionType = "VICTOROPS"
	SubscriptionTypeScript    SubscriptionType = "SCRIPT"
)

// SubscriptionTypes lists every known subscription type.
var SubscriptionTypes = []SubscriptionType{
	SubscriptionTypeEmail,
	SubscriptionTypePagerDuty,
	SubscriptionTypeHipChat,
	SubscriptionTypeHubot,
	SubscriptionTypeFlowdock,
	SubscriptionTypeHTTP,
	SubscriptionTypeIrcCat,
	SubscriptionTypePushover,
	SubscriptionTypeSlack,
	SubscriptionTypeSNMP,
	SubscriptionTypeTwilio,
	SubscriptionTypeCampfire,
	SubscriptionTypeVictorOps,
	SubscriptionTypeScript,
}

// IsValid reports whether t is one of the known subscription types.
func (t SubscriptionType) IsValid() bool {
	for _, known := range SubscriptionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Subscription is a delivery target for the notifications of a check.
type Subscription struct {
	ID          string           `json:"id,omitempty"`
	Target      string           `json:"target"`
	Type        SubscriptionType `json:"type"`
	Enabled     bool             `json:"enabled"`
	IgnoreOk    bool             `json:"ignore_ok,omitempty"`
	IgnoreWarn  bool             `json:"ignore_warn,omitempty"`
	IgnoreError bool             `json:"ignore_error,omitempty"`
}

// UnmarshalJSON decodes a subscription, treating an omitted "enabled" as true.
func (s *Subscription) UnmarshalJSON(data []byte) error {
	type plain Subscription
	aux := struct {
		*plain
		Enabled *bool `json:"enabled"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.Enabled = aux.Enabled == nil || *aux.Enabled
	return nil
}

// Ignores reports whether the subscription opted out of notifications for state.
func (s *Subscription) Ignores(state AlertType) bool {
	switch state {
	case AlertTypeOK:
		return s.IgnoreOk
	case AlertTypeWarn:
		return s.IgnoreWarn
	case AlertTypeError:
		return s.IgnoreError
	default:
		return false
	}
}

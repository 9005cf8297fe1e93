package interfaces

// NotificationConfig gives channels access to their settings.
// Implementations return the current value on every call.
type NotificationConfig interface {
	// BaseURL is the public URL of the Seyren UI, used to link to checks.
	BaseURL() string

	// CampfireSubdomain is the account subdomain on campfirenow.com.
	CampfireSubdomain() string

	// CampfireAPIToken is the API token of the posting user.
	CampfireAPIToken() string

	// CampfireRoom is the room to post to. Empty means the first room of the account.
	CampfireRoom() string

	// SlackWebhookURL is the incoming webhook used for Slack subscriptions.
	SlackWebhookURL() string
}

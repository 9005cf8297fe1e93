// Package campfire provides a client for the Campfire chat REST API.
package campfire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"seyren-notifier/domain/entities"
	domainerrors "seyren-notifier/domain/errors"
	"seyren-notifier/domain/interfaces"
)

const (
	// DefaultTimeout bounds a single request when no HTTP client is supplied.
	DefaultTimeout = 10 * time.Second

	userAgent = "seyren-notifier"

	// Campfire ignores the password of token-authenticated requests.
	tokenPassword = "X"

	textMessage = "TextMessage"
)

// subdomainPattern matches a single DNS label.
var subdomainPattern = regexp.MustCompile(`(?i)^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// Client implements interfaces.CampfireClient over HTTP.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the account URL derived from the subdomain.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// NewClient creates a client for the account at https://<subdomain>.campfirenow.com.
func NewClient(subdomain, apiToken string, opts ...Option) (*Client, error) {
	if subdomain == "" {
		return nil, domainerrors.NewDomainError(domainerrors.ErrInvalidInput, "campfire subdomain is required")
	}
	if !subdomainPattern.MatchString(subdomain) {
		return nil, domainerrors.NewDomainError(domainerrors.ErrInvalidInput, "campfire subdomain must be a single DNS label").
			WithDetails("subdomain", subdomain)
	}
	if apiToken == "" {
		return nil, domainerrors.NewDomainError(domainerrors.ErrInvalidInput, "campfire api token is required")
	}

	c := &Client{
		baseURL:    fmt.Sprintf("https://%s.campfirenow.com", subdomain),
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewFactory returns a factory building clients with the given options.
func NewFactory(opts ...Option) interfaces.CampfireClientFactory {
	return func(subdomain, apiToken string) (interfaces.CampfireClient, error) {
		client, err := NewClient(subdomain, apiToken, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

type roomsResponse struct {
	Rooms []roomPayload `json:"rooms"`
}

type roomPayload struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Topic           string `json:"topic"`
	MembershipLimit int    `json:"membership_limit"`
	Locked          bool   `json:"locked"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type speakRequest struct {
	Message messagePayload `json:"message"`
}

type messagePayload struct {
	Type string `json:"type"`
	Body string `json:"body"`
}

// Rooms lists the rooms visible to the API user.
func (c *Client) Rooms(ctx context.Context) ([]entities.Room, error) {
	var resp roomsResponse
	if err := c.do(ctx, http.MethodGet, "/rooms.json", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "list rooms")
	}

	rooms := make([]entities.Room, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		rooms = append(rooms, r.toEntity())
	}

	return rooms, nil
}

// FindRoomByName returns the first room named exactly name, or nil.
func (c *Client) FindRoomByName(ctx context.Context, name string) (*entities.Room, error) {
	rooms, err := c.Rooms(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		if rooms[i].Name == name {
			return &rooms[i], nil
		}
	}

	return nil, nil
}

// Join enters the room.
func (c *Client) Join(ctx context.Context, roomID int64) error {
	path := fmt.Sprintf("/room/%d/join.json", roomID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return errors.Wrapf(err, "join room %d", roomID)
	}
	return nil
}

// Speak posts a text message to the room.
func (c *Client) Speak(ctx context.Context, roomID int64, message string) error {
	body := speakRequest{Message: messagePayload{Type: textMessage, Body: message}}
	path := fmt.Sprintf("/room/%d/speak.json", roomID)
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return errors.Wrapf(err, "speak in room %d", roomID)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	req.SetBasicAuth(c.apiToken, tokenPassword)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.WrapDomainError(domainerrors.ErrConnection, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	if err := statusError(resp.StatusCode, data); err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "unmarshal response (%s)", data)
	}

	return nil
}

// statusError maps a non-2xx status to a domain error.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := fmt.Sprintf("campfire returned status %d", status)
	if text := strings.TrimSpace(string(body)); text != "" {
		msg += ": " + text
	}

	var kind error
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		kind = domainerrors.ErrUnauthorized
	case status == http.StatusNotFound:
		kind = domainerrors.ErrNotFound
	default:
		kind = domainerrors.ErrConnection
	}

	return domainerrors.NewDomainError(kind, msg).WithDetails("status", status)
}

func (r roomPayload) toEntity() entities.Room {
	return entities.Room{
		ID:              r.ID,
		Name:            r.Name,
		Topic:           r.Topic,
		MembershipLimit: r.MembershipLimit,
		Locked:          r.Locked,
		CreatedAt:       parseTime(r.CreatedAt),
		UpdatedAt:       parseTime(r.UpdatedAt),
	}
}

// Campfire timestamps look like "2011/03/01 12:00:00 +0000".
func parseTime(value string) time.Time {
	for _, layout := range []string{"2006/01/02 15:04:05 -0700", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

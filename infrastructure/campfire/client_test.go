package campfire

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "seyren-notifier/domain/errors"
	"seyren-notifier/test/helpers"
)

const roomsJSON = `{"rooms":[
	{"id":101,"name":"Ops","topic":"pager","membership_limit":60,"locked":false,"created_at":"2011/03/01 12:00:00 +0000","updated_at":"2011/03/02 12:00:00 +0000"},
	{"id":202,"name":"Alerts","topic":"","membership_limit":60,"locked":false}
]}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("acme", "secret-token", WithBaseURL(srv.URL+"/"), WithTimeout(5*time.Second))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient("acme", "token")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.campfirenow.com", client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	_, err = NewClient("", "token")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = NewClient("acme", "")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	custom := &http.Client{}
	client, err = NewClient("acme", "token", WithHTTPClient(custom))
	require.NoError(t, err)
	assert.Same(t, custom, client.httpClient)

	client, err = NewClient("Acme-Ops1", "token")
	require.NoError(t, err)
	assert.Equal(t, "https://Acme-Ops1.campfirenow.com", client.baseURL)
}

func TestNewClient_RejectsMalformedSubdomain(t *testing.T) {
	for _, subdomain := range []string{
		"evil.com/",
		"evil.com#",
		"a@b",
		"host:1",
		"a.b",
		"-x",
		"x-",
		"a b",
		"acme/../admin",
		"abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijabcdefghijabcd",
	} {
		t.Run(subdomain, func(t *testing.T) {
			client, err := NewClient(subdomain, "token")
			require.Error(t, err)
			assert.Nil(t, client)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestClient_Rooms(t *testing.T) {
	ctx := helpers.TestContext(t)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rooms.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "secret-token", user)
		assert.Equal(t, "X", pass)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, roomsJSON)
	})

	rooms, err := client.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, int64(101), rooms[0].ID)
	assert.Equal(t, "Ops", rooms[0].Name)
	assert.Equal(t, "pager", rooms[0].Topic)
	assert.Equal(t, 2011, rooms[0].CreatedAt.Year())
	assert.Equal(t, "Alerts", rooms[1].Name)
	assert.True(t, rooms[1].CreatedAt.IsZero())
}

func TestClient_FindRoomByName(t *testing.T) {
	ctx := helpers.TestContext(t)
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, roomsJSON)
	})

	room, err := client.FindRoomByName(ctx, "Alerts")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, int64(202), room.ID)

	room, err = client.FindRoomByName(ctx, "alerts")
	require.NoError(t, err)
	assert.Nil(t, room)
}

func TestClient_JoinAndSpeak(t *testing.T) {
	ctx := helpers.TestContext(t)
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		if r.URL.Path == "/room/101/speak.json" {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body speakRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "TextMessage", body.Message.Type)
			assert.Equal(t, "hello ops", body.Message.Body)
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"message":{"id":1,"body":"hello ops","type":"TextMessage"}}`)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Join(ctx, 101))
	require.NoError(t, client.Speak(ctx, 101, "hello ops"))
	assert.Equal(t, []string{"POST /room/101/join.json", "POST /room/101/speak.json"}, calls)
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, kind: domainerrors.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, kind: domainerrors.ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, kind: domainerrors.ErrNotFound},
		{name: "server error", status: http.StatusBadGateway, kind: domainerrors.ErrConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := helpers.TestContext(t)
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, "nope")
			})

			err := client.Join(ctx, 7)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))
			assert.Contains(t, err.Error(), "join room 7")
			assert.Contains(t, err.Error(), "nope")

			var domainErr *domainerrors.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.status, domainErr.Details["status"])
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	ctx := helpers.TestContext(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewClient("acme", "token", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Rooms(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConnection))
}

func TestClient_InvalidJSON(t *testing.T) {
	ctx := helpers.TestContext(t)
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "{not json")
	})

	_, err := client.Rooms(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal response")
}

func TestNewFactory(t *testing.T) {
	factory := NewFactory(WithTimeout(time.Second))

	client, err := factory("acme", "token")
	require.NoError(t, err)
	assert.IsType(t, &Client{}, client)
	assert.Equal(t, time.Second, client.(*Client).httpClient.Timeout)

	_, err = factory("", "token")
	assert.Error(t, err)
}

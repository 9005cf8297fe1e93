package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationFailedError(t *testing.T) {
	cause := NewDomainError(ErrConnection, "campfire returned status 502")
	err := NewNotificationFailedError("campfire", "ops-room", cause)

	assert.True(t, errors.Is(err, ErrNotificationFailed))
	assert.True(t, errors.Is(err, ErrConnection))
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "ops-room")
	assert.Contains(t, err.Error(), "campfire")

	var target *NotificationFailedError
	wrapped := errors.Join(errors.New("dispatch"), err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "ops-room", target.Target)
}

func TestWrapDomainError(t *testing.T) {
	cause := fmt.Errorf("get rooms.json: %w", context.DeadlineExceeded)
	err := WrapDomainError(ErrConnection, cause)

	assert.True(t, errors.Is(err, ErrConnection))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "connection error: get rooms.json: context deadline exceeded", err.Error())

	failed := NewNotificationFailedError("campfire", "ops", err)
	assert.True(t, errors.Is(failed, context.DeadlineExceeded))
	assert.True(t, errors.Is(failed, ErrConnection))

	plain := NewDomainError(ErrNotFound, "room 42")
	assert.True(t, errors.Is(plain, ErrNotFound))
	assert.Nil(t, plain.Err)
}

func TestDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "with message",
			err:      NewDomainError(ErrNotFound, "room 42"),
			expected: "resource not found: room 42",
		},
		{
			name:     "without message",
			err:      NewDomainError(ErrUnauthorized, ""),
			expected: "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, tt.err.Type))
		})
	}

	err := NewDomainError(ErrConnection, "timeout").WithDetails("status", 504)
	assert.Equal(t, 504, err.Details["status"])
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{}
	assert.False(t, err.HasErrors())

	err.AddFieldError("check.id", "check id is required")
	err.AddFieldError("check.id", "check id must not be blank")
	err.AddFieldError("subscriptions", "at least one subscription is required")

	assert.True(t, err.HasErrors())
	assert.Len(t, err.Fields["check.id"], 2)
	assert.Equal(t, "validation failed for 2 fields", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

// file: services/retry_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestWithRetryTransientThenSuccess(t *testing.T) {
	calls := 0
	result, err := withRetry("test op", func() (string, error) {
		calls++
		if calls < 3 {
			return "", &googleapi.Error{Code: 503, Message: "backend error"}
		}
		return "folder-id", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "folder-id", result)
	assert.Equal(t, 3, calls, "transient failures should be retried")
}

func TestWithRetryExhaustsTransient(t *testing.T) {
	calls := 0
	_, err := withRetry("test op", func() (string, error) {
		calls++
		return "", &googleapi.Error{Code: 429, Message: "rate limit"}
	})

	assert.Error(t, err)
	assert.Equal(t, maxRetryAttempts, calls)
}

func TestWithRetryFatalErrorNotRetried(t *testing.T) {
	calls := 0
	_, err := withRetry("test op", func() (string, error) {
		calls++
		return "", errors.New("invalid credentials")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls, "non-transient errors must not be retried")
}

func TestWithRetryFatalAPIErrorNotRetried(t *testing.T) {
	calls := 0
	_, err := withRetry("test op", func() (string, error) {
		calls++
		return "", &googleapi.Error{Code: 404, Message: "not found"}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsTransientStorageError(t *testing.T) {
	for _, code := range []int{403, 429, 500, 502, 503, 504} {
		assert.True(t, isTransientStorageError(&googleapi.Error{Code: code}), "code %d", code)
	}
	assert.False(t, isTransientStorageError(&googleapi.Error{Code: 400}))
	assert.False(t, isTransientStorageError(&googleapi.Error{Code: 401}))
	assert.False(t, isTransientStorageError(errors.New("plain error")))
	assert.False(t, isTransientStorageError(nil))
}

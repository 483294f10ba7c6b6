// file: services/retry.go
package services

import (
	"errors"
	"log"
	"time"

	"google.golang.org/api/googleapi"
)

const (
	maxRetryAttempts  = 3
	initialRetryDelay = time.Second
)

// isTransientStorageError 判断是否为可重试的瞬时错误。
// 403 在 Drive API 上多数是限流（userRateLimitExceeded），也按瞬时处理。
func isTransientStorageError(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 403, 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}

// withRetry 用指数退避包裹一次外部存储调用。
// 只有瞬时错误会重试，最多 maxRetryAttempts 次；
// 其他错误（鉴权失败、参数错误等）立即向上抛。
func withRetry[T any](op string, fn func() (T, error)) (T, error) {
	var zero T
	delay := initialRetryDelay
	var lastErr error

	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !isTransientStorageError(err) {
			return zero, err
		}
		lastErr = err
		if attempt < maxRetryAttempts {
			log.Printf("Transient storage error on %s (attempt %d/%d, %d left): %v",
				op, attempt, maxRetryAttempts, maxRetryAttempts-attempt, err)
			time.Sleep(delay)
			delay *= 2
		}
	}
	return zero, lastErr
}

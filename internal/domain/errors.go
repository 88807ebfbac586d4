package domain

import "errors"

var (
	// ErrStorageUnavailable wraps failures of the override store on writes.
	ErrStorageUnavailable = errors.New("override storage unavailable")

	ErrWebhookNotConfigured = errors.New("no notification webhook configured")
	ErrNotificationFailed   = errors.New("notification failed")
)

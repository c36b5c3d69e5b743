package storage

import "errors"

// Common client storage errors
var (
	// ErrProjectNotFound indicates that project was not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrWordNotFound indicates that word was not found
	ErrWordNotFound = errors.New("word not found")

	// ErrQueueItemNotFound indicates that sync queue item was not found
	ErrQueueItemNotFound = errors.New("sync queue item not found")

	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

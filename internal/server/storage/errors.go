package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrProjectNotFound indicates that project was not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectAlreadyExists indicates that project with this id already
	// exists. Клиент генерирует id сам, поэтому повторный create того же
	// проекта (например, из очереди) приходит с тем же id.
	ErrProjectAlreadyExists = errors.New("project already exists")

	// ErrWordNotFound indicates that word was not found
	ErrWordNotFound = errors.New("word not found")

	// ErrWordAlreadyExists indicates that word with this id already exists
	ErrWordAlreadyExists = errors.New("word already exists")
)

package database

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// Validation failures.
	ErrEmptyEmail = errors.New("email must not be empty")
	ErrEmailTaken = errors.New("email already taken")
	ErrEmptyBody  = errors.New("message body must not be empty")

	// Authorization failures on mutating operations.
	ErrNotHost   = errors.New("only the room host can modify the room")
	ErrNotAuthor = errors.New("only the message author can modify the message")
)

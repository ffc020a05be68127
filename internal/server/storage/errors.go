package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrNoteNotFound indicates that the note was not found
	ErrNoteNotFound = errors.New("note not found")

	// ErrLabelNotFound indicates that the label was not found
	ErrLabelNotFound = errors.New("label not found")
)

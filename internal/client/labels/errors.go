package labels

import "errors"

var (
	// ErrAuthRequired means a mutation was attempted with no
	// authenticated user
	ErrAuthRequired = errors.New("authentication required")

	// ErrLabelNotFound means the label id is unknown locally
	ErrLabelNotFound = errors.New("label not found")
)

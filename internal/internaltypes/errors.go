package internaltypes

import "errors"

var (
	ErrUnauthorized = errors.New("wrong admin password")
	ErrNotFound     = errors.New("not found")
)

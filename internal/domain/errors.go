package domain

import "errors"

var (
	ErrInvalidID   = errors.New("Invalid ID format - must be a number")
	ErrInvalidBody = errors.New("invalid request body")
)

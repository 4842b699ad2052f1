package session

import (
	"errors"

	"courierdesk/internal/service/courier"
)

var (
	ErrMissingToken      = errors.New("missing bearer token")
	ErrInvalidToken      = errors.New("invalid bearer token")
	ErrIllegalTransition = errors.New("illegal session state transition")

	ErrProfileNotFound = courier.ErrCourierNotFound
)

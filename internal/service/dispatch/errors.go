package dispatch

import (
	"errors"

	"courierdesk/internal/service/courier"
	"courierdesk/internal/service/order"
)

var (
	ErrEmptySelection   = errors.New("no orders selected")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrNotCourier       = errors.New("user is not a courier")
	ErrSelectionTooBig  = errors.New("too many orders selected")

	ErrOrderNotFound   = order.ErrOrderNotFound
	ErrOrderArchived   = order.ErrOrderArchived
	ErrCourierNotFound = courier.ErrCourierNotFound
)

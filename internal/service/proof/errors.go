package proof

import (
	"errors"

	"courierdesk/internal/service/order"
)

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrEmptyFile          = errors.New("empty file")
	ErrFileTooLarge       = errors.New("file is too large")
	ErrUnsupportedContent = errors.New("unsupported content type")
	ErrUploadFailed       = errors.New("proof upload failed")

	ErrOrderNotFound = order.ErrOrderNotFound
	ErrForbidden     = order.ErrForbidden
)

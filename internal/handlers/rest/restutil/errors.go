package restutil

import (
	"errors"

	"courierdesk/internal/service/dispatch"
)

var (
	ErrInvalidBody  = errors.New("invalid request body")
	ErrInvalidID    = errors.New("invalid id in path")
	ErrInvalidQuery = errors.New("invalid query parameter")
	ErrInvalidMoney = errors.New("invalid money amount")
)

const batchItemInternal = "internal error"

// batchItemErrors ошибки позиции пакета, которые отдаются клиенту как есть.
var batchItemErrors = []error{
	dispatch.ErrOrderNotFound,
	dispatch.ErrOrderArchived,
}

// BatchItemMessage текст ошибки позиции для клиента. Обертки репозитория наружу не выходят.
func BatchItemMessage(err error) string {
	for _, known := range batchItemErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return batchItemInternal
}

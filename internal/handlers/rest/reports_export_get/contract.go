//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reports_export_get_test
package reports_export_get

import (
	"context"
	"io"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Export(ctx context.Context, filter entities.OrderFilter, format entities.ExportFormat, w io.Writer) error
}

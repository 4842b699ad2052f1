//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_proofs_post_test
package order_proofs_post

import (
	"context"

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
	UploadProof(ctx context.Context, principal *entities.Principal, upload entities.ProofUpload) (*entities.OrderProof, error)
}

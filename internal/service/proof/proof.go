package proof

import (
	"context"
	"fmt"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"

	"github.com/google/uuid"
)

type Options struct {
	MaxUploadBytes int64
	MaxDimension   int
}

type Service struct {
	repository Repository
	storage    Storage
	publisher  EventPublisher
	log        serviceLogger
	opts       Options
}

func New(
	repository Repository,
	storage Storage,
	publisher EventPublisher,
	log logger.Logger,
	opts Options,
) *Service {
	return &Service{
		repository: repository,
		storage:    storage,
		publisher:  publisher,
		log:        log.With(logger.NewField("service", "proof")),
		opts:       opts,
	}
}

// ObjectKey ключ объекта подтверждения в хранилище.
func ObjectKey(orderID int64, id uuid.UUID, ext string) string {
	return fmt.Sprintf("orders/%d/%s%s", orderID, id, ext)
}

// UploadProof сначала загружает файл, и только после успешной загрузки пишет строку подтверждения.
// Если запись в базу не удалась, загруженный объект удаляется.
func (s *Service) UploadProof(
	ctx context.Context,
	principal *entities.Principal,
	upload entities.ProofUpload,
) (*entities.OrderProof, error) {
	if !isValidOrderID(upload.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if len(upload.Data) == 0 {
		return nil, ErrEmptyFile
	}
	if s.opts.MaxUploadBytes > 0 && int64(len(upload.Data)) > s.opts.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}
	contentType, ok := sniffContentType(upload.Data)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContent, contentType)
	}

	order, err := s.repository.GetByID(ctx, upload.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", upload.OrderID, err)
	}
	if !principal.CanAccess(order) {
		return nil, ErrForbidden
	}

	image, err := normalizeImage(upload.Data, contentType, s.opts.MaxDimension)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	key := ObjectKey(order.ID, id, image.ext)

	url, err := s.storage.Upload(ctx, key, image.contentType, image.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	proof, err := s.repository.AddProof(ctx, entities.OrderProof{
		ID:        id.String(),
		OrderID:   order.ID,
		ObjectKey: key,
		URL:       url,
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.log.Warn("failed to remove orphaned proof object",
				logger.NewField("key", key),
				logger.NewField("error", delErr),
			)
		}
		return nil, fmt.Errorf("add proof to order %d: %w", order.ID, err)
	}

	after := *order
	after.Proofs = append(append([]entities.OrderProof(nil), order.Proofs...), *proof)
	s.publisher.Publish(ctx, entities.NewOrderEvent(entities.OrderEventUpdated, order, &after, time.Now().UTC()))

	return proof, nil
}

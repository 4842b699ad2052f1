package order_status_post

import (
	"errors"
	"net/http"

	"courierdesk/internal/entities"
	"courierdesk/internal/generated/dto"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/pkg/middlewares/auth"
	"courierdesk/internal/service/order"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := restutil.PathID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.PostApiOrderIdStatusJSONRequestBody
	if err := restutil.DecodeJSON(r, &statusDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	update, err := toStatusUpdate(id, statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	view, err := h.service.UpdateStatus(r.Context(), principal, update)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrUndefinedStatus),
			errors.Is(err, order.ErrNegativeAmount),
			errors.Is(err, order.ErrInvalidCollectedBy),
			errors.Is(err, order.ErrInvalidPaymentSubType),
			errors.Is(err, order.ErrSubTypeRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderArchived):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, restutil.OrderToDTO(*view))
}

func toStatusUpdate(id int64, body dto.StatusUpdate) (entities.StatusUpdate, error) {
	deliveryFee, err := restutil.Money(body.DeliveryFee)
	if err != nil {
		return entities.StatusUpdate{}, err
	}
	partialPaid, err := restutil.Money(body.PartialPaidAmount)
	if err != nil {
		return entities.StatusUpdate{}, err
	}

	update := entities.StatusUpdate{
		OrderID:           id,
		Status:            entities.OrderStatusType(body.Status),
		DeliveryFee:       deliveryFee,
		PartialPaidAmount: partialPaid,
		Notes:             body.Notes,
		InternalComment:   body.InternalComment,
	}
	if body.CollectedBy != nil {
		v := entities.CollectedByType(*body.CollectedBy)
		update.CollectedBy = &v
	}
	if body.PaymentSubType != nil {
		v := entities.PaymentSubType(*body.PaymentSubType)
		update.PaymentSubType = &v
	}
	return update, nil
}

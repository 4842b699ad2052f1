package order_preview_post

import (
	"errors"
	"net/http"

	"courierdesk/internal/entities"
	"courierdesk/internal/generated/dto"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/pkg/middlewares/auth"
	"courierdesk/internal/service/order"

	"github.com/shopspring/decimal"
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

// ServeHTTP пустые суммы формы считаются нулем.
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

	var previewDTO dto.PostApiOrderIdPreviewJSONRequestBody
	if err := restutil.DecodeJSON(r, &previewDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryFee, err := restutil.Money(previewDTO.DeliveryFee)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	partialPaid, err := restutil.Money(previewDTO.PartialPaidAmount)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	input := entities.PreviewInput{
		Status:            entities.OrderStatusType(previewDTO.Status),
		DeliveryFee:       valueOrZero(deliveryFee),
		PartialPaidAmount: valueOrZero(partialPaid),
	}

	result, err := h.service.PreviewTotal(r.Context(), principal, id, input)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrUndefinedStatus),
			errors.Is(err, order.ErrNegativeAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, dto.PreviewResponse{
		Diverges:       result.Diverges,
		OrderId:        result.OrderID,
		PersistedTotal: result.PersistedTotal.StringFixed(2),
		PreviewTotal:   result.PreviewTotal.StringFixed(2),
	})
}

func valueOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

package order_put

import (
	"errors"
	"net/http"

	"courierdesk/internal/entities"
	"courierdesk/internal/generated/dto"
	"courierdesk/internal/handlers/rest/restutil"
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
	var orderUpdateDTO dto.PutApiOrderJSONRequestBody
	if err := restutil.DecodeJSON(r, &orderUpdateDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	totalOrderFees, err := restutil.Money(orderUpdateDTO.TotalOrderFees)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModify := entities.OrderModify{
		ID:              &orderUpdateDTO.Id,
		CustomerName:    orderUpdateDTO.CustomerName,
		Address:         orderUpdateDTO.Address,
		BillingCity:     orderUpdateDTO.BillingCity,
		MobileNumber:    orderUpdateDTO.MobileNumber,
		TotalOrderFees:  totalOrderFees,
		Notes:           orderUpdateDTO.Notes,
		InternalComment: orderUpdateDTO.InternalComment,
	}

	view, err := h.service.UpdateOrder(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrNothingToUpdate),
			errors.Is(err, order.ErrNegativeAmount),
			errors.Is(err, order.ErrReadOnlyField):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, restutil.OrderToDTO(*view))
}

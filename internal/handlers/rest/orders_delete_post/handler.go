package orders_delete_post

import (
	"errors"
	"net/http"

	"courierdesk/internal/generated/dto"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/service/dispatch"
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

// ServeHTTP 200 если все заказы удалены, 207 с разбивкой по элементам при частичном сбое.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var batchDTO dto.PostApiOrdersDeleteJSONRequestBody
	if err := restutil.DecodeJSON(r, &batchDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Delete(r.Context(), batchDTO.OrderIds)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrEmptySelection),
			errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrSelectionTooBig):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, restutil.BatchStatus(result), restutil.BatchToDTO(result))
}

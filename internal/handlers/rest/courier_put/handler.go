package courier_put

import (
	"errors"
	"net/http"

	"courierdesk/internal/entities"
	"courierdesk/internal/generated/dto"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/service/courier"
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
	var courierUpdateDTO dto.PutApiCourierJSONRequestBody
	if err := restutil.DecodeJSON(r, &courierUpdateDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		ID:    &courierUpdateDTO.Id,
		Name:  courierUpdateDTO.Name,
		Email: courierUpdateDTO.Email,
	}
	if courierUpdateDTO.Role != nil {
		role := entities.CourierRole(*courierUpdateDTO.Role)
		courierModifyEntity.Role = &role
	}

	res, err := h.service.UpdateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidEmail),
			errors.Is(err, courier.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, restutil.CourierToDTO(*res))
}

package courier_post

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
	var courierCreateDTO dto.PostApiCourierJSONRequestBody
	if err := restutil.DecodeJSON(r, &courierCreateDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		Name:  &courierCreateDTO.Name,
		Email: &courierCreateDTO.Email,
	}
	if courierCreateDTO.Role != nil {
		role := entities.CourierRole(*courierCreateDTO.Role)
		courierModifyEntity.Role = &role
	}

	id, err := h.service.CreateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidEmail),
			errors.Is(err, courier.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusCreated, dto.CourierCreateResponse{Id: id})
}

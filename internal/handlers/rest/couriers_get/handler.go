package couriers_get

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

// ServeHTTP ?role=courier|admin, без параметра все пользователи.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var role *entities.CourierRole
	if raw := r.URL.Query().Get("role"); raw != "" {
		v := entities.CourierRole(raw)
		role = &v
	}

	courierEntities, err := h.service.GetCouriers(r.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	courierDTOs := make([]dto.Courier, 0, len(courierEntities))
	for _, c := range courierEntities {
		courierDTOs = append(courierDTOs, restutil.CourierToDTO(c))
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, courierDTOs)
}

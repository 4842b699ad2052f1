package order_proofs_post

import (
	"errors"
	"io"
	"net/http"

	"courierdesk/internal/entities"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/pkg/middlewares/auth"
	"courierdesk/internal/service/proof"
	"courierdesk/pkg/logger"
)

const (
	FormField = "file"

	// запас на заголовки multipart сверх размера самого файла
	multipartOverhead = 64 << 10
	memoryLimit       = 8 << 20
)

type Handler struct {
	log            handlerLogger
	service        Service
	maxUploadBytes int64
}

func New(log handlerLogger, service Service, maxUploadBytes int64) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_proofs_post"))

	return &Handler{
		log:            handlerLog,
		service:        service,
		maxUploadBytes: maxUploadBytes,
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

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	}
	if err := r.ParseMultipartForm(memoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(FormField)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.UploadProof(r.Context(), principal, entities.ProofUpload{
		OrderID:  id,
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, proof.ErrInvalidOrderID),
			errors.Is(err, proof.ErrEmptyFile):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, proof.ErrFileTooLarge):
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		case errors.Is(err, proof.ErrUnsupportedContent):
			w.WriteHeader(http.StatusUnsupportedMediaType)
		case errors.Is(err, proof.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, proof.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, proof.ErrUploadFailed):
			h.log.With(
				logger.NewField("order_id", id),
				logger.NewField("error", err),
			).Error("proof upload failed")
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusCreated, restutil.ProofToDTO(*res))
}

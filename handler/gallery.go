package handler

import (
	"net/http"

	"go.uber.org/zap"

	gymapi "github.com/ethiofit/gym-api"
)

type GalleryHandler struct {
	service gymapi.GalleryService
	log     *zap.SugaredLogger
}

func NewGalleryHandler(service gymapi.GalleryService, log *zap.SugaredLogger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		log:     log,
	}
}

type listGalleryResponse struct {
	Success bool                  `json:"success"`
	Data    []gymapi.GalleryImage `json:"data"`
}

func (gh GalleryHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	images, err := gh.service.List(ctx)
	if err != nil {
		gh.log.Errorw("List", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, errInternal)
		return
	}

	respond(ctx, rw, http.StatusOK, listGalleryResponse{
		Success: true,
		Data:    images,
	})
}

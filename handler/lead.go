package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	gymapi "github.com/ethiofit/gym-api"
)

type LeadHandler struct {
	service gymapi.LeadService
	log     *zap.SugaredLogger
}

func NewLeadHandler(service gymapi.LeadService, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{
		service: service,
		log:     log,
	}
}

type createLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Program string `json:"program"`
}

type createLeadResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    gymapi.Lead `json:"data"`
}

type listLeadsResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []gymapi.Lead `json:"data"`
}

type deleteLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create is the public contact-form intake. Name, email, and phone are
// required; program falls back to the default when left blank.
func (lh LeadHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createLeadRequest
	if err := decode(r, &req); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Program = strings.TrimSpace(req.Program)

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("Required fields missing"))
		return
	}
	if req.Program == "" {
		req.Program = gymapi.DefaultProgram
	}

	lead := gymapi.Lead{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Program:   req.Program,
		CreatedAt: time.Now().UTC(),
	}

	if err := lh.service.Create(ctx, lead); err != nil {
		lh.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, errInternal)
		return
	}

	respond(ctx, rw, http.StatusCreated, createLeadResponse{
		Success: true,
		Message: "Welcome to the forge. We'll contact you soon.",
		Data:    lead,
	})
}

// List returns every lead, newest first. Authenticate runs upstream.
func (lh LeadHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if accountID, ok := AccountID(ctx); ok {
		lh.log.Infow("List", "account", accountID)
	}

	leads, err := lh.service.List(ctx)
	if err != nil {
		lh.log.Errorw("List", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, errInternal)
		return
	}

	respond(ctx, rw, http.StatusOK, listLeadsResponse{
		Success: true,
		Count:   len(leads),
		Data:    leads,
	})
}

// Delete removes a lead permanently. An id that does not parse is treated
// the same as one that was never stored.
func (lh LeadHandler) Delete(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(ctx, rw, http.StatusNotFound, errors.New("Lead not found"))
		return
	}

	if err := lh.service.Delete(ctx, id.String()); err != nil {
		switch {
		case errors.Is(err, gymapi.ErrLeadNotFound):
			respondErr(ctx, rw, http.StatusNotFound, errors.New("Lead not found"))
		default:
			lh.log.Errorw("Delete", "error", err.Error())
			respondErr(ctx, rw, http.StatusInternalServerError, errInternal)
		}
		return
	}

	respond(ctx, rw, http.StatusOK, deleteLeadResponse{
		Success: true,
		Message: "Lead permanently removed",
	})
}

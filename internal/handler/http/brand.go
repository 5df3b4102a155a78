package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Fylinde/brand-service/internal/repository"
	"github.com/Fylinde/brand-service/internal/service"
	"github.com/Fylinde/brand-service/pkg/httputil"
	"github.com/Fylinde/brand-service/pkg/pagination"
	"github.com/Fylinde/brand-service/pkg/validator"
)

// BrandHandler handles HTTP requests for brand endpoints.
type BrandHandler struct {
	service      *service.BrandService
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
}

// NewBrandHandler creates a new brand HTTP handler.
func NewBrandHandler(svc *service.BrandService, logger *slog.Logger, defaultLimit, maxLimit int) *BrandHandler {
	return &BrandHandler{
		service:      svc,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// --- Request DTOs ---

// CreateBrandRequest is the JSON request body for creating a brand.
type CreateBrandRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// UpdateBrandRequest is the JSON request body for a partial brand update.
// Activation state is not part of it; use the activate and deactivate
// endpoints instead.
type UpdateBrandRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// --- Handlers ---

// CreateBrand handles POST /api/v1/brands
func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	var req CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	brand, err := h.service.CreateBrand(r.Context(), &service.CreateBrandInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: brand})
}

// ListBrands handles GET /api/v1/brands
func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r, h.defaultLimit, h.maxLimit)

	filter := repository.BrandFilter{
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	if v := r.URL.Query().Get("status"); v != "" {
		status, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "status must be true or false"},
			})
			return
		}
		filter.Status = &status
	}

	brands, total, err := h.service.ListBrands(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(brands, total, params))
}

// GetBrand handles GET /api/v1/brands/{id}
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	brand, err := h.service.GetBrand(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brand})
}

// UpdateBrand handles PUT /api/v1/brands/{id}
func (h *BrandHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req UpdateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	brand, err := h.service.UpdateBrand(r.Context(), id, &service.UpdateBrandInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brand})
}

// DeleteBrand handles DELETE /api/v1/brands/{id}
func (h *BrandHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteBrand(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ActivateBrand handles POST /api/v1/brands/{id}/activate
func (h *BrandHandler) ActivateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	brand, err := h.service.ActivateBrand(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brand})
}

// DeactivateBrand handles POST /api/v1/brands/{id}/deactivate
func (h *BrandHandler) DeactivateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	brand, err := h.service.DeactivateBrand(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brand})
}

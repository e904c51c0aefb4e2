//internal/profile/handlers.go

package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

// Handler handles profile-related HTTP requests
type Handler struct {
	service   Service
	validator *validator.Validate
}

// NewHandler creates a new profile handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// GetMyProfile handles getting the calling partner's profile
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id.CoupleID, id.PartnerID)
	if err != nil {
		h.writeError(w, err, "Failed to get profile")
		return
	}

	utils.SuccessResponse(w, profile, http.StatusOK)
}

// GetPartnerProfile handles getting a profile by id within the caller's couple
func (h *Handler) GetPartnerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id.CoupleID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err, "Failed to get profile")
		return
	}

	utils.SuccessResponse(w, profile, http.StatusOK)
}

// GetCouple returns both partners
func (h *Handler) GetCouple(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	pair, err := h.service.GetCouple(r.Context(), id.CoupleID)
	if err != nil {
		h.writeError(w, err, "Failed to get couple")
		return
	}

	utils.SuccessResponse(w, []*Profile{pair.A, pair.B}, http.StatusOK)
}

// CreateProfile stores the caller's onboarding profile
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	p.ID = id.PartnerID
	p.CoupleID = id.CoupleID

	profile, err := h.service.CreateProfile(r.Context(), &p)
	if err != nil {
		h.writeError(w, err, "Failed to create profile")
		return
	}

	utils.SuccessResponse(w, profile, http.StatusCreated)
}

// UpdateProfile handles settings edits
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), id.CoupleID, id.PartnerID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update profile")
		return
	}

	utils.SuccessResponse(w, profile, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		utils.ErrorResponse(w, "Profile not found", http.StatusNotFound)
	case errors.Is(err, ErrUnauthorized):
		utils.ErrorResponse(w, "Profile belongs to another couple", http.StatusForbidden)
	case errors.Is(err, ErrInsufficientProfileData):
		utils.ErrorResponse(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		utils.ErrorResponse(w, fallback, http.StatusInternalServerError)
	}
}

package dating

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetSuggestions returns the top-N diverse date ideas
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	set, err := h.service.Suggest(r.Context(), id.CoupleID)
	if err != nil {
		writeError(w, err, "Failed to generate suggestions")
		return
	}

	utils.SuccessResponse(w, set, http.StatusOK)
}

// Surprise draws one weighted-random date and reveals it to both partners
func (h *Handler) Surprise(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	set, err := h.service.Surprise(r.Context(), id.CoupleID)
	if err != nil {
		writeError(w, err, "Failed to draw a surprise date")
		return
	}

	utils.SuccessResponse(w, set, http.StatusOK)
}

// GetRanked lists every compatible date by score
func (h *Handler) GetRanked(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	params := RankedParams{}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil {
			utils.ErrorResponse(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		params.Limit = l
	}
	if err := utils.ValidateStruct(params); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	ranked, err := h.service.Ranked(r.Context(), id.CoupleID)
	if err != nil {
		writeError(w, err, "Failed to rank dates")
		return
	}
	if params.Limit > 0 && len(ranked) > params.Limit {
		ranked = ranked[:params.Limit]
	}

	utils.SuccessResponse(w, RankedResponse{Count: len(ranked), Suggestions: ranked}, http.StatusOK)
}

// Explain shows the filter and both scores for one template
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	explanation, err := h.service.Explain(r.Context(), id.CoupleID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to explain date")
		return
	}

	utils.SuccessResponse(w, explanation, http.StatusOK)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, profile.ErrInsufficientProfileData):
		utils.ErrorResponse(w, "Both partners need a complete profile before we can suggest dates", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrUnknownItem):
		utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
	default:
		utils.ErrorResponse(w, fallback, http.StatusInternalServerError)
	}
}

package gifts

import (
	"errors"
	"net/http"

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

// GetSuggestions returns top gift ideas for ?receiver= (default: the caller's partner)
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	set, err := h.service.Suggest(r.Context(), id.CoupleID, id.PartnerID, r.URL.Query().Get("receiver"))
	if err != nil {
		writeError(w, err, "Failed to suggest gifts")
		return
	}

	utils.SuccessResponse(w, set, http.StatusOK)
}

func (h *Handler) Surprise(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	set, err := h.service.Surprise(r.Context(), id.CoupleID, id.PartnerID, r.URL.Query().Get("receiver"))
	if err != nil {
		writeError(w, err, "Failed to draw a surprise gift")
		return
	}

	utils.SuccessResponse(w, set, http.StatusOK)
}

func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	match, err := h.service.Explain(r.Context(), id.CoupleID, id.PartnerID, r.URL.Query().Get("receiver"), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to explain gift")
		return
	}

	utils.SuccessResponse(w, match, http.StatusOK)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, profile.ErrInsufficientProfileData):
		utils.ErrorResponse(w, "Both partners need a complete profile before we can suggest gifts", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrUnknownReceiver):
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnknownGift):
		utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
	default:
		utils.ErrorResponse(w, fallback, http.StatusInternalServerError)
	}
}

package history

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

// Handler exposes the couple's completion history
type Handler struct {
	store    Store
	lookback int
}

// NewHandler creates a history handler
func NewHandler(store Store, lookback int) *Handler {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &Handler{store: store, lookback: lookback}
}

// RecordRequest marks a catalog item as completed
type RecordRequest struct {
	ItemID string `json:"item_id" validate:"required,max=100"`
}

// Record handles POST /history/{kind}
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	kind, err := ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.Record(r.Context(), id.CoupleID, kind, req.ItemID); err != nil {
		utils.ErrorResponse(w, "Failed to record completion", http.StatusInternalServerError)
		return
	}

	utils.MessageResponse(w, "Completion recorded", http.StatusCreated)
}

// List handles GET /history/{kind}
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	kind, err := ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	ids, err := h.store.Recent(r.Context(), id.CoupleID, kind, h.lookback)
	if err != nil {
		utils.ErrorResponse(w, "Failed to load history", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	utils.SuccessResponse(w, ids, http.StatusOK)
}

// RegisterRoutes registers the history routes
func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/history").Subrouter()
	api.Use(authMiddleware.Authenticate)
	api.MethodNotAllowedHandler = http.HandlerFunc(utils.MethodNotAllowed)

	api.HandleFunc("/{kind}", handler.Record).Methods("POST")
	api.HandleFunc("/{kind}", handler.List).Methods("GET")
}

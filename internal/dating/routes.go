package dating

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

func RegisterRoutes(router *mux.Router, handler *Handler, hub *Hub, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)
	api.MethodNotAllowedHandler = http.HandlerFunc(utils.MethodNotAllowed)

	// Date ideas
	api.HandleFunc("/dates/suggestions", handler.GetSuggestions).Methods("GET")
	api.HandleFunc("/dates/surprise", handler.Surprise).Methods("POST")
	api.HandleFunc("/dates/ranked", handler.GetRanked).Methods("GET")
	api.HandleFunc("/dates/{id}/explain", handler.Explain).Methods("GET")

	// Live reveals
	if hub != nil {
		api.HandleFunc("/ws", hub.ServeWS).Methods("GET")
	}
}

package gifts

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/gifts").Subrouter()
	api.Use(authMiddleware.Authenticate)
	api.MethodNotAllowedHandler = http.HandlerFunc(utils.MethodNotAllowed)

	api.HandleFunc("", handler.GetSuggestions).Methods("GET")
	api.HandleFunc("/surprise", handler.Surprise).Methods("POST")
	api.HandleFunc("/{id}/explain", handler.Explain).Methods("GET")
}

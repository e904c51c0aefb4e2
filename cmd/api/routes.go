package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
	"github.com/imadgeboyega/kiekky-couples/internal/config"
	"github.com/imadgeboyega/kiekky-couples/internal/dating"
	"github.com/imadgeboyega/kiekky-couples/internal/gifts"
	"github.com/imadgeboyega/kiekky-couples/internal/history"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

var startTime = time.Now()

type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	auth    *auth.Middleware
	profile *profile.Handler
	dating  *dating.Handler
	gifts   *gifts.Handler
	history *history.Handler
	hub     *dating.Hub
}

// routes builds the HTTP handler. Profile routes live on chi; everything
// chi does not know falls through to the mux router.
func (app *application) routes() http.Handler {
	router := mux.NewRouter()
	router.MethodNotAllowedHandler = http.HandlerFunc(utils.MethodNotAllowed)
	router.HandleFunc("/health", healthCheck).Methods("GET")
	if app.cfg.EnableMetrics {
		router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	gifts.RegisterRoutes(router, app.gifts, app.auth)
	history.RegisterRoutes(router, app.history, app.auth)
	dating.RegisterRoutes(router, app.dating, app.hub, app.auth)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(app.logRequests)
	r.Use(corsMiddleware)

	profile.RegisterRoutes(r, app.profile, app.auth)
	r.NotFound(router.ServeHTTP)

	return r
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}, http.StatusOK)
}

// logRequests logs every request with its status and duration
func (app *application) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		app.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

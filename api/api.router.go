package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itsatony/w4b_v3/server/telemetry/api/middleware"
	"github.com/itsatony/w4b_v3/server/telemetry/api/resources"
)

type Router struct {
	router    *mux.Router
	auth      *middleware.AuthMiddleware
	resources *resources.Resources
}

func NewRouter(res *resources.Resources, auth *middleware.AuthMiddleware) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		auth:      auth,
		resources: res,
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// Public routes
	if r.resources.HealthCheck != nil {
		r.router.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)
	}
	if r.resources.Metrics != nil {
		r.router.Handle("/metrics", r.resources.Metrics).Methods(http.MethodGet)
	}
	r.router.HandleFunc("/swagger/doc.json", serveSwaggerDoc).Methods(http.MethodGet)

	// Protected routes
	protected := r.router.PathPrefix("").Subrouter()
	protected.Use(r.auth.Authenticate)

	// Ingest
	protected.HandleFunc("/iot/v1/metrics", r.resources.Ingest.PostMetrics).Methods(http.MethodPost)
	protected.HandleFunc("/metric", r.resources.Ingest.PostLegacyMetric).Methods(http.MethodPost)
	protected.HandleFunc("/entrance/v1/movement", r.resources.Ingest.PostMovement).Methods(http.MethodPost)
	protected.HandleFunc("/population/v1/metrics", r.resources.Ingest.PostPopulation).Methods(http.MethodPost)

	// Hives
	hives := protected.PathPrefix("/api/v1/hives/{hiveId}").Subrouter()
	hives.HandleFunc("/series/{field}", r.resources.Hives.GetSeries).Methods(http.MethodGet)
	hives.HandleFunc("/movement/today", r.resources.Hives.GetMovementToday).Methods(http.MethodGet)
	hives.HandleFunc("/movement", r.resources.Hives.GetMovementRange).Methods(http.MethodGet)
	hives.HandleFunc("/weight", r.resources.Hives.GetWeightTrend).Methods(http.MethodGet)
	hives.HandleFunc("/population", r.resources.Hives.GetPopulation).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

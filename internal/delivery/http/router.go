package http

import (
	"net/http"

	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

const PreflightRouteName = "preflight"

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	sessionHandler    *handler.SessionHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	metricsHandler    http.Handler
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	sessionHandler *handler.SessionHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		sessionHandler:    sessionHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		metricsHandler:    metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	// CORS preflight for every path. Router middleware only runs on a
	// matched route, and a method mismatch inside the subrouter ends
	// matching, so OPTIONS is routed before anything else.
	r.router.Methods(http.MethodOptions).HandlerFunc(r.preflight).Name(PreflightRouteName)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory
	api.HandleFunc("/doctors", r.doctorHandler.BrowseDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.SuggestDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	// Browse sessions
	api.HandleFunc("/sessions", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", r.sessionHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/location", r.sessionHandler.NavigateSession).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/events", r.sessionHandler.DispatchEvent).Methods(http.MethodPost)

	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) preflight(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

package http

import (
	"net/http"

	"mdent-api/internal/delivery/http/handler"
	"mdent-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	healthHandler      *handler.HealthHandler
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	rateLimiter        *middleware.RateLimiter
	log                *logrus.Logger
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimiter *middleware.RateLimiter,
	log *logrus.Logger,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		healthHandler:      healthHandler,
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		rateLimiter:        rateLimiter,
		log:                log,
	}
}

// Setup wires the pipeline: rate limit → logging → CORS → (auth → role) →
// handler. Probes sit outside auth.
func (r *Router) Setup() *mux.Router {
	r.router.Use(r.rateLimiter.Limit)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	// Liveness and readiness
	r.router.HandleFunc("/", r.healthHandler.Root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)
	r.router.HandleFunc("/live", r.healthHandler.Live).Methods(http.MethodGet)
	r.router.HandleFunc("/ready", r.healthHandler.Ready).Methods(http.MethodGet)

	// Auth (public)
	r.router.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// One-time provisioning, secret-gated inside the handler
	r.router.HandleFunc("/seed/once", r.authHandler.SeedOnce).Methods(http.MethodPost)

	// Authenticated routes
	authed := r.router.NewRoute().Subrouter()
	authed.Use(r.authMiddleware.Authenticate)
	authed.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	authed.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	authed.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	authed.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	authed.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPatch)
	authed.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)

	// Deletion restricted to admin and front desk
	authed.Handle("/patients/{id}",
		middleware.RequireStaff(r.log)(http.HandlerFunc(r.patientHandler.DeletePatient)),
	).Methods(http.MethodDelete)

	return r.router
}

package http

import (
	"net/http"

	"clinic-booking-api/internal/delivery/http/handler"
	"clinic-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	bookingHandler      *handler.BookingHandler
	agendaHandler       *handler.AgendaHandler
	locationHandler     *handler.LocationHandler
	settingsHandler     *handler.SettingsHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	agendaHandler *handler.AgendaHandler,
	locationHandler *handler.LocationHandler,
	settingsHandler *handler.SettingsHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		bookingHandler:      bookingHandler,
		agendaHandler:       agendaHandler,
		locationHandler:     locationHandler,
		settingsHandler:     settingsHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public booking flow
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/procedures", r.bookingHandler.ListProcedures).Methods(http.MethodGet)
	api.HandleFunc("/locations/open", r.locationHandler.GetOpenLocations).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Staff dashboard (protected - admin or receptionist)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireStaff)

	// Agenda and payments
	admin.HandleFunc("/agenda", r.agendaHandler.GetAgenda).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/payment", r.agendaHandler.UpdatePayment).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/cancel", r.agendaHandler.CancelAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/sessions", r.agendaHandler.ScheduleNextSession).Methods(http.MethodPost)

	// Notifications
	admin.HandleFunc("/notifications/send", r.notificationHandler.Send).Methods(http.MethodPost)

	// Location management
	admin.HandleFunc("/locations", r.locationHandler.ListLocations).Methods(http.MethodGet)

	// Admin-only configuration
	adminOnly := api.PathPrefix("/admin").Subrouter()
	adminOnly.Use(r.authMiddleware.Authenticate)
	adminOnly.Use(middleware.RequireAdmin)
	adminOnly.HandleFunc("/locations/{id}/periods", r.locationHandler.ReplacePeriods).Methods(http.MethodPut)
	adminOnly.HandleFunc("/settings/calendar", r.settingsHandler.GetCalendarSettings).Methods(http.MethodGet)
	adminOnly.HandleFunc("/settings/calendar/timezone", r.settingsHandler.UpdateTimeZone).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

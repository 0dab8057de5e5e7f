package http

import (
	"net/http"

	"repairhub/internal/delivery/http/handler"
	"repairhub/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	bookingHandler      *handler.BookingHandler
	adminHandler        *handler.AdminBookingHandler
	engineerHandler     *handler.EngineerBookingHandler
	paymentHandler      *handler.PaymentHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	adminHandler *handler.AdminBookingHandler,
	engineerHandler *handler.EngineerBookingHandler,
	paymentHandler *handler.PaymentHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		bookingHandler:      bookingHandler,
		adminHandler:        adminHandler,
		engineerHandler:     engineerHandler,
		paymentHandler:      paymentHandler,
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

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Customer routes
	customer := api.PathPrefix("/bookings").Subrouter()
	customer.Use(r.authMiddleware.Authenticate)
	customer.Use(middleware.RequireCustomer)
	customer.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	customer.HandleFunc("", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	customer.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	customer.HandleFunc("/{id}/history", r.bookingHandler.GetBookingHistory).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/engineers", r.authHandler.RegisterEngineer).Methods(http.MethodPost)
	admin.HandleFunc("/engineers", r.adminHandler.GetEngineers).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", r.adminHandler.GetAllBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.adminHandler.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/history", r.adminHandler.GetBookingHistory).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/confirm", r.adminHandler.ConfirmBooking).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/assign", r.adminHandler.AssignEngineer).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/cancel", r.adminHandler.CancelBooking).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/payments", r.paymentHandler.RecordPayment).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/payments", r.paymentHandler.GetPayments).Methods(http.MethodGet)

	// Engineer routes
	engineer := api.PathPrefix("/engineer").Subrouter()
	engineer.Use(r.authMiddleware.Authenticate)
	engineer.Use(middleware.RequireEngineer)
	engineer.HandleFunc("/tasks", r.engineerHandler.GetAssignedBookings).Methods(http.MethodGet)
	engineer.HandleFunc("/tasks/{id}/accept", r.engineerHandler.AcceptTask).Methods(http.MethodPost)
	engineer.HandleFunc("/tasks/{id}/reject", r.engineerHandler.RejectTask).Methods(http.MethodPost)
	engineer.HandleFunc("/tasks/{id}/start", r.engineerHandler.StartWork).Methods(http.MethodPost)
	engineer.HandleFunc("/tasks/{id}/resume", r.engineerHandler.ResumeWork).Methods(http.MethodPost)
	engineer.HandleFunc("/tasks/{id}/hold", r.engineerHandler.HoldWork).Methods(http.MethodPost)
	engineer.HandleFunc("/tasks/{id}/unable", r.engineerHandler.UnableToComplete).Methods(http.MethodPost)
	engineer.HandleFunc("/tasks/{id}/complete", r.engineerHandler.CompleteWork).Methods(http.MethodPost)
	engineer.HandleFunc("/tasks/{id}/report", r.engineerHandler.SaveReportDraft).Methods(http.MethodPut)
	engineer.HandleFunc("/tasks/{id}/payments", r.paymentHandler.RecordPayment).Methods(http.MethodPost)

	// Notification routes (any authenticated user)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

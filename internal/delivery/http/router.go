package http

import (
	"net/http"

	"hostelhub/internal/delivery/http/handler"
	"hostelhub/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	hostelHandler      *handler.HostelHandler
	roomHandler        *handler.RoomHandler
	bedHandler         *handler.BedHandler
	bookingHandler     *handler.BookingHandler
	studentHandler     *handler.StudentHandler
	paymentHandler     *handler.PaymentHandler
	maintenanceHandler *handler.MaintenanceHandler
	reviewHandler      *handler.ReviewHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	hostelHandler *handler.HostelHandler,
	roomHandler *handler.RoomHandler,
	bedHandler *handler.BedHandler,
	bookingHandler *handler.BookingHandler,
	studentHandler *handler.StudentHandler,
	paymentHandler *handler.PaymentHandler,
	maintenanceHandler *handler.MaintenanceHandler,
	reviewHandler *handler.ReviewHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		hostelHandler:      hostelHandler,
		roomHandler:        roomHandler,
		bedHandler:         bedHandler,
		bookingHandler:     bookingHandler,
		studentHandler:     studentHandler,
		paymentHandler:     paymentHandler,
		maintenanceHandler: maintenanceHandler,
		reviewHandler:      reviewHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
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
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public browse routes
	api.HandleFunc("/hostels", r.hostelHandler.ListHostels).Methods(http.MethodGet)
	api.HandleFunc("/hostels/{id}", r.hostelHandler.GetHostel).Methods(http.MethodGet)
	api.HandleFunc("/hostels/{hostelId}/rooms", r.roomHandler.ListRoomsByHostel).Methods(http.MethodGet)
	api.HandleFunc("/hostels/{hostelId}/beds/available", r.bedHandler.ListAvailableBeds).Methods(http.MethodGet)
	api.HandleFunc("/hostels/{hostelId}/reviews", r.reviewHandler.ListReviewsByHostel).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", r.roomHandler.GetRoom).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Hostel management (owner or admin)
	manage := protected.NewRoute().Subrouter()
	manage.Use(middleware.RequireManager)
	manage.HandleFunc("/hostels", r.hostelHandler.CreateHostel).Methods(http.MethodPost)
	manage.HandleFunc("/hostels/mine", r.hostelHandler.ListMyHostels).Methods(http.MethodGet)
	manage.HandleFunc("/hostels/{id}", r.hostelHandler.UpdateHostel).Methods(http.MethodPut)
	manage.HandleFunc("/hostels/{id}", r.hostelHandler.DeleteHostel).Methods(http.MethodDelete)

	// Room management
	manage.HandleFunc("/rooms", r.roomHandler.CreateRoom).Methods(http.MethodPost)
	manage.HandleFunc("/rooms/{id}", r.roomHandler.UpdateRoom).Methods(http.MethodPut)
	manage.HandleFunc("/rooms/{id}", r.roomHandler.DeleteRoom).Methods(http.MethodDelete)

	// Bed inventory
	manage.HandleFunc("/rooms/{roomId}/beds", r.bedHandler.AddBed).Methods(http.MethodPost)
	manage.HandleFunc("/rooms/{roomId}/beds", r.bedHandler.BulkUpdateBeds).Methods(http.MethodPatch)
	manage.HandleFunc("/rooms/{roomId}/beds/swap", r.bedHandler.SwapBeds).Methods(http.MethodPost)
	manage.HandleFunc("/rooms/{roomId}/beds/{bedNumber}", r.bedHandler.UpdateBed).Methods(http.MethodPut)
	manage.HandleFunc("/rooms/{roomId}/beds/{bedNumber}", r.bedHandler.RemoveBed).Methods(http.MethodDelete)
	manage.HandleFunc("/rooms/{roomId}/beds/{bedNumber}/maintenance", r.bedHandler.SetMaintenance).Methods(http.MethodPost)
	manage.HandleFunc("/rooms/{roomId}/beds/{bedNumber}/reserve", r.bedHandler.ReserveBed).Methods(http.MethodPost)
	manage.HandleFunc("/rooms/{roomId}/beds/{bedNumber}/reserve", r.bedHandler.CancelReservation).Methods(http.MethodDelete)
	manage.HandleFunc("/rooms/{roomId}/beds/{bedNumber}/assign", r.bedHandler.AssignBed).Methods(http.MethodPost)
	manage.HandleFunc("/rooms/{roomId}/beds/{bedNumber}/vacate", r.bedHandler.VacateBed).Methods(http.MethodPost)

	// Booking lifecycle
	protected.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/stats", r.bookingHandler.GetBookingStats).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/documents", r.bookingHandler.AddDocument).Methods(http.MethodPost)
	manage.HandleFunc("/bookings/{id}/confirm", r.bookingHandler.ConfirmBooking).Methods(http.MethodPost)
	manage.HandleFunc("/bookings/{id}/check-in", r.bookingHandler.CheckIn).Methods(http.MethodPost)
	manage.HandleFunc("/bookings/{id}/check-out", r.bookingHandler.CheckOut).Methods(http.MethodPost)
	manage.HandleFunc("/bookings/{id}/complete", r.bookingHandler.CompleteBooking).Methods(http.MethodPost)
	manage.HandleFunc("/bookings/{id}/no-show", r.bookingHandler.MarkNoShow).Methods(http.MethodPost)

	// Booking deletion (admin only)
	admin := protected.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/bookings/{id}", r.bookingHandler.DeleteBooking).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Students
	protected.HandleFunc("/students/{id}", r.studentHandler.GetStudent).Methods(http.MethodGet)
	manage.HandleFunc("/hostels/{hostelId}/students", r.studentHandler.ListStudentsByHostel).Methods(http.MethodGet)
	manage.HandleFunc("/students/{id}/check-out", r.studentHandler.CheckOutStudent).Methods(http.MethodPost)

	// Payments
	manage.HandleFunc("/payments", r.paymentHandler.CreatePayment).Methods(http.MethodPost)
	manage.HandleFunc("/payments/{id}/record", r.paymentHandler.RecordPayment).Methods(http.MethodPost)
	manage.HandleFunc("/hostels/{hostelId}/payments", r.paymentHandler.ListPaymentsByHostel).Methods(http.MethodGet)
	protected.HandleFunc("/payments/mine", r.paymentHandler.ListMyPayments).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{id}", r.paymentHandler.GetPayment).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/payments", r.paymentHandler.ListPaymentsByBooking).Methods(http.MethodGet)

	// Maintenance tickets
	protected.HandleFunc("/tickets", r.maintenanceHandler.CreateTicket).Methods(http.MethodPost)
	protected.HandleFunc("/tickets/{id}", r.maintenanceHandler.GetTicket).Methods(http.MethodGet)
	manage.HandleFunc("/hostels/{hostelId}/tickets", r.maintenanceHandler.ListTicketsByHostel).Methods(http.MethodGet)
	manage.HandleFunc("/tickets/{id}", r.maintenanceHandler.UpdateTicket).Methods(http.MethodPut)
	manage.HandleFunc("/tickets/{id}", r.maintenanceHandler.DeleteTicket).Methods(http.MethodDelete)

	// Reviews
	protected.HandleFunc("/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.With(app.requireAuthentication).Get("/users/me", app.GetCurrentUser)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.Get("/{movieId}", app.GetMovie)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateMovie)
	})

	r.Route("/theaters", func(r chi.Router) {
		r.Get("/", app.ListTheaters)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateTheater)
	})

	r.Get("/cinemas/{cinemaId}", app.GetCinema)

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/", app.ListShowtimes)
		r.Get("/{showtimeId}", app.GetShowtime)
		r.Get("/{showtimeId}/seats", app.GetShowtimeSeats)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateShowtime)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/", app.CreateBooking)
		r.Get("/", app.ListBookings)
		r.Get("/{bookingId}", app.GetBooking)
		r.Get("/user/{userId}", app.ListUserBookings)
		r.Put("/{bookingId}/confirm-payment", app.ConfirmBookingPayment)
		r.Put("/{bookingId}/cancel", app.CancelBooking)
		r.Delete("/{bookingId}", app.CancelBooking)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/", app.CreatePayment)
		r.Get("/{paymentId}", app.GetPayment)
		r.Post("/{paymentId}/process", app.ProcessPayment)
		r.Put("/{paymentId}/cancel", app.CancelPayment)
	})

	r.Route("/points-transactions", func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/", app.ListPointsTransactions)
		r.Get("/user/{userId}/summary", app.GetUserPointsSummary)
		r.Post("/earn", app.EarnPoints)
		r.Post("/redeem", app.RedeemPoints)
		r.Post("/{transactionId}/void", app.VoidPointsTransaction)
	})

	return r
}

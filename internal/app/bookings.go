package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/api"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	booking, err := app.bookingWorkflow.Create(r.Context(), userId, input.ShowtimeId, input.SeatIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrPastShowtime),
			errors.Is(err, domain.ErrNoSeatsSelected),
			errors.Is(err, domain.ErrInvalidSeats):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatAlreadyBooked):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListBookings(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId, err := app.readIntQuery(r, "userId", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.BookingFilters{
		Pagination: domain.Pagination{Page: page, PageSize: pageSize},
		UserID:     userId,
	}

	if status := r.URL.Query().Get("status"); status != "" {
		switch domain.BookingStatus(status) {
		case domain.BookingStatusPending, domain.BookingStatusComplete, domain.BookingStatusCancelled:
			filters.Status = domain.BookingStatus(status)
		default:
			app.badRequestResponse(w, r, fmt.Errorf("invalid status parameter: %s", status))
			return
		}
	}

	app.listBookings(w, r, filters)
}

func (app *Application) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	userId, err := app.readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	page, pageSize, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.BookingFilters{
		Pagination: domain.Pagination{Page: page, PageSize: pageSize},
		UserID:     userId,
	}

	app.listBookings(w, r, filters)
}

func (app *Application) listBookings(w http.ResponseWriter, r *http.Request, filters domain.BookingFilters) {
	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.BookingDetailResponse, len(bookings))
	for i := range bookings {
		responses[i] = toBookingDetailResponse(&bookings[i])
	}

	resp := api.BookingListResponse{
		Bookings: responses,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.bookingRepo.GetDetailById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("booking not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingDetailResponse(detail), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ConfirmBookingPayment(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingWorkflow.ConfirmPayment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrBookingNotPending):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.sendBookingConfirmation(r.Context(), booking.ID)

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingWorkflow.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrShowtimeStarted),
			errors.Is(err, domain.ErrBookingCompleted):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendBookingConfirmation emails the booking receipt after a completed
// payment. Failures are logged, never surfaced to the client.
func (app *Application) sendBookingConfirmation(ctx context.Context, bookingID int) {
	app.background(func() {
		detachedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()

		detail, err := app.bookingRepo.GetDetailById(detachedCtx, bookingID)
		if err != nil {
			app.logger.Error("failed to load booking for confirmation email", "error", err, "bookingId", bookingID)
			return
		}

		seatNumbers := make([]string, len(detail.Seats))
		for i, seat := range detail.Seats {
			seatNumbers[i] = seat.SeatNumber
		}

		data := map[string]any{
			"UserName":     detail.UserName,
			"BookingID":    detail.ID,
			"MovieTitle":   detail.MovieTitle,
			"TheaterName":  detail.TheaterName,
			"ShowtimeTime": detail.ShowtimeTime.Format("Jan 2, 2006 15:04"),
			"Seats":        strings.Join(seatNumbers, ", "),
			"TotalPrice":   detail.TotalPrice.String(),
			"PointsEarned": detail.PointsEarned(),
		}

		err = app.mailer.Send(detail.UserEmail, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation email", "error", err, "bookingId", bookingID)
		}
	})
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	seats := make([]api.BookingSeatResponse, len(booking.Seats))
	for i, seat := range booking.Seats {
		seats[i] = api.BookingSeatResponse{
			SeatId:     seat.SeatID,
			SeatNumber: seat.SeatNumber,
			Status:     string(seat.Status),
		}
	}

	return api.BookingResponse{
		Id:            booking.ID,
		UserId:        booking.UserID,
		ShowtimeId:    booking.ShowtimeID,
		TotalPrice:    booking.TotalPrice.String(),
		PaymentStatus: string(booking.PaymentStatus),
		Seats:         seats,
		CreatedAt:     booking.CreatedAt,
	}
}

func toBookingDetailResponse(detail *domain.BookingDetail) api.BookingDetailResponse {
	resp := api.BookingDetailResponse{
		BookingResponse: toBookingResponse(&detail.Booking),
		UserName:        detail.UserName,
		UserEmail:       detail.UserEmail,
		MovieTitle:      detail.MovieTitle,
		TheaterName:     detail.TheaterName,
		CinemaType:      string(detail.CinemaType),
		ShowtimeTime:    detail.ShowtimeTime,
	}

	if detail.Payment != nil {
		payment := toPaymentResponse(detail.Payment)
		resp.Payment = &payment
	}

	return resp
}

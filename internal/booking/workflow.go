// Package booking implements the booking lifecycle: create a pending booking
// holding seats, complete it on payment confirmation (awarding loyalty
// points), or cancel it and release the seats. All multi-row effects run in a
// single database transaction behind the repository ports.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/shopspring/decimal"
)

// Workflow owns the booking state machine. It depends on read ports for the
// catalog and user store and on the booking repository's atomic write
// operations; it never talks to the database directly.
type Workflow struct {
	users     domain.UserRepository
	showtimes domain.ShowtimeRepository
	seats     domain.SeatRepository
	bookings  domain.BookingRepository

	now func() time.Time
}

func NewWorkflow(
	users domain.UserRepository,
	showtimes domain.ShowtimeRepository,
	seats domain.SeatRepository,
	bookings domain.BookingRepository) *Workflow {

	return &Workflow{
		users:     users,
		showtimes: showtimes,
		seats:     seats,
		bookings:  bookings,
		now:       time.Now,
	}
}

// Create reserves the given seats for the user on the showtime and returns a
// pending booking. The checks run in a fixed order, each failing fast before
// anything is written:
//
//  1. the user must exist
//  2. the showtime must exist and start in the future
//  3. at least one seat must be requested
//  4. every seat must belong to the showtime's cinema
//  5. no seat may be held by a complete booking on the showtime
//
// Only complete bookings block a seat. Two pending bookings can hold the same
// seat until one of them is confirmed; see GetBookedSeatIDs.
func (w *Workflow) Create(ctx context.Context, userID, showtimeID int, seatIDs []int) (*domain.Booking, error) {
	user, err := w.users.GetById(ctx, userID)
	if err != nil {
		return nil, wrapNotFound(err, "user")
	}

	showtime, err := w.showtimes.GetById(ctx, showtimeID)
	if err != nil {
		return nil, wrapNotFound(err, "showtime")
	}

	if showtime.HasStarted(w.now()) {
		return nil, domain.ErrPastShowtime
	}

	if len(seatIDs) == 0 {
		return nil, domain.ErrNoSeatsSelected
	}

	count, err := w.seats.CountByCinemaAndIds(ctx, showtime.CinemaID, seatIDs)
	if err != nil {
		return nil, err
	}

	if count != len(seatIDs) {
		return nil, domain.ErrInvalidSeats
	}

	booked, err := w.bookings.GetBookedSeatIDs(ctx, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}

	if len(booked) > 0 {
		return nil, domain.ErrSeatAlreadyBooked
	}

	booking := &domain.Booking{
		UserID:        user.ID,
		ShowtimeID:    showtime.ID,
		TotalPrice:    showtime.Cinema.Price.Mul(decimal.NewFromInt(int64(len(seatIDs)))),
		PaymentStatus: domain.BookingStatusPending,
	}

	err = w.bookings.Create(ctx, booking, seatIDs)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// ConfirmPayment completes a pending booking: the booking and its seats flip
// to their final states, an earn row is appended to the points ledger and the
// user's balance is incremented, all in one transaction.
func (w *Workflow) ConfirmPayment(ctx context.Context, bookingID int) (*domain.Booking, error) {
	booking, err := w.bookings.GetById(ctx, bookingID)
	if err != nil {
		return nil, wrapNotFound(err, "booking")
	}

	err = booking.Confirm()
	if err != nil {
		return nil, err
	}

	err = w.bookings.Complete(ctx, booking, booking.PointsEarned())
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// Cancel transitions the booking to cancelled and deletes its seat rows. The
// booking row itself is kept as an audit record.
func (w *Workflow) Cancel(ctx context.Context, bookingID int) (*domain.Booking, error) {
	booking, err := w.bookings.GetById(ctx, bookingID)
	if err != nil {
		return nil, wrapNotFound(err, "booking")
	}

	err = booking.Cancel(w.now())
	if err != nil {
		return nil, err
	}

	err = w.bookings.Cancel(ctx, booking)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func wrapNotFound(err error, entity string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.NotFound(entity)
	}

	return err
}

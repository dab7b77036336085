package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusComplete  BookingStatus = "complete"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type SeatStatus string

const (
	SeatStatusSelected SeatStatus = "selected"
	SeatStatusBooked   SeatStatus = "booked"
)

// bookingTransitions is the booking state machine. Complete is terminal.
// Cancelled maps to itself: repeating a cancel leaves the booking cancelled
// and is not an error.
var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending: {
		BookingStatusComplete:  true,
		BookingStatusCancelled: true,
	},
	BookingStatusComplete:  {},
	BookingStatusCancelled: {BookingStatusCancelled: true},
}

type Booking struct {
	ID            int
	UserID        int
	ShowtimeID    int
	TotalPrice    decimal.Decimal
	PaymentStatus BookingStatus
	CreatedAt     time.Time

	// Showtime is populated on reads that join the showtimes table. Needed by
	// the cancel guard.
	Showtime *Showtime

	Seats []BookingSeat
}

type BookingSeat struct {
	ID         int
	BookingID  int
	SeatID     int
	SeatNumber string
	Status     SeatStatus
}

// PointsEarned is the loyalty award for completing this booking:
// one point per 1000 of total price, rounded down.
func (b *Booking) PointsEarned() int {
	return int(b.TotalPrice.Div(decimal.NewFromInt(1000)).IntPart())
}

// Confirm transitions the booking to complete. Only pending bookings may be
// confirmed; re-confirming a complete or cancelled booking fails, which is
// what prevents a second points award.
func (b *Booking) Confirm() error {
	if b.PaymentStatus != BookingStatusPending {
		return ErrBookingNotPending
	}

	b.PaymentStatus = BookingStatusComplete

	return nil
}

// Cancel transitions the booking to cancelled. The showtime must not have
// started and a completed booking cannot be cancelled through this path.
func (b *Booking) Cancel(now time.Time) error {
	if b.Showtime != nil && b.Showtime.HasStarted(now) {
		return ErrShowtimeStarted
	}

	if !bookingTransitions[b.PaymentStatus][BookingStatusCancelled] {
		if b.PaymentStatus == BookingStatusComplete {
			return ErrBookingCompleted
		}
		return ErrEditConflict
	}

	b.PaymentStatus = BookingStatusCancelled

	return nil
}

// BookingDetail carries the nested associations the API returns with a
// booking: the owning user, the showtime with movie and cinema, the seats,
// and any payment.
type BookingDetail struct {
	Booking
	UserName     string
	UserEmail    string
	MovieTitle   string
	TheaterName  string
	CinemaType   CinemaType
	ShowtimeTime time.Time
	Payment      *Payment
}

type BookingFilters struct {
	Pagination
	UserID int
	Status BookingStatus
}

type BookingRepository interface {
	// Create inserts the booking and one booking_seats row per seat ID in a
	// single transaction.
	Create(ctx context.Context, booking *Booking, seatIDs []int) error

	GetById(ctx context.Context, id int) (*Booking, error)
	GetDetailById(ctx context.Context, id int) (*BookingDetail, error)
	GetAll(ctx context.Context, filters BookingFilters) ([]BookingDetail, *Metadata, error)

	// GetBookedSeatIDs returns the subset of seatIDs already held by a
	// booking with payment_status = complete on the given showtime. Pending
	// bookings are not considered; see the availability rule in the seat map.
	GetBookedSeatIDs(ctx context.Context, showtimeID int, seatIDs []int) ([]int, error)

	// Complete atomically marks the booking complete, flips its seats to
	// booked, appends an earn row to the points ledger and increments the
	// user's balance by pointsEarned.
	Complete(ctx context.Context, booking *Booking, pointsEarned int) error

	// Cancel atomically marks the booking cancelled and deletes its
	// booking_seats rows, releasing the seats.
	Cancel(ctx context.Context, booking *Booking) error
}

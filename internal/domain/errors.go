package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrSeatAlreadyBooked  = errors.New("some seats are already booked")
	ErrInvalidSeats       = errors.New("invalid seat selection for this cinema")
	ErrNoSeatsSelected    = errors.New("at least one seat must be selected")
	ErrPastShowtime       = errors.New("cannot book for past showtime")
	ErrShowtimeStarted    = errors.New("cannot cancel booking for past showtime")
	ErrShowtimeOverlap    = errors.New("time conflict with existing showtime in this cinema")
	ErrBookingNotPending  = errors.New("booking is not in pending status")
	ErrBookingCompleted   = errors.New("cannot cancel completed booking")
	ErrDuplicatePayment   = errors.New("booking already has a payment")
	ErrPaymentCompleted   = errors.New("payment already completed")
	ErrPaymentDeclined    = errors.New("payment processing failed")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrBookingNotOwned    = errors.New("booking does not belong to this user")
	ErrVoidWindowExceeded = errors.New("cannot void transaction older than 30 days")
)

// NotFound wraps ErrRecordNotFound with the name of the missing entity, so
// handlers can report "booking not found" while matching on the sentinel.
func NotFound(entity string) error {
	return notFoundError{entity: entity}
}

type notFoundError struct {
	entity string
}

func (e notFoundError) Error() string {
	return e.entity + " not found"
}

func (e notFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

package domain

import "context"

// Seat labels are a row letter followed by a number ("A1", "F12"), unique
// within a cinema. Seats are seeded with their cinema and never change.
type Seat struct {
	ID         int
	CinemaID   int
	SeatNumber string
}

type SeatRepository interface {
	GetByCinema(ctx context.Context, cinemaID int) ([]Seat, error)

	// CountByCinemaAndIds reports how many of the given seat IDs exist in the
	// given cinema. A count lower than len(seatIDs) means at least one seat is
	// unknown or belongs to another cinema.
	CountByCinemaAndIds(ctx context.Context, cinemaID int, seatIDs []int) (int, error)

	CreateBatch(ctx context.Context, cinemaID int, seatNumbers []string) error
}

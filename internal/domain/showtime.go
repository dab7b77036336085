package domain

import (
	"context"
	"time"
)

type Showtime struct {
	ID        int
	MovieID   int
	CinemaID  int
	StartTime time.Time
}

func (s Showtime) HasStarted(now time.Time) bool {
	return !s.StartTime.After(now)
}

// ShowtimeDetail is a showtime with its movie and cinema joined in, which is
// what the booking workflow needs: the cinema carries the ticket price and
// the movie carries the duration used for overlap checks.
type ShowtimeDetail struct {
	Showtime
	Movie  Movie
	Cinema Cinema
}

// ShowtimeFilters narrows a showtime listing. A nil Date means the listing
// defaults to upcoming showtimes only; an explicit date returns that day's
// full schedule, past or future.
type ShowtimeFilters struct {
	Pagination
	MovieID  int
	CinemaID int
	Date     *time.Time
}

type ShowtimeRepository interface {
	GetById(ctx context.Context, id int) (*ShowtimeDetail, error)
	GetAll(ctx context.Context, filters ShowtimeFilters) ([]ShowtimeDetail, *Metadata, error)

	// Create inserts the showtime after verifying no other showtime in the
	// same cinema overlaps the [start, start+duration) window. Returns
	// ErrShowtimeOverlap on conflict.
	Create(ctx context.Context, showtime *Showtime, durationMinutes int) error
}

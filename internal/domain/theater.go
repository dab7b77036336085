package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type CinemaType string

const (
	CinemaReguler CinemaType = "Reguler"
	CinemaIMAX    CinemaType = "IMAX"
	CinemaPremier CinemaType = "Premier"
)

type Theater struct {
	ID       int
	Name     string
	Location string
	Cinemas  []Cinema
}

// Cinema is a single screening room inside a theater. Its price is the
// per-seat ticket price for every showtime scheduled in it.
type Cinema struct {
	ID          int
	TheaterID   int
	TheaterName string
	Type        CinemaType
	TotalSeats  int
	Price       decimal.Decimal
	Seats       []Seat
}

type TheaterRepository interface {
	GetAll(ctx context.Context) ([]Theater, error)
	Create(ctx context.Context, theater *Theater) error
}

type CinemaRepository interface {
	GetById(ctx context.Context, id int) (*Cinema, error)
	Create(ctx context.Context, cinema *Cinema) error
}

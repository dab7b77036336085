package domain

import "context"

type Movie struct {
	ID              int
	Title           string
	Description     string
	Genre           string
	Rating          string
	DurationMinutes int
	PosterUrl       string
}

type MovieFilters struct {
	Pagination
	Term string
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
}

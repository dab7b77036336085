package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	query := `
		SELECT
			s.id,
			s.movie_id,
			s.cinema_id,
			s.start_time,
			m.title,
			m.genre,
			m.rating,
			m.duration_minutes,
			m.poster_url,
			t.name,
			c.type,
			c.total_seats,
			c.price
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN cinemas c ON s.cinema_id = c.id
		JOIN theaters t ON c.theater_id = t.id
		WHERE s.id = $1
	`

	var detail domain.ShowtimeDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.MovieID,
		&detail.CinemaID,
		&detail.StartTime,
		&detail.Movie.Title,
		&detail.Movie.Genre,
		&detail.Movie.Rating,
		&detail.Movie.DurationMinutes,
		&detail.Movie.PosterUrl,
		&detail.Cinema.TheaterName,
		&detail.Cinema.Type,
		&detail.Cinema.TotalSeats,
		&detail.Cinema.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	detail.Movie.ID = detail.MovieID
	detail.Cinema.ID = detail.CinemaID

	return &detail, nil
}

// GetAll defaults to upcoming showtimes. Passing an explicit date lifts the
// future-only restriction and returns that day's full schedule.
func (p *PostgresShowtimeRepository) GetAll(
	ctx context.Context,
	filters domain.ShowtimeFilters) ([]domain.ShowtimeDetail, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			s.id,
			s.movie_id,
			s.cinema_id,
			s.start_time,
			m.title,
			m.duration_minutes,
			m.poster_url,
			t.name,
			c.type,
			c.price
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN cinemas c ON s.cinema_id = c.id
		JOIN theaters t ON c.theater_id = t.id
		WHERE ($1 = 0 OR s.movie_id = $1)
			AND ($2 = 0 OR s.cinema_id = $2)
			AND (
				($3::date IS NULL AND s.start_time >= now())
				OR s.start_time::date = $3::date
			)
		ORDER BY s.start_time
		LIMIT $4 OFFSET $5
	`

	rows, err := p.db.Query(ctx,
		query,
		filters.MovieID,
		filters.CinemaID,
		filters.Date,
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.ShowtimeDetail, 0)
	totalRecords := 0

	for rows.Next() {
		var detail domain.ShowtimeDetail

		err := rows.Scan(
			&totalRecords,
			&detail.ID,
			&detail.MovieID,
			&detail.CinemaID,
			&detail.StartTime,
			&detail.Movie.Title,
			&detail.Movie.DurationMinutes,
			&detail.Movie.PosterUrl,
			&detail.Cinema.TheaterName,
			&detail.Cinema.Type,
			&detail.Cinema.Price,
		)
		if err != nil {
			return nil, nil, err
		}

		detail.Movie.ID = detail.MovieID
		detail.Cinema.ID = detail.CinemaID

		showtimes = append(showtimes, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return showtimes, metadata, nil
}

func (p *PostgresShowtimeRepository) Create(
	ctx context.Context,
	showtime *domain.Showtime,
	durationMinutes int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Two showtimes in the same cinema overlap when each starts before the
		// other ends. Movie runtimes come from the movies table at check time.
		query := `
			SELECT COUNT(*)
			FROM showtimes s
			JOIN movies m ON s.movie_id = m.id
			WHERE s.cinema_id = $1
				AND s.start_time < $2::timestamptz + ($3 || ' minutes')::interval
				AND $2::timestamptz < s.start_time + (m.duration_minutes || ' minutes')::interval
		`

		var overlapping int

		err := tx.QueryRow(ctx,
			query,
			showtime.CinemaID,
			showtime.StartTime,
			fmt.Sprint(durationMinutes)).Scan(&overlapping)

		if err != nil {
			return err
		}

		if overlapping > 0 {
			return domain.ErrShowtimeOverlap
		}

		query = `
			INSERT INTO showtimes (movie_id, cinema_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		return tx.QueryRow(ctx,
			query,
			showtime.MovieID,
			showtime.CinemaID,
			showtime.StartTime).Scan(&showtime.ID)
	})
}

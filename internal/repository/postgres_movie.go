package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(
	ctx context.Context,
	filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			id,
			title,
			description,
			genre,
			rating,
			duration_minutes,
			poster_url
		FROM movies
		WHERE $1 = '' OR title ILIKE '%' || $1 || '%' OR genre ILIKE '%' || $1 || '%'
		ORDER BY title
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	movies := make([]*domain.Movie, 0)
	totalRecords := 0

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genre,
			&movie.Rating,
			&movie.DurationMinutes,
			&movie.PosterUrl,
		)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT id, title, description, genre, rating, duration_minutes, poster_url
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.Rating,
		&movie.DurationMinutes,
		&movie.PosterUrl,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, description, genre, rating, duration_minutes, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Genre,
		movie.Rating,
		movie.DurationMinutes,
		movie.PosterUrl).Scan(&movie.ID)
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]domain.Theater, error) {
	query := `
		SELECT
			t.id,
			t.name,
			t.location,
			c.id,
			c.type,
			c.total_seats,
			c.price
		FROM theaters t
		LEFT JOIN cinemas c ON c.theater_id = t.id
		ORDER BY t.name, c.type
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)
	index := make(map[int]int)

	for rows.Next() {
		var theater domain.Theater

		// cinema columns are NULL for a theater with no screening rooms yet
		var cinemaID, totalSeats *int
		var cinemaType *domain.CinemaType
		var price decimal.NullDecimal

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.Location,
			&cinemaID,
			&cinemaType,
			&totalSeats,
			&price,
		)
		if err != nil {
			return nil, err
		}

		i, ok := index[theater.ID]
		if !ok {
			i = len(theaters)
			index[theater.ID] = i
			theaters = append(theaters, theater)
		}

		if cinemaID != nil {
			theaters[i].Cinemas = append(theaters[i].Cinemas, domain.Cinema{
				ID:         *cinemaID,
				TheaterID:  theater.ID,
				Type:       *cinemaType,
				TotalSeats: *totalSeats,
				Price:      price.Decimal,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (name, location)
		VALUES ($1, $2)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, theater.Name, theater.Location).Scan(&theater.ID)
}

type PostgresCinemaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaRepository(db *pgxpool.Pool) *PostgresCinemaRepository {
	return &PostgresCinemaRepository{
		db: db,
	}
}

func (p *PostgresCinemaRepository) GetById(ctx context.Context, id int) (*domain.Cinema, error) {
	query := `
		SELECT c.id, c.theater_id, t.name, c.type, c.total_seats, c.price
		FROM cinemas c
		JOIN theaters t ON c.theater_id = t.id
		WHERE c.id = $1
	`

	var cinema domain.Cinema

	err := p.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.TheaterID,
		&cinema.TheaterName,
		&cinema.Type,
		&cinema.TotalSeats,
		&cinema.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &cinema, nil
}

func (p *PostgresCinemaRepository) Create(ctx context.Context, cinema *domain.Cinema) error {
	query := `
		INSERT INTO cinemas (theater_id, type, total_seats, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return p.db.QueryRow(ctx,
		query,
		cinema.TheaterID,
		cinema.Type,
		cinema.TotalSeats,
		cinema.Price).Scan(&cinema.ID)
}

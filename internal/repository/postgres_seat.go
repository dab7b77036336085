package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetByCinema(ctx context.Context, cinemaID int) ([]domain.Seat, error) {
	query := `
		SELECT id, cinema_id, seat_number
		FROM seats
		WHERE cinema_id = $1
		ORDER BY length(seat_number), seat_number
	`

	rows, err := p.db.Query(ctx, query, cinemaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(&seat.ID, &seat.CinemaID, &seat.SeatNumber)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresSeatRepository) CountByCinemaAndIds(
	ctx context.Context,
	cinemaID int,
	seatIDs []int) (int, error) {

	query := `
		SELECT COUNT(*)
		FROM seats
		WHERE cinema_id = $1 AND id = ANY($2)
	`

	var count int

	err := p.db.QueryRow(ctx, query, cinemaID, seatIDs).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (p *PostgresSeatRepository) CreateBatch(
	ctx context.Context,
	cinemaID int,
	seatNumbers []string) error {

	rows := make([][]any, 0, len(seatNumbers))
	for _, seatNumber := range seatNumbers {
		rows = append(rows, []any{cinemaID, seatNumber})
	}

	_, err := p.db.CopyFrom(
		ctx,
		pgx.Identifier{"seats"},
		[]string{"cinema_id", "seat_number"},
		pgx.CopyFromRows(rows),
	)

	return err
}

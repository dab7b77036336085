package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

type PostgresPointsRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPointsRepository(db *pgxpool.Pool) *PostgresPointsRepository {
	return &PostgresPointsRepository{
		db: db,
	}
}

func (p *PostgresPointsRepository) Create(ctx context.Context, pointsTx *domain.PointsTransaction) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO points_transactions (user_id, booking_id, type, points)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx,
			query,
			pointsTx.UserID,
			pointsTx.BookingID,
			pointsTx.Type,
			pointsTx.Points).Scan(&pointsTx.ID, &pointsTx.CreatedAt)

		if err != nil {
			return err
		}

		query = `
			UPDATE users
			SET points = points + $1
			WHERE id = $2 AND points + $1 >= 0
		`

		tag, err := tx.Exec(ctx, query, pointsTx.Points, pointsTx.UserID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientPoints
		}

		return nil
	})
}

func (p *PostgresPointsRepository) GetById(ctx context.Context, id int) (*domain.PointsTransaction, error) {
	query := `
		SELECT id, user_id, booking_id, type, points, created_at
		FROM points_transactions
		WHERE id = $1
	`

	var pointsTx domain.PointsTransaction

	err := p.db.QueryRow(ctx, query, id).Scan(
		&pointsTx.ID,
		&pointsTx.UserID,
		&pointsTx.BookingID,
		&pointsTx.Type,
		&pointsTx.Points,
		&pointsTx.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &pointsTx, nil
}

func (p *PostgresPointsRepository) GetAll(
	ctx context.Context,
	filters domain.PointsFilters) ([]domain.PointsTransaction, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			id,
			user_id,
			booking_id,
			type,
			points,
			created_at
		FROM points_transactions
		WHERE ($1 = 0 OR user_id = $1)
			AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := p.db.Query(ctx,
		query,
		filters.UserID,
		string(filters.Type),
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	transactions := make([]domain.PointsTransaction, 0)
	totalRecords := 0

	for rows.Next() {
		var pointsTx domain.PointsTransaction

		err := rows.Scan(
			&totalRecords,
			&pointsTx.ID,
			&pointsTx.UserID,
			&pointsTx.BookingID,
			&pointsTx.Type,
			&pointsTx.Points,
			&pointsTx.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		transactions = append(transactions, pointsTx)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return transactions, metadata, nil
}

func (p *PostgresPointsRepository) GetUserSummary(ctx context.Context, userID int) (*domain.PointsSummary, error) {
	query := `
		SELECT
			u.id,
			u.name,
			u.points,
			COALESCE(SUM(pt.points) FILTER (WHERE pt.type = 'earn'), 0),
			COALESCE(-SUM(pt.points) FILTER (WHERE pt.type = 'redeem'), 0)
		FROM users u
		LEFT JOIN points_transactions pt ON pt.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id
	`

	var summary domain.PointsSummary

	err := p.db.QueryRow(ctx, query, userID).Scan(
		&summary.UserID,
		&summary.UserName,
		&summary.CurrentPoints,
		&summary.TotalEarned,
		&summary.TotalRedeemed,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	recent, _, err := p.GetAll(ctx, domain.PointsFilters{
		Pagination: domain.Pagination{Page: 1, PageSize: 10},
		UserID:     userID,
	})
	if err != nil {
		return nil, err
	}
	summary.Recent = recent

	return &summary, nil
}

// Void reverses the transaction's effect on the user's balance and removes
// the ledger row. The row is deleted rather than compensated, matching the
// external statement a voided transaction never appeared on. Voiding an earn
// whose points were already spent would drive the balance negative; the
// balance check constraint turns that into ErrInsufficientPoints.
func (p *PostgresPointsRepository) Void(ctx context.Context, pointsTx *domain.PointsTransaction) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE users
			SET points = points - $1
			WHERE id = $2
		`

		_, err := tx.Exec(ctx, query, pointsTx.Points, pointsTx.UserID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
				return domain.ErrInsufficientPoints
			}

			return err
		}

		query = `
			DELETE FROM points_transactions
			WHERE id = $1
		`

		tag, err := tx.Exec(ctx, query, pointsTx.ID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

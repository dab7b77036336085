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

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (booking_id, method, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(ctx,
		query,
		payment.BookingID,
		payment.Method,
		payment.Status).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicatePayment
		}

		return err
	}

	return nil
}

func (p *PostgresPaymentRepository) GetById(ctx context.Context, id int) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, method, status, reference, paid_at, created_at
		FROM payments
		WHERE id = $1
	`

	return p.scanPayment(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresPaymentRepository) GetByBookingId(ctx context.Context, bookingID int) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, method, status, reference, paid_at, created_at
		FROM payments
		WHERE booking_id = $1
	`

	return p.scanPayment(p.db.QueryRow(ctx, query, bookingID))
}

// Complete commits a successful gateway charge: payment to complete with its
// reference and paid_at, then the same booking completion writes as a direct
// payment confirmation.
func (p *PostgresPaymentRepository) Complete(
	ctx context.Context,
	payment *domain.Payment,
	booking *domain.Booking,
	pointsEarned int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE payments
			SET status = 'complete', reference = $1, paid_at = NOW()
			WHERE id = $2 AND status = 'pending'
			RETURNING paid_at
		`

		err := tx.QueryRow(ctx, query, payment.Reference, payment.ID).Scan(&payment.PaidAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrPaymentCompleted
			}

			return err
		}

		payment.Status = domain.BookingStatusComplete

		return completeBooking(ctx, tx, booking, pointsEarned)
	})
}

func (p *PostgresPaymentRepository) Cancel(
	ctx context.Context,
	payment *domain.Payment,
	booking *domain.Booking) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE payments
			SET status = 'cancelled'
			WHERE id = $1
		`

		_, err := tx.Exec(ctx, query, payment.ID)
		if err != nil {
			return err
		}

		payment.Status = domain.BookingStatusCancelled

		return cancelBooking(ctx, tx, booking)
	})
}

func (p *PostgresPaymentRepository) scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	var reference *string

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Method,
		&payment.Status,
		&reference,
		&payment.PaidAt,
		&payment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if reference != nil {
		payment.Reference = *reference
	}

	return &payment, nil
}

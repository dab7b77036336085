package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(
	ctx context.Context,
	booking *domain.Booking,
	seatIDs []int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (user_id, showtime_id, total_price, payment_status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx,
			query,
			booking.UserID,
			booking.ShowtimeID,
			booking.TotalPrice,
			booking.PaymentStatus).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(seatIDs))
		for _, seatID := range seatIDs {
			rows = append(rows, []any{
				booking.ID,
				seatID,
				domain.SeatStatusSelected,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "seat_id", "status"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.showtime_id,
			b.total_price,
			b.payment_status,
			b.created_at,
			s.movie_id,
			s.cinema_id,
			s.start_time
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		WHERE b.id = $1
	`

	var booking domain.Booking
	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.TotalPrice,
		&booking.PaymentStatus,
		&booking.CreatedAt,
		&showtime.MovieID,
		&showtime.CinemaID,
		&showtime.StartTime,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	showtime.ID = booking.ShowtimeID
	booking.Showtime = &showtime

	seats, err := p.retrieveBookingSeats(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Seats = seats

	return &booking, nil
}

func (p *PostgresBookingRepository) GetDetailById(ctx context.Context, id int) (*domain.BookingDetail, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.showtime_id,
			b.total_price,
			b.payment_status,
			b.created_at,
			u.name,
			u.email,
			m.title,
			t.name,
			c.type,
			s.start_time
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN cinemas c ON s.cinema_id = c.id
		JOIN theaters t ON c.theater_id = t.id
		WHERE b.id = $1
	`

	var detail domain.BookingDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.UserID,
		&detail.ShowtimeID,
		&detail.TotalPrice,
		&detail.PaymentStatus,
		&detail.CreatedAt,
		&detail.UserName,
		&detail.UserEmail,
		&detail.MovieTitle,
		&detail.TheaterName,
		&detail.CinemaType,
		&detail.ShowtimeTime,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	seats, err := p.retrieveBookingSeats(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	detail.Seats = seats

	payment, err := p.retrievePayment(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	detail.Payment = payment

	return &detail, nil
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	filters domain.BookingFilters) ([]domain.BookingDetail, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.user_id,
			b.showtime_id,
			b.total_price,
			b.payment_status,
			b.created_at,
			u.name,
			u.email,
			m.title,
			t.name,
			c.type,
			s.start_time
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN cinemas c ON s.cinema_id = c.id
		JOIN theaters t ON c.theater_id = t.id
		WHERE ($1 = 0 OR b.user_id = $1)
			AND ($2 = '' OR b.payment_status = $2)
		ORDER BY b.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := p.db.Query(ctx,
		query,
		filters.UserID,
		string(filters.Status),
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingDetail, 0)
	totalRecords := 0

	for rows.Next() {
		var detail domain.BookingDetail

		err := rows.Scan(
			&totalRecords,
			&detail.ID,
			&detail.UserID,
			&detail.ShowtimeID,
			&detail.TotalPrice,
			&detail.PaymentStatus,
			&detail.CreatedAt,
			&detail.UserName,
			&detail.UserEmail,
			&detail.MovieTitle,
			&detail.TheaterName,
			&detail.CinemaType,
			&detail.ShowtimeTime,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return bookings, metadata, nil
}

// GetBookedSeatIDs only considers bookings with payment_status = complete.
// Seats held by pending bookings stay available to other users until one of
// the bookings is confirmed.
func (p *PostgresBookingRepository) GetBookedSeatIDs(
	ctx context.Context,
	showtimeID int,
	seatIDs []int) ([]int, error) {

	query := `
		SELECT bs.seat_id
		FROM booking_seats bs
		JOIN bookings b ON bs.booking_id = b.id
		WHERE b.showtime_id = $1
			AND b.payment_status = 'complete'
			AND bs.seat_id = ANY($2)
	`

	rows, err := p.db.Query(ctx, query, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make([]int, 0)

	for rows.Next() {
		var seatID int

		err := rows.Scan(&seatID)
		if err != nil {
			return nil, err
		}

		booked = append(booked, seatID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return booked, nil
}

func (p *PostgresBookingRepository) Complete(
	ctx context.Context,
	booking *domain.Booking,
	pointsEarned int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		return completeBooking(ctx, tx, booking, pointsEarned)
	})
}

func (p *PostgresBookingRepository) Cancel(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		return cancelBooking(ctx, tx, booking)
	})
}

// completeBooking applies the write side of a payment confirmation on an open
// transaction: booking to complete, seats to booked, an earn row in the
// points ledger, and the user's balance bumped. Shared with the payment
// repository so gateway-driven completion commits the same way.
func completeBooking(
	ctx context.Context,
	tx pgx.Tx,
	booking *domain.Booking,
	pointsEarned int) error {

	query := `
		UPDATE bookings
		SET payment_status = 'complete'
		WHERE id = $1 AND payment_status = 'pending'
	`

	tag, err := tx.Exec(ctx, query, booking.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrBookingNotPending
	}

	query = `
		UPDATE booking_seats
		SET status = 'booked'
		WHERE booking_id = $1
	`

	_, err = tx.Exec(ctx, query, booking.ID)
	if err != nil {
		return err
	}

	for i := range booking.Seats {
		booking.Seats[i].Status = domain.SeatStatusBooked
	}

	if pointsEarned > 0 {
		query = `
			INSERT INTO points_transactions (user_id, booking_id, type, points)
			VALUES ($1, $2, 'earn', $3)
		`

		_, err = tx.Exec(ctx, query, booking.UserID, booking.ID, pointsEarned)
		if err != nil {
			return err
		}

		query = `
			UPDATE users
			SET points = points + $1
			WHERE id = $2
		`

		_, err = tx.Exec(ctx, query, pointsEarned, booking.UserID)
		if err != nil {
			return err
		}
	}

	return nil
}

// cancelBooking marks the booking cancelled and deletes its seat rows. The
// booking row stays behind as an audit record. The status guard catches a
// booking completed between the caller's read and this write; re-cancelling
// an already cancelled booking still passes.
func cancelBooking(ctx context.Context, tx pgx.Tx, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET payment_status = 'cancelled'
		WHERE id = $1 AND payment_status <> 'complete'
	`

	tag, err := tx.Exec(ctx, query, booking.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEditConflict
	}

	query = `
		DELETE FROM booking_seats
		WHERE booking_id = $1
	`

	_, err = tx.Exec(ctx, query, booking.ID)
	if err != nil {
		return err
	}

	booking.Seats = nil

	return nil
}

func (p *PostgresBookingRepository) retrieveBookingSeats(
	ctx context.Context,
	bookingID int) ([]domain.BookingSeat, error) {

	query := `
		SELECT bs.id, bs.booking_id, bs.seat_id, s.seat_number, bs.status
		FROM booking_seats bs
		JOIN seats s ON bs.seat_id = s.id
		WHERE bs.booking_id = $1
		ORDER BY length(s.seat_number), s.seat_number
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.BookingSeat, 0)

	for rows.Next() {
		var seat domain.BookingSeat

		err := rows.Scan(
			&seat.ID,
			&seat.BookingID,
			&seat.SeatID,
			&seat.SeatNumber,
			&seat.Status,
		)
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

func (p *PostgresBookingRepository) retrievePayment(
	ctx context.Context,
	bookingID int) (*domain.Payment, error) {

	query := `
		SELECT id, booking_id, method, status, reference, paid_at, created_at
		FROM payments
		WHERE booking_id = $1
	`

	var payment domain.Payment
	var reference *string

	err := p.db.QueryRow(ctx, query, bookingID).Scan(
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
			return nil, nil
		}

		return nil, err
	}

	if reference != nil {
		payment.Reference = *reference
	}

	return &payment, nil
}

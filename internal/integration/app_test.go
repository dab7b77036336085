package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/app"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/mailer"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/payment"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/repository"
	appvalidator "github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/validator"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	// success rate 1 makes the simulated gateway approve every charge
	paymentGateway := payment.NewSimulatedGateway(1)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		sessionManager,
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresTheaterRepository(db),
		repository.NewPostgresCinemaRepository(db),
		repository.NewPostgresSeatRepository(db),
		repository.NewPostgresShowtimeRepository(db),
		repository.NewPostgresBookingRepository(db),
		repository.NewPostgresPaymentRepository(db),
		repository.NewPostgresPointsRepository(db),
		paymentGateway,
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}

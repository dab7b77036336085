package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/booking"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/mailer"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/payment"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/repository"
	appvalidator "github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/validator"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/vcs"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	userRepo     domain.UserRepository
	movieRepo    domain.MovieRepository
	theaterRepo  domain.TheaterRepository
	cinemaRepo   domain.CinemaRepository
	seatRepo     domain.SeatRepository
	showtimeRepo domain.ShowtimeRepository
	bookingRepo  domain.BookingRepository
	paymentRepo  domain.PaymentRepository
	pointsRepo   domain.PointsRepository

	bookingWorkflow *booking.Workflow
	paymentGateway  domain.PaymentGateway
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string

	DB      DBConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
	Gateway GatewayConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type GatewayConfig struct {
	SuccessRate float64
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "CinemaGo <no-reply@cinemago.example.com>", "SMTP sender")

	flag.Float64Var(&cfg.Gateway.SuccessRate, "gateway-success-rate", 0.9, "Simulated payment gateway success rate")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	app, err := NewApplication(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		textHandler := slog.NewTextHandler(os.Stdout, nil)
		otelHandler := otelslog.NewHandler("cinema-booking-api")

		app.logger = slog.New(NewMultiHandler(textHandler, otelHandler))
	}

	return app.run()
}

// NewApplication wires the pools, repositories and the booking workflow from
// the given config.
func NewApplication(cfg Config) (*Application, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresTheaterRepository(db),
		repository.NewPostgresCinemaRepository(db),
		repository.NewPostgresSeatRepository(db),
		repository.NewPostgresShowtimeRepository(db),
		repository.NewPostgresBookingRepository(db),
		repository.NewPostgresPaymentRepository(db),
		repository.NewPostgresPointsRepository(db),
		payment.NewSimulatedGateway(cfg.Gateway.SuccessRate),
	)

	return app, nil
}

// NewApp assembles an Application from already constructed dependencies. The
// integration suite uses it to stand up a real app against containers with a
// mock mailer and a deterministic gateway.
func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	userRepo domain.UserRepository,
	movieRepo domain.MovieRepository,
	theaterRepo domain.TheaterRepository,
	cinemaRepo domain.CinemaRepository,
	seatRepo domain.SeatRepository,
	showtimeRepo domain.ShowtimeRepository,
	bookingRepo domain.BookingRepository,
	paymentRepo domain.PaymentRepository,
	pointsRepo domain.PointsRepository,
	paymentGateway domain.PaymentGateway,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		mailer:         mailer,
		sessionManager: sessionManager,

		userRepo:     userRepo,
		movieRepo:    movieRepo,
		theaterRepo:  theaterRepo,
		cinemaRepo:   cinemaRepo,
		seatRepo:     seatRepo,
		showtimeRepo: showtimeRepo,
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		pointsRepo:   pointsRepo,

		bookingWorkflow: booking.NewWorkflow(userRepo, showtimeRepo, seatRepo, bookingRepo),
		paymentGateway:  paymentGateway,
	}
}

func (app *Application) Close() {
	app.redis.Close()
	app.db.Close()
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

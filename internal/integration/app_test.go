package integration_test

import (
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/app"
	"github.com/metinatakli/cinema-ticketing/internal/mailer"
	"github.com/metinatakli/cinema-ticketing/internal/payment"
	"github.com/metinatakli/cinema-ticketing/internal/queue"
	"github.com/metinatakli/cinema-ticketing/internal/repository"
	appvalidator "github.com/metinatakli/cinema-ticketing/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App            *app.Application
	DB             *pgxpool.Pool
	Redis          *redis.Client
	Mailer         *mailer.MockMailer
	SessionManager *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

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

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		sessionManager,
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresFilmRepository(db),
		repository.NewPostgresPaymentRepository(db),
		repository.NewRedisCartRepository(redisClient),
		repository.NewRedisBookmarkRepository(redisClient),
		payment.NewMockGateway(cfg.Payment.MockDelay),
		repository.NewRedisCheckoutLock(redisClient, time.Minute),
		queue.NopPublisher{Logger: logger},
	)

	return &TestApp{
		App:            application,
		DB:             db,
		Redis:          redisClient,
		Mailer:         mailer,
		SessionManager: sessionManager,
	}, nil
}

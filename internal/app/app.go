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
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/cart"
	"github.com/metinatakli/cinema-ticketing/internal/checkout"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/mailer"
	"github.com/metinatakli/cinema-ticketing/internal/payment"
	"github.com/metinatakli/cinema-ticketing/internal/queue"
	"github.com/metinatakli/cinema-ticketing/internal/repository"
	appvalidator "github.com/metinatakli/cinema-ticketing/internal/validator"
	"github.com/metinatakli/cinema-ticketing/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-ticketing-api"

var (
	version = vcs.Version()
)

var _ api.ServerInterface = (*Application)(nil)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	userRepo     domain.UserRepository
	filmRepo     domain.FilmRepository
	paymentRepo  domain.PaymentRepository
	bookmarkRepo domain.BookmarkRepository

	carts     *cart.Store
	checkout  *checkout.Service
	publisher queue.Publisher

	now func() time.Time
	wg  sync.WaitGroup
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	Payment          PaymentConfig
	AMQP             AMQPConfig
	OtelCollectorUrl string
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

type PaymentConfig struct {
	Provider      string
	MockDelay     time.Duration
	Timeout       time.Duration
	LockTTL       time.Duration
	Currency      string
	StripeKey     string
	SuccessUrl    string
	CancelUrl     string
	WebhookSecret string
}

type AMQPConfig struct {
	URL string
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

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
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Cinema <no-reply@cinema.example.com>", "SMTP sender")

	flag.StringVar(&cfg.Payment.Provider, "payment-provider", "mock", "Payment gateway (mock|stripe)")
	flag.DurationVar(&cfg.Payment.MockDelay, "payment-mock-delay", payment.DefaultMockDelay, "Simulated latency of the mock gateway")
	flag.DurationVar(&cfg.Payment.Timeout, "payment-timeout", checkout.DefaultTimeout, "Payment gateway call timeout")
	flag.DurationVar(&cfg.Payment.LockTTL, "payment-lock-ttl", time.Minute, "Lifetime of the per-user checkout lock")
	flag.StringVar(&cfg.Payment.Currency, "payment-currency", "VND", "ISO currency of film prices")
	flag.StringVar(&cfg.Payment.StripeKey, "stripe-key", "", "Stripe secret key")
	flag.StringVar(&cfg.Payment.SuccessUrl, "stripe-success-url", "https://example.com/success.html", "Stripe payment success page")
	flag.StringVar(&cfg.Payment.CancelUrl, "stripe-cancel-url", "https://example.com/cancel.html", "Stripe payment cancel page")
	flag.StringVar(&cfg.Payment.WebhookSecret, "stripe-webhook-secret", "", "Stripe webhook signing secret, the webhook is disabled when empty")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", "", "RabbitMQ URL, events are dropped when empty")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	validator := appvalidator.NewValidator()

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	gateway, err := newPaymentGateway(cfg)
	if err != nil {
		return err
	}

	var publisher queue.Publisher = queue.NopPublisher{Logger: logger}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := queue.NewAMQPPublisher(cfg.AMQP.URL, logger)
		if err != nil {
			return err
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresFilmRepository(db),
		repository.NewPostgresPaymentRepository(db),
		repository.NewRedisCartRepository(redisClient),
		repository.NewRedisBookmarkRepository(redisClient),
		gateway,
		repository.NewRedisCheckoutLock(redisClient, cfg.Payment.LockTTL),
		publisher,
	)

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	userRepo domain.UserRepository,
	filmRepo domain.FilmRepository,
	paymentRepo domain.PaymentRepository,
	cartRepo domain.CartRepository,
	bookmarkRepo domain.BookmarkRepository,
	gateway domain.PaymentGateway,
	lock domain.CheckoutLock,
	publisher queue.Publisher) *Application {

	carts := cart.NewStore(cartRepo, logger)

	notifier := newCheckoutNotifier(logger, userRepo, mailer, publisher)

	checkoutService := checkout.NewService(logger, carts, gateway, paymentRepo, lock, notifier, checkout.Config{
		Currency: cfg.Payment.Currency,
		Timeout:  cfg.Payment.Timeout,
	})

	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		mailer:         mailer,
		sessionManager: sessionManager,
		userRepo:       userRepo,
		filmRepo:       filmRepo,
		paymentRepo:    paymentRepo,
		bookmarkRepo:   bookmarkRepo,
		carts:          carts,
		checkout:       checkoutService,
		publisher:      publisher,
		now:            time.Now,
	}
}

func newPaymentGateway(cfg Config) (domain.PaymentGateway, error) {
	switch cfg.Payment.Provider {
	case "mock":
		return payment.NewMockGateway(cfg.Payment.MockDelay), nil
	case "stripe":
		if cfg.Payment.StripeKey == "" {
			return nil, errors.New("stripe payment provider requires -stripe-key")
		}
		stripe.Key = cfg.Payment.StripeKey

		return payment.NewStripeGateway(cfg.Payment.Currency, cfg.Payment.SuccessUrl, cfg.Payment.CancelUrl), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Payment.Provider)
	}
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

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
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

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.checkout.Wait()
		app.wg.Wait()

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

// Routes mounts every API operation on a chi router. Operations that declare
// session security in the API description pass through requireAuthentication.
func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestUserSession)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.requireAuthentication},
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}

// background runs fn in a goroutine that shutdown waits for. Panics are logged
// rather than crashing the server.
func (app *Application) background(logger *slog.Logger, fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred in background task", "panic", err)
			}
		}()

		fn()
	}()
}

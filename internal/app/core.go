package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iamshakil01/clubsphere-servers/internal/auth"
	"github.com/iamshakil01/clubsphere-servers/internal/cache"
	"github.com/iamshakil01/clubsphere-servers/internal/config"
	"github.com/iamshakil01/clubsphere-servers/internal/gateway"
	"github.com/iamshakil01/clubsphere-servers/internal/mq"
	"github.com/iamshakil01/clubsphere-servers/internal/notification"
	"github.com/iamshakil01/clubsphere-servers/internal/repository"
	"github.com/iamshakil01/clubsphere-servers/internal/service"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

// Core is everything below the HTTP layer. The server and clubctl share it.
type Core struct {
	Log      logger.Logger
	DB       *dbpg.DB
	Verifier *auth.Verifier

	Events         *service.EventService
	Registrations  *service.RegistrationService
	Checkout       *service.CheckoutService
	Reconciliation *service.ReconciliationService
	Payments       *service.PaymentService
	Clubs          *service.ClubService
	Users          *service.UserService
	Admin          *service.AdminService
	Outbox         *service.OutboxService

	redis     *redis.Client
	publisher *mq.Publisher
}

func InitLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ClubSphere",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func NewCore(cfg *config.Config, log logger.Logger) (*Core, error) {
	c := &Core{Log: log}

	if err := c.initDB(cfg); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err := c.initRedis(cfg); err != nil {
		c.Close()
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err := c.initServices(cfg); err != nil {
		c.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return c, nil
}

func (c *Core) initDB(cfg *config.Config) error {
	db, err := dbpg.New(
		cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	c.DB = db
	c.Log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", cfg.Postgres.Host),
		logger.Int("port", cfg.Postgres.Port),
		logger.String("database", cfg.Postgres.Database),
	)

	return nil
}

func (c *Core) initRedis(cfg *config.Config) error {
	if cfg.Redis.Addr == "" {
		c.Log.Warn("redis address is empty, event cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	c.redis = client
	c.Log.Info("redis connected", logger.String("addr", cfg.Redis.Addr))

	return nil
}

func (c *Core) initServices(cfg *config.Config) error {
	eventRepo := repository.NewEventRepo(c.DB)
	registrationRepo := repository.NewRegistrationRepo(c.DB)
	paymentRepo := repository.NewPaymentRepo(c.DB)
	clubRepo := repository.NewClubRepo(c.DB)
	membershipRepo := repository.NewMembershipRepo(c.DB)
	userRepo := repository.NewUserRepo(c.DB)
	outboxRepo := repository.NewOutboxRepo(c.DB)

	events := cache.NewEventCache(eventRepo, c.redis, cfg.Redis.TTL, c.Log)
	stripeGateway := gateway.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Service.Timeout)
	timeout := cfg.Service.Timeout

	sinks, err := c.initSinks(cfg)
	if err != nil {
		return err
	}

	c.Verifier = auth.NewVerifier(cfg.Auth.JWTSecret)
	c.Events = service.NewEventService(events)
	c.Registrations = service.NewRegistrationService(events, registrationRepo, c.Log, timeout)
	c.Checkout = service.NewCheckoutService(paymentRepo, stripeGateway, service.CheckoutConfig{
		SiteDomain: cfg.Stripe.SiteDomain,
		Currency:   cfg.Stripe.Currency,
		Timeout:    timeout,
	}, c.Log)
	c.Reconciliation = service.NewReconciliationService(
		stripeGateway,
		paymentRepo,
		service.NewTrackingIDGenerator(),
		c.Log,
		timeout,
	)
	c.Payments = service.NewPaymentService(paymentRepo)
	c.Clubs = service.NewClubService(clubRepo, events, c.Log)
	c.Users = service.NewUserService(userRepo)
	c.Admin = service.NewAdminService(userRepo, clubRepo, membershipRepo, events, paymentRepo)
	c.Outbox = service.NewOutboxService(outboxRepo, sinks, cfg.Scheduler.BatchSize, c.Log)

	return nil
}

func (c *Core) initSinks(cfg *config.Config) ([]ports.OutboxSink, error) {
	var sinks []ports.OutboxSink

	if cfg.RabbitMQ.URL != "" {
		p, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, fmt.Errorf("init publisher: %w", err)
		}
		c.publisher = p
		sinks = append(sinks, p)
	} else {
		c.Log.Warn("rabbitmq url is empty, broker publishing disabled")
	}

	n, err := notification.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.OpsChatID, c.Log)
	if err != nil {
		return nil, fmt.Errorf("init notifier: %w", err)
	}
	sinks = append(sinks, n)

	return sinks, nil
}

// Close releases connections in reverse order of acquisition.
func (c *Core) Close() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.publisher != nil {
		keep(c.publisher.Close())
	}
	if c.redis != nil {
		keep(c.redis.Close())
	}
	if c.DB != nil {
		keep(c.DB.Master.Close())
		c.Log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	return firstErr
}

// RunMigrations applies migrations/ with goose over a dedicated connection.
func RunMigrations(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

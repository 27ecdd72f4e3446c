package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/lookup"
	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/lookup/openfoodfacts"
	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/fitjournal-engine/internal/config"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/services"
)

// memoryUsersDSN keeps accounts for the memory driver in a private in-process SQLite database.
const memoryUsersDSN = "file:fitjournal-users?mode=memory"

// App is the wired object graph shared by the API server and the CLI.
type App struct {
	Config *config.Config
	DB     *sqlx.DB
	Store  domain.DocumentStore
	// Redis is nil when disabled or unreachable.
	Redis *redis.Client

	Workouts domain.WorkoutRepository
	Foods    domain.FoodRepository
	Users    domain.UserRepository
	Products domain.ProductLookup

	Tokens     *services.TokenService
	Auth       *services.AuthService
	Workout    *services.WorkoutService
	Food       *services.FoodService
	Lookup     *services.LookupService
	Aggregator *services.WeeklyAggregator
}

// OpenStore connects the configured backend and brings its schema up to date.
// The returned DB is the users database; for the memory driver documents live outside it.
func OpenStore(ctx context.Context, cfg *config.Config) (domain.DocumentStore, *sqlx.DB, error) {
	if cfg.DBDriver == config.DriverMemory {
		db, err := repository.OpenSQL(ctx, config.DriverSQLite, memoryUsersDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.ApplyMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repository.NewInMemoryDocumentStore(), db, nil
	}

	db, err := repository.OpenSQL(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := repository.ApplyMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	store, err := repository.NewSQLDocumentStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

// ConnectRedis returns nil without error when Redis is disabled or down.
func ConnectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled {
		return nil
	}
	rdb, err := cache.NewRedisClient(ctx, cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Printf("[CACHE] Redis unavailable, continuing without it: %v", err)
		return nil
	}
	return rdb
}

// NewProductLookup is the Open Food Facts client, behind the Redis read-through cache when rdb is set.
func NewProductLookup(cfg *config.Config, rdb *redis.Client) domain.ProductLookup {
	client := openfoodfacts.NewClient(cfg.LookupBaseURL, cfg.LookupTimeout)
	if rdb == nil {
		return client
	}
	return lookup.NewCachedProductLookup(client, rdb, cfg.ProductTTL)
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, db, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	a := &App{
		Config:   cfg,
		DB:       db,
		Store:    store,
		Redis:    ConnectRedis(ctx, cfg),
		Workouts: repository.NewDocumentWorkoutRepository(store),
		Foods:    repository.NewDocumentFoodRepository(store),
		Users:    repository.NewSQLUserRepository(db),
	}

	a.Products = NewProductLookup(cfg, a.Redis)

	var denylist services.TokenDenylist
	if a.Redis != nil {
		denylist = cache.NewRedisTokenDenylist(a.Redis)
	}

	a.Tokens = services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, a.Users, denylist)
	a.Auth = services.NewAuthService(a.Users, a.Tokens)
	a.Workout = services.NewWorkoutService(a.Workouts)
	a.Food = services.NewFoodService(a.Foods, cfg.ReportLocation)
	a.Lookup = services.NewLookupService(a.Products, cfg.LookupTimeout)
	a.Aggregator = services.NewWeeklyAggregator(a.Workouts, a.Foods, services.AggregatorConfig{
		Location:       cfg.ReportLocation,
		QueryTimeout:   cfg.QueryTimeout,
		MaxConcurrency: cfg.MaxConcurrency,
	})

	return a, nil
}

func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

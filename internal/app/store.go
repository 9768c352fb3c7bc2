package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/adapter/mongodb"
	"github.com/heartmarshall/yelpcamp/internal/adapter/postgres"
	pgcampground "github.com/heartmarshall/yelpcamp/internal/adapter/postgres/campground"
	pgcomment "github.com/heartmarshall/yelpcamp/internal/adapter/postgres/comment"
	pguser "github.com/heartmarshall/yelpcamp/internal/adapter/postgres/user"
	"github.com/heartmarshall/yelpcamp/internal/config"
	"github.com/heartmarshall/yelpcamp/internal/domain"
)

type campgroundStore interface {
	Find(ctx context.Context, filter domain.CampgroundFilter) ([]domain.Campground, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	Create(ctx context.Context, c *domain.Campground) (*domain.Campground, error)
	UpdateByID(ctx context.Context, id uuid.UUID, f domain.CampgroundFields) (*domain.Campground, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	Populate(ctx context.Context, c *domain.Campground) error
	AppendComment(ctx context.Context, campgroundID, commentID uuid.UUID) error
	RemoveComment(ctx context.Context, campgroundID, commentID uuid.UUID) error
}

type commentStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateByID(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
}

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ campgroundStore = (*pgcampground.Repo)(nil)
	_ campgroundStore = (*mongodb.CampgroundRepo)(nil)
	_ commentStore    = (*pgcomment.Repo)(nil)
	_ commentStore    = (*mongodb.CommentRepo)(nil)
	_ userStore       = (*pguser.Repo)(nil)
	_ userStore       = (*mongodb.UserRepo)(nil)
	_ txRunner        = (*postgres.TxManager)(nil)
	_ txRunner        = mongodb.NoTx{}
)

// store is the Record Store selected by database.driver.
type store struct {
	name        string
	campgrounds campgroundStore
	comments    commentStore
	users       userStore
	tx          txRunner
	pinger      pinger
	close       func()
}

// openStore connects to the configured database and, for PostgreSQL with
// auto_migrate, applies pending migrations first.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.DSN, log); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}

		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &store{
			name:        config.DriverPostgres,
			campgrounds: pgcampground.New(pool),
			comments:    pgcomment.New(pool),
			users:       pguser.New(pool),
			tx:          postgres.NewTxManager(pool),
			pinger:      pool,
			close:       pool.Close,
		}, nil

	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &store{
			name:        config.DriverMongo,
			campgrounds: mongodb.NewCampgroundRepo(db),
			comments:    mongodb.NewCommentRepo(db),
			users:       mongodb.NewUserRepo(db),
			tx:          mongodb.NoTx{},
			pinger:      mongodb.NewPinger(client),
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
				defer cancel()
				if err := client.Disconnect(ctx); err != nil {
					log.Warn("mongo disconnect", slog.String("error", err.Error()))
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Migrate brings the configured store's schema up to date: goose
// migrations for PostgreSQL, indexes for MongoDB.
func Migrate(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	if cfg.Database.Driver == config.DriverPostgres {
		return postgres.Migrate(ctx, cfg.Database.DSN, log)
	}

	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.InfoContext(ctx, "mongo indexes ensured", slog.String("database", cfg.Database.Name))
	return nil
}

// Package comment implements the Comment record store using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yelpcamp/internal/adapter/postgres"
	"github.com/heartmarshall/yelpcamp/internal/domain"
)

const entity = "comment"

var columns = []string{"id", "text", "author_id", "author_username", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FindByID returns a comment by primary key.
func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("comments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	c, err := scanComment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// Create inserts a comment and returns it with its assigned ID.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	id := uuid.New()

	sql, args, err := postgres.Builder().
		Insert("comments").
		Columns("id", "text", "author_id", "author_username").
		Values(id, c.Text, c.Author.ID, c.Author.Username).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanComment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return created, nil
}

// UpdateByID replaces the comment text.
func (r *Repo) UpdateByID(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	sql, args, err := postgres.Builder().
		Update("comments").
		Set("text", text).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanComment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return updated, nil
}

// DeleteByID removes a comment and returns the removed record.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	sql, args, err := postgres.Builder().
		Delete("comments").
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete: %w", err)
	}

	removed, err := scanComment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return removed, nil
}

// DeleteMany removes every comment whose ID is in ids and returns how many
// were removed. Missing ids are ignored.
func (r *Repo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder().
		Delete("comments").
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete comments: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.Text, &c.Author.ID, &c.Author.Username, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

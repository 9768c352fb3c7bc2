// Package campground implements the Campground record store using PostgreSQL.
// Search, partial field sets and the comment-id list are built with squirrel.
package campground

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

const entity = "campground"

var columns = []string{
	"id", "name", "image", "description", "price", "location", "lat", "lng",
	"author_id", "author_username", "comment_ids", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides campground persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new campground repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Find returns campgrounds in creation order. A non-empty NameContains is
// matched as a case-insensitive literal substring.
func (r *Repo) Find(ctx context.Context, filter domain.CampgroundFilter) ([]domain.Campground, error) {
	query := postgres.Builder().
		Select(columns...).
		From("campgrounds").
		OrderBy("created_at ASC", "id ASC")

	if filter.NameContains != nil && *filter.NameContains != "" {
		query = query.Where(`name ILIKE ? ESCAPE '\'`, "%"+EscapeLike(*filter.NameContains)+"%")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find campgrounds: %w", err)
	}
	defer rows.Close()

	out := []domain.Campground{}
	for rows.Next() {
		c, err := scanCampground(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campground: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find campgrounds: %w", err)
	}

	return out, nil
}

// FindByID returns a campground by primary key.
func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("campgrounds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	c, err := scanCampground(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// Populate resolves c.CommentIDs into c.Comments, keeping list order.
// Ids whose comment no longer exists are skipped.
func (r *Repo) Populate(ctx context.Context, c *domain.Campground) error {
	c.Comments = []domain.Comment{}
	if len(c.CommentIDs) == 0 {
		return nil
	}

	sql, args, err := postgres.Builder().
		Select("id", "text", "author_id", "author_username", "created_at", "updated_at").
		From("comments").
		Where("id = ANY(?)", c.CommentIDs).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, c.ID)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]domain.Comment, len(c.CommentIDs))
	for rows.Next() {
		var cm domain.Comment
		if err := rows.Scan(&cm.ID, &cm.Text, &cm.Author.ID, &cm.Author.Username, &cm.CreatedAt, &cm.UpdatedAt); err != nil {
			return fmt.Errorf("scan comment: %w", err)
		}
		byID[cm.ID] = cm
	}
	if err := rows.Err(); err != nil {
		return postgres.MapError(err, entity, c.ID)
	}

	for _, id := range c.CommentIDs {
		if cm, ok := byID[id]; ok {
			c.Comments = append(c.Comments, cm)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a campground and returns it with its assigned ID.
func (r *Repo) Create(ctx context.Context, c *domain.Campground) (*domain.Campground, error) {
	id := uuid.New()
	commentIDs := c.CommentIDs
	if commentIDs == nil {
		commentIDs = []uuid.UUID{}
	}

	sql, args, err := postgres.Builder().
		Insert("campgrounds").
		Columns("id", "name", "image", "description", "price", "location", "lat", "lng",
			"author_id", "author_username", "comment_ids").
		Values(id, c.Name, c.Image, c.Description, c.Price, c.Location, c.Lat, c.Lng,
			c.Author.ID, c.Author.Username, commentIDs).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanCampground(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return created, nil
}

// UpdateByID replaces the editable field set. Author and comments are kept.
func (r *Repo) UpdateByID(ctx context.Context, id uuid.UUID, f domain.CampgroundFields) (*domain.Campground, error) {
	sql, args, err := postgres.Builder().
		Update("campgrounds").
		SetMap(map[string]any{
			"name":        f.Name,
			"image":       f.Image,
			"description": f.Description,
			"price":       f.Price,
			"location":    f.Location,
			"lat":         f.Lat,
			"lng":         f.Lng,
			"updated_at":  squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	updated, err := scanCampground(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return updated, nil
}

// DeleteByID removes a campground and returns the removed record.
// Its comments are left to the caller.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	sql, args, err := postgres.Builder().
		Delete("campgrounds").
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete: %w", err)
	}

	removed, err := scanCampground(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return removed, nil
}

// AppendComment adds commentID to the end of the campground's comment list.
func (r *Repo) AppendComment(ctx context.Context, campgroundID, commentID uuid.UUID) error {
	return r.updateCommentIDs(ctx, campgroundID, squirrel.Expr("array_append(comment_ids, ?::uuid)", commentID))
}

// RemoveComment drops commentID from the campground's comment list.
func (r *Repo) RemoveComment(ctx context.Context, campgroundID, commentID uuid.UUID) error {
	return r.updateCommentIDs(ctx, campgroundID, squirrel.Expr("array_remove(comment_ids, ?::uuid)", commentID))
}

func (r *Repo) updateCommentIDs(ctx context.Context, campgroundID uuid.UUID, expr squirrel.Sqlizer) error {
	sql, args, err := postgres.Builder().
		Update("campgrounds").
		Set("comment_ids", expr).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": campgroundID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, campgroundID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, campgroundID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// EscapeLike escapes LIKE wildcards so term matches literally under
// ESCAPE '\'.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func scanCampground(row pgx.Row) (*domain.Campground, error) {
	var c domain.Campground
	err := row.Scan(
		&c.ID, &c.Name, &c.Image, &c.Description, &c.Price, &c.Location, &c.Lat, &c.Lng,
		&c.Author.ID, &c.Author.Username, &c.CommentIDs, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.CommentIDs == nil {
		c.CommentIDs = []uuid.UUID{}
	}
	return &c, nil
}

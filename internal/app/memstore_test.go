package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/adapter/mongodb"
	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// memDB is an in-memory record store for wiring tests.
type memDB struct {
	mu          sync.Mutex
	campgrounds map[uuid.UUID]domain.Campground
	order       []uuid.UUID
	comments    map[uuid.UUID]domain.Comment
	users       map[uuid.UUID]domain.User
}

func newMemStore() (*store, *memDB) {
	db := &memDB{
		campgrounds: map[uuid.UUID]domain.Campground{},
		comments:    map[uuid.UUID]domain.Comment{},
		users:       map[uuid.UUID]domain.User{},
	}
	return &store{
		name:        "memory",
		campgrounds: memCampgrounds{db},
		comments:    memComments{db},
		users:       memUsers{db},
		tx:          mongodb.NoTx{},
		pinger:      db,
		close:       func() {},
	}, db
}

func (db *memDB) Ping(context.Context) error { return nil }

type memCampgrounds struct{ db *memDB }

func (m memCampgrounds) Find(_ context.Context, f domain.CampgroundFilter) ([]domain.Campground, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	out := []domain.Campground{}
	for _, id := range m.db.order {
		c, ok := m.db.campgrounds[id]
		if !ok {
			continue
		}
		if f.NameContains != nil && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(*f.NameContains)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m memCampgrounds) FindByID(_ context.Context, id uuid.UUID) (*domain.Campground, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.campgrounds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m memCampgrounds) Create(_ context.Context, c *domain.Campground) (*domain.Campground, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	out := *c
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	m.db.campgrounds[out.ID] = out
	m.db.order = append(m.db.order, out.ID)
	return &out, nil
}

func (m memCampgrounds) UpdateByID(_ context.Context, id uuid.UUID, f domain.CampgroundFields) (*domain.Campground, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.campgrounds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Name, c.Image, c.Description, c.Price, c.Location = f.Name, f.Image, f.Description, f.Price, f.Location
	c.Lat, c.Lng = f.Lat, f.Lng
	c.UpdatedAt = time.Now()
	m.db.campgrounds[id] = c
	return &c, nil
}

func (m memCampgrounds) DeleteByID(_ context.Context, id uuid.UUID) (*domain.Campground, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.campgrounds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.db.campgrounds, id)
	return &c, nil
}

func (m memCampgrounds) Populate(_ context.Context, c *domain.Campground) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c.Comments = nil
	for _, id := range c.CommentIDs {
		if cm, ok := m.db.comments[id]; ok {
			c.Comments = append(c.Comments, cm)
		}
	}
	return nil
}

func (m memCampgrounds) AppendComment(_ context.Context, campgroundID, commentID uuid.UUID) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.campgrounds[campgroundID]
	if !ok {
		return domain.ErrNotFound
	}
	c.CommentIDs = append(c.CommentIDs, commentID)
	m.db.campgrounds[campgroundID] = c
	return nil
}

func (m memCampgrounds) RemoveComment(_ context.Context, campgroundID, commentID uuid.UUID) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.campgrounds[campgroundID]
	if !ok {
		return domain.ErrNotFound
	}
	kept := c.CommentIDs[:0:0]
	for _, id := range c.CommentIDs {
		if id != commentID {
			kept = append(kept, id)
		}
	}
	c.CommentIDs = kept
	m.db.campgrounds[campgroundID] = c
	return nil
}

type memComments struct{ db *memDB }

func (m memComments) FindByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m memComments) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	out := *c
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	m.db.comments[out.ID] = out
	return &out, nil
}

func (m memComments) UpdateByID(_ context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Text = text
	m.db.comments[id] = c
	return &c, nil
}

func (m memComments) DeleteByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c, ok := m.db.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.db.comments, id)
	return &c, nil
}

func (m memComments) DeleteMany(_ context.Context, ids []uuid.UUID) (int, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	n := 0
	for _, id := range ids {
		if _, ok := m.db.comments[id]; ok {
			delete(m.db.comments, id)
			n++
		}
	}
	return n, nil
}

type memUsers struct{ db *memDB }

func (m memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	u, ok := m.db.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, u := range m.db.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, existing := range m.db.users {
		if existing.Username == u.Username {
			return nil, domain.ErrAlreadyExists
		}
	}
	out := *u
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	m.db.users[out.ID] = out
	return &out, nil
}

// memBucket records S3 puts.
type memBucket struct {
	mu   sync.Mutex
	keys []string
}

func (b *memBucket) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys = append(b.keys, *in.Key)
	return &s3.PutObjectOutput{}, nil
}

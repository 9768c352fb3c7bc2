package seeder

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yelpcamp/internal/domain"
	"sync"
)

var _ campgroundRepo = &campgroundRepoMock{}

type campgroundRepoMock struct {
	AppendCommentFunc func(ctx context.Context, campgroundID uuid.UUID, commentID uuid.UUID) error
	CreateFunc        func(ctx context.Context, c *domain.Campground) (*domain.Campground, error)
	DeleteByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	FindFunc          func(ctx context.Context, filter domain.CampgroundFilter) ([]domain.Campground, error)

	calls struct {
		AppendComment []struct {
			Ctx          context.Context
			CampgroundID uuid.UUID
			CommentID    uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Campground
		}
		DeleteByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Find []struct {
			Ctx    context.Context
			Filter domain.CampgroundFilter
		}
	}
	lockAppendComment sync.RWMutex
	lockCreate        sync.RWMutex
	lockDeleteByID    sync.RWMutex
	lockFind          sync.RWMutex
}

func (mock *campgroundRepoMock) AppendComment(ctx context.Context, campgroundID uuid.UUID, commentID uuid.UUID) error {
	if mock.AppendCommentFunc == nil {
		panic("campgroundRepoMock.AppendCommentFunc: method is nil but campgroundRepo.AppendComment was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CampgroundID uuid.UUID
		CommentID    uuid.UUID
	}{
		Ctx:          ctx,
		CampgroundID: campgroundID,
		CommentID:    commentID,
	}
	mock.lockAppendComment.Lock()
	mock.calls.AppendComment = append(mock.calls.AppendComment, callInfo)
	mock.lockAppendComment.Unlock()
	return mock.AppendCommentFunc(ctx, campgroundID, commentID)
}

func (mock *campgroundRepoMock) AppendCommentCalls() []struct {
	Ctx          context.Context
	CampgroundID uuid.UUID
	CommentID    uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		CampgroundID uuid.UUID
		CommentID    uuid.UUID
	}
	mock.lockAppendComment.RLock()
	calls = mock.calls.AppendComment
	mock.lockAppendComment.RUnlock()
	return calls
}

func (mock *campgroundRepoMock) Create(ctx context.Context, c *domain.Campground) (*domain.Campground, error) {
	if mock.CreateFunc == nil {
		panic("campgroundRepoMock.CreateFunc: method is nil but campgroundRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Campground
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *campgroundRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Campground
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Campground
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *campgroundRepoMock) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	if mock.DeleteByIDFunc == nil {
		panic("campgroundRepoMock.DeleteByIDFunc: method is nil but campgroundRepo.DeleteByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, id)
}

func (mock *campgroundRepoMock) DeleteByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteByID.RLock()
	calls = mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}

func (mock *campgroundRepoMock) Find(ctx context.Context, filter domain.CampgroundFilter) ([]domain.Campground, error) {
	if mock.FindFunc == nil {
		panic("campgroundRepoMock.FindFunc: method is nil but campgroundRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CampgroundFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *campgroundRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.CampgroundFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.CampgroundFilter
	}
	mock.lockFind.RLock()
	calls = mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

package web

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/internal/service/comment"
	"sync"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	CreateFunc func(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	DeleteFunc func(ctx context.Context, campgroundID uuid.UUID, commentID uuid.UUID) error
	EditFunc   func(ctx context.Context, campgroundID uuid.UUID, commentID uuid.UUID) (*domain.Comment, error)
	NewFunc    func(ctx context.Context, campgroundID uuid.UUID) (*domain.Campground, error)
	UpdateFunc func(ctx context.Context, input comment.UpdateInput) (*domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input comment.CreateInput
		}
		Delete []struct {
			Ctx          context.Context
			CampgroundID uuid.UUID
			CommentID    uuid.UUID
		}
		Edit []struct {
			Ctx          context.Context
			CampgroundID uuid.UUID
			CommentID    uuid.UUID
		}
		New []struct {
			Ctx          context.Context
			CampgroundID uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			Input comment.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockEdit   sync.RWMutex
	lockNew    sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *commentServiceMock) Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentServiceMock.CreateFunc: method is nil but commentService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *commentServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input comment.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input comment.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentServiceMock) Delete(ctx context.Context, campgroundID uuid.UUID, commentID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("commentServiceMock.DeleteFunc: method is nil but commentService.Delete was just called")
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
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, campgroundID, commentID)
}

func (mock *commentServiceMock) DeleteCalls() []struct {
	Ctx          context.Context
	CampgroundID uuid.UUID
	CommentID    uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		CampgroundID uuid.UUID
		CommentID    uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *commentServiceMock) Edit(ctx context.Context, campgroundID uuid.UUID, commentID uuid.UUID) (*domain.Comment, error) {
	if mock.EditFunc == nil {
		panic("commentServiceMock.EditFunc: method is nil but commentService.Edit was just called")
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
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, campgroundID, commentID)
}

func (mock *commentServiceMock) EditCalls() []struct {
	Ctx          context.Context
	CampgroundID uuid.UUID
	CommentID    uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		CampgroundID uuid.UUID
		CommentID    uuid.UUID
	}
	mock.lockEdit.RLock()
	calls = mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

func (mock *commentServiceMock) New(ctx context.Context, campgroundID uuid.UUID) (*domain.Campground, error) {
	if mock.NewFunc == nil {
		panic("commentServiceMock.NewFunc: method is nil but commentService.New was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CampgroundID uuid.UUID
	}{
		Ctx:          ctx,
		CampgroundID: campgroundID,
	}
	mock.lockNew.Lock()
	mock.calls.New = append(mock.calls.New, callInfo)
	mock.lockNew.Unlock()
	return mock.NewFunc(ctx, campgroundID)
}

func (mock *commentServiceMock) NewCalls() []struct {
	Ctx          context.Context
	CampgroundID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		CampgroundID uuid.UUID
	}
	mock.lockNew.RLock()
	calls = mock.calls.New
	mock.lockNew.RUnlock()
	return calls
}

func (mock *commentServiceMock) Update(ctx context.Context, input comment.UpdateInput) (*domain.Comment, error) {
	if mock.UpdateFunc == nil {
		panic("commentServiceMock.UpdateFunc: method is nil but commentService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *commentServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input comment.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input comment.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

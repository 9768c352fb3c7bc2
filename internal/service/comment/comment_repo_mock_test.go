package comment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yelpcamp/internal/domain"
	"sync"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	DeleteByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateByIDFunc func(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		DeleteByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		FindByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateByID []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Text string
		}
	}
	lockCreate     sync.RWMutex
	lockDeleteByID sync.RWMutex
	lockFindByID   sync.RWMutex
	lockUpdateByID sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Comment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.DeleteByIDFunc == nil {
		panic("commentRepoMock.DeleteByIDFunc: method is nil but commentRepo.DeleteByID was just called")
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

func (mock *commentRepoMock) DeleteByIDCalls() []struct {
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

func (mock *commentRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.FindByIDFunc == nil {
		panic("commentRepoMock.FindByIDFunc: method is nil but commentRepo.FindByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFindByID.Lock()
	mock.calls.FindByID = append(mock.calls.FindByID, callInfo)
	mock.lockFindByID.Unlock()
	return mock.FindByIDFunc(ctx, id)
}

func (mock *commentRepoMock) FindByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockFindByID.RLock()
	calls = mock.calls.FindByID
	mock.lockFindByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) UpdateByID(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	if mock.UpdateByIDFunc == nil {
		panic("commentRepoMock.UpdateByIDFunc: method is nil but commentRepo.UpdateByID was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Text string
	}{
		Ctx:  ctx,
		Id:   id,
		Text: text,
	}
	mock.lockUpdateByID.Lock()
	mock.calls.UpdateByID = append(mock.calls.UpdateByID, callInfo)
	mock.lockUpdateByID.Unlock()
	return mock.UpdateByIDFunc(ctx, id, text)
}

func (mock *commentRepoMock) UpdateByIDCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Id   uuid.UUID
		Text string
	}
	mock.lockUpdateByID.RLock()
	calls = mock.calls.UpdateByID
	mock.lockUpdateByID.RUnlock()
	return calls
}

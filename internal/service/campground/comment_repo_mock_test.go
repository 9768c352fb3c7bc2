package campground

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	DeleteManyFunc func(ctx context.Context, ids []uuid.UUID) (int, error)

	calls struct {
		DeleteMany []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockDeleteMany sync.RWMutex
}

func (mock *commentRepoMock) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	if mock.DeleteManyFunc == nil {
		panic("commentRepoMock.DeleteManyFunc: method is nil but commentRepo.DeleteMany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockDeleteMany.Lock()
	mock.calls.DeleteMany = append(mock.calls.DeleteMany, callInfo)
	mock.lockDeleteMany.Unlock()
	return mock.DeleteManyFunc(ctx, ids)
}

func (mock *commentRepoMock) DeleteManyCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockDeleteMany.RLock()
	calls = mock.calls.DeleteMany
	mock.lockDeleteMany.RUnlock()
	return calls
}

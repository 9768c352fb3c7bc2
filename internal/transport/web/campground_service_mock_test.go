package web

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/internal/service/campground"
	"sync"
)

var _ campgroundService = &campgroundServiceMock{}

type campgroundServiceMock struct {
	AuthorizeNewFunc func(ctx context.Context) error
	CreateFunc       func(ctx context.Context, input campground.CreateInput) (*domain.Campground, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	EditFunc         func(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	ListFunc         func(ctx context.Context, input campground.ListInput) ([]domain.Campground, error)
	ShowFunc         func(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	UpdateFunc       func(ctx context.Context, input campground.UpdateInput) (*domain.Campground, error)

	calls struct {
		AuthorizeNew []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input campground.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Edit []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input campground.ListInput
		}
		Show []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			Input campground.UpdateInput
		}
	}
	lockAuthorizeNew sync.RWMutex
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockEdit         sync.RWMutex
	lockList         sync.RWMutex
	lockShow         sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *campgroundServiceMock) AuthorizeNew(ctx context.Context) error {
	if mock.AuthorizeNewFunc == nil {
		panic("campgroundServiceMock.AuthorizeNewFunc: method is nil but campgroundService.AuthorizeNew was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAuthorizeNew.Lock()
	mock.calls.AuthorizeNew = append(mock.calls.AuthorizeNew, callInfo)
	mock.lockAuthorizeNew.Unlock()
	return mock.AuthorizeNewFunc(ctx)
}

func (mock *campgroundServiceMock) AuthorizeNewCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockAuthorizeNew.RLock()
	calls = mock.calls.AuthorizeNew
	mock.lockAuthorizeNew.RUnlock()
	return calls
}

func (mock *campgroundServiceMock) Create(ctx context.Context, input campground.CreateInput) (*domain.Campground, error) {
	if mock.CreateFunc == nil {
		panic("campgroundServiceMock.CreateFunc: method is nil but campgroundService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input campground.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *campgroundServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input campground.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input campground.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *campgroundServiceMock) Delete(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	if mock.DeleteFunc == nil {
		panic("campgroundServiceMock.DeleteFunc: method is nil but campgroundService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *campgroundServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *campgroundServiceMock) Edit(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	if mock.EditFunc == nil {
		panic("campgroundServiceMock.EditFunc: method is nil but campgroundService.Edit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, id)
}

func (mock *campgroundServiceMock) EditCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockEdit.RLock()
	calls = mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

func (mock *campgroundServiceMock) List(ctx context.Context, input campground.ListInput) ([]domain.Campground, error) {
	if mock.ListFunc == nil {
		panic("campgroundServiceMock.ListFunc: method is nil but campgroundService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input campground.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *campgroundServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input campground.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input campground.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *campgroundServiceMock) Show(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	if mock.ShowFunc == nil {
		panic("campgroundServiceMock.ShowFunc: method is nil but campgroundService.Show was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockShow.Lock()
	mock.calls.Show = append(mock.calls.Show, callInfo)
	mock.lockShow.Unlock()
	return mock.ShowFunc(ctx, id)
}

func (mock *campgroundServiceMock) ShowCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockShow.RLock()
	calls = mock.calls.Show
	mock.lockShow.RUnlock()
	return calls
}

func (mock *campgroundServiceMock) Update(ctx context.Context, input campground.UpdateInput) (*domain.Campground, error) {
	if mock.UpdateFunc == nil {
		panic("campgroundServiceMock.UpdateFunc: method is nil but campgroundService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input campground.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *campgroundServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input campground.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input campground.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

package middleware

import (
	"context"
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
	"sync"
)

var _ sessionValidator = &sessionValidatorMock{}

type sessionValidatorMock struct {
	ValidateSessionFunc func(ctx context.Context, token string) (ctxutil.Actor, error)

	calls struct {
		ValidateSession []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockValidateSession sync.RWMutex
}

func (mock *sessionValidatorMock) ValidateSession(ctx context.Context, token string) (ctxutil.Actor, error) {
	if mock.ValidateSessionFunc == nil {
		panic("sessionValidatorMock.ValidateSessionFunc: method is nil but sessionValidator.ValidateSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockValidateSession.Lock()
	mock.calls.ValidateSession = append(mock.calls.ValidateSession, callInfo)
	mock.lockValidateSession.Unlock()
	return mock.ValidateSessionFunc(ctx, token)
}

func (mock *sessionValidatorMock) ValidateSessionCalls() []struct {
	Ctx   context.Context
	Token string
} {
	var calls []struct {
		Ctx   context.Context
		Token string
	}
	mock.lockValidateSession.RLock()
	calls = mock.calls.ValidateSession
	mock.lockValidateSession.RUnlock()
	return calls
}

package auth

import (
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
	"sync"
)

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	IssueFunc    func(actor ctxutil.Actor) (string, error)
	ValidateFunc func(token string) (ctxutil.Actor, error)

	calls struct {
		Issue []struct {
			Actor ctxutil.Actor
		}
		Validate []struct {
			Token string
		}
	}
	lockIssue    sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *sessionManagerMock) Issue(actor ctxutil.Actor) (string, error) {
	if mock.IssueFunc == nil {
		panic("sessionManagerMock.IssueFunc: method is nil but sessionManager.Issue was just called")
	}
	callInfo := struct {
		Actor ctxutil.Actor
	}{
		Actor: actor,
	}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(actor)
}

func (mock *sessionManagerMock) IssueCalls() []struct {
	Actor ctxutil.Actor
} {
	var calls []struct {
		Actor ctxutil.Actor
	}
	mock.lockIssue.RLock()
	calls = mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Validate(token string) (ctxutil.Actor, error) {
	if mock.ValidateFunc == nil {
		panic("sessionManagerMock.ValidateFunc: method is nil but sessionManager.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *sessionManagerMock) ValidateCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidate.RLock()
	calls = mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}

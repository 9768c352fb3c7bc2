package s3image

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Ensure, that objectPutterMock does implement objectPutter.
var _ objectPutter = &objectPutterMock{}

// objectPutterMock is a mock implementation of objectPutter.
type objectPutterMock struct {
	// PutObjectFunc mocks the PutObject method.
	PutObjectFunc func(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)

	calls struct {
		PutObject []struct {
			Ctx context.Context
			In  *s3.PutObjectInput
		}
	}
	lockPutObject sync.RWMutex
}

// PutObject calls PutObjectFunc.
func (mock *objectPutterMock) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if mock.PutObjectFunc == nil {
		panic("objectPutterMock.PutObjectFunc: method is nil but objectPutter.PutObject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  *s3.PutObjectInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockPutObject.Lock()
	mock.calls.PutObject = append(mock.calls.PutObject, callInfo)
	mock.lockPutObject.Unlock()
	return mock.PutObjectFunc(ctx, in, optFns...)
}

// PutObjectCalls gets all the calls that were made to PutObject.
func (mock *objectPutterMock) PutObjectCalls() []struct {
	Ctx context.Context
	In  *s3.PutObjectInput
} {
	mock.lockPutObject.RLock()
	defer mock.lockPutObject.RUnlock()
	return mock.calls.PutObject
}

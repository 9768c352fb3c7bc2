package campground

import (
	"context"
	"github.com/heartmarshall/yelpcamp/internal/domain"
	"sync"
)

var _ imageUploader = &imageUploaderMock{}

type imageUploaderMock struct {
	CheckNameFunc func(name string) error
	UploadFunc    func(ctx context.Context, img domain.ImageFile) (string, error)

	calls struct {
		CheckName []struct {
			Name string
		}
		Upload []struct {
			Ctx context.Context
			Img domain.ImageFile
		}
	}
	lockCheckName sync.RWMutex
	lockUpload    sync.RWMutex
}

func (mock *imageUploaderMock) CheckName(name string) error {
	if mock.CheckNameFunc == nil {
		panic("imageUploaderMock.CheckNameFunc: method is nil but imageUploader.CheckName was just called")
	}
	callInfo := struct {
		Name string
	}{
		Name: name,
	}
	mock.lockCheckName.Lock()
	mock.calls.CheckName = append(mock.calls.CheckName, callInfo)
	mock.lockCheckName.Unlock()
	return mock.CheckNameFunc(name)
}

func (mock *imageUploaderMock) CheckNameCalls() []struct {
	Name string
} {
	var calls []struct {
		Name string
	}
	mock.lockCheckName.RLock()
	calls = mock.calls.CheckName
	mock.lockCheckName.RUnlock()
	return calls
}

func (mock *imageUploaderMock) Upload(ctx context.Context, img domain.ImageFile) (string, error) {
	if mock.UploadFunc == nil {
		panic("imageUploaderMock.UploadFunc: method is nil but imageUploader.Upload was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img domain.ImageFile
	}{
		Ctx: ctx,
		Img: img,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, img)
}

func (mock *imageUploaderMock) UploadCalls() []struct {
	Ctx context.Context
	Img domain.ImageFile
} {
	var calls []struct {
		Ctx context.Context
		Img domain.ImageFile
	}
	mock.lockUpload.RLock()
	calls = mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

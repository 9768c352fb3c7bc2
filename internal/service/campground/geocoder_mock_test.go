package campground

import (
	"context"
	"github.com/heartmarshall/yelpcamp/internal/domain"
	"sync"
)

var _ geocoder = &geocoderMock{}

type geocoderMock struct {
	GeocodeFunc func(ctx context.Context, address string) (*domain.GeocodedLocation, error)

	calls struct {
		Geocode []struct {
			Ctx     context.Context
			Address string
		}
	}
	lockGeocode sync.RWMutex
}

func (mock *geocoderMock) Geocode(ctx context.Context, address string) (*domain.GeocodedLocation, error) {
	if mock.GeocodeFunc == nil {
		panic("geocoderMock.GeocodeFunc: method is nil but geocoder.Geocode was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Address string
	}{
		Ctx:     ctx,
		Address: address,
	}
	mock.lockGeocode.Lock()
	mock.calls.Geocode = append(mock.calls.Geocode, callInfo)
	mock.lockGeocode.Unlock()
	return mock.GeocodeFunc(ctx, address)
}

func (mock *geocoderMock) GeocodeCalls() []struct {
	Ctx     context.Context
	Address string
} {
	var calls []struct {
		Ctx     context.Context
		Address string
	}
	mock.lockGeocode.RLock()
	calls = mock.calls.Geocode
	mock.lockGeocode.RUnlock()
	return calls
}

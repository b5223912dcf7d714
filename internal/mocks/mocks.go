package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cafefinder/internal/domain"
)

type FavouritePublisher struct {
	mock.Mock
}

func (m *FavouritePublisher) PublishFavourite(ctx context.Context, event domain.FavouriteEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type PopularityStore struct {
	mock.Mock
}

func (m *PopularityStore) Bump(ctx context.Context, cafeID string, delta float64) error {
	args := m.Called(ctx, cafeID, delta)
	return args.Error(0)
}

func (m *PopularityStore) Top(ctx context.Context, n int64) ([]domain.CafePopularity, error) {
	args := m.Called(ctx, n)
	if top, ok := args.Get(0).([]domain.CafePopularity); ok {
		return top, args.Error(1)
	}
	return nil, args.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(cafeID string) ([]byte, error) {
	args := m.Called(cafeID)
	if qr, ok := args.Get(0).([]byte); ok {
		return qr, args.Error(1)
	}
	return nil, args.Error(1)
}

package service

import (
	"context"

	"cafefinder/internal/domain"
)

type CafeServiceInterface interface {
	List() []domain.CafeView
	Get(id string) (domain.CafeView, error)
	Search(query string) []domain.CafeView
	FilterByCategory(category string) []domain.CafeView
	Favourites() []domain.CafeView
	Toggle(ctx context.Context, id string) bool
}

type FavouritePublisher interface {
	PublishFavourite(ctx context.Context, event domain.FavouriteEvent) error
}

type PopularityStore interface {
	Bump(ctx context.Context, cafeID string, delta float64) error
	Top(ctx context.Context, n int64) ([]domain.CafePopularity, error)
}

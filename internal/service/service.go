package service

import (
	"context"
	"log"
	"time"

	"cafefinder/internal/catalog"
	"cafefinder/internal/domain"
)

type CafeService struct {
	store     *catalog.Store
	publisher FavouritePublisher
}

// NewCafeService wraps the catalog store. The publisher is optional; event
// publishing is ancillary and its failures never affect the toggle result.
func NewCafeService(store *catalog.Store, publisher FavouritePublisher) *CafeService {
	return &CafeService{store: store, publisher: publisher}
}

func (s *CafeService) List() []domain.CafeView {
	return s.store.ListAll()
}

func (s *CafeService) Get(id string) (domain.CafeView, error) {
	return s.store.GetByID(id)
}

func (s *CafeService) Search(query string) []domain.CafeView {
	return s.store.Search(query)
}

func (s *CafeService) FilterByCategory(category string) []domain.CafeView {
	return s.store.FilterByCategory(category)
}

// Favourites returns only the favourited cafes, in catalog order.
func (s *CafeService) Favourites() []domain.CafeView {
	views := make([]domain.CafeView, 0)
	for _, view := range s.store.ListAll() {
		if view.Favourited {
			views = append(views, view)
		}
	}
	return views
}

func (s *CafeService) Toggle(ctx context.Context, id string) bool {
	favourited := s.store.ToggleFavourite(id)

	if s.publisher != nil {
		event := domain.FavouriteEvent{
			Type:       domain.EventFavouriteToggled,
			CafeID:     id,
			Favourited: favourited,
			Timestamp:  time.Now(),
		}
		if err := s.publisher.PublishFavourite(ctx, event); err != nil {
			log.Printf("[cafe-svc] failed to publish favourite event: %v", err)
		}
	}

	return favourited
}

var _ CafeServiceInterface = (*CafeService)(nil)

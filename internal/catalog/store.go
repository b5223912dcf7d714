package catalog

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"cafefinder/internal/domain"
)

var ErrCafeNotFound = errors.New("cafe not found")

// Observer receives the full refreshed catalog snapshot after each committed
// favourite toggle.
type Observer func(snapshot []domain.CafeView)

// Subscription is the handle returned by Subscribe. Cancel is idempotent and
// safe to call from inside an observer callback.
type Subscription struct {
	cancelled atomic.Bool
	store     *Store
}

func (s *Subscription) Cancel() {
	if s == nil || s.cancelled.Swap(true) {
		return
	}
	s.store.removeSubscription(s)
}

type subscriber struct {
	sub *Subscription
	fn  Observer
}

// Store owns the fixed cafe catalog and the mutable set of favourited ids.
// Queries derive favourite status at read time against a consistent view of
// the set; toggles are serialized and each one produces exactly one
// notification to every live subscriber, in commit order.
type Store struct {
	catalog []domain.Cafe
	index   map[string]int

	mu         sync.Mutex // guards favourites
	favourites map[string]struct{}

	subsMu sync.Mutex
	subs   []subscriber

	// notifyMu serializes the mutate+deliver sequence so notifications for
	// sequential toggles can never arrive out of order.
	notifyMu sync.Mutex
}

func NewStore(cafes []domain.Cafe) *Store {
	s := &Store{
		catalog:    append([]domain.Cafe(nil), cafes...),
		index:      make(map[string]int, len(cafes)),
		favourites: make(map[string]struct{}),
	}
	for i, cafe := range s.catalog {
		s.index[cafe.ID] = i
	}
	return s
}

// ListAll returns every catalog record in catalog order, annotated with its
// current favourite status.
func (s *Store) ListAll() []domain.CafeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// GetByID returns the record matching id, or ErrCafeNotFound. Absence is a
// routine outcome for callers holding a stale id, not a failure.
func (s *Store) GetByID(id string) (domain.CafeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return domain.CafeView{}, ErrCafeNotFound
	}
	return s.viewLocked(s.catalog[i]), nil
}

// FilterByCategory returns records whose category matches case-insensitively,
// in catalog order. It always filters by the literal string given; any
// "no filter" sentinel is the caller's concern.
func (s *Store) FilterByCategory(category string) []domain.CafeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]domain.CafeView, 0)
	for _, cafe := range s.catalog {
		if strings.EqualFold(cafe.Category, category) {
			views = append(views, s.viewLocked(cafe))
		}
	}
	return views
}

// Search returns records whose title or description contains query as a
// case-insensitive substring, in catalog order. An empty query matches every
// record.
func (s *Store) Search(query string) []domain.CafeView {
	q := strings.ToLower(query)
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]domain.CafeView, 0, len(s.catalog))
	for _, cafe := range s.catalog {
		if strings.Contains(strings.ToLower(cafe.Title), q) ||
			strings.Contains(strings.ToLower(cafe.Description), q) {
			views = append(views, s.viewLocked(cafe))
		}
	}
	return views
}

// ToggleFavourite flips the favourite status of id and returns the new status.
// Ids outside the catalog are accepted: they mutate the set but never surface
// in query results, since queries only walk the catalog.
func (s *Store) ToggleFavourite(id string) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	_, wasFavourited := s.favourites[id]
	if wasFavourited {
		delete(s.favourites, id)
	} else {
		s.favourites[id] = struct{}{}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.deliver(snapshot)
	return !wasFavourited
}

// Subscribe registers fn to receive a fresh ListAll snapshot after every
// committed toggle, including toggles made by the subscriber itself.
func (s *Store) Subscribe(fn Observer) *Subscription {
	sub := &Subscription{store: s}
	s.subsMu.Lock()
	s.subs = append(s.subs, subscriber{sub: sub, fn: fn})
	s.subsMu.Unlock()
	return sub
}

// SubscribeCafe is the id-scoped variant used by detail views: fn fires with
// the cafe's current view whenever that cafe's favourite status changes.
func (s *Store) SubscribeCafe(id string, fn func(domain.CafeView)) *Subscription {
	prev := false
	if view, err := s.GetByID(id); err == nil {
		prev = view.Favourited
	}
	return s.Subscribe(func(snapshot []domain.CafeView) {
		for _, view := range snapshot {
			if view.ID != id {
				continue
			}
			if view.Favourited != prev {
				prev = view.Favourited
				fn(view)
			}
			return
		}
	})
}

func (s *Store) removeSubscription(target *Subscription) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for i, entry := range s.subs {
		if entry.sub == target {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *Store) deliver(snapshot []domain.CafeView) {
	s.subsMu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subsMu.Unlock()

	for _, entry := range subs {
		if entry.sub.cancelled.Load() {
			continue
		}
		notify(entry.fn, snapshot)
	}
}

// notify isolates observer failures so one bad subscriber cannot break
// delivery to the rest.
func notify(fn Observer, snapshot []domain.CafeView) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[cafe-svc] subscriber panic: %v", r)
		}
	}()
	fn(snapshot)
}

func (s *Store) snapshotLocked() []domain.CafeView {
	views := make([]domain.CafeView, 0, len(s.catalog))
	for _, cafe := range s.catalog {
		views = append(views, s.viewLocked(cafe))
	}
	return views
}

func (s *Store) viewLocked(cafe domain.Cafe) domain.CafeView {
	_, favourited := s.favourites[cafe.ID]
	return domain.CafeView{Cafe: cafe, Favourited: favourited}
}

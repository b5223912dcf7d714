package catalog_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"cafefinder/internal/catalog"
	"cafefinder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *catalog.Store {
	return catalog.NewStore(catalog.DefaultCatalog())
}

func TestDefaultCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, cafe := range catalog.DefaultCatalog() {
		assert.False(t, seen[cafe.ID], "duplicate id %s", cafe.ID)
		seen[cafe.ID] = true
	}
	assert.Len(t, seen, 10)
}

func TestToggleFavouriteDoubleToggle(t *testing.T) {
	store := newTestStore()

	for _, cafe := range catalog.DefaultCatalog() {
		first := store.ToggleFavourite(cafe.ID)
		second := store.ToggleFavourite(cafe.ID)

		assert.True(t, first, "first toggle of %s", cafe.ID)
		assert.False(t, second, "second toggle of %s", cafe.ID)

		view, err := store.GetByID(cafe.ID)
		require.NoError(t, err)
		assert.False(t, view.Favourited)
	}
}

func TestQueryConsistencyAfterToggle(t *testing.T) {
	store := newTestStore()

	assert.True(t, store.ToggleFavourite("3"))

	view, err := store.GetByID("3")
	require.NoError(t, err)
	assert.True(t, view.Favourited)

	for _, v := range store.ListAll() {
		assert.Equal(t, v.ID == "3", v.Favourited)
	}

	for _, v := range store.Search(view.Title) {
		if v.ID == "3" {
			assert.True(t, v.Favourited)
		}
	}

	for _, v := range store.FilterByCategory(view.Category) {
		if v.ID == "3" {
			assert.True(t, v.Favourited)
		}
	}
}

func TestSearchEmptyQueryReturnsFullCatalog(t *testing.T) {
	store := newTestStore()
	store.ToggleFavourite("5")

	views := store.Search("")

	require.Len(t, views, 10)
	for i, cafe := range catalog.DefaultCatalog() {
		assert.Equal(t, cafe.ID, views[i].ID, "catalog order preserved")
	}
}

func TestSearchMatchesTitleOrDescriptionCaseInsensitive(t *testing.T) {
	store := newTestStore()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "title match", query: "telegram", wantIDs: []string{"1"}},
		{name: "mixed case title", query: "MOOKA", wantIDs: []string{"3"}},
		{name: "description match", query: "sourdough", wantIDs: []string{"4"}},
		{name: "no match", query: "ramen", wantIDs: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			views := store.Search(testCase.query)
			ids := make([]string, 0, len(views))
			for _, v := range views {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, testCase.wantIDs, ids)
		})
	}
}

func TestFilterByCategoryCaseInsensitive(t *testing.T) {
	store := newTestStore()

	lower := store.FilterByCategory("northbridge")
	proper := store.FilterByCategory("Northbridge")

	assert.Equal(t, proper, lower)
	require.Len(t, proper, 3)
	assert.Equal(t, []string{"3", "4", "5"}, []string{proper[0].ID, proper[1].ID, proper[2].ID})
}

func TestFilterByCategoryUnknownReturnsEmpty(t *testing.T) {
	store := newTestStore()

	views := store.FilterByCategory("Melbourne")

	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestGetByIDUnknown(t *testing.T) {
	store := newTestStore()

	_, err := store.GetByID("does-not-exist")

	assert.ErrorIs(t, err, catalog.ErrCafeNotFound)
}

func TestToggleUnknownIDNeverSurfaces(t *testing.T) {
	store := newTestStore()

	assert.True(t, store.ToggleFavourite("does-not-exist"))

	for _, v := range store.ListAll() {
		assert.False(t, v.Favourited)
	}
	assert.Len(t, store.Search(""), 10)

	// The set was still mutated: a second toggle reports removal.
	assert.False(t, store.ToggleFavourite("does-not-exist"))
}

func TestNotificationOrdering(t *testing.T) {
	store := newTestStore()

	var snapshots [][]domain.CafeView
	sub := store.Subscribe(func(snapshot []domain.CafeView) {
		snapshots = append(snapshots, snapshot)
	})
	defer sub.Cancel()

	store.ToggleFavourite("1")
	store.ToggleFavourite("2")
	store.ToggleFavourite("3")

	require.Len(t, snapshots, 3)

	favourited := func(snapshot []domain.CafeView) []string {
		var ids []string
		for _, v := range snapshot {
			if v.Favourited {
				ids = append(ids, v.ID)
			}
		}
		return ids
	}

	assert.Equal(t, []string{"1"}, favourited(snapshots[0]))
	assert.Equal(t, []string{"1", "2"}, favourited(snapshots[1]))
	assert.Equal(t, []string{"1", "2", "3"}, favourited(snapshots[2]))
}

func TestCancelStopsDeliveryAndIsIdempotent(t *testing.T) {
	store := newTestStore()

	calls := 0
	sub := store.Subscribe(func([]domain.CafeView) { calls++ })

	store.ToggleFavourite("1")
	sub.Cancel()
	sub.Cancel()
	store.ToggleFavourite("2")

	assert.Equal(t, 1, calls)
}

func TestCancelDuringDelivery(t *testing.T) {
	store := newTestStore()

	firstCalls := 0
	var first *catalog.Subscription
	first = store.Subscribe(func([]domain.CafeView) {
		firstCalls++
		first.Cancel()
	})

	secondCalls := 0
	second := store.Subscribe(func([]domain.CafeView) { secondCalls++ })
	defer second.Cancel()

	store.ToggleFavourite("1")
	store.ToggleFavourite("2")

	assert.Equal(t, 1, firstCalls, "self-cancelled after first delivery")
	assert.Equal(t, 2, secondCalls, "unaffected by the other cancellation")
}

func TestSubscriberPanicIsIsolated(t *testing.T) {
	store := newTestStore()

	panicking := store.Subscribe(func([]domain.CafeView) { panic("bad subscriber") })
	defer panicking.Cancel()

	calls := 0
	healthy := store.Subscribe(func([]domain.CafeView) { calls++ })
	defer healthy.Cancel()

	assert.NotPanics(t, func() { store.ToggleFavourite("1") })
	assert.Equal(t, 1, calls)
}

func TestSubscribeCafeFiresOnStatusChange(t *testing.T) {
	store := newTestStore()

	var statuses []bool
	sub := store.SubscribeCafe("2", func(view domain.CafeView) {
		statuses = append(statuses, view.Favourited)
	})
	defer sub.Cancel()

	store.ToggleFavourite("1") // different cafe, no delivery
	store.ToggleFavourite("2")
	store.ToggleFavourite("2")

	assert.Equal(t, []bool{true, false}, statuses)
}

func TestConcurrentTogglesAreSerialized(t *testing.T) {
	store := newTestStore()

	var notifications atomic.Int64
	sub := store.Subscribe(func([]domain.CafeView) { notifications.Add(1) })
	defer sub.Cancel()

	const goroutines = 10
	const togglesEach = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < togglesEach; i++ {
				store.ToggleFavourite("7")
			}
		}()
	}
	wg.Wait()

	// 250 toggles is an even count: no update may be lost, so the final
	// state must be back to not favourited.
	view, err := store.GetByID("7")
	require.NoError(t, err)
	assert.False(t, view.Favourited)
	assert.Equal(t, int64(goroutines*togglesEach), notifications.Load())
}

func TestEndToEndFavouriteFlow(t *testing.T) {
	store := newTestStore()

	assert.True(t, store.ToggleFavourite("3"))

	var favourited []string
	for _, v := range store.ListAll() {
		if v.Favourited {
			favourited = append(favourited, v.ID)
		}
	}
	assert.Equal(t, []string{"3"}, favourited)

	assert.False(t, store.ToggleFavourite("3"))

	for _, v := range store.ListAll() {
		assert.False(t, v.Favourited)
	}
}

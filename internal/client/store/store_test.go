package store

import (
	"context"
	"sync"
	"testing"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCatalog(t *testing.T) {
	fc := withCatalog(catalog)
	s := newTestStore(fc, nil)
	ctx := context.Background()

	require.NoError(t, s.FetchCatalog(ctx))
	require.NoError(t, s.FetchCatalog(ctx))

	st := s.State().Catalog
	assert.Equal(t, catalog, st.Items)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)

	fc.ingredientsFn = nil
	require.Error(t, s.FetchCatalog(ctx))
	st = s.State().Catalog
	assert.Equal(t, msgUnavailable, st.Error)
	assert.Equal(t, catalog, st.Items)
}

func TestFetchFeed_ReplacesAtomically(t *testing.T) {
	feed := &models.Feed{Orders: []models.Order{{Number: 1}, {Number: 2}}, Total: 100, TotalToday: 5}
	fc := &fakeClient{feedFn: func(context.Context) (*models.Feed, error) { return feed, nil }}
	s := newTestStore(fc, nil)

	require.NoError(t, s.FetchFeed(context.Background()))
	st := s.State().Feed
	assert.Len(t, st.Orders, 2)
	assert.Equal(t, 100, st.Total)
	assert.Equal(t, 5, st.TotalToday)

	feed = &models.Feed{Orders: []models.Order{{Number: 3}}, Total: 101, TotalToday: 6}
	require.NoError(t, s.FetchFeed(context.Background()))
	st = s.State().Feed
	require.Len(t, st.Orders, 1)
	assert.Equal(t, 3, st.Orders[0].Number)
	assert.Equal(t, 101, st.Total)
	assert.Equal(t, 6, st.TotalToday)
}

func TestStaleCompletionIsDropped(t *testing.T) {
	first := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	fc := &fakeClient{feedFn: func(context.Context) (*models.Feed, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(first)
			<-release
			return &models.Feed{Total: 1}, nil
		}
		return &models.Feed{Total: 2}, nil
	}}
	s := newTestStore(fc, nil)

	done := make(chan error, 1)
	go func() { done <- s.FetchFeed(context.Background()) }()
	<-first

	require.NoError(t, s.FetchFeed(context.Background()))
	close(release)
	require.NoError(t, <-done)

	st := s.State().Feed
	assert.Equal(t, 2, st.Total, "the most recent call wins")
	assert.False(t, st.IsLoading)
}

func TestSubscribe(t *testing.T) {
	s := newTestStore(&fakeClient{}, nil)

	var got []State
	unsubscribe := s.Subscribe(func(st State) { got = append(got, st) })

	s.AddIngredient(bunB1)
	s.AddIngredient(sauceS1)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"b1", "b1"}, got[0].Orders.BuilderList)
	assert.Equal(t, []string{"b1", "s1", "b1"}, got[1].Orders.BuilderList)

	unsubscribe()
	s.RemoveIngredient("s1")
	assert.Len(t, got, 2)
}

func TestStateSnapshotIsIsolated(t *testing.T) {
	s := newTestStore(withCatalog(catalog), nil)
	require.NoError(t, s.FetchCatalog(context.Background()))
	s.AddIngredient(bunB1)

	snap := s.State()
	snap.Orders.BuilderList[0] = "zz"
	snap.Catalog.Items[0].Price = 0

	st := s.State()
	assert.Equal(t, "b1", st.Orders.BuilderList[0])
	assert.Equal(t, 100, st.Catalog.Items[0].Price)
}

func TestMoveIngredientThroughStore(t *testing.T) {
	s := newTestStore(&fakeClient{}, nil)
	s.AddIngredient(bunB1)
	s.AddIngredient(sauceS1)
	s.AddIngredient(mainM1)

	s.MoveIngredient(2, Up)
	assert.Equal(t, []string{"b1", "m1", "s1", "b1"}, s.State().Orders.BuilderList)

	s.MoveIngredient(0, Up)
	s.MoveIngredient(3, Down)
	assert.Equal(t, []string{"b1", "m1", "s1", "b1"}, s.State().Orders.BuilderList)
}

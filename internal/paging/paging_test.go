// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paging

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func ints(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}

// pages serves canned pages; a missing page yields an empty result.
type pages struct {
	mu    sync.Mutex
	data  map[int][]int
	errs  map[int]error
	calls []int
}

func (p *pages) fetch(_ context.Context, page, _ int) ([]int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, page)
	if err := p.errs[page]; err != nil {
		return nil, err
	}
	return p.data[page], nil
}

// ── Infinite ────────────────────────────────────────────────────────────────

func TestInfinite_InitialState(t *testing.T) {
	f := NewInfinite((&pages{}).fetch, 10)

	s := f.State()
	assert.Equal(t, ShortPageTermination, f.Strategy())
	assert.Equal(t, 1, s.Cursor)
	assert.True(t, s.HasMore)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Items)
}

func TestInfinite_ShortPageStopsAndFurtherCallsAreNoOps(t *testing.T) {
	p := &pages{data: map[int][]int{1: ints(0, 10), 2: ints(10, 10), 3: ints(20, 4)}}
	f := NewInfinite(p.fetch, 10)
	ctx := context.Background()

	require.NoError(t, f.LoadNext(ctx))
	assert.True(t, f.State().HasMore)
	require.NoError(t, f.LoadNext(ctx))
	assert.True(t, f.State().HasMore)
	require.NoError(t, f.LoadNext(ctx))

	s := f.State()
	assert.Len(t, s.Items, 24)
	assert.False(t, s.HasMore)
	assert.Equal(t, 4, s.Cursor)

	require.NoError(t, f.LoadNext(ctx))
	assert.Equal(t, []int{1, 2, 3}, p.calls)
	assert.Len(t, f.State().Items, 24)
}

func TestInfinite_EmptyPageKeepsItemsAndCursor(t *testing.T) {
	p := &pages{data: map[int][]int{1: ints(0, 10)}}
	f := NewInfinite(p.fetch, 10)
	ctx := context.Background()

	require.NoError(t, f.LoadNext(ctx))
	require.NoError(t, f.LoadNext(ctx))

	s := f.State()
	assert.Equal(t, ints(0, 10), s.Items)
	assert.False(t, s.HasMore)
	assert.Equal(t, 2, s.Cursor)
}

func TestInfinite_EmptyFirstPageKeepsItems(t *testing.T) {
	tests := []struct {
		name      string
		preload   bool
		call      func(f *Infinite[int], ctx context.Context) error
		wantItems []int
	}{
		{
			name:      "initial load",
			call:      (*Infinite[int]).LoadNext,
			wantItems: nil,
		},
		{
			name:      "initial refresh",
			call:      (*Infinite[int]).Refresh,
			wantItems: nil,
		},
		{
			name:      "refresh after items were loaded",
			preload:   true,
			call:      (*Infinite[int]).Refresh,
			wantItems: ints(0, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &pages{data: map[int][]int{}}
			f := NewInfinite(p.fetch, 10)
			ctx := context.Background()

			if tt.preload {
				p.data[1] = ints(0, 10)
				require.NoError(t, f.LoadNext(ctx))
				p.data[1] = nil
			}

			require.NoError(t, tt.call(f, ctx))

			s := f.State()
			assert.Equal(t, tt.wantItems, s.Items)
			assert.False(t, s.HasMore)
			assert.False(t, s.Loading)

			// exhausted: further scrolling issues no request
			calls := len(p.calls)
			require.NoError(t, f.LoadNext(ctx))
			assert.Len(t, p.calls, calls)
		})
	}
}

func TestInfinite_RefreshReplacesMidScroll(t *testing.T) {
	p := &pages{data: map[int][]int{1: ints(0, 10), 2: ints(10, 10), 3: ints(20, 10)}}
	f := NewInfinite(p.fetch, 10)
	ctx := context.Background()

	for range 3 {
		require.NoError(t, f.LoadNext(ctx))
	}
	assert.Len(t, f.State().Items, 30)

	p.data[1] = ints(100, 10)
	require.NoError(t, f.Refresh(ctx))

	s := f.State()
	assert.Equal(t, ints(100, 10), s.Items)
	assert.Equal(t, 2, s.Cursor)
	assert.True(t, s.HasMore)
}

func TestInfinite_FailureOnFirstPageClearsItems(t *testing.T) {
	p := &pages{data: map[int][]int{1: ints(0, 10)}}
	f := NewInfinite(p.fetch, 10)
	ctx := context.Background()

	require.NoError(t, f.LoadNext(ctx))

	p.errs = map[int]error{1: errBoom}
	err := f.Refresh(ctx)

	assert.ErrorIs(t, err, errBoom)
	s := f.State()
	assert.Empty(t, s.Items)
	assert.False(t, s.HasMore)
	assert.False(t, s.Loading)
}

func TestInfinite_FailureLaterKeepsItemsAndStops(t *testing.T) {
	p := &pages{data: map[int][]int{1: ints(0, 10)}, errs: map[int]error{2: errBoom}}
	f := NewInfinite(p.fetch, 10)
	ctx := context.Background()

	require.NoError(t, f.LoadNext(ctx))
	assert.ErrorIs(t, f.LoadNext(ctx), errBoom)

	s := f.State()
	assert.Equal(t, ints(0, 10), s.Items)
	assert.False(t, s.HasMore)
	assert.Equal(t, 2, s.Cursor)

	// scrolling stays stopped until refresh
	require.NoError(t, f.LoadNext(ctx))
	assert.Equal(t, []int{1, 2}, p.calls)
}

func TestInfinite_ConcurrentLoadNextIssuesOneRequest(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	f := NewInfinite(func(_ context.Context, page, limit int) ([]int, error) {
		calls.Add(1)
		close(entered)
		<-release
		return ints(0, limit), nil
	}, 10)
	ctx := context.Background()

	done := make(chan error)
	go func() { done <- f.LoadNext(ctx) }()

	<-entered
	assert.True(t, f.State().Loading)
	require.NoError(t, f.LoadNext(ctx))
	require.NoError(t, f.Refresh(ctx))

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("LoadNext did not finish")
	}

	assert.Equal(t, int32(1), calls.Load())
	assert.Len(t, f.State().Items, 10)
	assert.False(t, f.State().Loading)
}

// ── Numbered ────────────────────────────────────────────────────────────────

type countedPages struct {
	pages map[int][]string
	total int
	err   error
	calls []int
}

func (c *countedPages) fetch(_ context.Context, page, _ int) ([]string, int, error) {
	c.calls = append(c.calls, page)
	if c.err != nil {
		return nil, 0, c.err
	}
	return c.pages[page], c.total, nil
}

func names(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix
	}
	return out
}

func TestNumbered_InitialState(t *testing.T) {
	f := NewNumbered((&countedPages{}).fetch, 50)

	s := f.State()
	assert.Equal(t, TotalCountPagination, f.Strategy())
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, 1, s.TotalPages)
	assert.Empty(t, s.Items)
}

func TestNumbered_TotalCount(t *testing.T) {
	c := &countedPages{
		pages: map[int][]string{1: names("p1", 50), 2: names("p2", 50)},
		total: 120,
	}
	f := NewNumbered(c.fetch, 50)
	ctx := context.Background()

	require.NoError(t, f.GoToPage(ctx, 1))
	require.NoError(t, f.GoToPage(ctx, 2))

	s := f.State()
	assert.Equal(t, 3, s.TotalPages)
	assert.Equal(t, 2, s.CurrentPage)
	assert.Equal(t, names("p2", 50), s.Items)
	assert.True(t, s.HasMore)
}

func TestNumbered_NoTotal(t *testing.T) {
	c := &countedPages{pages: map[int][]string{1: names("a", 50), 2: names("b", 7)}}
	f := NewNumbered(c.fetch, 50)
	ctx := context.Background()

	require.NoError(t, f.GoToPage(ctx, 1))
	assert.Equal(t, 2, f.State().TotalPages)

	require.NoError(t, f.GoToPage(ctx, 2))
	assert.Equal(t, 2, f.State().TotalPages)
	assert.False(t, f.State().HasMore)
}

func TestNumbered_ClampsPage(t *testing.T) {
	c := &countedPages{pages: map[int][]string{1: names("a", 3)}}
	f := NewNumbered(c.fetch, 50)

	require.NoError(t, f.GoToPage(context.Background(), 0))
	assert.Equal(t, []int{1}, c.calls)
	assert.Equal(t, 1, f.State().CurrentPage)
}

func TestNumbered_FailureResets(t *testing.T) {
	c := &countedPages{pages: map[int][]string{1: names("a", 50), 2: names("b", 50)}, total: 120}
	f := NewNumbered(c.fetch, 50)
	ctx := context.Background()

	require.NoError(t, f.GoToPage(ctx, 2))

	c.err = errBoom
	assert.ErrorIs(t, f.GoToPage(ctx, 3), errBoom)

	s := f.State()
	assert.Empty(t, s.Items)
	assert.Equal(t, 1, s.TotalPages)
	assert.Equal(t, 2, s.CurrentPage)
	assert.False(t, s.Loading)
}

func TestNumbered_Refresh(t *testing.T) {
	c := &countedPages{pages: map[int][]string{1: names("a", 2), 2: names("b", 2)}, total: 4}
	f := NewNumbered(c.fetch, 2)
	ctx := context.Background()

	require.NoError(t, f.GoToPage(ctx, 2))
	require.NoError(t, f.Refresh(ctx))

	assert.Equal(t, []int{2, 1}, c.calls)
	assert.Equal(t, names("a", 2), f.State().Items)
}

// ── Static ──────────────────────────────────────────────────────────────────

type post struct{ id int64 }

func TestStatic_LoadAndRemove(t *testing.T) {
	items := []post{{1}, {2}, {3}}
	f := NewStatic(func(context.Context) ([]post, error) { return items, nil })

	require.NoError(t, f.Load(context.Background()))
	assert.Equal(t, Unpaged, f.Strategy())

	assert.Equal(t, 1, f.Remove(func(p post) bool { return p.id == 2 }))
	assert.Equal(t, []post{{1}, {3}}, f.State().Items)

	// absent id leaves the list unchanged
	assert.Equal(t, 0, f.Remove(func(p post) bool { return p.id == 99 }))
	assert.Equal(t, []post{{1}, {3}}, f.State().Items)

	// source slice is not aliased
	assert.Equal(t, []post{{1}, {2}, {3}}, items)
}

func TestStatic_FailureClears(t *testing.T) {
	fail := false
	f := NewStatic(func(context.Context) ([]post, error) {
		if fail {
			return nil, errBoom
		}
		return []post{{1}}, nil
	})
	ctx := context.Background()

	require.NoError(t, f.Load(ctx))
	fail = true

	assert.ErrorIs(t, f.Refresh(ctx), errBoom)
	assert.Empty(t, f.State().Items)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paging

import "context"

// Infinite accumulates pages for infinite scrolling.
type Infinite[T any] struct {
	core[T]

	fetch    PageFunc[T]
	pageSize int
}

var _ Fetcher[struct{}] = (*Infinite[struct{}])(nil)

// NewInfinite returns an empty collection positioned at page 1.
func NewInfinite[T any](fetch PageFunc[T], pageSize int) *Infinite[T] {
	f := &Infinite[T]{fetch: fetch, pageSize: pageSize}
	f.state = State[T]{Cursor: 1, HasMore: true}
	return f
}

func (f *Infinite[T]) Strategy() Strategy {
	return ShortPageTermination
}

// LoadNext fetches the page at the cursor. It is a no-op while loading or
// once the data is exhausted.
//
// An empty page keeps the items and sets HasMore to false. A failure on
// page 1 clears the items; a later failure keeps them. Either way HasMore
// becomes false, so scrolling stops until Refresh.
func (f *Infinite[T]) LoadNext(ctx context.Context) error {
	return f.load(ctx, false)
}

// Refresh restarts from page 1 and replaces the items. It is a no-op while
// loading.
func (f *Infinite[T]) Refresh(ctx context.Context) error {
	return f.load(ctx, true)
}

func (f *Infinite[T]) load(ctx context.Context, reset bool) error {
	var page int

	admitted := f.begin(
		func(s *State[T]) bool { return reset || s.HasMore },
		func(s *State[T]) {
			if reset {
				s.Cursor = 1
				s.HasMore = true
			}
			page = s.Cursor
		},
	)
	if !admitted {
		return nil
	}

	items, err := f.fetch(ctx, page, f.pageSize)

	f.end(func(s *State[T]) {
		if err != nil {
			if page == 1 {
				s.Items = nil
			}
			s.HasMore = false
			return
		}

		if len(items) == 0 {
			s.HasMore = false
			return
		}

		if page == 1 {
			s.Items = append([]T(nil), items...)
		} else {
			s.Items = append(s.Items, items...)
		}
		s.HasMore = len(items) == f.pageSize
		s.Cursor = page + 1
	})

	return err
}

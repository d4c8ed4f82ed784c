// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paging

import "context"

// Static holds a list loaded in one request.
type Static[T any] struct {
	core[T]

	fetch ListFunc[T]
}

var _ Fetcher[struct{}] = (*Static[struct{}])(nil)

func NewStatic[T any](fetch ListFunc[T]) *Static[T] {
	return &Static[T]{fetch: fetch}
}

func (f *Static[T]) Strategy() Strategy {
	return Unpaged
}

// Load replaces the items. A failure clears them.
func (f *Static[T]) Load(ctx context.Context) error {
	if !f.begin(nil, nil) {
		return nil
	}

	items, err := f.fetch(ctx)

	f.end(func(s *State[T]) {
		if err != nil {
			s.Items = nil
			return
		}
		s.Items = append([]T(nil), items...)
	})

	return err
}

func (f *Static[T]) Refresh(ctx context.Context) error {
	return f.Load(ctx)
}

// Remove drops every item matching match and returns how many were removed.
func (f *Static[T]) Remove(match func(T) bool) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.state.Items[:0:0]
	for _, item := range f.state.Items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	removed := len(f.state.Items) - len(kept)
	if removed > 0 {
		f.state.Items = kept
	}
	return removed
}

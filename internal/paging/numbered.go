// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paging

import "context"

// Numbered shows one page at a time.
type Numbered[T any] struct {
	core[T]

	fetch    CountedPageFunc[T]
	pageSize int
}

var _ Fetcher[struct{}] = (*Numbered[struct{}])(nil)

// NewNumbered returns an empty collection on page 1 of 1.
func NewNumbered[T any](fetch CountedPageFunc[T], pageSize int) *Numbered[T] {
	f := &Numbered[T]{fetch: fetch, pageSize: pageSize}
	f.state = State[T]{CurrentPage: 1, TotalPages: 1}
	return f
}

func (f *Numbered[T]) Strategy() Strategy {
	return TotalCountPagination
}

// GoToPage replaces the items with page n (clamped to at least 1).
//
// TotalPages is ceil(total/pageSize) when the server reports a total;
// otherwise n+1 after a full page and n after a short one. On failure the
// items are cleared, TotalPages resets to 1 and CurrentPage is kept.
func (f *Numbered[T]) GoToPage(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}

	if !f.begin(nil, nil) {
		return nil
	}

	items, total, err := f.fetch(ctx, n, f.pageSize)

	f.end(func(s *State[T]) {
		if err != nil {
			s.Items = nil
			s.TotalPages = 1
			s.HasMore = s.CurrentPage < s.TotalPages
			return
		}

		s.Items = append([]T(nil), items...)
		s.CurrentPage = n
		s.TotalPages = f.totalPages(n, len(items), total)
		s.HasMore = s.CurrentPage < s.TotalPages
	})

	return err
}

// Refresh reloads page 1.
func (f *Numbered[T]) Refresh(ctx context.Context) error {
	return f.GoToPage(ctx, 1)
}

func (f *Numbered[T]) totalPages(page, got, total int) int {
	switch {
	case total > 0:
		return (total + f.pageSize - 1) / f.pageSize
	case got == f.pageSize:
		return page + 1
	default:
		return page
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paging accumulates paginated API results into screen-local
// collections.
//
// Two strategies are provided. [Infinite] keeps appending pages until the
// server returns a short page ([ShortPageTermination]); [Numbered] shows one
// page at a time and derives the page count from a server-reported total
// ([TotalCountPagination]). [Static] holds an unpaged list.
//
// Every collection admits one request at a time: a call made while another
// is in flight returns immediately without issuing a request.
package paging

import (
	"context"
	"sync"
)

// Strategy identifies how a collection decides there is more data.
type Strategy int

const (
	// ShortPageTermination stops when a page has fewer items than the page
	// size.
	ShortPageTermination Strategy = iota + 1
	// TotalCountPagination computes the page count from a reported total.
	TotalCountPagination
	// Unpaged loads everything in one request.
	Unpaged
)

func (s Strategy) String() string {
	switch s {
	case ShortPageTermination:
		return "short-page-termination"
	case TotalCountPagination:
		return "total-count"
	case Unpaged:
		return "unpaged"
	default:
		return "unknown"
	}
}

// State is a snapshot of a collection. Cursor is used by [Infinite];
// CurrentPage and TotalPages by [Numbered].
type State[T any] struct {
	Items       []T
	Cursor      int
	CurrentPage int
	TotalPages  int
	HasMore     bool
	Loading     bool
}

// Fetcher is the contract shared by all collections. Screens refresh any
// collection through it without knowing its strategy.
type Fetcher[T any] interface {
	Strategy() Strategy
	// Refresh reloads from the first page, replacing the items.
	Refresh(ctx context.Context) error
	State() State[T]
}

// PageFunc fetches one page of at most limit items.
type PageFunc[T any] func(ctx context.Context, page, limit int) ([]T, error)

// CountedPageFunc fetches one page and the total item count; total is zero
// when unknown.
type CountedPageFunc[T any] func(ctx context.Context, page, limit int) (items []T, total int, err error)

// ListFunc fetches an unpaged list.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// core holds the state and the single-flight guard.
type core[T any] struct {
	mu    sync.Mutex
	state State[T]
}

// begin marks the collection as loading under the lock after running
// prepare. It returns false, without running prepare, when a load is
// already in flight or admit rejects the current state.
func (c *core[T]) begin(admit func(*State[T]) bool, prepare func(*State[T])) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		return false
	}
	if admit != nil && !admit(&c.state) {
		return false
	}
	if prepare != nil {
		prepare(&c.state)
	}
	c.state.Loading = true
	return true
}

// end applies update and clears the loading flag.
func (c *core[T]) end(update func(*State[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()

	update(&c.state)
	c.state.Loading = false
}

// State returns a copy of the current state.
func (c *core[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if c.state.Items != nil {
		s.Items = append(make([]T, 0, len(c.state.Items)), c.state.Items...)
	}
	return s
}

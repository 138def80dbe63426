// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package syncx contains synchronization helpers shared by the licenser
// packages.
package syncx

import (
	"sync"

	"github.com/go4org/hashtriemap"
)

// Lazy represents a lazily computed value.
type Lazy[T any] struct {
	once sync.Once
	val  T
}

// Get returns T, calling f to compute it, if necessary.
func (l *Lazy[T]) Get(f func() T) T {
	l.once.Do(func() { l.val = f() })
	return l.val
}

// Set is a set of comparable values safe for concurrent use.
// The zero Set is empty and ready to use. It should not be copied.
type Set[T comparable] struct {
	m hashtriemap.HashTrieMap[T, struct{}]
}

// Add adds v to the set. It reports whether v was not already present.
func (s *Set[T]) Add(v T) bool {
	_, loaded := s.m.LoadOrStore(v, struct{}{})
	return !loaded
}

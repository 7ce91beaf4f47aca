// Package model holds process-wide model handles that are loaded at most once.
package model

import (
	"io"
	"sync"
)

// Handle lazily loads a model resource once. The outcome of the first load,
// success or failure, is kept for the life of the handle and never retried.
type Handle[T any] struct {
	name   string
	once   sync.Once
	load   func() (T, error)
	value  T
	err    error
	loaded bool
}

// NewHandle creates a handle that calls load on first use.
func NewHandle[T any](name string, load func() (T, error)) *Handle[T] {
	return &Handle[T]{name: name, load: load}
}

// Ready returns a handle that is already loaded with value.
func Ready[T any](name string, value T) *Handle[T] {
	h := &Handle[T]{name: name}
	h.once.Do(func() {
		h.value = value
		h.loaded = true
	})
	return h
}

// Failed returns a handle whose load already failed with err.
func Failed[T any](name string, err error) *Handle[T] {
	h := &Handle[T]{name: name}
	h.once.Do(func() { h.err = err })
	return h
}

// Get returns the loaded value or the recorded load error.
func (h *Handle[T]) Get() (T, error) {
	h.once.Do(func() {
		h.value, h.err = h.load()
		h.loaded = h.err == nil
	})
	return h.value, h.err
}

// Name identifies the resource for diagnostics.
func (h *Handle[T]) Name() string {
	return h.name
}

// Close releases the loaded value if it implements io.Closer. A handle that
// was never used, or whose load failed, has nothing to release.
func (h *Handle[T]) Close() error {
	if !h.loaded {
		return nil
	}
	if c, ok := any(h.value).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"sort"
	"sync"
)

// PresenterFactory creates a presenter for frames of the given size.
type PresenterFactory func(width, height int) (Presenter, error)

// ErrNoBackendAvailable is returned when no presenter backend is registered.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

type backend struct {
	name     string
	priority int
	factory  PresenterFactory
}

// registry maps backend names to factories. The backend with the highest
// priority is the default.
type registry struct {
	mu       sync.RWMutex
	backends map[string]backend
}

var globalRegistry = newRegistry()

func newRegistry() *registry {
	return &registry{backends: make(map[string]backend)}
}

// Register adds a presenter backend. A window integration registers itself
// with a priority above the built-ins to become the default:
//
//	func init() {
//	    surface.Register("texture", 100, textureFactory)
//	}
//
// Registering an existing name replaces it.
func Register(name string, priority int, factory PresenterFactory) {
	globalRegistry.register(name, priority, factory)
}

// Backends returns the registered backend names, highest priority first.
func Backends() []string {
	return globalRegistry.names()
}

// NewPresenter creates a presenter with the highest priority backend.
func NewPresenter(width, height int) (Presenter, error) {
	return globalRegistry.newDefault(width, height)
}

// NewPresenterByName creates a presenter with the named backend.
func NewPresenterByName(name string, width, height int) (Presenter, error) {
	return globalRegistry.newByName(name, width, height)
}

func (r *registry) register(name string, priority int, factory PresenterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = backend{name: name, priority: priority, factory: factory}
}

// names sorts by priority, ties broken by name.
func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority > list[j].priority
		}
		return list[i].name < list[j].name
	})

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.name
	}
	return names
}

func (r *registry) newDefault(width, height int) (Presenter, error) {
	names := r.names()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}
	return r.newByName(names[0], width, height)
}

func (r *registry) newByName(name string, width, height int) (Presenter, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	return b.factory(width, height)
}

func init() {
	Register("image", 10, func(width, height int) (Presenter, error) {
		return NewImagePresenter(image.NewRGBA(image.Rect(0, 0, width, height))), nil
	})
	Register("discard", 0, func(int, int) (Presenter, error) {
		return Discard, nil
	})
}

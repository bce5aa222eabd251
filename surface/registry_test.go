// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"reflect"
	"testing"
)

func imageFactory(int, int) (Presenter, error) {
	return NewImagePresenter(nil), nil
}

func TestRegistryNames(t *testing.T) {
	r := newRegistry()
	r.register("low", 10, imageFactory)
	r.register("high", 100, imageFactory)
	r.register("mid", 50, imageFactory)
	r.register("also-mid", 50, imageFactory)

	want := []string{"high", "also-mid", "mid", "low"}
	if got := r.names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names() = %v, want %v", got, want)
	}
}

func TestRegistryDefaultIsHighestPriority(t *testing.T) {
	r := newRegistry()
	r.register("discard", 0, func(int, int) (Presenter, error) { return Discard, nil })
	r.register("image", 10, imageFactory)

	p, err := r.newDefault(4, 4)
	if err != nil {
		t.Fatalf("newDefault() error = %v", err)
	}
	if _, ok := p.(*ImagePresenter); !ok {
		t.Errorf("newDefault() = %T, want *ImagePresenter", p)
	}
}

func TestRegistryEmpty(t *testing.T) {
	if _, err := newRegistry().newDefault(1, 1); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("newDefault() error = %v, want %v", err, ErrNoBackendAvailable)
	}
}

func TestRegistryNotFound(t *testing.T) {
	_, err := newRegistry().newByName("vulkan", 1, 1)
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) || nf.Name != "vulkan" {
		t.Fatalf("newByName() error = %v, want BackendNotFoundError", err)
	}
	if msg := err.Error(); msg != "surface: backend not found: vulkan" {
		t.Errorf("error message = %q, unexpected format", msg)
	}
}

func TestRegistryFactoryError(t *testing.T) {
	boom := errors.New("boom")
	r := newRegistry()
	r.register("broken", 1, func(int, int) (Presenter, error) { return nil, boom })
	if _, err := r.newDefault(1, 1); !errors.Is(err, boom) {
		t.Errorf("newDefault() error = %v, want the factory error", err)
	}
}

func TestRegistryReplace(t *testing.T) {
	r := newRegistry()
	r.register("a", 1, imageFactory)
	r.register("b", 5, imageFactory)
	r.register("a", 10, imageFactory)
	if got := r.names(); got[0] != "a" || len(got) != 2 {
		t.Errorf("names() = %v, want a first after re-registering", got)
	}
}

func TestGlobalRegistry(t *testing.T) {
	if got := Backends(); len(got) < 2 || got[0] != "image" {
		t.Fatalf("Backends() = %v, want image first", got)
	}

	p, err := NewPresenter(3, 2)
	if err != nil {
		t.Fatalf("NewPresenter() error = %v", err)
	}
	ip, ok := p.(*ImagePresenter)
	if !ok {
		t.Fatalf("NewPresenter() = %T, want *ImagePresenter", p)
	}
	if b := ip.Image().Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("image bounds = %v, want 3x2", b)
	}

	d, err := NewPresenterByName("discard", 1, 1)
	if err != nil {
		t.Fatalf("NewPresenterByName(discard) error = %v", err)
	}
	if err := d.Present(nil, 0, 0); err != nil {
		t.Errorf("Discard.Present() = %v", err)
	}
}

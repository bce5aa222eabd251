// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch/surface"
)

// Rendering errors.
var (
	// ErrPresenterClosed is returned when a closed presenter is used.
	ErrPresenterClosed = errors.New("overlay: presenter is closed")

	// ErrInvalidRenderer is returned when the draw context has no texture
	// creator.
	ErrInvalidRenderer = errors.New("overlay: draw context has no texture creator")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// TexturePresenter uploads presented canvas frames to a GPU texture.
//
// Present only encodes the frame into premultiplied RGBA bytes; the texture
// is created, updated or recreated by the next RenderTo, which runs inside
// the window's draw callback where a texture creator is available.
//
// TexturePresenter is NOT safe for concurrent use. Present and RenderTo must
// be called from the same goroutine.
type TexturePresenter struct {
	data        []byte
	width       int
	height      int
	texture     gpucontext.Texture
	oldTexture  gpucontext.Texture // Previous texture awaiting deferred destruction
	dirty       bool               // Needs GPU upload
	sizeChanged bool               // Texture must be recreated
	closed      bool
}

// NewTexturePresenter creates a presenter with no texture. The texture is
// created on the first RenderTo after a Present.
func NewTexturePresenter() *TexturePresenter {
	return &TexturePresenter{}
}

// Present implements surface.Presenter.
func (p *TexturePresenter) Present(frame []uint32, width, height int) error {
	if p.closed {
		return ErrPresenterClosed
	}
	data, err := surface.EncodePixels(p.data, frame, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		return err
	}
	p.data = data
	if width != p.width || height != p.height {
		p.width, p.height = width, height
		p.sizeChanged = true
	}
	p.dirty = true
	return nil
}

// IsDirty reports whether a presented frame has not been uploaded yet.
func (p *TexturePresenter) IsDirty() bool {
	return p.dirty
}

// Texture returns the current GPU texture, or nil before the first upload.
func (p *TexturePresenter) Texture() gpucontext.Texture {
	return p.texture
}

// RenderTo uploads the last presented frame if needed and draws it at
// (0, 0). Before the first Present there is nothing to draw and RenderTo
// returns nil.
func (p *TexturePresenter) RenderTo(dc gpucontext.TextureDrawer) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if p.width == 0 || p.height == 0 {
		return nil
	}

	// The old texture may still be referenced by in-flight command buffers;
	// it is destroyed after the replacement's creation waited for the GPU.
	if p.sizeChanged && p.texture != nil {
		p.destroyOld()
		p.oldTexture = p.texture
		p.texture = nil
	}
	p.sizeChanged = false

	switch {
	case p.texture == nil:
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		tex, err := creator.NewTextureFromRGBA(p.width, p.height, p.data)
		if err != nil {
			return fmt.Errorf("overlay: NewTextureFromRGBA failed: %w", err)
		}
		// Encoded frames are premultiplied.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		p.texture = tex
		p.destroyOld()
	case p.dirty:
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(p.data); err != nil {
				return fmt.Errorf("overlay: texture update failed: %w", err)
			}
		}
	}
	p.dirty = false

	return dc.DrawTexture(p.texture, 0, 0)
}

// Close destroys the textures. Close is idempotent.
func (p *TexturePresenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.destroyOld()
	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
	p.data = nil
	return nil
}

func (p *TexturePresenter) destroyOld() {
	if d, ok := p.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.oldTexture = nil
}

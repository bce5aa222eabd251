package cursor

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/cache"
)

// CacheSize is the number of bitmaps a Cache keeps: every radius of the
// default range for a few colors.
const CacheSize = 64

type key struct {
	erasing bool
	ink     sketch.Color
	radius  int
	scale   float64
}

// Cache memoizes cursor bitmaps. Scrolling through radii rebuilds the same
// few bitmaps over and over.
type Cache struct {
	c *cache.Cache[key, Image]
}

// NewCache creates an empty cursor cache.
func NewCache() *Cache {
	return &Cache{c: cache.New[key, Image](CacheSize)}
}

// ForMode returns ForMode(mode, radius) scaled by factor, building it on a
// miss. The returned bitmap is shared and must not be modified.
func (c *Cache) ForMode(mode sketch.Mode, radius int, factor float64) Image {
	k := key{radius: radius, scale: factor}
	if mode != nil {
		k.ink = mode.Ink()
	}
	if _, ok := mode.(sketch.Erasing); ok {
		k.erasing = true
		k.ink = 0
	}
	return c.c.GetOrCreate(k, func() Image {
		return Scale(ForMode(mode, radius), factor)
	})
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() cache.Stats {
	return c.c.Stats()
}

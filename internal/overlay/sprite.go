package overlay

import "fmt"

// IndicatorSprite is the atlas key of the overlay texture.
const IndicatorSprite = "container_indicator:block/indicator"

// Sprite is a rectangle of a texture atlas in normalized coordinates.
type Sprite struct {
	Name   string
	U0, V0 float32
	U1, V1 float32
}

// FullSprite covers a whole texture.
func FullSprite(name string) Sprite {
	return Sprite{Name: name, U1: 1, V1: 1}
}

// U maps a 0..1 fraction across the sprite to an atlas coordinate.
func (s Sprite) U(f float32) float32 {
	return s.U0 + (s.U1-s.U0)*f
}

// V maps a 0..1 fraction down the sprite to an atlas coordinate.
func (s Sprite) V(f float32) float32 {
	return s.V0 + (s.V1-s.V0)*f
}

// SpriteSource resolves sprite names to atlas rectangles.
type SpriteSource interface {
	Sprite(name string) Sprite
}

// Atlas is a fixed grid of equally sized sprite cells.
type Atlas struct {
	cols, rows int
	index      map[string]int
	names      []string
}

// NewAtlas lays out the named sprites row by row in a square grid. Duplicates share
// a cell. The first cell is reserved for the missing-texture sprite.
func NewAtlas(names ...string) *Atlas {
	a := &Atlas{index: make(map[string]int)}
	a.add(MissingSprite)
	for _, n := range names {
		a.add(n)
	}
	a.cols = 1
	for a.cols*a.cols < len(a.names) {
		a.cols++
	}
	a.rows = (len(a.names) + a.cols - 1) / a.cols
	return a
}

// MissingSprite is returned for unknown names.
const MissingSprite = "missingno"

func (a *Atlas) add(name string) {
	if _, ok := a.index[name]; ok {
		return
	}
	a.index[name] = len(a.names)
	a.names = append(a.names, name)
}

// Sprite implements SpriteSource. Unknown names resolve to the missing sprite.
func (a *Atlas) Sprite(name string) Sprite {
	i, ok := a.index[name]
	if !ok {
		i = 0
	}
	col, row := i%a.cols, i/a.cols
	cw, ch := 1/float32(a.cols), 1/float32(a.rows)
	return Sprite{
		Name: a.names[i],
		U0:   float32(col) * cw,
		V0:   float32(row) * ch,
		U1:   float32(col+1) * cw,
		V1:   float32(row+1) * ch,
	}
}

// Names returns the sprites in cell order.
func (a *Atlas) Names() []string {
	return append([]string(nil), a.names...)
}

// Grid returns the atlas size in cells.
func (a *Atlas) Grid() (cols, rows int) {
	return a.cols, a.rows
}

func (a *Atlas) String() string {
	return fmt.Sprintf("atlas %dx%d (%d sprites)", a.cols, a.rows, len(a.names))
}

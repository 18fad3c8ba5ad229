package world

// TerrainGenerator fills a freshly created chunk with blocks.
type TerrainGenerator interface {
	PopulateChunk(c *Chunk)
}

// FlatGenerator lays a solid floor of one block type up to a fixed height. A depth of
// zero fills all the way down to the bottom of the world.
type FlatGenerator struct {
	height int
	depth  int
	block  BlockType
}

// NewFlatGenerator creates a generator whose floor tops out at world Y height-1.
func NewFlatGenerator(height int, block BlockType) *FlatGenerator {
	return &FlatGenerator{height: height, block: block}
}

// WithDepth returns a copy that fills only the top n layers.
func (g *FlatGenerator) WithDepth(n int) *FlatGenerator {
	c := *g
	c.depth = max(n, 0)
	return &c
}

// HeightAt returns the first free Y above the floor.
func (g *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return g.height
}

// PopulateChunk fills the chunk up to the floor height.
func (g *FlatGenerator) PopulateChunk(c *Chunk) {
	chunkBaseY := c.Y * ChunkSizeY
	top := min(g.height-chunkBaseY, ChunkSizeY)
	bottom := 0
	if g.depth > 0 {
		bottom = max(g.height-g.depth-chunkBaseY, 0)
	}
	if top <= bottom {
		return
	}
	floor := DefaultState(g.block)
	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			for ly := bottom; ly < top; ly++ {
				c.SetState(lx, ly, lz, floor)
			}
		}
	}
}

// LoadChunk generates the chunk at coord with gen and adds it to the world. A chunk
// that is already loaded is left untouched.
func (w *World) LoadChunk(coord ChunkCoord, gen TerrainGenerator) *Chunk {
	if existing := w.store.Chunk(coord); existing != nil {
		return existing
	}
	c := NewChunk(coord.X, coord.Y, coord.Z)
	if gen != nil {
		gen.PopulateChunk(c)
	}
	return w.store.AddChunk(coord, c)
}

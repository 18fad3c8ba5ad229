package world

import (
	"slices"
	"sync"
)

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	// Section dimensions
	SectionHeight = 16
	NumSections   = ChunkSizeY / SectionHeight
	SectionVolume = ChunkSizeX * SectionHeight * ChunkSizeZ
)

// Section represents a 16x16x16 sub-volume of a chunk
type Section struct {
	states []State
	count  int // non-air states
}

// Chunk represents a 16x256x16 section of the world. It stores the block state of every
// position plus the block entities that live inside it.
//
// The tick goroutine writes while mesh workers read, so all access goes through mu.
type Chunk struct {
	X, Y, Z int

	mu       sync.RWMutex
	sections [NumSections]*Section
	entities map[Pos]*BlockEntity
	dirty    bool
}

// NewChunk creates a new chunk at the specified chunk coordinates
func NewChunk(x, y, z int) *Chunk {
	return &Chunk{
		X:        x,
		Y:        y,
		Z:        z,
		entities: make(map[Pos]*BlockEntity),
		dirty:    true,
	}
}

// indexInSection converts local section coordinates (x, localY, z) → flat index
func indexInSection(x, localY, z int) int {
	return x*SectionHeight*ChunkSizeZ + localY*ChunkSizeZ + z
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetState returns the block state at the specified local coordinates
func (c *Chunk) GetState(x, y, z int) State {
	if !inBounds(x, y, z) {
		return State{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	sec := c.sections[y/SectionHeight]
	if sec == nil {
		return State{}
	}
	return sec.states[indexInSection(x, y%SectionHeight, z)]
}

// GetBlock returns the block type at the specified local coordinates
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	return c.GetState(x, y, z).Type
}

// SetState stores the state at the specified local coordinates and reports whether
// anything changed.
func (c *Chunk) SetState(x, y, z int, state State) bool {
	if !inBounds(x, y, z) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	secIdx := y / SectionHeight
	idx := indexInSection(x, y%SectionHeight, z)
	sec := c.sections[secIdx]

	if state.IsAir() {
		if sec == nil || sec.states[idx].IsAir() {
			return false
		}
		sec.states[idx] = State{}
		sec.count--
		if sec.count <= 0 {
			c.sections[secIdx] = nil
		}
		c.dirty = true
		return true
	}

	// first block in the section allocates it
	if sec == nil {
		sec = &Section{states: make([]State, SectionVolume)}
		c.sections[secIdx] = sec
	}

	old := sec.states[idx]
	if old == state {
		return false
	}
	if old.IsAir() {
		sec.count++
	}
	sec.states[idx] = state
	c.dirty = true
	return true
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// BlockEntity returns the block entity at the world position, or nil.
func (c *Chunk) BlockEntity(p Pos) *BlockEntity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entities[p]
}

func (c *Chunk) setBlockEntity(p Pos, be *BlockEntity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if be == nil {
		delete(c.entities, p)
		return
	}
	c.entities[p] = be
}

// BlockEntities returns the chunk's block entities in no particular order.
func (c *Chunk) BlockEntities() []*BlockEntity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*BlockEntity, 0, len(c.entities))
	for _, be := range c.entities {
		out = append(out, be)
	}
	return out
}

// IsDirty returns whether the chunk has been modified since last render
func (c *Chunk) IsDirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// SetClean marks the chunk as clean (not modified)
func (c *Chunk) SetClean() {
	c.mu.Lock()
	c.dirty = false
	c.mu.Unlock()
}

// MarkDirty flags the chunk for remeshing.
func (c *Chunk) MarkDirty() {
	c.mu.Lock()
	c.dirty = true
	c.mu.Unlock()
}

// ForEachBlock calls fn for every non-air position in the chunk with its world-space
// position. Each section is copied under the read lock and fn runs unlocked, so fn may
// read or write the chunk. Writes made during the walk may or may not be seen.
func (c *Chunk) ForEachBlock(fn func(p Pos, s State)) {
	baseX := c.X * ChunkSizeX
	baseY := c.Y * ChunkSizeY
	baseZ := c.Z * ChunkSizeZ

	for secIdx := range NumSections {
		states := c.sectionStates(secIdx)
		if states == nil {
			continue
		}
		sectionBaseY := secIdx * SectionHeight
		for lx := range ChunkSizeX {
			for ly := range SectionHeight {
				for lz := range ChunkSizeZ {
					s := states[indexInSection(lx, ly, lz)]
					if s.IsAir() {
						continue
					}
					fn(Pos{baseX + lx, baseY + sectionBaseY + ly, baseZ + lz}, s)
				}
			}
		}
	}
}

// sectionStates returns a copy of a section's states, or nil if it was never allocated.
func (c *Chunk) sectionStates(secIdx int) []State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sec := c.sections[secIdx]
	if sec == nil {
		return nil
	}
	return slices.Clone(sec.states)
}

package world

import (
	"sync"
)

// ChunkStore holds the loaded chunks. Lookups take a read lock so mesh workers can read
// while the simulation writes.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// Chunk returns the loaded chunk at coord or nil.
func (cs *ChunkStore) Chunk(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[coord]
}

// ChunkAt returns the loaded chunk holding the block at p or nil.
func (cs *ChunkStore) ChunkAt(p Pos) *Chunk {
	return cs.Chunk(ChunkCoordOf(p))
}

// AddChunk stores chunk under coord unless a chunk is already loaded there. It returns
// the chunk that ends up stored.
func (cs *ChunkStore) AddChunk(coord ChunkCoord, chunk *Chunk) *Chunk {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if existing, ok := cs.chunks[coord]; ok {
		return existing
	}
	cs.chunks[coord] = chunk
	return chunk
}

func (cs *ChunkStore) chunkFor(p Pos, create bool) *Chunk {
	coord := ChunkCoordOf(p)
	if c := cs.Chunk(coord); c != nil || !create {
		return c
	}
	return cs.AddChunk(coord, NewChunk(coord.X, coord.Y, coord.Z))
}

// Get returns the block state at the specified world position. Unloaded positions read
// as air.
func (cs *ChunkStore) Get(p Pos) State {
	s, _ := cs.Lookup(p)
	return s
}

// Lookup is like Get but also reports whether the position lies in a loaded chunk.
func (cs *ChunkStore) Lookup(p Pos) (State, bool) {
	chunk := cs.ChunkAt(p)
	if chunk == nil {
		return State{}, false
	}
	return chunk.GetState(mod(p[0], ChunkSizeX), mod(p[1], ChunkSizeY), mod(p[2], ChunkSizeZ)), true
}

// IsAir checks if the block at the specified world position is air.
func (cs *ChunkStore) IsAir(p Pos) bool {
	return cs.Get(p).IsAir()
}

// Set stores the state at the specified world position. When create is false and the
// chunk is not loaded nothing happens. It reports whether the stored state changed.
func (cs *ChunkStore) Set(p Pos, state State, create bool) bool {
	chunk := cs.chunkFor(p, create)
	if chunk == nil {
		return false
	}

	lx, ly, lz := mod(p[0], ChunkSizeX), mod(p[1], ChunkSizeY), mod(p[2], ChunkSizeZ)
	if !chunk.SetState(lx, ly, lz, state) {
		return false
	}

	// border blocks change what the neighbouring chunk culls
	if lx == 0 {
		cs.markDirty(p.Side(FaceWest))
	} else if lx == ChunkSizeX-1 {
		cs.markDirty(p.Side(FaceEast))
	}
	if ly == 0 {
		cs.markDirty(p.Side(FaceBottom))
	} else if ly == ChunkSizeY-1 {
		cs.markDirty(p.Side(FaceTop))
	}
	if lz == 0 {
		cs.markDirty(p.Side(FaceNorth))
	} else if lz == ChunkSizeZ-1 {
		cs.markDirty(p.Side(FaceSouth))
	}
	return true
}

func (cs *ChunkStore) markDirty(p Pos) {
	if nb := cs.ChunkAt(p); nb != nil {
		nb.MarkDirty()
	}
}

// GetAllChunks returns a slice of all chunks in the world with their coordinates.
func (cs *ChunkStore) GetAllChunks() []ChunkWithCoord {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	chunks := make([]ChunkWithCoord, 0, len(cs.chunks))
	for coord, chunk := range cs.chunks {
		chunks = append(chunks, ChunkWithCoord{Chunk: chunk, Coord: coord})
	}
	return chunks
}

// RemoveChunk drops a single chunk. It reports whether the chunk was loaded.
func (cs *ChunkStore) RemoveChunk(coord ChunkCoord) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks[coord]; !ok {
		return false
	}
	delete(cs.chunks, coord)
	return true
}

// HasChunk checks if a chunk exists without creating it.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

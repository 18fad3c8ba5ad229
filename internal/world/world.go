package world

import (
	"cmp"
	"slices"
	"sync"

	"container-indicator/internal/inventory"
	"container-indicator/internal/item"
	"container-indicator/internal/profiling"
)

// Observer is told about every committed state change. old is the zero State when a
// block is placed and new is the zero State when it is removed.
type Observer func(p Pos, old, new State)

// InventorySizer reports how many slots the block entity of a block type has. Zero means
// the block has no block entity.
type InventorySizer func(t BlockType) int

// World is the block-state store. An authoritative world owns the simulation; a
// non-authoritative one mirrors states it is told about and never evaluates containers.
type World struct {
	store         *ChunkStore
	authoritative bool
	sizes         InventorySizer

	mu        sync.RWMutex
	observers []Observer
	onChange  func(p Pos)
}

// New creates an empty world. sizes may be nil, in which case no block gets a block
// entity.
func New(authoritative bool, sizes InventorySizer) *World {
	if sizes == nil {
		sizes = func(BlockType) int { return 0 }
	}
	return &World{
		store:         NewChunkStore(),
		authoritative: authoritative,
		sizes:         sizes,
	}
}

// Chunks exposes the underlying chunk store for meshing.
func (w *World) Chunks() *ChunkStore {
	return w.store
}

// Authoritative reports whether this world runs the simulation.
func (w *World) Authoritative() bool {
	return w.authoritative
}

// AddObserver registers fn to be called after every committed state change.
func (w *World) AddObserver(fn Observer) {
	w.mu.Lock()
	w.observers = append(w.observers, fn)
	w.mu.Unlock()
}

// SetInventoryHook sets the function called after any block entity inventory changes.
// It applies to block entities created before and after the call.
func (w *World) SetInventoryHook(fn func(p Pos)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// State returns the state at p and whether p lies in a loaded chunk.
func (w *World) State(p Pos) (State, bool) {
	return w.store.Lookup(p)
}

// SetState writes the state at a loaded position and broadcasts the change. Writes to
// unloaded positions and writes that change nothing are dropped.
func (w *World) SetState(p Pos, s State) {
	old, ok := w.store.Lookup(p)
	if !ok || old == s {
		return
	}
	if !w.store.Set(p, s, false) {
		return
	}
	profiling.Count("world.SetState")
	w.notify(p, old, s)
}

// Inventory returns the inventory of the block entity at p, if any.
func (w *World) Inventory(p Pos) (inventory.Reader, bool) {
	be := w.BlockEntity(p)
	if be == nil || be.Inventory == nil {
		return nil, false
	}
	return be.Inventory, true
}

// BlockEntity returns the block entity at p or nil.
func (w *World) BlockEntity(p Pos) *BlockEntity {
	chunk := w.store.ChunkAt(p)
	if chunk == nil {
		return nil
	}
	return chunk.BlockEntity(p)
}

// PlaceBlock puts a block at p, loading its chunk if needed. Indicator flags always
// start cleared. Container blocks get a fresh block entity whose inventory reports
// changes through the inventory hook.
func (w *World) PlaceBlock(p Pos, s State) *BlockEntity {
	s.HasItems, s.HasInput, s.HasFuel = false, false, false

	old := w.store.Get(p)
	w.store.Set(p, s, true)
	chunk := w.store.ChunkAt(p)

	var be *BlockEntity
	if size := w.sizes(s.Type); size > 0 {
		be = &BlockEntity{Pos: p, Type: s.Type}
		be.Inventory = inventory.New(size, func(int) { w.inventoryChanged(p) })
	}
	chunk.setBlockEntity(p, be)

	if old != s {
		w.notify(p, old, s)
	}
	return be
}

// RemoveBlock clears p together with its block entity.
func (w *World) RemoveBlock(p Pos) {
	old, ok := w.store.Lookup(p)
	if !ok {
		return
	}
	chunk := w.store.ChunkAt(p)
	chunk.setBlockEntity(p, nil)
	if w.store.Set(p, State{}, false) {
		w.notify(p, old, State{})
	}
}

// LoadBlockEntity restores stored inventory contents into the block entity at p. The
// inventory hook runs afterwards so the block is evaluated as soon as it is loaded.
func (w *World) LoadBlockEntity(p Pos, stacks []item.ItemStack) bool {
	be := w.BlockEntity(p)
	if be == nil || be.Inventory == nil {
		return false
	}
	be.Inventory.Load(stacks)
	return true
}

// LoadedBlockEntities returns the positions of every block entity in a loaded chunk,
// ordered by y, then z, then x.
func (w *World) LoadedBlockEntities() []Pos {
	defer profiling.Track("world.LoadedBlockEntities")()
	var out []Pos
	for _, c := range w.store.GetAllChunks() {
		for _, be := range c.Chunk.BlockEntities() {
			out = append(out, be.Pos)
		}
	}
	slices.SortFunc(out, comparePos)
	return out
}

// UnloadChunk drops a chunk and everything in it. Later lookups treat its positions as
// not loaded.
func (w *World) UnloadChunk(coord ChunkCoord) bool {
	return w.store.RemoveChunk(coord)
}

func (w *World) inventoryChanged(p Pos) {
	w.mu.RLock()
	fn := w.onChange
	w.mu.RUnlock()
	if fn != nil {
		fn(p)
	}
}

func (w *World) notify(p Pos, old, s State) {
	w.mu.RLock()
	obs := w.observers
	w.mu.RUnlock()
	for _, fn := range obs {
		fn(p, old, s)
	}
}

func comparePos(a, b Pos) int {
	if c := cmp.Compare(a[1], b[1]); c != 0 {
		return c
	}
	if c := cmp.Compare(a[2], b[2]); c != 0 {
		return c
	}
	return cmp.Compare(a[0], b[0])
}

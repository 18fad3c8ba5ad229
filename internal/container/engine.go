// Package container keeps the indicator flags of container blocks in line with their
// inventories.
package container

import (
	"go.uber.org/zap"

	"container-indicator/internal/inventory"
	"container-indicator/internal/logger"
	"container-indicator/internal/profiling"
	"container-indicator/internal/registry"
	"container-indicator/internal/world"
)

// Inventory is the read access the engine needs to a block entity's contents.
type Inventory = inventory.Reader

// Store is the block-state store the engine reads from and writes to.
type Store interface {
	// Authoritative is false on mirrors that must never evaluate containers.
	Authoritative() bool
	// State returns the state at p and whether p is loaded.
	State(p world.Pos) (world.State, bool)
	// SetState commits a state and broadcasts it to observers.
	SetState(p world.Pos, s world.State)
	// Inventory returns the inventory of the block entity at p.
	Inventory(p world.Pos) (Inventory, bool)
}

// Settings decides whether indicators are active for a block type. It combines the
// global switch with the per-block toggle.
type Settings interface {
	Enabled(t world.BlockType) bool
}

// EngineConfig holds the engine's collaborators.
type EngineConfig struct {
	Store    Store
	Settings Settings
	Logger   *zap.Logger
}

// Engine derives indicator flags from inventories. None of its methods fail: anything
// it cannot evaluate is skipped.
type Engine struct {
	store    Store
	settings Settings
	log      *zap.Logger
}

func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Store == nil {
		panic("container: engine requires a store")
	}
	return &Engine{
		store:    cfg.Store,
		settings: cfg.Settings,
		log:      logger.OrNop(cfg.Logger),
	}
}

func (e *Engine) enabled(t world.BlockType) bool {
	return e.settings == nil || e.settings.Enabled(t)
}

// load returns the state at p when p is loaded on an authoritative store and the block
// carries the property.
func (e *Engine) load(p world.Pos, prop registry.Property) (world.State, bool) {
	if !e.store.Authoritative() {
		return world.State{}, false
	}
	s, ok := e.store.State(p)
	if !ok || !registry.HasProperty(s.Type, prop) {
		return world.State{}, false
	}
	return s, true
}

func (e *Engine) write(p world.Pos, s world.State) {
	profiling.Count("container.write")
	e.log.Debug("indicator state changed",
		zap.Stringer("pos", p),
		zap.Stringer("block", s.Type),
		zap.Bool("has_items", s.HasItems),
		zap.Bool("has_input", s.HasInput),
		zap.Bool("has_fuel", s.HasFuel))
	e.store.SetState(p, s)
}

// UpdateHasItems sets HasItems from the snapshot for simple containers and pots.
func (e *Engine) UpdateHasItems(p world.Pos, snap Snapshot) {
	s, ok := e.load(p, registry.PropHasItems)
	if !ok {
		return
	}
	hasItems := e.enabled(s.Type) && snap.AnyNonEmpty()
	if s.HasItems != hasItems {
		s.HasItems = hasItems
		e.write(p, s)
	}
}

// UpdateFurnaceState sets HasInput from slot 0 and HasFuel from slot 1 in one write.
func (e *Engine) UpdateFurnaceState(p world.Pos, snap Snapshot) {
	s, ok := e.load(p, registry.PropHasInput|registry.PropHasFuel)
	if !ok {
		return
	}
	var hasInput, hasFuel bool
	if e.enabled(s.Type) {
		hasInput = snap.Slot(inventory.FurnaceInputSlot)
		hasFuel = snap.Slot(inventory.FurnaceFuelSlot)
	}
	if s.HasInput != hasInput || s.HasFuel != hasFuel {
		s.HasInput, s.HasFuel = hasInput, hasFuel
		e.write(p, s)
	}
}

// UpdateChestHasItems sets HasItems on a chest half. For a double chest the value is
// the OR of both halves' contents and is written to whichever half disagrees. When the
// other half has no chest block entity this half's contents decide alone.
func (e *Engine) UpdateChestHasItems(p world.Pos, snap Snapshot) {
	s, ok := e.load(p, registry.PropHasItems)
	if !ok {
		return
	}
	enabled := e.enabled(s.Type)
	unified := enabled && snap.AnyNonEmpty()

	link := LinkageOf(s)
	neighborPos, double := link.Neighbor(p)
	if !unified && double && enabled {
		unified = e.chestOccupied(neighborPos)
	}

	if s.HasItems != unified {
		s.HasItems = unified
		e.write(p, s)
	}

	if !double {
		return
	}
	ns, ok := e.store.State(neighborPos)
	if !ok || !registry.HasProperty(ns.Type, registry.PropHasItems) {
		return
	}
	if ns.HasItems != unified {
		ns.HasItems = unified
		e.write(neighborPos, ns)
	}
}

// chestOccupied reports the raw occupancy of the chest block entity at p.
func (e *Engine) chestOccupied(p world.Pos) bool {
	s, ok := e.store.State(p)
	if !ok || !KindOf(s).IsChest() {
		return false
	}
	inv, ok := e.store.Inventory(p)
	if !ok {
		return false
	}
	return SnapshotOf(inv).AnyNonEmpty()
}

// Refresh re-evaluates the container at p from its current inventory. It is the
// inventory hook target and the unit of work of the bulk refresh.
func (e *Engine) Refresh(p world.Pos) {
	defer profiling.Track("container.Engine.Refresh")()
	if !e.store.Authoritative() {
		return
	}
	s, ok := e.store.State(p)
	if !ok {
		return
	}
	inv, ok := e.store.Inventory(p)
	if !ok {
		return
	}
	snap := SnapshotOf(inv)

	switch kind := KindOf(s); {
	case kind.IsChest():
		e.UpdateChestHasItems(p, snap)
	case kind == KindFurnace:
		e.UpdateFurnaceState(p, snap)
	case kind == KindSimple || kind == KindPot:
		e.UpdateHasItems(p, snap)
	}
}

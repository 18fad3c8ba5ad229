package world

import (
	"testing"

	"container-indicator/internal/item"
)

func testSizes(t BlockType) int {
	switch t {
	case BlockTypeChest, BlockTypeBarrel:
		return 27
	case BlockTypeFurnace:
		return 3
	}
	return 0
}

func TestPlaceBlockClearsFlagsAndCreatesEntity(t *testing.T) {
	w := New(true, testSizes)
	p := Pos{1, 64, 1}
	s := DefaultState(BlockTypeBarrel)
	s.HasItems = true

	be := w.PlaceBlock(p, s)
	if be == nil || be.Inventory.Size() != 27 {
		t.Fatalf("expected barrel block entity with 27 slots, got %+v", be)
	}
	got, ok := w.State(p)
	if !ok {
		t.Fatalf("expected position to be loaded")
	}
	if got.HasItems {
		t.Errorf("placed block should start with HasItems=false")
	}

	if be := w.PlaceBlock(Pos{2, 64, 1}, DefaultState(BlockTypeStone)); be != nil {
		t.Errorf("stone should not get a block entity")
	}
}

func TestSetStateBroadcastsOnlyChanges(t *testing.T) {
	w := New(true, testSizes)
	p := Pos{0, 10, 0}
	w.PlaceBlock(p, DefaultState(BlockTypeBarrel))

	var calls int
	w.AddObserver(func(_ Pos, old, new State) {
		calls++
		if old == new {
			t.Errorf("observer called without a change")
		}
	})

	s, _ := w.State(p)
	s.HasItems = true
	w.SetState(p, s)
	w.SetState(p, s)
	if calls != 1 {
		t.Errorf("expected 1 broadcast, got %d", calls)
	}
}

func TestSetStateIgnoresUnloadedPositions(t *testing.T) {
	w := New(true, testSizes)
	p := Pos{100, 10, 100}
	w.SetState(p, DefaultState(BlockTypeBarrel))
	if _, ok := w.State(p); ok {
		t.Errorf("SetState must not load chunks")
	}
}

func TestInventoryHookFiresWithPosition(t *testing.T) {
	w := New(true, testSizes)
	p := Pos{-3, 5, 7}
	be := w.PlaceBlock(p, DefaultState(BlockTypeChest))

	var got []Pos
	w.SetInventoryHook(func(at Pos) { got = append(got, at) })
	be.Inventory.SetItem(0, item.NewItemStack(item.TypeDiamond, 1))

	if len(got) != 1 || got[0] != p {
		t.Fatalf("expected one hook call for %v, got %v", p, got)
	}
	inv, ok := w.Inventory(p)
	if !ok || inv.ItemAt(0).Type != item.TypeDiamond {
		t.Errorf("inventory view does not see the stored item")
	}
}

func TestLoadBlockEntityRunsHook(t *testing.T) {
	w := New(true, testSizes)
	p := Pos{0, 1, 0}
	w.PlaceBlock(p, DefaultState(BlockTypeFurnace))
	fired := false
	w.SetInventoryHook(func(Pos) { fired = true })

	if !w.LoadBlockEntity(p, []item.ItemStack{{}, item.NewItemStack(item.TypeCoal, 4)}) {
		t.Fatalf("expected furnace block entity to load")
	}
	if !fired {
		t.Errorf("expected hook after load")
	}
	if w.LoadBlockEntity(Pos{9, 9, 9}, nil) {
		t.Errorf("loading a missing block entity should fail")
	}
}

func TestRemoveBlockDropsEntity(t *testing.T) {
	w := New(true, testSizes)
	p := Pos{4, 4, 4}
	w.PlaceBlock(p, DefaultState(BlockTypeBarrel))
	w.RemoveBlock(p)

	if be := w.BlockEntity(p); be != nil {
		t.Errorf("block entity survived removal")
	}
	if s, _ := w.State(p); !s.IsAir() {
		t.Errorf("expected air after removal, got %v", s.Type)
	}
}

func TestLoadedBlockEntitiesOrdered(t *testing.T) {
	w := New(true, testSizes)
	positions := []Pos{{20, 2, 0}, {-20, 1, 5}, {0, 1, 0}, {3, 1, 0}}
	for _, p := range positions {
		w.PlaceBlock(p, DefaultState(BlockTypeBarrel))
	}
	got := w.LoadedBlockEntities()
	want := []Pos{{0, 1, 0}, {3, 1, 0}, {-20, 1, 5}, {20, 2, 0}}
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entity %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestUnloadChunkHidesPositions(t *testing.T) {
	w := New(true, testSizes)
	p := Pos{17, 3, -1}
	w.PlaceBlock(p, DefaultState(BlockTypeBarrel))
	if !w.UnloadChunk(ChunkCoordOf(p)) {
		t.Fatalf("expected chunk to unload")
	}
	if _, ok := w.State(p); ok {
		t.Errorf("position still loaded after unload")
	}
	if len(w.LoadedBlockEntities()) != 0 {
		t.Errorf("unloaded block entities still listed")
	}
}

func TestFlatGeneratorPopulateViaLoadChunk(t *testing.T) {
	w := New(true, testSizes)
	c := w.LoadChunk(ChunkCoord{}, NewFlatGenerator(3, BlockTypeStone))

	for y := 0; y < 3; y++ {
		if b := c.GetBlock(5, y, 5); b != BlockTypeStone {
			t.Errorf("Expected Stone at 5,%d,5, got %v", y, b)
		}
	}
	if b := c.GetBlock(5, 3, 5); b != BlockTypeAir {
		t.Errorf("Expected Air at 5,3,5, got %v", b)
	}
	if again := w.LoadChunk(ChunkCoord{}, nil); again != c {
		t.Errorf("LoadChunk replaced an already loaded chunk")
	}
}

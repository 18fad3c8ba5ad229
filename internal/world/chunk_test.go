package world

import (
	"testing"
	"time"
)

func TestForEachBlockCallbackMayUseChunk(t *testing.T) {
	c := NewChunk(0, 0, 0)
	barrel := DefaultState(BlockTypeBarrel)
	c.SetState(1, 64, 1, barrel)
	c.SetState(2, 64, 1, barrel)
	c.SetClean()

	done := make(chan int)
	go func() {
		visited := 0
		c.ForEachBlock(func(p Pos, s State) {
			visited++
			if got := c.GetState(p[0], p[1], p[2]); got != s {
				t.Errorf("GetState(%v) = %+v, want %+v", p, got, s)
			}
			s.HasItems = true
			c.SetState(p[0], p[1], p[2], s)
		})
		done <- visited
	}()

	select {
	case visited := <-done:
		if visited != 2 {
			t.Fatalf("visited %d blocks, want 2", visited)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ForEachBlock blocked a callback that used the chunk")
	}
	if !c.IsDirty() {
		t.Error("writes from the callback did not mark the chunk dirty")
	}
	if !c.GetState(1, 64, 1).HasItems {
		t.Error("write from the callback was lost")
	}
}

func TestForEachBlockSkipsAirAndEmptySections(t *testing.T) {
	c := NewChunk(1, 0, -1)
	c.SetState(0, 3, 0, DefaultState(BlockTypeStone))
	c.SetState(15, 200, 15, DefaultState(BlockTypeChest))
	c.SetState(15, 200, 15, State{})

	var seen []Pos
	c.ForEachBlock(func(p Pos, _ State) { seen = append(seen, p) })
	if len(seen) != 1 || seen[0] != (Pos{16, 3, -16}) {
		t.Fatalf("visited %v, want only the stone at {16 3 -16}", seen)
	}
}

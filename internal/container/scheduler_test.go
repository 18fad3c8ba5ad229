package container

import (
	"testing"

	"container-indicator/internal/world"
)

type staticSource []world.Pos

func (s staticSource) LoadedBlockEntities() []world.Pos {
	return append([]world.Pos(nil), s...)
}

type recorder struct {
	seen []world.Pos
}

func (r *recorder) Refresh(p world.Pos) { r.seen = append(r.seen, p) }

func positions(n int) staticSource {
	out := make(staticSource, n)
	for i := range out {
		out[i] = world.Pos{i, 0, 0}
	}
	return out
}

func TestSchedulerDrainsInBatches(t *testing.T) {
	rec := &recorder{}
	s := NewRefreshScheduler(SchedulerConfig{Source: positions(25), Refresher: rec})

	if got := s.Tick(); got != 0 {
		t.Fatalf("tick before trigger processed %d", got)
	}
	s.Trigger()
	if s.Pending() != 25 {
		t.Fatalf("expected 25 queued, got %d", s.Pending())
	}

	for i, want := range []int{10, 10, 5, 0} {
		if got := s.Tick(); got != want {
			t.Errorf("tick %d: processed %d, want %d", i, got, want)
		}
	}
	if len(rec.seen) != 25 {
		t.Fatalf("expected 25 refreshes, got %d", len(rec.seen))
	}
	for i, p := range rec.seen {
		if p[0] != i {
			t.Errorf("refresh %d out of order: %v", i, p)
		}
	}
}

func TestSchedulerTriggerRestartsSweep(t *testing.T) {
	rec := &recorder{}
	s := NewRefreshScheduler(SchedulerConfig{Source: positions(7), Refresher: rec, BatchSize: 3})

	s.Trigger()
	s.Tick()
	s.Trigger()
	if s.Pending() != 7 {
		t.Errorf("retrigger should queue everything again, got %d", s.Pending())
	}
	s.SetBatchSize(0)
	if got := s.Tick(); got != 7 {
		t.Errorf("default batch should take all 7, got %d", got)
	}
}

func TestSchedulerRefreshesWorldContainers(t *testing.T) {
	w := world.New(true, func(bt world.BlockType) int {
		if bt == world.BlockTypeBarrel {
			return 27
		}
		return 0
	})
	var barrels []world.Pos
	for i := range 12 {
		p := world.Pos{i, 1, 0}
		w.PlaceBlock(p, world.DefaultState(world.BlockTypeBarrel))
		w.BlockEntity(p).Inventory.SetItem(0, stack(1))
		barrels = append(barrels, p)
	}

	engine := NewEngine(EngineConfig{Store: w})
	s := NewRefreshScheduler(SchedulerConfig{Source: w, Refresher: engine})
	s.Trigger()
	s.Tick()

	count := func() int {
		n := 0
		for _, p := range barrels {
			if st, _ := w.State(p); st.HasItems {
				n++
			}
		}
		return n
	}
	if got := count(); got != 10 {
		t.Errorf("after one tick expected 10 refreshed barrels, got %d", got)
	}
	s.Tick()
	if got := count(); got != 12 {
		t.Errorf("after two ticks expected 12 refreshed barrels, got %d", got)
	}
}

package game

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"container-indicator/internal/config"
	"container-indicator/internal/container"
	"container-indicator/internal/item"
	"container-indicator/internal/overlay"
	"container-indicator/internal/world"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Workers == 0 {
		opts.Workers = 2
	}
	s, err := NewSession(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func state(t *testing.T, s *Session, p world.Pos) world.State {
	t.Helper()
	st, ok := s.World.State(p)
	if !ok {
		t.Fatalf("%v not loaded", p)
	}
	return st
}

func TestInventoryChangeUpdatesFlags(t *testing.T) {
	s := newTestSession(t, Options{})
	d := BuildDemo(s.World)
	barrel := d.Containers[0]

	s.World.BlockEntity(barrel).Inventory.SetItem(3, item.NewItemStack(item.TypeApple, 1))
	if !state(t, s, barrel).HasItems {
		t.Fatal("barrel with an apple has no items flag")
	}
	s.World.BlockEntity(barrel).Inventory.Clear()
	if state(t, s, barrel).HasItems {
		t.Fatal("empty barrel keeps the items flag")
	}
}

func TestDoubleChestHalvesAgree(t *testing.T) {
	s := newTestSession(t, Options{})
	d := BuildDemo(s.World)
	for _, c := range d.Chests {
		left, right := c[0], c[1]
		s.World.BlockEntity(right).Inventory.SetItem(0, item.NewItemStack(item.TypeDiamond, 1))
		if !state(t, s, left).HasItems || !state(t, s, right).HasItems {
			t.Fatalf("chest %v/%v: halves disagree", left, right)
		}
		if got := container.KindOf(state(t, s, left)); got != container.KindDoubleChestLeft {
			t.Fatalf("left half kind = %v", got)
		}
	}
}

func TestDemoStepCyclesContainers(t *testing.T) {
	s := newTestSession(t, Options{})
	d := BuildDemo(s.World)
	all := d.Positions()

	for tick := range all {
		d.Step(s.World, tick)
	}
	for _, sum := range s.Summaries() {
		st := sum.State
		if !st.HasItems && !st.HasInput && !st.HasFuel {
			t.Errorf("%v has no flag after its first visit", sum)
		}
	}

	for tick := len(all); tick < 2*len(all); tick++ {
		d.Step(s.World, tick)
	}
	for _, sum := range s.Summaries() {
		st := sum.State
		if st.HasItems || st.HasInput || st.HasFuel {
			t.Errorf("%v still flagged after being emptied", sum)
		}
	}
}

func TestConfigChangeTriggersRefresh(t *testing.T) {
	s := newTestSession(t, Options{})
	d := BuildDemo(s.World)
	barrel, hopper := d.Containers[0], d.Containers[1]
	s.World.BlockEntity(barrel).Inventory.SetItem(0, item.NewItemStack(item.TypeApple, 1))
	s.World.BlockEntity(hopper).Inventory.SetItem(0, item.NewItemStack(item.TypeApple, 1))

	if err := s.Config.Update(func(c *config.Config) { c.Blocks.Barrel = false }); err != nil {
		t.Fatal(err)
	}
	// nothing changes until the sweep runs
	if !state(t, s, barrel).HasItems {
		t.Fatal("flag cleared before the refresh ran")
	}
	s.Settle(100)
	if state(t, s, barrel).HasItems {
		t.Fatal("disabled barrel keeps its flag")
	}
	if !state(t, s, hopper).HasItems {
		t.Fatal("hopper lost its flag")
	}

	if err := s.Config.Update(func(c *config.Config) { c.Blocks.Barrel = true }); err != nil {
		t.Fatal(err)
	}
	s.Settle(100)
	if !state(t, s, barrel).HasItems {
		t.Fatal("re-enabled barrel has no flag")
	}
}

func TestSettleRespectsBatchSize(t *testing.T) {
	s := newTestSession(t, Options{})
	d := BuildDemo(s.World)
	if err := s.Config.Update(func(c *config.Config) { c.Refresh.BatchSize = 5 }); err != nil {
		t.Fatal(err)
	}
	total := len(d.Positions())
	if n := s.Tick(); n != 5 {
		t.Fatalf("first tick refreshed %d, want 5", n)
	}
	if got := s.Scheduler.Pending(); got != total-5 {
		t.Fatalf("pending = %d, want %d", got, total-5)
	}
	want := (total - 5 + 4) / 5
	if got := s.Settle(100); got != want {
		t.Fatalf("settled in %d ticks, want %d", got, want)
	}
	if s.Ticks() != uint64(1+want) {
		t.Fatalf("ticks = %d", s.Ticks())
	}
}

func TestMeshesCarryOverlays(t *testing.T) {
	s := newTestSession(t, Options{})
	d := BuildDemo(s.World)
	s.World.BlockEntity(d.Containers[0]).Inventory.SetItem(0, item.NewItemStack(item.TypeApple, 1))

	meshes, err := s.Meshes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	overlays := 0
	for _, m := range meshes {
		overlays += m.OverlayQuads
	}
	// only the barrel has items and nothing covers its overlay
	if overlays != overlay.QuadsPerOverlay {
		t.Fatalf("overlay quads = %d, want %d", overlays, overlay.QuadsPerOverlay)
	}

	if meshes, _ := s.Meshes(context.Background()); len(meshes) != 0 {
		t.Fatalf("clean world rebuilt %d meshes", len(meshes))
	}
	if err := s.Config.Update(func(c *config.Config) { c.IndicatorColor = 0xFF0000 }); err != nil {
		t.Fatal(err)
	}
	if meshes, _ := s.Meshes(context.Background()); len(meshes) == 0 {
		t.Fatal("colour change did not remesh")
	}
}

func TestSummaries(t *testing.T) {
	s := newTestSession(t, Options{})
	d := BuildDemo(s.World)
	left, right := d.Chests[0][0], d.Chests[0][1]
	s.World.BlockEntity(left).Inventory.SetItem(0, item.NewItemStack(item.TypeApple, 1))

	byPos := map[world.Pos]BlockSummary{}
	for _, sum := range s.Summaries() {
		byPos[sum.Pos] = sum
	}
	if len(byPos) != len(d.Positions()) {
		t.Fatalf("got %d summaries, want %d", len(byPos), len(d.Positions()))
	}
	if got := byPos[left].Overlays; got != 1 {
		t.Fatalf("left half overlays = %d, want 1", got)
	}
	if got := byPos[right].Overlays; got != 0 {
		t.Fatalf("right half overlays = %d, want 0", got)
	}
	if byPos[right].String() == "" {
		t.Fatal("empty summary line")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		ConfigPath: filepath.Join(dir, "indicator.yaml"),
		DataDir:    filepath.Join(dir, "world"),
	}

	s, err := NewSession(opts)
	if err != nil {
		t.Fatal(err)
	}
	d := BuildDemo(s.World)
	furnace := d.Containers[5]
	s.World.BlockEntity(furnace).Inventory.SetItem(1, item.NewItemStack(item.TypeCoal, 2))
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2 := newTestSession(t, opts)
	n, err := s2.Load()
	if err != nil {
		t.Fatal(err)
	}
	if n != len(d.Positions()) {
		t.Fatalf("loaded %d containers, want %d", n, len(d.Positions()))
	}
	st := state(t, s2, furnace)
	if !st.HasFuel || st.HasInput {
		t.Fatalf("furnace after reload = %+v", st)
	}
	if st.Facing != world.FaceSouth {
		t.Fatalf("facing = %v", st.Facing)
	}
}

func TestLimiterDue(t *testing.T) {
	l := NewLimiter(10)
	now := time.Unix(0, 0)
	if !l.Due(now) {
		t.Fatal("first call must be due")
	}
	if l.Due(now.Add(50 * time.Millisecond)) {
		t.Fatal("due after half a period")
	}
	if !l.Due(now.Add(100 * time.Millisecond)) {
		t.Fatal("not due after a full period")
	}
	if !NewLimiter(0).Due(now) {
		t.Fatal("unlimited limiter must always be due")
	}
}

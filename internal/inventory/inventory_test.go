package inventory

import (
	"testing"

	"container-indicator/internal/item"
)

// recorder captures what the hook saw when it fired.
type recorder struct {
	inv   *Inventory
	calls int
	empty []bool
}

func (r *recorder) hook(int) {
	r.calls++
	r.empty = append(r.empty, r.inv.IsEmpty())
}

func newRecorded(size int) (*Inventory, *recorder) {
	r := &recorder{}
	r.inv = New(size, r.hook)
	return r.inv, r
}

func TestHookSeesNewContents(t *testing.T) {
	inv, r := newRecorded(HopperSize)

	inv.SetItem(2, item.NewItemStack(item.TypeDiamond, 3))
	if r.calls != 1 || r.empty[0] {
		t.Fatalf("after SetItem: calls %d, saw empty %v", r.calls, r.empty)
	}

	inv.RemoveItem(2, 3)
	if r.calls != 2 || !r.empty[1] {
		t.Fatalf("after RemoveItem: calls %d, saw empty %v", r.calls, r.empty)
	}
}

func TestOutOfRangeDoesNotFire(t *testing.T) {
	inv, r := newRecorded(FurnaceSize)
	inv.SetItem(-1, item.NewItemStack(item.TypeCoal, 1))
	inv.SetItem(FurnaceSize, item.NewItemStack(item.TypeCoal, 1))
	inv.RemoveItem(0, 1)
	if r.calls != 0 {
		t.Fatalf("hook fired %d times", r.calls)
	}
	if got := inv.ItemAt(99); !got.IsEmpty() {
		t.Fatalf("ItemAt out of range = %+v", got)
	}
}

func TestSetItemNormalisesEmptyStacks(t *testing.T) {
	inv, _ := newRecorded(1)
	inv.SetItem(0, item.NewItemStack(item.TypeApple, 0))
	if got := inv.ItemAt(0); got != (item.ItemStack{}) {
		t.Fatalf("zero-count stack stored as %+v", got)
	}
}

func TestAddItemMergesThenFills(t *testing.T) {
	inv, r := newRecorded(3)
	inv.SetItem(1, item.NewItemStack(item.TypeOakLog, 60))

	rest := inv.AddItem(item.NewItemStack(item.TypeOakLog, 70))
	if !rest.IsEmpty() {
		t.Fatalf("leftover %+v", rest)
	}
	if got := inv.ItemAt(1).Count; got != 64 {
		t.Errorf("merged slot holds %d", got)
	}
	if got := inv.ItemAt(0); got.Type != item.TypeOakLog || got.Count != 64 {
		t.Errorf("first empty slot holds %+v", got)
	}
	if got := inv.ItemAt(2).Count; got != 2 {
		t.Errorf("second empty slot holds %d", got)
	}
	if r.calls != 2 {
		t.Errorf("hook fired %d times, want one for SetItem and one for AddItem", r.calls)
	}

	rest = inv.AddItem(item.NewItemStack(item.TypeApple, 5))
	if rest.Count != 5 {
		t.Fatalf("full inventory accepted items, leftover %+v", rest)
	}
	if r.calls != 2 {
		t.Error("hook fired although nothing changed")
	}
}

func TestClearAndLoadFireOnce(t *testing.T) {
	inv, r := newRecorded(ChestSize)
	inv.Load([]item.ItemStack{{}, item.NewItemStack(item.TypeRawBeef, 4)})
	if r.calls != 1 || r.empty[0] {
		t.Fatalf("Load: calls %d, saw empty %v", r.calls, r.empty)
	}
	if inv.ItemAt(1).Count != 4 {
		t.Fatalf("slot 1 = %+v", inv.ItemAt(1))
	}

	inv.Clear()
	if r.calls != 2 || !r.empty[1] || !inv.IsEmpty() {
		t.Fatalf("Clear: calls %d, saw empty %v", r.calls, r.empty)
	}
}

func TestNilHookAndNegativeSize(t *testing.T) {
	inv := New(-3, nil)
	if inv.Size() != 0 {
		t.Fatalf("size = %d", inv.Size())
	}
	inv.Clear()

	inv = New(1, nil)
	inv.SetItem(0, item.NewItemStack(item.TypeCoal, 1))
	if inv.IsEmpty() {
		t.Fatal("SetItem without a hook lost the stack")
	}
}

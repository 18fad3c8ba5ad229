package inventory

import (
	"container-indicator/internal/item"
)

// Common container sizes.
const (
	ChestSize   = 27
	BarrelSize  = 27
	HopperSize  = 5
	DropperSize = 9
	CrafterSize = 9
	FurnaceSize = 3
	PotSize     = 1
)

// Furnace slot layout.
const (
	FurnaceInputSlot  = 0
	FurnaceFuelSlot   = 1
	FurnaceResultSlot = 2
)

// Inventory is a fixed-size list of item slots owned by a block entity.
//
// Every mutating method calls the change hook as its very last step, after the slot
// contents are updated, so the hook always observes the new contents.
type Inventory struct {
	slots    []item.ItemStack
	onChange func(slot int)
}

// New creates an inventory with size empty slots. onChange may be nil and can be
// replaced later with SetChangeHook.
func New(size int, onChange func(slot int)) *Inventory {
	if size < 0 {
		size = 0
	}
	return &Inventory{
		slots:    make([]item.ItemStack, size),
		onChange: onChange,
	}
}

// SetChangeHook replaces the post-mutation hook.
func (inv *Inventory) SetChangeHook(onChange func(slot int)) {
	inv.onChange = onChange
}

// Size returns the number of slots.
func (inv *Inventory) Size() int {
	return len(inv.slots)
}

// ItemAt returns the stack in the slot. Out of range slots read as empty.
func (inv *Inventory) ItemAt(slot int) item.ItemStack {
	if slot < 0 || slot >= len(inv.slots) {
		return item.ItemStack{}
	}
	return inv.slots[slot]
}

// SetItem replaces the contents of a slot. Out of range slots are ignored.
func (inv *Inventory) SetItem(slot int, stack item.ItemStack) {
	if slot < 0 || slot >= len(inv.slots) {
		return
	}
	if stack.IsEmpty() {
		stack = item.ItemStack{}
	}
	inv.slots[slot] = stack
	inv.changed(slot)
}

// RemoveItem takes up to count items out of a slot and returns them.
func (inv *Inventory) RemoveItem(slot, count int) item.ItemStack {
	if slot < 0 || slot >= len(inv.slots) || count <= 0 {
		return item.ItemStack{}
	}
	existing := inv.slots[slot]
	if existing.IsEmpty() {
		return item.ItemStack{}
	}
	kind := existing.Type
	taken := min(count, existing.Count)
	existing.Count -= taken
	if existing.Count <= 0 {
		existing = item.ItemStack{}
	}
	inv.slots[slot] = existing
	inv.changed(slot)
	return item.NewItemStack(kind, taken)
}

// AddItem attempts to add an item stack to the inventory, merging into matching stacks
// first and then filling empty slots. It returns the part of the stack that did not fit.
func (inv *Inventory) AddItem(stack item.ItemStack) item.ItemStack {
	if stack.IsEmpty() {
		return item.ItemStack{}
	}
	touched := -1

	// 1. Merge with existing stacks of the same type
	for i := range inv.slots {
		existing := inv.slots[i]
		if existing.IsEmpty() || !existing.IsItemEqual(stack) {
			continue
		}
		space := existing.GetMaxStackSize() - existing.Count
		if space <= 0 {
			continue
		}
		toAdd := min(stack.Count, space)
		inv.slots[i].Count += toAdd
		stack.Count -= toAdd
		touched = i
		if stack.Count == 0 {
			break
		}
	}

	// 2. Place the rest in empty slots
	for i := range inv.slots {
		if stack.Count == 0 {
			break
		}
		if !inv.slots[i].IsEmpty() {
			continue
		}
		toAdd := min(stack.Count, stack.GetMaxStackSize())
		inv.slots[i] = item.NewItemStack(stack.Type, toAdd)
		stack.Count -= toAdd
		touched = i
	}

	if touched >= 0 {
		inv.changed(touched)
	}
	if stack.Count == 0 {
		return item.ItemStack{}
	}
	return stack
}

// Clear empties every slot and fires the hook once.
func (inv *Inventory) Clear() {
	for i := range inv.slots {
		inv.slots[i] = item.ItemStack{}
	}
	inv.changed(-1)
}

// Load replaces all slot contents without going through SetItem, then fires the hook
// once. It is used when a block entity is restored from storage.
func (inv *Inventory) Load(stacks []item.ItemStack) {
	for i := range inv.slots {
		if i < len(stacks) && !stacks[i].IsEmpty() {
			inv.slots[i] = stacks[i]
		} else {
			inv.slots[i] = item.ItemStack{}
		}
	}
	inv.changed(-1)
}

// IsEmpty reports whether every slot is empty.
func (inv *Inventory) IsEmpty() bool {
	for _, s := range inv.slots {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

func (inv *Inventory) changed(slot int) {
	if inv.onChange != nil {
		inv.onChange(slot)
	}
}

// Reader is the read-only view of an inventory.
type Reader interface {
	Size() int
	ItemAt(slot int) item.ItemStack
}

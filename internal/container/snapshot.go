package container

import "container-indicator/internal/inventory"

// Snapshot records which slots of an inventory were occupied when it was read.
type Snapshot []bool

// SnapshotOf reads inv. A nil inventory gives an empty snapshot.
func SnapshotOf(inv inventory.Reader) Snapshot {
	if inv == nil {
		return nil
	}
	snap := make(Snapshot, inv.Size())
	for i := range snap {
		snap[i] = !inv.ItemAt(i).IsEmpty()
	}
	return snap
}

// AnyNonEmpty reports whether at least one slot was occupied.
func (s Snapshot) AnyNonEmpty() bool {
	for _, occupied := range s {
		if occupied {
			return true
		}
	}
	return false
}

// Slot reports whether slot i was occupied. Missing slots read as empty.
func (s Snapshot) Slot(i int) bool {
	return i >= 0 && i < len(s) && s[i]
}

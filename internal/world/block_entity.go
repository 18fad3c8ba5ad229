package world

import "container-indicator/internal/inventory"

// BlockEntity is the mutable companion of a container block. It owns the inventory
// whose contents drive the indicator flags.
type BlockEntity struct {
	Pos       Pos
	Type      BlockType
	Inventory *inventory.Inventory
}

package container

import (
	"container-indicator/internal/registry"
	"container-indicator/internal/world"
)

// Kind says how a block's indicator flags are derived.
type Kind uint8

const (
	KindNone Kind = iota
	KindSimple
	KindFurnace
	KindPot
	KindChest
	KindDoubleChestLeft
	KindDoubleChestRight
)

var kindNames = [...]string{"none", "simple", "furnace", "pot", "chest", "double_chest_left", "double_chest_right"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsChest reports whether the kind is any chest half.
func (k Kind) IsChest() bool {
	return k == KindChest || k == KindDoubleChestLeft || k == KindDoubleChestRight
}

// KindOf resolves the kind of a block state from the block registry and, for chests,
// the chest type.
func KindOf(s world.State) Kind {
	def, ok := registry.Lookup(s.Type)
	if !ok {
		return KindNone
	}
	switch def.Family {
	case registry.FamilySimple:
		return KindSimple
	case registry.FamilyFurnace:
		return KindFurnace
	case registry.FamilyPot:
		return KindPot
	case registry.FamilyChest:
		switch s.Chest {
		case world.ChestLeft:
			return KindDoubleChestLeft
		case world.ChestRight:
			return KindDoubleChestRight
		}
		return KindChest
	}
	return KindNone
}

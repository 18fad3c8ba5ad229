package item

// Type identifies an item kind. The zero value is "nothing".
type Type uint16

const (
	TypeNone Type = iota
	TypeIronOre
	TypeCoal
	TypeDiamond
	TypeApple
	TypeCobblestone
	TypeOakLog
	TypeRawBeef
)

var typeNames = map[Type]string{
	TypeNone:        "none",
	TypeIronOre:     "iron_ore",
	TypeCoal:        "coal",
	TypeDiamond:     "diamond",
	TypeApple:       "apple",
	TypeCobblestone: "cobblestone",
	TypeOakLog:      "oak_log",
	TypeRawBeef:     "beef",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ItemStack represents a stack of items
type ItemStack struct {
	Type  Type
	Count int
}

// NewItemStack creates a new item stack
func NewItemStack(t Type, count int) ItemStack {
	return ItemStack{
		Type:  t,
		Count: count,
	}
}

// IsEmpty reports whether the stack holds no items. A stack with a type but a
// non-positive count is empty, as is the zero value.
func (s ItemStack) IsEmpty() bool {
	return s.Type == TypeNone || s.Count <= 0
}

// GetMaxStackSize returns the maximum stack size for this item
func (s ItemStack) GetMaxStackSize() int {
	return 64
}

// IsItemEqual checks if two stacks contain the same item type
func (s ItemStack) IsItemEqual(other ItemStack) bool {
	return s.Type == other.Type
}

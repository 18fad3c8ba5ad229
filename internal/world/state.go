package world

// ChestType describes which half of a chest a block is.
type ChestType uint8

const (
	ChestSingle ChestType = iota
	ChestLeft
	ChestRight
)

func (t ChestType) String() string {
	switch t {
	case ChestLeft:
		return "left"
	case ChestRight:
		return "right"
	}
	return "single"
}

// State is the persisted block state at one position. Which of the indicator flags are
// meaningful is decided by the block's registry definition; a block carries either
// HasItems or the HasInput/HasFuel pair, never both.
//
// State is a comparable value so it can key model caches.
type State struct {
	Type   BlockType
	Facing BlockFace
	Chest  ChestType

	HasItems bool
	HasInput bool
	HasFuel  bool
}

// DefaultState returns the state a freshly placed block of the given type carries:
// facing north, single chest and all flags cleared.
func DefaultState(t BlockType) State {
	return State{Type: t, Facing: FaceNorth}
}

// WithFacing returns a copy of the state facing the given direction.
func (s State) WithFacing(f BlockFace) State {
	s.Facing = f
	return s
}

// WithChest returns a copy of the state with the chest type set.
func (s State) WithChest(t ChestType) State {
	s.Chest = t
	return s
}

// IsAir reports whether the state is empty space.
func (s State) IsAir() bool {
	return s.Type == BlockTypeAir
}

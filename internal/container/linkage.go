package container

import "container-indicator/internal/world"

// Linkage describes how a chest half connects to its partner.
type Linkage struct {
	Type   world.ChestType
	Facing world.BlockFace
}

// LinkageOf extracts the chest linkage of a state.
func LinkageOf(s world.State) Linkage {
	return Linkage{Type: s.Chest, Facing: s.Facing}
}

// NeighborDirection returns the direction of the other half: a quarter turn clockwise
// from the facing for a left half, counter-clockwise for a right half. Single chests
// have no neighbour and yield FaceNone.
func (l Linkage) NeighborDirection() world.BlockFace {
	switch l.Type {
	case world.ChestLeft:
		return l.Facing.ClockWise()
	case world.ChestRight:
		return l.Facing.CounterClockWise()
	}
	return world.FaceNone
}

// Neighbor returns the position of the other half and whether there is one.
func (l Linkage) Neighbor(p world.Pos) (world.Pos, bool) {
	dir := l.NeighborDirection()
	if dir == world.FaceNone {
		return p, false
	}
	return p.Side(dir), true
}

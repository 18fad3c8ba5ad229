package world

import "github.com/go-gl/mathgl/mgl32"

// BlockFace identifies a face of a block
type BlockFace int

const (
	// FaceNone is used where a direction is optional, e.g. unculled geometry.
	FaceNone BlockFace = iota - 1
	FaceNorth
	FaceSouth
	FaceEast
	FaceWest
	FaceTop
	FaceBottom
)

// Faces lists the six real faces in declaration order.
var Faces = [6]BlockFace{FaceNorth, FaceSouth, FaceEast, FaceWest, FaceTop, FaceBottom}

// HorizontalFaces lists the four side faces in clockwise order seen from above.
var HorizontalFaces = [4]BlockFace{FaceNorth, FaceEast, FaceSouth, FaceWest}

// IsHorizontal reports whether the face is one of the four side faces.
func (f BlockFace) IsHorizontal() bool {
	return f == FaceNorth || f == FaceSouth || f == FaceEast || f == FaceWest
}

// ClockWise returns the face rotated a quarter turn clockwise around the vertical
// axis. Top, bottom and FaceNone are returned unchanged.
func (f BlockFace) ClockWise() BlockFace {
	switch f {
	case FaceNorth:
		return FaceEast
	case FaceEast:
		return FaceSouth
	case FaceSouth:
		return FaceWest
	case FaceWest:
		return FaceNorth
	}
	return f
}

// CounterClockWise is the inverse of ClockWise.
func (f BlockFace) CounterClockWise() BlockFace {
	switch f {
	case FaceNorth:
		return FaceWest
	case FaceWest:
		return FaceSouth
	case FaceSouth:
		return FaceEast
	case FaceEast:
		return FaceNorth
	}
	return f
}

// Opposite returns the face pointing the other way.
func (f BlockFace) Opposite() BlockFace {
	switch f {
	case FaceNorth:
		return FaceSouth
	case FaceSouth:
		return FaceNorth
	case FaceEast:
		return FaceWest
	case FaceWest:
		return FaceEast
	case FaceTop:
		return FaceBottom
	case FaceBottom:
		return FaceTop
	}
	return f
}

// Offset returns the unit step towards the neighbouring block.
// North is -Z, south +Z, west -X, east +X.
func (f BlockFace) Offset() [3]int {
	switch f {
	case FaceNorth:
		return [3]int{0, 0, -1}
	case FaceSouth:
		return [3]int{0, 0, 1}
	case FaceEast:
		return [3]int{1, 0, 0}
	case FaceWest:
		return [3]int{-1, 0, 0}
	case FaceTop:
		return [3]int{0, 1, 0}
	case FaceBottom:
		return [3]int{0, -1, 0}
	}
	return [3]int{}
}

// Normal returns the outward unit normal of the face.
func (f BlockFace) Normal() mgl32.Vec3 {
	o := f.Offset()
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}

func (f BlockFace) String() string {
	switch f {
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceEast:
		return "east"
	case FaceWest:
		return "west"
	case FaceTop:
		return "up"
	case FaceBottom:
		return "down"
	}
	return "none"
}

// ParseFace maps a block-model face name ("up", "north", ...) to a BlockFace.
// Unknown names, including the empty string, yield FaceNone.
func ParseFace(name string) BlockFace {
	switch name {
	case "north":
		return FaceNorth
	case "south":
		return FaceSouth
	case "east":
		return FaceEast
	case "west":
		return FaceWest
	case "up":
		return FaceTop
	case "down":
		return FaceBottom
	}
	return FaceNone
}

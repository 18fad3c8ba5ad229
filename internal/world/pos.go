package world

import "fmt"

// Pos is a block position in world coordinates.
type Pos [3]int

// Side returns the position of the neighbouring block across the given face.
func (p Pos) Side(face BlockFace) Pos {
	o := face.Offset()
	return Pos{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

func (p Pos) X() int { return p[0] }
func (p Pos) Y() int { return p[1] }
func (p Pos) Z() int { return p[2] }

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p[0], p[1], p[2])
}

// ChunkCoord addresses a chunk in chunk units.
type ChunkCoord struct {
	X, Y, Z int
}

// ChunkWithCoord pairs a chunk with the coordinate it is stored under.
type ChunkWithCoord struct {
	Chunk *Chunk
	Coord ChunkCoord
}

// ChunkCoordOf returns the coordinate of the chunk holding the block position.
func ChunkCoordOf(p Pos) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(p[0], ChunkSizeX),
		Y: floorDiv(p[1], ChunkSizeY),
		Z: floorDiv(p[2], ChunkSizeZ),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

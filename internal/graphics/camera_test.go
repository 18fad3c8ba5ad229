package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/world"
)

func TestCameraHeading(t *testing.T) {
	cases := map[float32]world.BlockFace{
		0:    world.FaceNorth,
		44:   world.FaceNorth,
		-30:  world.FaceNorth,
		90:   world.FaceWest,
		180:  world.FaceSouth,
		270:  world.FaceEast,
		-90:  world.FaceEast,
		359:  world.FaceNorth,
		725:  world.FaceNorth,
		-200: world.FaceSouth,
	}
	c := NewCamera(800, 600)
	for yaw, want := range cases {
		c.Yaw = yaw
		if got := c.Heading(); got != want {
			t.Errorf("yaw %v: heading %v, want %v", yaw, got, want)
		}
	}
}

func TestCameraPositionLooksAlongHeading(t *testing.T) {
	c := NewCamera(800, 600)
	c.Target = mgl32.Vec3{5, 64, 5}
	c.Pitch = 0
	for _, yaw := range []float32{0, 90, 180, 270} {
		c.Yaw = yaw
		look := c.Target.Sub(c.Position()).Normalize()
		n := c.Heading().Normal()
		if look.Sub(n).Len() > 1e-4 {
			t.Errorf("yaw %v: looking %v, heading normal %v", yaw, look, n)
		}
	}
}

func TestCameraClamps(t *testing.T) {
	c := NewCamera(800, 600)
	c.Orbit(0, 500)
	if c.Pitch != 89 {
		t.Fatalf("pitch = %v", c.Pitch)
	}
	c.Zoom(-1000)
	if c.Distance != 2 {
		t.Fatalf("distance = %v", c.Distance)
	}
	c.Orbit(400, 0)
	if c.Yaw < 0 || c.Yaw >= 360 {
		t.Fatalf("yaw = %v", c.Yaw)
	}
	c.SetViewport(0, 10)
	if math.Abs(float64(c.AspectRatio)-800.0/600.0) > 1e-6 {
		t.Fatalf("aspect = %v", c.AspectRatio)
	}
}

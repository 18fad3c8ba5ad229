package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/world"
)

// Camera orbits a target point. Yaw and pitch are in degrees; yaw 0 looks north.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
		Distance:  12,
		Yaw:       30,
		Pitch:     35,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. Zero-sized viewports are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Orbit turns the camera around the target. Pitch is clamped short of the poles.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -89, 89)
}

// Zoom moves the camera towards (negative) or away from the target.
func (c *Camera) Zoom(d float32) {
	c.Distance = mgl32.Clamp(c.Distance+d, 2, 200)
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	cp := float32(math.Cos(float64(pitch)))
	dir := mgl32.Vec3{
		cp * float32(math.Sin(float64(yaw))),
		float32(math.Sin(float64(pitch))),
		cp * float32(math.Cos(float64(yaw))),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

// Heading returns the horizontal direction the camera looks in. The camera sits south
// of the target at yaw 0 and moves clockwise as the yaw grows.
func (c *Camera) Heading() world.BlockFace {
	yaw := math.Mod(float64(c.Yaw), 360)
	if yaw < 0 {
		yaw += 360
	}
	switch {
	case yaw >= 315 || yaw < 45:
		return world.FaceNorth
	case yaw < 135:
		return world.FaceWest
	case yaw < 225:
		return world.FaceSouth
	}
	return world.FaceEast
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

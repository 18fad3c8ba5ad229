package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"container-indicator/internal/graphics"
)

// RenderContext is what every renderable gets for one frame.
type RenderContext struct {
	Camera *graphics.Camera
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable is one drawing feature. Init and Dispose run with the GL context current;
// Render is called once per frame in registration order.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

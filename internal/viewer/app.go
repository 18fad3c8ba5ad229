// Package viewer shows a session's world in a window with an orbit camera.
package viewer

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"container-indicator/internal/config"
	"container-indicator/internal/game"
	"container-indicator/internal/graphics"
	"container-indicator/internal/graphics/renderables/chunks"
	"container-indicator/internal/graphics/renderables/direction"
	"container-indicator/internal/graphics/renderer"
	"container-indicator/internal/input"
	"container-indicator/internal/logger"
	"container-indicator/internal/profiling"
)

const (
	// FrameRate caps rendering.
	FrameRate = 120

	orbitSpeed = 90.0 // degrees per second
	zoomSpeed  = 12.0 // blocks per second
	dragScale  = 0.3  // degrees per pixel
	hueStep    = 45.0
)

type App struct {
	window   *glfw.Window
	input    *input.InputManager
	session  *game.Session
	demo     *game.Demo
	camera   *graphics.Camera
	renderer *renderer.Renderer
	log      *zap.Logger

	ticks    *game.Limiter
	frames   *game.Limiter
	lastTime time.Time

	autoDemo bool
	demoTick int
}

// NewApp builds the renderer for the session's world. It must be called with the
// window's context current.
func NewApp(window *glfw.Window, session *game.Session, demo *game.Demo, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)
	width, height := window.GetFramebufferSize()

	camera := graphics.NewCamera(width, height)
	if demo != nil && len(demo.Containers) > 0 {
		first, last := demo.Containers[0], demo.Containers[len(demo.Containers)-1]
		camera.Target = mgl32.Vec3{
			float32(first[0]+last[0]+1) / 2,
			float32(first[1]),
			2.5,
		}
		camera.Distance = float32(last[0]-first[0]) * 0.9
	}

	chunkRenderer := chunks.New(chunks.Config{
		Store:  session.World.Chunks(),
		Pool:   session.Pool,
		Atlas:  session.Atlas,
		Logger: log.Named("chunks"),
	})
	r, err := renderer.NewRenderer(camera, chunkRenderer, direction.NewDirection(session.Config))
	if err != nil {
		return nil, err
	}
	r.UpdateViewport(width, height)

	app := &App{
		window:   window,
		input:    input.NewInputManager(),
		session:  session,
		demo:     demo,
		camera:   camera,
		renderer: r,
		log:      log,
		ticks:    game.NewLimiter(game.TicksPerSecond),
		frames:   game.NewLimiter(FrameRate),
		lastTime: time.Now(),
	}
	setupInputHandlers(app)
	return app, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	startTick := time.Now() // Measure pure processing time
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()
	a.handleInput(dt)

	for a.ticks.Due(now) {
		if a.autoDemo && a.demo != nil {
			a.demo.Step(a.session.World, a.demoTick)
			a.demoTick++
		}
		a.session.Tick()
	}

	a.renderer.Render(dt)
	a.window.SwapBuffers()

	// Check if frame took too long (> 16ms)
	if d := time.Since(startTick); d > 16*time.Millisecond {
		a.log.Debug("slow frame", zap.Duration("took", d), zap.String("top", profiling.TopN(5)))
	}

	a.input.PostUpdate() // Clear "JustPressed" flags
	a.frames.Wait()
}

func (a *App) handleInput(dt float64) {
	im := a.input
	step := float32(dt)

	if im.IsActive(input.ActionOrbitLeft) {
		a.camera.Orbit(-orbitSpeed*step, 0)
	}
	if im.IsActive(input.ActionOrbitRight) {
		a.camera.Orbit(orbitSpeed*step, 0)
	}
	if im.IsActive(input.ActionOrbitUp) {
		a.camera.Orbit(0, orbitSpeed*step)
	}
	if im.IsActive(input.ActionOrbitDown) {
		a.camera.Orbit(0, -orbitSpeed*step)
	}
	if im.IsActive(input.ActionZoomIn) {
		a.camera.Zoom(-zoomSpeed * step)
	}
	if im.IsActive(input.ActionZoomOut) {
		a.camera.Zoom(zoomSpeed * step)
	}
	if dx, dy := im.Drag(); dx != 0 || dy != 0 {
		a.camera.Orbit(float32(-dx)*dragScale, float32(dy)*dragScale)
	}
	if s := im.Scroll(); s != 0 {
		a.camera.Zoom(float32(-s))
	}

	if im.JustPressed(input.ActionStepDemo) && a.demo != nil {
		p := a.demo.Step(a.session.World, a.demoTick)
		a.demoTick++
		a.log.Debug("demo step", zap.Stringer("pos", p))
	}
	if im.JustPressed(input.ActionToggleAutoDemo) {
		a.autoDemo = !a.autoDemo
		a.log.Info("auto demo", zap.Bool("on", a.autoDemo))
	}

	hue := hueStep
	if im.IsActive(input.ActionModShift) {
		hue = -hueStep
	}
	switch {
	case im.JustPressed(input.ActionToggleIndicators):
		a.updateConfig(func(c *config.Config) { c.Enabled = !c.Enabled })
	case im.JustPressed(input.ActionToggleChests):
		a.updateConfig(func(c *config.Config) { c.Blocks.Chest = !c.Blocks.Chest })
	case im.JustPressed(input.ActionCycleColor):
		a.updateConfig(func(c *config.Config) { c.IndicatorColor = c.IndicatorColor.RotateHue(hue) })
	}

	if im.JustPressed(input.ActionSave) {
		if _, err := a.session.Save(); err != nil {
			a.log.Error("save failed", zap.Error(err))
		}
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.log.Info("profile", zap.String("top", profiling.TopN(8)))
	}
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
}

func (a *App) updateConfig(fn func(*config.Config)) {
	if err := a.session.Config.Update(fn); err != nil {
		a.log.Warn("could not save config", zap.Error(err))
	}
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.renderer.Render(0.016)
	a.window.SwapBuffers()
}

// Dispose releases the GL resources. The session is left to the caller.
func (a *App) Dispose() {
	a.renderer.Dispose()
}

// Package input maps GLFW keys and mouse buttons to viewer actions and tracks their
// per-frame edges, cursor drags and scrolling.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer action, not a physical key.
type Action int

const (
	ActionOrbitLeft Action = iota
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionStepDemo
	ActionToggleAutoDemo
	ActionToggleIndicators
	ActionToggleChests
	ActionCycleColor
	ActionSave
	ActionToggleProfiling
	ActionQuit
	ActionMouseLeft
	ActionModShift
	ActionCount // sentinel for array sizing
)

func (a Action) valid() bool { return a >= 0 && a < ActionCount }

// DefaultKeys are the key bindings NewInputManager starts with.
var DefaultKeys = map[glfw.Key]Action{
	glfw.KeyA:          ActionOrbitLeft,
	glfw.KeyLeft:       ActionOrbitLeft,
	glfw.KeyD:          ActionOrbitRight,
	glfw.KeyRight:      ActionOrbitRight,
	glfw.KeyW:          ActionOrbitUp,
	glfw.KeyUp:         ActionOrbitUp,
	glfw.KeyS:          ActionOrbitDown,
	glfw.KeyDown:       ActionOrbitDown,
	glfw.KeyE:          ActionZoomIn,
	glfw.KeyQ:          ActionZoomOut,
	glfw.KeySpace:      ActionStepDemo,
	glfw.KeyP:          ActionToggleAutoDemo,
	glfw.KeyI:          ActionToggleIndicators,
	glfw.KeyC:          ActionToggleChests,
	glfw.KeyT:          ActionCycleColor,
	glfw.KeyF5:         ActionSave,
	glfw.KeyV:          ActionToggleProfiling,
	glfw.KeyEscape:     ActionQuit,
	glfw.KeyLeftShift:  ActionModShift,
	glfw.KeyRightShift: ActionModShift,
}

// source is a physical input: a key or a mouse button.
type source struct {
	mouse bool
	code  int
}

// InputManager is fed from the GLFW callbacks and read by the frame loop. An action is
// held while any input bound to it is down.
type InputManager struct {
	mu sync.RWMutex

	bindings map[source][]Action
	down     map[source]bool

	held         [ActionCount]int
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	lastX, lastY float64
	haveCursor   bool
	dragX, dragY float64
	scroll       float64
}

// NewInputManager creates a manager with DefaultKeys and the left mouse button bound.
func NewInputManager() *InputManager {
	im := &InputManager{
		bindings: make(map[source][]Action),
		down:     make(map[source]bool),
	}
	for key, action := range DefaultKeys {
		im.BindKey(key, action)
	}
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	return im
}

// BindKey adds action to key. Several keys may share an action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.bind(source{code: int(key)}, action)
}

// BindMouseButton adds action to button.
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.bind(source{mouse: true, code: int(button)}, action)
}

func (im *InputManager) bind(src source, action Action) {
	if !action.valid() {
		return
	}
	im.mu.Lock()
	im.bindings[src] = append(im.bindings[src], action)
	im.mu.Unlock()
}

// UnbindKey removes every binding of key, releasing its actions if it is down.
func (im *InputManager) UnbindKey(key glfw.Key) {
	src := source{code: int(key)}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.setLocked(src, false)
	delete(im.bindings, src)
}

// HandleKeyEvent records a key press, repeat or release.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	im.setLocked(source{code: int(key)}, action == glfw.Press || action == glfw.Repeat)
	im.mu.Unlock()
}

// HandleMouseButtonEvent records a mouse button press or release.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	im.setLocked(source{mouse: true, code: int(button)}, action == glfw.Press)
	im.mu.Unlock()
}

func (im *InputManager) setLocked(src source, pressed bool) {
	actions, ok := im.bindings[src]
	if !ok || im.down[src] == pressed {
		return
	}
	if pressed {
		im.down[src] = true
	} else {
		delete(im.down, src)
	}
	for _, a := range actions {
		if pressed {
			if im.held[a] == 0 {
				im.justPressed[a] = true
			}
			im.held[a]++
		} else {
			im.held[a]--
			if im.held[a] == 0 {
				im.justReleased[a] = true
			}
		}
	}
}

// HandleCursorPos records cursor movement. Movement counts as a drag while
// ActionMouseLeft is held.
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.haveCursor && im.held[ActionMouseLeft] > 0 {
		im.dragX += x - im.lastX
		im.dragY += y - im.lastY
	}
	im.lastX, im.lastY = x, y
	im.haveCursor = true
}

// HandleScroll accumulates vertical scroll offsets.
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	im.scroll += yoff
	im.mu.Unlock()
}

// Drag returns the cursor movement dragged since the last PostUpdate.
func (im *InputManager) Drag() (dx, dy float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.dragX, im.dragY
}

// Scroll returns the scroll offset accumulated since the last PostUpdate.
func (im *InputManager) Scroll() float64 {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.scroll
}

// PostUpdate ends the frame: edges, drag and scroll start again from zero.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.justPressed = [ActionCount]bool{}
	im.justReleased = [ActionCount]bool{}
	im.dragX, im.dragY = 0, 0
	im.scroll = 0
}

// IsActive reports whether the action is held down.
func (im *InputManager) IsActive(action Action) bool {
	if !action.valid() {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.held[action] > 0
}

// JustPressed reports whether the action went down during this frame.
func (im *InputManager) JustPressed(action Action) bool {
	if !action.valid() {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased reports whether the action was let go during this frame.
func (im *InputManager) JustReleased(action Action) bool {
	if !action.valid() {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

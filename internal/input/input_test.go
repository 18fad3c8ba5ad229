package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyI, glfw.Press)
	if !im.JustPressed(ActionToggleIndicators) || !im.IsActive(ActionToggleIndicators) {
		t.Fatal("press not registered")
	}
	im.PostUpdate()
	if im.JustPressed(ActionToggleIndicators) {
		t.Fatal("JustPressed survived PostUpdate")
	}
	im.HandleKeyEvent(glfw.KeyI, glfw.Repeat)
	if im.JustPressed(ActionToggleIndicators) {
		t.Fatal("repeat counted as a new press")
	}
	im.HandleKeyEvent(glfw.KeyI, glfw.Release)
	if !im.JustReleased(ActionToggleIndicators) || im.IsActive(ActionToggleIndicators) {
		t.Fatal("release not registered")
	}
}

func TestSeveralKeysOneAction(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	if !im.IsActive(ActionOrbitLeft) {
		t.Fatal("arrow key not bound")
	}
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	if im.JustReleased(ActionOrbitLeft) {
		t.Fatal("second key produced an edge")
	}
	im.HandleKeyEvent(glfw.KeyA, glfw.Release)
	if !im.IsActive(ActionOrbitLeft) {
		t.Fatal("releasing one key dropped an action the other key still holds")
	}
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Release)
	if im.IsActive(ActionOrbitLeft) || !im.JustReleased(ActionOrbitLeft) {
		t.Fatal("action still held after both keys were released")
	}
}

func TestUnbindReleasesHeldKey(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	im.UnbindKey(glfw.KeyD)
	if im.IsActive(ActionOrbitRight) {
		t.Fatal("unbinding a held key left its action active")
	}
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	if im.IsActive(ActionOrbitRight) {
		t.Fatal("unbound key changed state")
	}
}

func TestDragOnlyWhileButtonHeld(t *testing.T) {
	im := NewInputManager()
	im.HandleCursorPos(10, 10)
	im.HandleCursorPos(20, 15)
	if dx, dy := im.Drag(); dx != 0 || dy != 0 {
		t.Fatalf("drag without button = %v,%v", dx, dy)
	}

	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleCursorPos(25, 5)
	im.HandleCursorPos(30, 0)
	if dx, dy := im.Drag(); dx != 10 || dy != -15 {
		t.Fatalf("drag = %v,%v, want 10,-15", dx, dy)
	}

	im.HandleScroll(1.5)
	im.HandleScroll(-0.5)
	if got := im.Scroll(); got != 1 {
		t.Fatalf("scroll = %v", got)
	}

	im.PostUpdate()
	if dx, dy := im.Drag(); dx != 0 || dy != 0 || im.Scroll() != 0 {
		t.Fatal("PostUpdate kept movement")
	}
}

func TestOutOfRangeActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyZ, ActionCount)
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	if im.IsActive(ActionCount) || im.JustPressed(-1) || im.JustReleased(ActionCount) {
		t.Fatal("out of range action reported active")
	}
}

package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxcraft/internal/render"
)

const (
	moveSpeed   = 24.0
	lookSpeed   = 0.12
	maxPitchDeg = 89.0
)

// inputState implements fly-camera controls: WASD + space/shift for
// movement, mouse for look, escape to quit.
type inputState struct {
	window *glfw.Window
	cam    *render.Camera

	lastX, lastY float64
	firstMouse   bool
}

func newInputState(window *glfw.Window, cam *render.Camera) *inputState {
	in := &inputState{window: window, cam: cam, firstMouse: true}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(in.onCursor)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return in
}

func (in *inputState) onCursor(_ *glfw.Window, x, y float64) {
	if in.firstMouse {
		in.lastX, in.lastY = x, y
		in.firstMouse = false
		return
	}
	dx := float32(x-in.lastX) * lookSpeed
	dy := float32(in.lastY-y) * lookSpeed
	in.lastX, in.lastY = x, y

	in.cam.Yaw += dx
	in.cam.Pitch += dy
	if in.cam.Pitch > maxPitchDeg {
		in.cam.Pitch = maxPitchDeg
	}
	if in.cam.Pitch < -maxPitchDeg {
		in.cam.Pitch = -maxPitchDeg
	}
}

func (in *inputState) update(dt float64) {
	velocity := float32(moveSpeed * dt)
	front := in.cam.Front()
	right := front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	pressed := func(k glfw.Key) bool { return in.window.GetKey(k) == glfw.Press }

	if pressed(glfw.KeyW) {
		in.cam.Position = in.cam.Position.Add(front.Mul(velocity))
	}
	if pressed(glfw.KeyS) {
		in.cam.Position = in.cam.Position.Sub(front.Mul(velocity))
	}
	if pressed(glfw.KeyA) {
		in.cam.Position = in.cam.Position.Sub(right.Mul(velocity))
	}
	if pressed(glfw.KeyD) {
		in.cam.Position = in.cam.Position.Add(right.Mul(velocity))
	}
	if pressed(glfw.KeySpace) {
		in.cam.Position = in.cam.Position.Add(mgl32.Vec3{0, velocity, 0})
	}
	if pressed(glfw.KeyLeftShift) {
		in.cam.Position = in.cam.Position.Sub(mgl32.Vec3{0, velocity, 0})
	}
}

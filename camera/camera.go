// Package camera provides the 2D pan/zoom camera used by the camera2d
// scene. The camera is pure math plus the bind-group layout of the uniform
// buffer the matrix is uploaded into.
package camera

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/wgpu/hal"
)

// Step is how far one arrow key press pans the camera, in pixels.
const Step = 3

// UniformSize is the size in bytes of the uploaded matrix.
const UniformSize = 64

// Camera2D maps pixel coordinates with a top-left origin to clip space.
// Panning is unbounded.
type Camera2D struct {
	Width, Height float32
	Scale         float32
	X, Y          float32
}

// New returns a camera over a width x height viewport at the given zoom,
// positioned at the origin.
func New(width, height, scale float32) *Camera2D {
	return &Camera2D{Width: width, Height: height, Scale: scale}
}

// Projection maps [0,Width]x[0,Height] to clip space with Y pointing down
// and depth range [-1,1].
func (c *Camera2D) Projection() mgl32.Mat4 {
	return mgl32.Ortho(0, c.Width, c.Height, 0, -1, 1)
}

// View is scale * translate(-X, -Y, -1).
func (c *Camera2D) View() mgl32.Mat4 {
	scale := mgl32.Scale3D(c.Scale, c.Scale, 1)
	translate := mgl32.Translate3D(-c.X, -c.Y, -1)
	return scale.Mul4(translate)
}

// Matrix returns transpose(Projection * View), the layout the camera
// shader multiplies positions by from the left.
func (c *Camera2D) Matrix() mgl32.Mat4 {
	return c.Projection().Mul4(c.View()).Transpose()
}

// Bytes returns Matrix as UniformSize little-endian bytes in memory order.
func (c *Camera2D) Bytes() []byte {
	m := c.Matrix()
	buf := make([]byte, UniformSize)
	for i, f := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// Pan moves the camera by (dx, dy) pixels.
func (c *Camera2D) Pan(dx, dy float32) {
	c.X += dx
	c.Y += dy
}

// HandleKey pans the camera by Step for arrow key presses and repeats.
// Releases and other keys are ignored. It reports whether the camera moved.
func (c *Camera2D) HandleKey(ev sandbox.KeyEvent) bool {
	if !ev.Pressed() {
		return false
	}
	switch ev.Key {
	case sandbox.KeyUp:
		c.Pan(0, -Step)
	case sandbox.KeyDown:
		c.Pan(0, Step)
	case sandbox.KeyLeft:
		c.Pan(-Step, 0)
	case sandbox.KeyRight:
		c.Pan(Step, 0)
	default:
		return false
	}
	return true
}

// BindGroupLayout creates the layout for the camera uniform: one
// vertex-visible uniform buffer at binding 0.
func BindGroupLayout(device hal.Device) (hal.BindGroupLayout, error) {
	return device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "camera_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeUniform,
				},
			},
		},
	})
}

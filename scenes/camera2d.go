package scenes

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/sandbox/camera"
	"github.com/gogpu/sandbox/vertex"
	"github.com/gogpu/wgpu/hal"
)

func init() {
	sandbox.RegisterScene("camera2d", NewCamera2D)
}

// camera2DVertices are in pixels with a top-left origin.
var camera2DVertices = []vertex.PosCol{
	{X: 320, Y: 140, R: 1, G: 1, B: 1},
	{X: 220, Y: 290, R: 0, G: 1, B: 1},
	{X: 420, Y: 290, R: 0, G: 0, B: 1},
}

// Camera2D draws a pixel-space triangle through a camera the arrow keys
// pan.
type Camera2D struct {
	device    hal.Device
	pipe      *pipeline
	vertices  hal.Buffer
	uniform   hal.Buffer
	bindGroup hal.BindGroup
	camera    *camera.Camera2D
}

// NewCamera2D builds the camera scene over a 640x480 viewport.
func NewCamera2D(env sandbox.SceneEnv) (sandbox.Renderable, error) {
	layout, err := camera.BindGroupLayout(env.Device)
	if err != nil {
		return nil, fmt.Errorf("create camera layout: %w", err)
	}
	pipe, err := newPipeline(env, pipelineDesc{
		label:   "camera2d",
		shader:  "camera2d.wgsl",
		buffers: []gputypes.VertexBufferLayout{vertex.PosCol{}.Layout()},
		layouts: []hal.BindGroupLayout{layout},
	})
	if err != nil {
		return nil, err
	}

	s := &Camera2D{
		device: env.Device,
		pipe:   pipe,
		camera: camera.New(640, 480, 1),
	}

	if s.vertices, err = uploadBuffer(env, "camera2d_vertices", vertex.PosColBytes(camera2DVertices), gputypes.BufferUsageVertex); err != nil {
		s.Destroy()
		return nil, err
	}
	// CopyDst is added by uploadBuffer, so input can rewrite the matrix.
	if s.uniform, err = uploadBuffer(env, "camera2d_uniform", s.camera.Bytes(), gputypes.BufferUsageUniform); err != nil {
		s.Destroy()
		return nil, err
	}
	if s.bindGroup, err = uniformBindGroup(env.Device, "camera2d_bind_group", layout, s.uniform, camera.UniformSize); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

func (s *Camera2D) Render(pass sandbox.RenderPass) {
	pass.SetPipeline(s.pipe.pipeline)
	pass.SetBindGroup(0, s.bindGroup, nil)
	pass.SetVertexBuffer(0, s.vertices, 0)
	pass.Draw(uint32(len(camera2DVertices)), 1, 0, 0)
}

// HandleInput pans on arrow presses and re-uploads the matrix. Other
// events leave the camera and the buffer untouched.
func (s *Camera2D) HandleInput(ev sandbox.KeyEvent, q hal.Queue) {
	if !s.camera.HandleKey(ev) {
		return
	}
	sandbox.Logger().Debug("scenes: camera moved", "x", s.camera.X, "y", s.camera.Y)
	if err := q.WriteBuffer(s.uniform, 0, s.camera.Bytes()); err != nil {
		sandbox.Logger().Warn("scenes: camera upload failed", "error", err)
	}
}

// Camera returns the scene camera.
func (s *Camera2D) Camera() *camera.Camera2D { return s.camera }

func (s *Camera2D) Destroy() {
	if s.bindGroup != nil {
		s.device.DestroyBindGroup(s.bindGroup)
		s.bindGroup = nil
	}
	destroyBuffers(s.device, s.vertices, s.uniform)
	s.vertices, s.uniform = nil, nil
	s.pipe.destroy()
}

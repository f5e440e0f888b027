package scenes

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/sandbox/vertex"
	"github.com/gogpu/wgpu/hal"
)

func init() {
	sandbox.RegisterScene("uniform", NewUniformColored)
}

var uniformVertices = []vertex.Pos{
	{X: 0, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// uniformColors are indexed by vertex in the shader.
var uniformColors = [3][4]float32{
	{1, 1, 1, 1},
	{0, 1, 1, 1},
	{0, 0, 1, 1},
}

// UniformColored draws a triangle whose vertex colors live in a uniform
// buffer rather than in the vertex data.
type UniformColored struct {
	device    hal.Device
	pipe      *pipeline
	vertices  hal.Buffer
	colors    hal.Buffer
	bindGroup hal.BindGroup
}

// NewUniformColored builds the uniform scene.
func NewUniformColored(env sandbox.SceneEnv) (sandbox.Renderable, error) {
	layout, err := env.Device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "uniform_colors_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform colors layout: %w", err)
	}

	pipe, err := newPipeline(env, pipelineDesc{
		label:   "uniform",
		shader:  "uniform.wgsl",
		buffers: []gputypes.VertexBufferLayout{vertex.Pos{}.Layout()},
		layouts: []hal.BindGroupLayout{layout},
	})
	if err != nil {
		return nil, err
	}

	s := &UniformColored{device: env.Device, pipe: pipe}
	if err := s.init(env, layout); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

func (s *UniformColored) init(env sandbox.SceneEnv, layout hal.BindGroupLayout) error {
	var err error
	s.vertices, err = uploadBuffer(env, "uniform_vertices", vertex.PosBytes(uniformVertices), gputypes.BufferUsageVertex)
	if err != nil {
		return err
	}
	data := colorBytes(uniformColors)
	s.colors, err = uploadBuffer(env, "uniform_colors", data, gputypes.BufferUsageUniform)
	if err != nil {
		return err
	}
	s.bindGroup, err = uniformBindGroup(env.Device, "uniform_colors_bind_group", layout, s.colors, uint64(len(data)))
	return err
}

func colorBytes(colors [3][4]float32) []byte {
	buf := make([]byte, 0, len(colors)*16)
	for _, c := range colors {
		for _, f := range c {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	return buf
}

func (s *UniformColored) Render(pass sandbox.RenderPass) {
	pass.SetPipeline(s.pipe.pipeline)
	pass.SetBindGroup(0, s.bindGroup, nil)
	pass.SetVertexBuffer(0, s.vertices, 0)
	pass.Draw(uint32(len(uniformVertices)), 1, 0, 0)
}

func (s *UniformColored) Destroy() {
	if s.bindGroup != nil {
		s.device.DestroyBindGroup(s.bindGroup)
		s.bindGroup = nil
	}
	destroyBuffers(s.device, s.vertices, s.colors)
	s.vertices, s.colors = nil, nil
	s.pipe.destroy()
}

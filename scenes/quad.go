package scenes

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/sandbox/vertex"
	"github.com/gogpu/wgpu/hal"
)

func init() {
	sandbox.RegisterScene("quad", NewQuad)
}

// quadVertices are two triangles with a corner color each.
var quadVertices = []vertex.PosCol{
	{X: -0.7, Y: -0.7, R: 1, G: 0, B: 0},
	{X: 0.7, Y: -0.7, R: 0, G: 1, B: 0},
	{X: -0.7, Y: 0.7, R: 1, G: 1, B: 0},
	{X: -0.7, Y: 0.7, R: 1, G: 1, B: 0},
	{X: 0.7, Y: -0.7, R: 0, G: 1, B: 0},
	{X: 0.7, Y: 0.7, R: 0, G: 0, B: 1},
}

// Quad draws a colored quad from six unindexed vertices.
type Quad struct {
	device   hal.Device
	pipe     *pipeline
	vertices hal.Buffer
	count    uint32
}

// NewQuad builds the quad scene.
func NewQuad(env sandbox.SceneEnv) (sandbox.Renderable, error) {
	pipe, err := newPipeline(env, pipelineDesc{
		label:   "quad",
		shader:  "poscol.wgsl",
		buffers: []gputypes.VertexBufferLayout{vertex.PosCol{}.Layout()},
	})
	if err != nil {
		return nil, err
	}
	vb, err := uploadBuffer(env, "quad_vertices", vertex.PosColBytes(quadVertices), gputypes.BufferUsageVertex)
	if err != nil {
		pipe.destroy()
		return nil, err
	}
	return &Quad{
		device:   env.Device,
		pipe:     pipe,
		vertices: vb,
		count:    uint32(len(quadVertices)),
	}, nil
}

func (s *Quad) Render(pass sandbox.RenderPass) {
	pass.SetPipeline(s.pipe.pipeline)
	pass.SetVertexBuffer(0, s.vertices, 0)
	pass.Draw(s.count, 1, 0, 0)
}

func (s *Quad) Destroy() {
	destroyBuffers(s.device, s.vertices)
	s.pipe.destroy()
}

package scenes

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/sandbox/texture"
	"github.com/gogpu/sandbox/vertex"
	"github.com/gogpu/wgpu/hal"
)

func init() {
	sandbox.RegisterScene("textured", NewTextured)
}

// errNoTexturePath is returned when the textured scene has nothing to load.
var errNoTexturePath = errors.New("scenes: textured scene needs a texture path")

// texturedVertices cover the whole viewport with the image upright.
var texturedVertices = []vertex.PosTex{
	{X: -1, Y: 1, U: 0, V: 0},
	{X: 1, Y: 1, U: 1, V: 0},
	{X: -1, Y: -1, U: 0, V: 1},
	{X: 1, Y: -1, U: 1, V: 1},
}

var texturedIndices = []uint16{0, 2, 1, 1, 2, 3}

// texturedQuad is an indexed fullscreen quad sampling one texture. It is
// shared by the textured and canvas scenes.
type texturedQuad struct {
	device    hal.Device
	pipe      *pipeline
	vertices  hal.Buffer
	indices   hal.Buffer
	tex       *texture.Texture
	bindGroup hal.BindGroup
}

// newTexturedQuad takes ownership of tex, releasing it on error.
func newTexturedQuad(env sandbox.SceneEnv, label string, tex *texture.Texture) (*texturedQuad, error) {
	q := &texturedQuad{device: env.Device, tex: tex}

	layout, err := texture.BindGroupLayout(env.Device)
	if err != nil {
		q.destroy()
		return nil, fmt.Errorf("create %s texture layout: %w", label, err)
	}
	q.pipe, err = newPipeline(env, pipelineDesc{
		label:   label,
		shader:  "textured.wgsl",
		buffers: []gputypes.VertexBufferLayout{vertex.PosTex{}.Layout()},
		layouts: []hal.BindGroupLayout{layout},
	})
	if err != nil {
		q.destroy()
		return nil, err
	}

	if q.vertices, err = uploadBuffer(env, label+"_vertices", vertex.PosTexBytes(texturedVertices), gputypes.BufferUsageVertex); err != nil {
		q.destroy()
		return nil, err
	}
	if q.indices, err = uploadBuffer(env, label+"_indices", vertex.Indices16(texturedIndices), gputypes.BufferUsageIndex); err != nil {
		q.destroy()
		return nil, err
	}
	if q.bindGroup, err = tex.BindGroup(env.Device, layout); err != nil {
		q.destroy()
		return nil, err
	}
	return q, nil
}

func (q *texturedQuad) render(pass sandbox.RenderPass) {
	pass.SetPipeline(q.pipe.pipeline)
	pass.SetBindGroup(0, q.bindGroup, nil)
	pass.SetVertexBuffer(0, q.vertices, 0)
	pass.SetIndexBuffer(q.indices, gputypes.IndexFormatUint16, 0)
	pass.DrawIndexed(uint32(len(texturedIndices)), 1, 0, 0, 0)
}

func (q *texturedQuad) destroy() {
	if q.bindGroup != nil {
		q.device.DestroyBindGroup(q.bindGroup)
		q.bindGroup = nil
	}
	destroyBuffers(q.device, q.vertices, q.indices)
	q.vertices, q.indices = nil, nil
	if q.pipe != nil {
		q.pipe.destroy()
		q.pipe = nil
	}
	if q.tex != nil {
		q.tex.Destroy(q.device)
		q.tex = nil
	}
}

// Textured draws an image file over the whole surface.
type Textured struct {
	quad *texturedQuad
}

// NewTextured loads env.Config.TexturePath and builds the textured scene.
func NewTextured(env sandbox.SceneEnv) (sandbox.Renderable, error) {
	path := env.Config.TexturePath
	if path == "" {
		return nil, errNoTexturePath
	}
	tex, err := texture.Load(env.Device, env.Queue, path)
	if err != nil {
		return nil, err
	}
	sandbox.Logger().Debug("scenes: texture loaded", "path", path, "width", tex.Width, "height", tex.Height)

	quad, err := newTexturedQuad(env, "textured", tex)
	if err != nil {
		return nil, err
	}
	return &Textured{quad: quad}, nil
}

func (s *Textured) Render(pass sandbox.RenderPass) { s.quad.render(pass) }

func (s *Textured) Destroy() { s.quad.destroy() }

// Size returns the pixel size of the loaded image.
func (s *Textured) Size() (width, height uint32) {
	return s.quad.tex.Width, s.quad.tex.Height
}

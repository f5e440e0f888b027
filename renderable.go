package sandbox

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// RenderPass is the part of an open render pass a Renderable may record
// into. It deliberately has no way to end the pass, submit work or present:
// those belong to the GraphicsContext.
//
// hal.RenderPassEncoder satisfies RenderPass.
type RenderPass interface {
	SetPipeline(pipeline hal.RenderPipeline)
	SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32)
	SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64)
	SetIndexBuffer(buffer hal.Buffer, format gputypes.IndexFormat, offset uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

// Renderable is a self-contained scene driven by the GraphicsContext.
//
// A Renderable owns its pipeline, geometry buffers and bind groups. Its
// pipeline targets the color format it was constructed with, which is the
// surface format of the owning context. The context destroys the Renderable
// before the device that created its resources.
type Renderable interface {
	// Render binds the pipeline, bind groups and buffers and records
	// exactly one draw into pass.
	Render(pass RenderPass)

	// Destroy releases every GPU object the Renderable created.
	Destroy()
}

// Updater is implemented by Renderables that advance state once per frame.
type Updater interface {
	Update()
}

// InputHandler is implemented by Renderables that react to keyboard input.
// Handlers must ignore Release events and keys they do not recognize. When
// handling an event changes a bound resource, the new contents are written
// through q.
type InputHandler interface {
	HandleInput(ev KeyEvent, q hal.Queue)
}

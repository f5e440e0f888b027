package scenes

import (
	"embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/sandbox/internal/shader"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/*.wgsl
var shaderFS embed.FS

// pipelineDesc describes the single render pipeline a scene draws with.
type pipelineDesc struct {
	label   string
	shader  string // file name under shaders/
	buffers []gputypes.VertexBufferLayout

	// layouts are owned by the pipeline once passed in.
	layouts []hal.BindGroupLayout
}

// pipeline holds a scene's shader, layouts and render pipeline.
type pipeline struct {
	device   hal.Device
	module   hal.ShaderModule
	layouts  []hal.BindGroupLayout
	layout   hal.PipelineLayout
	pipeline hal.RenderPipeline
}

// newPipeline builds a triangle-list pipeline with a single color target of
// the surface format. On error every layout in desc is released.
func newPipeline(env sandbox.SceneEnv, desc pipelineDesc) (*pipeline, error) {
	p := &pipeline{device: env.Device, layouts: desc.layouts}

	src, err := shaderFS.ReadFile("shaders/" + desc.shader)
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("read %s shader: %w", desc.label, err)
	}
	source := shader.WGSL
	if env.Config.PrecompileShaders {
		source = shader.SPIRV
	}
	p.module, err = shader.Module(env.Device, desc.label+"_shader", string(src), source)
	if err != nil {
		p.destroy()
		return nil, err
	}

	p.layout, err = env.Device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            desc.label + "_pipe_layout",
		BindGroupLayouts: desc.layouts,
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create %s pipeline layout: %w", desc.label, err)
	}

	p.pipeline, err = env.Device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  desc.label + "_pipeline",
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     p.module,
			EntryPoint: "vs_main",
			Buffers:    desc.buffers,
		},
		Fragment: &hal.FragmentState{
			Module:     p.module,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    env.Format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create %s pipeline: %w", desc.label, err)
	}
	return p, nil
}

// destroy releases everything in reverse creation order.
func (p *pipeline) destroy() {
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		p.device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	for _, l := range p.layouts {
		if l != nil {
			p.device.DestroyBindGroupLayout(l)
		}
	}
	p.layouts = nil
	if p.module != nil {
		p.device.DestroyShaderModule(p.module)
		p.module = nil
	}
}

// uploadBuffer creates a buffer sized for data and writes data into it.
func uploadBuffer(env sandbox.SceneEnv, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := env.Device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := env.Queue.WriteBuffer(buf, 0, data); err != nil {
		env.Device.DestroyBuffer(buf)
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	return buf, nil
}

// uniformBindGroup binds buf, of size bytes, at binding 0 of layout.
func uniformBindGroup(device hal.Device, label string, layout hal.BindGroupLayout, buf hal.Buffer, size uint64) (hal.BindGroup, error) {
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label,
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: buf.NativeHandle(), Offset: 0, Size: size}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	return bg, nil
}

// destroyBuffers releases non-nil buffers.
func destroyBuffers(device hal.Device, bufs ...hal.Buffer) {
	for _, b := range bufs {
		if b != nil {
			device.DestroyBuffer(b)
		}
	}
}

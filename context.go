package sandbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// frameTimeout bounds the wait for a submitted frame to finish on the GPU.
const frameTimeout = 5 * time.Second

// submitPollInterval is the sleep between completion checks.
const submitPollInterval = 200 * time.Microsecond

// PresentMode selects how frames are queued for display.
type PresentMode uint8

const (
	// PresentModeFifo waits for vertical blank; it is always supported.
	PresentModeFifo PresentMode = iota
)

// AlphaMode selects how the surface is composited with the desktop.
type AlphaMode uint8

const (
	AlphaModeOpaque AlphaMode = iota
	AlphaModeAuto
)

// SurfaceConfig is the active presentation configuration. Width and Height
// are always at least 1.
type SurfaceConfig struct {
	Width       uint32
	Height      uint32
	Format      gputypes.TextureFormat
	PresentMode PresentMode
	AlphaMode   AlphaMode
}

// GraphicsContext owns the GPU device, the presentation surface and the
// single active Renderable, and drives one frame per Render call.
//
// A GraphicsContext is not safe for concurrent use; it belongs to the
// goroutine running the window event loop.
type GraphicsContext struct {
	instance Instance
	adapter  Adapter
	info     AdapterInfo
	device   hal.Device
	queue    hal.Queue

	// surface is nil exactly while the context is suspended.
	surface Surface
	config  SurfaceConfig

	renderable Renderable
	sceneName  string

	policy     SurfacePolicy
	clearColor gputypes.Color
	destroyed  bool
}

// New creates a context presenting to target. It creates the surface,
// selects an adapter, opens the device, configures the surface with the
// first supported format and builds the configured scene.
//
// New takes ownership of instance: it is destroyed with the context, or
// before New returns an error. Every error is an environment failure the
// caller cannot recover from.
func New(instance Instance, target SurfaceTarget, opts ...Option) (*GraphicsContext, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy == nil {
		o.policy = DefaultSurfacePolicy()
	}

	c := &GraphicsContext{
		instance:   instance,
		policy:     o.policy,
		clearColor: o.clearColor,
		sceneName:  o.scene,
	}
	if err := c.init(target, o); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

func (c *GraphicsContext) init(target SurfaceTarget, o options) error {
	log := Logger()

	log.Debug("sandbox: creating surface")
	surface, err := c.instance.CreateSurface(target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}
	c.surface = surface

	log.Debug("sandbox: requesting adapter")
	adapter, err := c.instance.RequestAdapter(surface)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	c.adapter = adapter
	c.info = adapter.Info()
	log.Info("sandbox: adapter selected",
		"name", c.info.Name, "type", c.info.DeviceType, "backend", c.info.Backend)

	log.Debug("sandbox: opening device")
	device, queue, err := adapter.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceRequest, err)
	}
	c.device, c.queue = device, queue

	formats := adapter.SurfaceFormats(surface)
	if len(formats) == 0 {
		return ErrNoSurfaceFormat
	}
	c.config = SurfaceConfig{
		Format:      formats[0],
		PresentMode: PresentModeFifo,
		AlphaMode:   AlphaModeOpaque,
	}
	c.config.Width, c.config.Height = framebufferSize(target)
	if err := c.configure(); err != nil {
		return err
	}

	r, err := NewScene(o.scene, SceneEnv{
		Device: device,
		Queue:  queue,
		Format: c.config.Format,
		Width:  c.config.Width,
		Height: c.config.Height,
		Config: o.sceneConfig,
	})
	if err != nil {
		return err
	}
	c.renderable = r
	log.Info("sandbox: scene ready", "scene", o.scene, "format", c.config.Format,
		"width", c.config.Width, "height", c.config.Height, "policy", c.policy.Name())
	return nil
}

// Render draws one frame: acquire, one clearing render pass delegated to
// the Renderable, submit, present. It does nothing while suspended.
//
// An outdated surface is reconfigured and acquisition retried once. Any
// other failure is returned and should be treated as fatal.
func (c *GraphicsContext) Render() error {
	if c.destroyed {
		return ErrDestroyed
	}
	if c.surface == nil {
		Logger().Debug("sandbox: render skipped while suspended")
		return nil
	}

	frame, err := c.acquire()
	if err != nil {
		return err
	}

	view, err := c.device.CreateTextureView(frame.Texture, &hal.TextureViewDescriptor{
		Label:         "frame_view",
		Format:        c.config.Format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		c.surface.DiscardFrame(frame)
		return fmt.Errorf("%w: create frame view: %w", ErrAcquireFrame, err)
	}
	defer c.device.DestroyTextureView(view)

	if err := c.encodeAndSubmit(view); err != nil {
		c.surface.DiscardFrame(frame)
		return err
	}

	if err := c.surface.Present(c.queue, frame); err != nil {
		return fmt.Errorf("%w: %w", ErrPresent, err)
	}

	if frame.Suboptimal {
		Logger().Debug("sandbox: suboptimal frame, reconfiguring surface")
		return c.configure()
	}
	return nil
}

// acquire returns the next surface frame, reconfiguring once when the
// surface reports it is outdated.
func (c *GraphicsContext) acquire() (*Frame, error) {
	frame, err := c.surface.AcquireFrame(c.device)
	if errors.Is(err, ErrSurfaceOutdated) {
		Logger().Warn("sandbox: surface outdated, reconfiguring",
			"width", c.config.Width, "height", c.config.Height)
		if cerr := c.configure(); cerr != nil {
			return nil, fmt.Errorf("%w: %w", ErrAcquireFrame, cerr)
		}
		frame, err = c.surface.AcquireFrame(c.device)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquireFrame, err)
	}
	return frame, nil
}

// encodeAndSubmit records the frame's single render pass into view and
// waits for the GPU to finish it.
func (c *GraphicsContext) encodeAndSubmit(view hal.TextureView) error {
	encoder, err := c.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: c.clearColor,
		}},
	})
	c.renderable.Render(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer c.device.FreeCommandBuffer(cmdBuf)

	idx, err := c.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return c.waitSubmission(idx)
}

// waitSubmission blocks until the queue reports submission idx complete
// or frameTimeout elapses.
func (c *GraphicsContext) waitSubmission(idx uint64) error {
	deadline := time.Now().Add(frameTimeout)
	for c.queue.PollCompleted() < idx {
		if time.Now().After(deadline) {
			return ErrFrameTimeout
		}
		time.Sleep(submitPollInterval)
	}
	return nil
}

// Resize applies a new framebuffer size. Each dimension is floored at 1
// before it reaches the GPU. While suspended only the stored configuration
// changes. The Renderable is not notified.
func (c *GraphicsContext) Resize(width, height int) error {
	if c.destroyed {
		return ErrDestroyed
	}
	c.config.Width, c.config.Height = clampSize(width), clampSize(height)
	if c.surface == nil {
		return nil
	}
	return c.configure()
}

// Suspend applies the surface policy's suspend behavior. It is idempotent.
func (c *GraphicsContext) Suspend() {
	if c.destroyed {
		return
	}
	c.policy.Suspend(c)
}

// Resume applies the surface policy's resume behavior for target. It is a
// no-op when the surface already exists.
func (c *GraphicsContext) Resume(target SurfaceTarget) error {
	if c.destroyed {
		return ErrDestroyed
	}
	return c.policy.Resume(c, target)
}

// HandleInput forwards ev to the Renderable if it handles input.
func (c *GraphicsContext) HandleInput(ev KeyEvent) {
	if h, ok := c.renderable.(InputHandler); ok {
		h.HandleInput(ev, c.queue)
	}
}

// Update advances the Renderable if it has per-frame state.
func (c *GraphicsContext) Update() {
	if u, ok := c.renderable.(Updater); ok {
		u.Update()
	}
}

// Destroy releases the Renderable, the surface, the device and the
// instance, in that order. It is safe to call more than once.
func (c *GraphicsContext) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	if c.renderable != nil {
		c.renderable.Destroy()
		c.renderable = nil
	}
	if c.surface != nil {
		c.dropSurface()
	}
	if c.device != nil {
		c.device.Destroy()
		c.device = nil
		c.queue = nil
	}
	if c.instance != nil {
		c.instance.Destroy()
		c.instance = nil
	}
}

// Config returns the active surface configuration.
func (c *GraphicsContext) Config() SurfaceConfig { return c.config }

// Format returns the surface color format scenes render to.
func (c *GraphicsContext) Format() gputypes.TextureFormat { return c.config.Format }

// Suspended reports whether the context currently has no surface.
func (c *GraphicsContext) Suspended() bool { return c.surface == nil }

// AdapterDetails describes the adapter selected at construction.
func (c *GraphicsContext) AdapterDetails() AdapterInfo { return c.info }

// Renderable returns the active scene.
func (c *GraphicsContext) Renderable() Renderable { return c.renderable }

// SceneName returns the registry name of the active scene.
func (c *GraphicsContext) SceneName() string { return c.sceneName }

// Policy returns the surface policy in effect.
func (c *GraphicsContext) Policy() SurfacePolicy { return c.policy }

func (c *GraphicsContext) configure() error {
	Logger().Debug("sandbox: configuring surface",
		"width", c.config.Width, "height", c.config.Height, "format", c.config.Format)
	if err := c.surface.Configure(c.device, c.config); err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceConfigure, err)
	}
	return nil
}

// attachSurface creates a surface for target and configures it from the
// target's current size with the previously selected format.
func (c *GraphicsContext) attachSurface(target SurfaceTarget) error {
	surface, err := c.instance.CreateSurface(target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}
	c.surface = surface
	c.config.Width, c.config.Height = framebufferSize(target)
	return c.configure()
}

func (c *GraphicsContext) dropSurface() {
	if c.device != nil {
		c.surface.Unconfigure(c.device)
	}
	c.surface.Destroy()
	c.surface = nil
}

func framebufferSize(target SurfaceTarget) (uint32, uint32) {
	w, h := target.FramebufferSize()
	return clampSize(w), clampSize(h)
}

// clampSize floors a window dimension at 1.
func clampSize(v int) uint32 {
	if v < 1 {
		return 1
	}
	return uint32(v) //nolint:gosec // window sizes fit uint32
}

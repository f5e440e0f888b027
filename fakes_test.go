package sandbox

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// testScene is the scene name registered by registerRecordingScene.
const testScene = "test-recording"

// fakeTarget is a window with a fixed framebuffer size.
type fakeTarget struct {
	w, h int
}

func (t *fakeTarget) NativeHandles() (uintptr, uintptr) { return 0, 0 }
func (t *fakeTarget) FramebufferSize() (int, int)       { return t.w, t.h }

// fakeSurface records configuration and frame traffic. Frames are backed
// by a real noop texture so the context can create views over them.
type fakeSurface struct {
	configs      []SurfaceConfig
	acquires     int
	presents     int
	acquired     []*Frame
	presented    []*Frame
	presentQueue hal.Queue
	discards     int
	unconfigures int
	destroyed    bool

	// acquireErrs are returned by successive AcquireFrame calls; nil
	// entries and an exhausted slice acquire normally.
	acquireErrs  []error
	configureErr error
	suboptimal   bool

	device hal.Device
	tex    hal.Texture
}

func (s *fakeSurface) Configure(device hal.Device, cfg SurfaceConfig) error {
	if s.configureErr != nil {
		return s.configureErr
	}
	s.device = device
	s.configs = append(s.configs, cfg)
	return nil
}

func (s *fakeSurface) Unconfigure(device hal.Device) {
	s.unconfigures++
	if s.tex != nil {
		device.DestroyTexture(s.tex)
		s.tex = nil
	}
}

func (s *fakeSurface) AcquireFrame(device hal.Device) (*Frame, error) {
	s.acquires++
	if len(s.acquireErrs) > 0 {
		err := s.acquireErrs[0]
		s.acquireErrs = s.acquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if s.tex == nil {
		cfg := s.lastConfig()
		tex, err := device.CreateTexture(&hal.TextureDescriptor{
			Label:         "fake_surface_texture",
			Size:          hal.Extent3D{Width: cfg.Width, Height: cfg.Height, DepthOrArrayLayers: 1},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        cfg.Format,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			return nil, err
		}
		s.tex = tex
	}
	frame := &Frame{Texture: s.tex, Suboptimal: s.suboptimal}
	s.acquired = append(s.acquired, frame)
	return frame, nil
}

func (s *fakeSurface) Present(queue hal.Queue, frame *Frame) error {
	s.presents++
	s.presented = append(s.presented, frame)
	s.presentQueue = queue
	return nil
}

func (s *fakeSurface) DiscardFrame(*Frame) { s.discards++ }

func (s *fakeSurface) Destroy() { s.destroyed = true }

func (s *fakeSurface) lastConfig() SurfaceConfig {
	if len(s.configs) == 0 {
		return SurfaceConfig{}
	}
	return s.configs[len(s.configs)-1]
}

// fakeAdapter hands out the noop device owned by its instance.
type fakeAdapter struct {
	inst *fakeInstance
}

func (a *fakeAdapter) Info() AdapterInfo {
	return AdapterInfo{Name: "fake", DeviceType: gputypes.DeviceTypeCPU, Backend: "noop"}
}

func (a *fakeAdapter) SurfaceFormats(Surface) []gputypes.TextureFormat { return a.inst.formats }

func (a *fakeAdapter) Open() (hal.Device, hal.Queue, error) {
	if a.inst.openErr != nil {
		return nil, nil, a.inst.openErr
	}
	a.inst.opened = true
	return a.inst.device, a.inst.queue, nil
}

// fakeInstance creates fakeSurfaces and wraps a noop hal instance and
// device.
type fakeInstance struct {
	noopInst hal.Instance
	device   *recordingDevice
	queue    *recordingQueue
	opened   bool

	formats    []gputypes.TextureFormat
	surfaces   []*fakeSurface
	surfaceErr error
	adapterErr error
	openErr    error
	destroyed  bool
}

func newFakeInstance(t *testing.T) *fakeInstance {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		t.Fatal("noop instance has no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	fi := &fakeInstance{
		noopInst: instance,
		device:   &recordingDevice{Device: openDev.Device},
		queue:    &recordingQueue{Queue: openDev.Queue},
		formats:  []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm},
	}
	t.Cleanup(fi.cleanup)
	return fi
}

func (i *fakeInstance) CreateSurface(SurfaceTarget) (Surface, error) {
	if i.surfaceErr != nil {
		return nil, i.surfaceErr
	}
	s := &fakeSurface{}
	i.surfaces = append(i.surfaces, s)
	return s, nil
}

func (i *fakeInstance) RequestAdapter(Surface) (Adapter, error) {
	if i.adapterErr != nil {
		return nil, i.adapterErr
	}
	return &fakeAdapter{inst: i}, nil
}

func (i *fakeInstance) Destroy() {
	i.destroyed = true
}

// cleanup releases the noop objects a test did not hand to a context.
func (i *fakeInstance) cleanup() {
	if !i.opened {
		i.device.Destroy()
	}
	i.noopInst.Destroy()
}

// surface returns the most recently created fake surface.
func (i *fakeInstance) surface() *fakeSurface {
	if len(i.surfaces) == 0 {
		return nil
	}
	return i.surfaces[len(i.surfaces)-1]
}

// recordingDevice wraps a hal.Device and records every render pass begun
// on encoders it creates.
type recordingDevice struct {
	hal.Device
	passes []hal.RenderPassDescriptor
}

func (d *recordingDevice) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	enc, err := d.Device.CreateCommandEncoder(desc)
	if err != nil {
		return nil, err
	}
	return &recordingEncoder{CommandEncoder: enc, device: d}, nil
}

type recordingEncoder struct {
	hal.CommandEncoder
	device *recordingDevice
}

func (e *recordingEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	e.device.passes = append(e.device.passes, *desc)
	return e.CommandEncoder.BeginRenderPass(desc)
}

// recordingQueue wraps a hal.Queue and records submissions. A non-nil
// submitErr fails every Submit.
type recordingQueue struct {
	hal.Queue
	submits   int
	buffers   int
	lastIdx   uint64
	submitErr error
}

func (q *recordingQueue) Submit(buffers []hal.CommandBuffer) (uint64, error) {
	if q.submitErr != nil {
		return 0, q.submitErr
	}
	idx, err := q.Queue.Submit(buffers)
	if err != nil {
		return 0, err
	}
	q.submits++
	q.buffers += len(buffers)
	q.lastIdx = idx
	return idx, nil
}

// recordingScene counts calls and issues one draw per Render.
type recordingScene struct {
	env       SceneEnv
	renders   int
	destroys  int
	updates   int
	inputs    []KeyEvent
	lastQueue hal.Queue
}

func (s *recordingScene) Render(pass RenderPass) {
	s.renders++
	pass.Draw(3, 1, 0, 0)
}

func (s *recordingScene) Destroy() { s.destroys++ }

func (s *recordingScene) Update() { s.updates++ }

func (s *recordingScene) HandleInput(ev KeyEvent, q hal.Queue) {
	s.inputs = append(s.inputs, ev)
	s.lastQueue = q
}

// registerRecordingScene registers testScene and returns a pointer that
// receives the constructed scene.
func registerRecordingScene(t *testing.T) **recordingScene {
	t.Helper()
	var built *recordingScene
	RegisterScene(testScene, func(env SceneEnv) (Renderable, error) {
		built = &recordingScene{env: env}
		return built, nil
	})
	t.Cleanup(func() { UnregisterScene(testScene) })
	return &built
}

// newTestContext builds a context on a fake instance with the recording
// scene and returns all three.
func newTestContext(t *testing.T, w, h int, opts ...Option) (*GraphicsContext, *fakeInstance, *recordingScene) {
	t.Helper()
	scene := registerRecordingScene(t)
	inst := newFakeInstance(t)
	opts = append([]Option{WithScene(testScene)}, opts...)
	gc, err := New(inst, &fakeTarget{w: w, h: h}, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(gc.Destroy)
	return gc, inst, *scene
}

var errInjected = errors.New("injected failure")

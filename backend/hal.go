package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/wgpu/hal"
)

// instance implements sandbox.Instance over a hal.Instance.
type instance struct {
	raw  hal.Instance
	name string
}

func (i *instance) CreateSurface(target sandbox.SurfaceTarget) (sandbox.Surface, error) {
	display, window := target.NativeHandles()
	raw, err := i.raw.CreateSurface(display, window)
	if err != nil {
		return nil, err
	}
	return &surface{raw: raw}, nil
}

// RequestAdapter returns the first adapter compatible with the surface.
func (i *instance) RequestAdapter(compatible sandbox.Surface) (sandbox.Adapter, error) {
	var hint hal.Surface
	if s, ok := compatible.(*surface); ok {
		hint = s.raw
	}
	adapters := i.raw.EnumerateAdapters(hint)
	if len(adapters) == 0 {
		return nil, sandbox.ErrNoAdapter
	}
	selected := &adapters[0]
	return &adapter{
		raw: selected.Adapter,
		info: sandbox.AdapterInfo{
			Name:       selected.Info.Name,
			DeviceType: selected.Info.DeviceType,
			Backend:    i.name,
		},
	}, nil
}

func (i *instance) Destroy() {
	if i.raw != nil {
		i.raw.Destroy()
		i.raw = nil
	}
}

type adapter struct {
	raw  hal.Adapter
	info sandbox.AdapterInfo
}

func (a *adapter) Info() sandbox.AdapterInfo { return a.info }

func (a *adapter) SurfaceFormats(s sandbox.Surface) []gputypes.TextureFormat {
	hs, ok := s.(*surface)
	if !ok {
		return nil
	}
	caps := a.raw.SurfaceCapabilities(hs.raw)
	if caps == nil {
		return nil
	}
	return caps.Formats
}

func (a *adapter) Open() (hal.Device, hal.Queue, error) {
	openDev, err := a.raw.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, nil, err
	}
	return openDev.Device, openDev.Queue, nil
}

// surface implements sandbox.Surface over a hal.Surface. It remembers the
// hal texture behind each acquired frame so Present and DiscardFrame can
// hand it back.
type surface struct {
	raw     hal.Surface
	pending hal.SurfaceTexture
}

func (s *surface) Configure(device hal.Device, cfg sandbox.SurfaceConfig) error {
	return s.raw.Configure(device, &hal.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: presentMode(cfg.PresentMode),
		AlphaMode:   alphaMode(cfg.AlphaMode),
	})
}

func (s *surface) Unconfigure(device hal.Device) {
	s.pending = nil
	s.raw.Unconfigure(device)
}

func (s *surface) AcquireFrame(hal.Device) (*sandbox.Frame, error) {
	acquired, err := s.raw.AcquireTexture(nil)
	switch {
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return nil, fmt.Errorf("%w: %w", sandbox.ErrSurfaceOutdated, err)
	case errors.Is(err, hal.ErrSurfaceLost):
		return nil, fmt.Errorf("%w: %w", sandbox.ErrSurfaceLost, err)
	case err != nil:
		return nil, err
	}
	s.pending = acquired.Texture
	return &sandbox.Frame{Texture: acquired.Texture, Suboptimal: acquired.Suboptimal}, nil
}

func (s *surface) Present(queue hal.Queue, _ *sandbox.Frame) error {
	tex := s.pending
	s.pending = nil
	if tex == nil {
		return errors.New("backend: present without acquired frame")
	}
	return queue.Present(s.raw, tex, nil)
}

func (s *surface) DiscardFrame(*sandbox.Frame) {
	if s.pending != nil {
		s.raw.DiscardTexture(s.pending)
		s.pending = nil
	}
}

func (s *surface) Destroy() {
	s.raw.Destroy()
}

// presentMode maps the context's present mode. FIFO is the only mode the
// context requests.
func presentMode(sandbox.PresentMode) hal.PresentMode {
	return hal.PresentModeFifo
}

func alphaMode(m sandbox.AlphaMode) hal.CompositeAlphaMode {
	if m == sandbox.AlphaModeAuto {
		return hal.CompositeAlphaModeAuto
	}
	return hal.CompositeAlphaModeOpaque
}

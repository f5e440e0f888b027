package sandbox

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// SurfaceTarget is the window a surface presents into. The application
// shell owns the window; the context only reads from it.
type SurfaceTarget interface {
	// NativeHandles returns the platform display and window handles the
	// GPU backend needs to create a surface.
	NativeHandles() (display, window uintptr)

	// FramebufferSize returns the drawable size in physical pixels.
	// Either dimension may be zero while the window is minimized.
	FramebufferSize() (width, height int)
}

// AdapterInfo describes the selected GPU adapter.
type AdapterInfo struct {
	Name       string
	DeviceType gputypes.DeviceType
	Backend    string
}

// Instance is the entry point to a GPU API. The backend package provides
// the hal-backed implementation.
type Instance interface {
	// CreateSurface creates a presentation surface for target.
	CreateSurface(target SurfaceTarget) (Surface, error)

	// RequestAdapter returns an adapter that can present to compatible.
	RequestAdapter(compatible Surface) (Adapter, error)

	// Destroy releases the instance. Surfaces and devices created from it
	// must already be destroyed.
	Destroy()
}

// Adapter is a physical GPU selected for a surface.
type Adapter interface {
	Info() AdapterInfo

	// SurfaceFormats returns the color formats s supports on this adapter,
	// preferred format first.
	SurfaceFormats(s Surface) []gputypes.TextureFormat

	// Open creates the logical device and its queue with baseline
	// features and default limits. It blocks until the device is ready.
	Open() (hal.Device, hal.Queue, error)
}

// Frame is one acquired presentable image.
type Frame struct {
	// Texture is the presentable image. The context creates its own view.
	Texture hal.Texture

	// Suboptimal reports that presentation still works but the surface
	// should be reconfigured.
	Suboptimal bool
}

// Surface is the presentable image chain bound to a window.
type Surface interface {
	// Configure (re)creates the image chain for cfg.
	Configure(device hal.Device, cfg SurfaceConfig) error

	// Unconfigure releases the image chain.
	Unconfigure(device hal.Device)

	// AcquireFrame returns the next image to render into. It reports
	// ErrSurfaceOutdated when the surface needs reconfiguring and
	// ErrSurfaceLost when it can no longer be used.
	AcquireFrame(device hal.Device) (*Frame, error)

	// Present queues frame for display.
	Present(queue hal.Queue, frame *Frame) error

	// DiscardFrame returns an acquired frame without presenting it.
	DiscardFrame(frame *Frame)

	Destroy()
}

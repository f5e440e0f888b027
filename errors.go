package sandbox

import "errors"

// Context construction and frame errors. Failures wrapping these are fatal
// for the application: the shell logs them and exits.
var (
	// ErrSurfaceCreate is returned when the window surface cannot be created.
	ErrSurfaceCreate = errors.New("sandbox: create surface")

	// ErrNoAdapter is returned when no adapter is compatible with the surface.
	ErrNoAdapter = errors.New("sandbox: no compatible adapter")

	// ErrDeviceRequest is returned when the adapter refuses to open a device.
	ErrDeviceRequest = errors.New("sandbox: request device")

	// ErrNoSurfaceFormat is returned when the surface reports no formats
	// for the selected adapter.
	ErrNoSurfaceFormat = errors.New("sandbox: surface has no supported formats")

	// ErrSurfaceConfigure is returned when the surface rejects a configuration.
	ErrSurfaceConfigure = errors.New("sandbox: configure surface")

	// ErrAcquireFrame is returned when the next presentable frame cannot be
	// acquired.
	ErrAcquireFrame = errors.New("sandbox: acquire frame")

	// ErrPresent is returned when presenting a rendered frame fails.
	ErrPresent = errors.New("sandbox: present frame")

	// ErrFrameTimeout is returned when the GPU does not finish a frame in time.
	ErrFrameTimeout = errors.New("sandbox: frame timed out")

	// ErrDestroyed is returned by operations on a destroyed context.
	ErrDestroyed = errors.New("sandbox: context destroyed")
)

// Surface status errors reported by Surface implementations.
var (
	// ErrSurfaceOutdated reports that the surface no longer matches its
	// window and must be reconfigured before the next acquire.
	ErrSurfaceOutdated = errors.New("sandbox: surface outdated")

	// ErrSurfaceLost reports that the surface is gone for good.
	ErrSurfaceLost = errors.New("sandbox: surface lost")
)

// ErrUnknownScene is returned by NewScene for names nobody registered.
var ErrUnknownScene = errors.New("sandbox: unknown scene")

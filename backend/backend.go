package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/wgpu/hal"
)

// Backend names accepted by Open.
const (
	BackendVulkan = "vulkan"
	BackendMetal  = "metal"
	BackendDX12   = "dx12"
	BackendGLES   = "gles"
	BackendNoop   = "noop"
)

// ErrBackendNotAvailable is returned when the requested GPU API is not
// registered or not compiled into this binary.
var ErrBackendNotAvailable = errors.New("backend: not available")

// InstanceFactory creates a raw hal instance for one GPU API.
type InstanceFactory func() (hal.Instance, error)

// Open returns a sandbox.Instance for the named backend. An empty name
// selects the first available backend in priority order.
func Open(name string) (sandbox.Instance, error) {
	if name == "" {
		return Default()
	}
	factory, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	raw, err := factory()
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", name, err)
	}
	sandbox.Logger().Debug("backend: instance created", "backend", name)
	return &instance{raw: raw, name: name}, nil
}

// halFactory adapts a registered hal backend to an InstanceFactory.
func halFactory(kind gputypes.Backend) InstanceFactory {
	return func() (hal.Instance, error) {
		b, ok := hal.GetBackend(kind)
		if !ok {
			return nil, ErrBackendNotAvailable
		}
		return b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	}
}

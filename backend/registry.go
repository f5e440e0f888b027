package backend

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	// Vulkan covers Linux, Windows and Android. Other hal backends register
	// themselves when their packages are imported.
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]InstanceFactory)
	// Priority order for Default (first that opens wins). The noop backend
	// never takes part in default selection.
	backendPriority = []string{BackendVulkan, BackendMetal, BackendDX12, BackendGLES}
)

func init() {
	Register(BackendVulkan, halFactory(gputypes.BackendVulkan))
	Register(BackendMetal, halFactory(gputypes.BackendMetal))
	Register(BackendDX12, halFactory(gputypes.BackendDX12))
	Register(BackendGLES, halFactory(gputypes.BackendGL))
	Register(BackendNoop, func() (hal.Instance, error) {
		return noop.API{}.CreateInstance(nil)
	})
}

// Register registers an instance factory under name, replacing any
// previous registration.
func Register(name string, factory InstanceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	_, ok := lookup(name)
	return ok
}

// Default opens the first backend in priority order whose instance can be
// created.
func Default() (sandbox.Instance, error) {
	var errs []error
	for _, name := range backendPriority {
		if !IsRegistered(name) {
			continue
		}
		inst, err := Open(name)
		if err == nil {
			return inst, nil
		}
		sandbox.Logger().Debug("backend: skipping", "backend", name, "error", err)
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("%w: %w", ErrBackendNotAvailable, errors.Join(errs...))
}

func lookup(name string) (InstanceFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[name]
	return f, ok
}

package sandbox

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DefaultScene is the scene a context builds when none is configured.
const DefaultScene = "triangle"

// SceneConfig carries scene inputs that come from configuration rather
// than from the GPU.
type SceneConfig struct {
	// TexturePath is the encoded image the textured scene samples.
	TexturePath string

	// PrecompileShaders compiles WGSL to SPIR-V with naga before handing
	// it to the backend.
	PrecompileShaders bool
}

// SceneEnv is everything a SceneFactory may use to build its resources.
// Device and Queue are borrowed for the duration of the call.
type SceneEnv struct {
	Device hal.Device
	Queue  hal.Queue

	// Format is the surface color format the scene's pipeline must target.
	Format gputypes.TextureFormat

	// Width and Height are the initial surface size in pixels.
	Width, Height uint32

	Config SceneConfig
}

// SceneFactory builds a Renderable for env.
type SceneFactory func(env SceneEnv) (Renderable, error)

var (
	scenesMu sync.RWMutex
	scenes   = make(map[string]SceneFactory)
)

// RegisterScene registers a scene factory under name. It is typically
// called from init functions in scene packages. Registering an existing
// name replaces the previous factory.
func RegisterScene(name string, factory SceneFactory) {
	if name == "" {
		panic("sandbox: RegisterScene with empty name")
	}
	if factory == nil {
		panic("sandbox: RegisterScene with nil factory for " + name)
	}
	scenesMu.Lock()
	defer scenesMu.Unlock()
	scenes[name] = factory
}

// UnregisterScene removes a scene from the registry.
// This is useful for testing.
func UnregisterScene(name string) {
	scenesMu.Lock()
	defer scenesMu.Unlock()
	delete(scenes, name)
}

// Scenes returns the registered scene names in sorted order.
func Scenes() []string {
	scenesMu.RLock()
	defer scenesMu.RUnlock()
	return slices.Sorted(maps.Keys(scenes))
}

// IsSceneRegistered reports whether a scene with the given name exists.
func IsSceneRegistered(name string) bool {
	scenesMu.RLock()
	defer scenesMu.RUnlock()
	_, ok := scenes[name]
	return ok
}

// NewScene builds the named scene. Unknown names return an error wrapping
// ErrUnknownScene.
func NewScene(name string, env SceneEnv) (Renderable, error) {
	scenesMu.RLock()
	factory, ok := scenes[name]
	scenesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownScene, name, Scenes())
	}
	r, err := factory(env)
	if err != nil {
		return nil, fmt.Errorf("sandbox: build scene %q: %w", name, err)
	}
	return r, nil
}

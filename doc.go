// Package sandbox is a minimal real-time rendering host built on gogpu/wgpu.
//
// # Overview
//
// A [GraphicsContext] owns a GPU device, a presentation surface and exactly
// one [Renderable] scene. Each call to [GraphicsContext.Render] runs one
// frame:
//
//	acquire -> view -> encoder -> render pass (clear) -> scene.Render -> end -> submit -> present
//
// Scenes are registered by name with [RegisterScene] and chosen at context
// construction with [WithScene]. The scenes package registers the built-in
// variants (triangle, quad, uniform, textured, camera2d, canvas).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sandbox"
//	    "github.com/gogpu/sandbox/backend"
//	    _ "github.com/gogpu/sandbox/scenes"
//	)
//
//	instance, err := backend.Open("vulkan")
//	if err != nil { ... }
//	gc, err := sandbox.New(instance, window, sandbox.WithScene("quad"))
//	if err != nil { ... }
//	defer gc.Destroy()
//
//	for running {
//	    if err := gc.Render(); err != nil { ... }
//	}
//
// # Lifecycle
//
// Resize reconfigures the surface with each dimension floored at 1.
// Suspend and Resume follow a [SurfacePolicy]: desktop platforms keep the
// surface ([PersistentSurface]); mobile platforms drop it on suspend and
// rebuild it on resume ([TransientSurface]). Device, queue and the scene
// survive either way.
//
// # Logging
//
// sandbox is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] handler.
package sandbox

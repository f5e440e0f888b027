// Package backend opens gogpu/wgpu hal instances for the sandbox.
//
// Each GPU API is registered under a short name. The Vulkan backend is
// linked in by this package; the noop backend is always available and is
// used by tests and headless runs:
//
//	instance, err := backend.Open("vulkan")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gc, err := sandbox.New(instance, window)
//
// Open("") tries vulkan, metal, dx12 and gles in that order and returns the
// first instance that can be created. Additional hal backends can be made
// available with Register.
package backend

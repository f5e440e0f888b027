// Package shader creates hal shader modules from embedded WGSL.
//
// Modules are handed to the backend as WGSL by default. With SPIRV set,
// the source is compiled up front with naga so translation errors surface
// at scene construction instead of inside the driver.
package shader

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// Source selects how shader code reaches the backend.
type Source int

const (
	// WGSL passes source text through for the backend to translate.
	WGSL Source = iota

	// SPIRV compiles the source with naga and passes SPIR-V words.
	SPIRV
)

// String returns the configuration name of s.
func (s Source) String() string {
	switch s {
	case WGSL:
		return "wgsl"
	case SPIRV:
		return "spirv"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// ParseSource resolves a configuration name. The empty string is WGSL.
func ParseSource(name string) (Source, error) {
	switch name {
	case "", "wgsl":
		return WGSL, nil
	case "spirv":
		return SPIRV, nil
	default:
		return WGSL, fmt.Errorf("shader: unknown source %q (want wgsl or spirv)", name)
	}
}

// Compile translates WGSL to SPIR-V words with naga.
func Compile(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, err
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("malformed SPIR-V output (%d bytes)", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("bad SPIR-V magic %#08x", words[0])
	}
	return words, nil
}

// Module creates a shader module named label from WGSL source.
func Module(device hal.Device, label, wgsl string, src Source) (hal.ShaderModule, error) {
	desc := &hal.ShaderModuleDescriptor{Label: label}
	switch src {
	case SPIRV:
		words, err := Compile(wgsl)
		if err != nil {
			return nil, fmt.Errorf("shader: compile %s: %w", label, err)
		}
		desc.Source = hal.ShaderSource{SPIRV: words}
	default:
		desc.Source = hal.ShaderSource{WGSL: wgsl}
	}

	mod, err := device.CreateShaderModule(desc)
	if err != nil {
		return nil, fmt.Errorf("shader: create %s: %w", label, err)
	}
	return mod, nil
}

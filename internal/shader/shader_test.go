package shader

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

const triangleWGSL = `
@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    var pos = array<vec2<f32>, 3>(
        vec2<f32>(0.0, 0.5),
        vec2<f32>(-0.5, -0.5),
        vec2<f32>(0.5, -0.5),
    );
    return vec4<f32>(pos[idx], 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func createNoopDevice(t *testing.T) hal.Device {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device
}

// skipUnimplemented skips when naga reports a feature it does not lower yet.
func skipUnimplemented(t *testing.T, err error) {
	t.Helper()
	msg := err.Error()
	if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
		t.Skipf("Skipping: naga feature not yet implemented: %v", err)
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		name    string
		want    Source
		wantErr bool
	}{
		{"", WGSL, false},
		{"wgsl", WGSL, false},
		{"spirv", SPIRV, false},
		{"glsl", WGSL, true},
	}
	for _, tt := range tests {
		got, err := ParseSource(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSource(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSource(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSourceString(t *testing.T) {
	for _, s := range []Source{WGSL, SPIRV} {
		back, err := ParseSource(s.String())
		if err != nil || back != s {
			t.Errorf("ParseSource(%q) = %v, %v; want %v", s.String(), back, err, s)
		}
	}
	if got := Source(9).String(); got != "Source(9)" {
		t.Errorf("Source(9).String() = %q", got)
	}
}

func TestCompile(t *testing.T) {
	words, err := Compile(triangleWGSL)
	if err != nil {
		skipUnimplemented(t, err)
		t.Fatalf("Compile() error = %v", err)
	}
	if words[0] != spirvMagic {
		t.Errorf("magic = %#x, want %#x", words[0], spirvMagic)
	}
}

func TestCompileInvalid(t *testing.T) {
	if _, err := Compile("fn broken( {"); err == nil {
		t.Fatal("Compile() of invalid WGSL succeeded")
	}
}

func TestModuleWGSL(t *testing.T) {
	device := createNoopDevice(t)
	mod, err := Module(device, "triangle", triangleWGSL, WGSL)
	if err != nil {
		t.Fatalf("Module() error = %v", err)
	}
	device.DestroyShaderModule(mod)
}

func TestModuleSPIRV(t *testing.T) {
	device := createNoopDevice(t)
	mod, err := Module(device, "triangle", triangleWGSL, SPIRV)
	if err != nil {
		skipUnimplemented(t, err)
		t.Fatalf("Module() error = %v", err)
	}
	device.DestroyShaderModule(mod)
}

func TestModuleSPIRVInvalid(t *testing.T) {
	device := createNoopDevice(t)
	_, err := Module(device, "broken", "fn broken( {", SPIRV)
	if err == nil {
		t.Fatal("Module() of invalid WGSL succeeded")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q does not name the module", err)
	}
}

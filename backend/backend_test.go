package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/sandbox"
	"github.com/gogpu/wgpu/hal"
)

func TestAvailableIncludesBuiltins(t *testing.T) {
	names := Available()
	for _, want := range []string{BackendVulkan, BackendMetal, BackendDX12, BackendGLES, BackendNoop} {
		if !slices.Contains(names, want) {
			t.Errorf("Available() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Available() = %v, want sorted", names)
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open("glide")
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Fatalf("Open(glide) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestOpenFactoryError(t *testing.T) {
	errBroken := errors.New("broken driver")
	Register("broken", func() (hal.Instance, error) { return nil, errBroken })
	t.Cleanup(func() { Unregister("broken") })

	_, err := Open("broken")
	if !errors.Is(err, errBroken) {
		t.Fatalf("Open(broken) error = %v, want %v", err, errBroken)
	}
}

func TestRegisterUnregister(t *testing.T) {
	Register("custom", func() (hal.Instance, error) { return nil, nil })
	if !IsRegistered("custom") {
		t.Fatal("custom not registered")
	}
	Unregister("custom")
	if IsRegistered("custom") {
		t.Fatal("custom still registered after Unregister")
	}
}

func TestNoopAdapter(t *testing.T) {
	inst, err := Open(BackendNoop)
	if err != nil {
		t.Fatalf("Open(noop) error = %v", err)
	}
	defer inst.Destroy()

	a, err := inst.RequestAdapter(nil)
	if err != nil {
		t.Fatalf("RequestAdapter() error = %v", err)
	}
	info := a.Info()
	if info.Backend != BackendNoop {
		t.Errorf("Info().Backend = %q, want %q", info.Backend, BackendNoop)
	}
	if info.Name == "" {
		t.Error("Info().Name is empty")
	}

	device, queue, err := a.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if device == nil || queue == nil {
		t.Fatal("Open() returned nil device or queue")
	}
	device.Destroy()
}

func TestSurfaceFormatsForeignSurface(t *testing.T) {
	inst, err := Open(BackendNoop)
	if err != nil {
		t.Fatalf("Open(noop) error = %v", err)
	}
	defer inst.Destroy()

	a, err := inst.RequestAdapter(nil)
	if err != nil {
		t.Fatalf("RequestAdapter() error = %v", err)
	}
	if got := a.SurfaceFormats(nil); got != nil {
		t.Errorf("SurfaceFormats(nil) = %v, want nil", got)
	}
}

func TestDestroyTwice(t *testing.T) {
	inst, err := Open(BackendNoop)
	if err != nil {
		t.Fatalf("Open(noop) error = %v", err)
	}
	inst.Destroy()
	inst.Destroy()
}

func TestPresentWithoutFrame(t *testing.T) {
	s := &surface{}
	if err := s.Present(nil, &sandbox.Frame{}); err == nil {
		t.Fatal("Present() without acquire succeeded")
	}
}

var (
	_ sandbox.Instance = (*instance)(nil)
	_ sandbox.Surface  = (*surface)(nil)
)

package sandbox

import (
	"fmt"
	"runtime"
)

// SurfacePolicy decides what suspend and resume do to the presentation
// surface. Desktop window systems keep the surface valid while the window
// is hidden; mobile systems destroy the native window when the application
// is backgrounded, so the surface must be dropped and rebuilt.
//
// Device, queue and the Renderable survive both policies untouched.
type SurfacePolicy interface {
	Name() string
	Suspend(c *GraphicsContext)
	Resume(c *GraphicsContext, target SurfaceTarget) error
}

// Surface policy names accepted by SurfacePolicyByName.
const (
	PolicyAuto       = "auto"
	PolicyPersistent = "persistent"
	PolicyTransient  = "transient"
)

// PersistentSurface keeps the surface across suspend and resume.
var PersistentSurface SurfacePolicy = persistentSurface{}

// TransientSurface drops the surface on suspend and recreates it on resume.
var TransientSurface SurfacePolicy = transientSurface{}

type persistentSurface struct{}

func (persistentSurface) Name() string { return PolicyPersistent }

func (persistentSurface) Suspend(*GraphicsContext) {}

func (persistentSurface) Resume(*GraphicsContext, SurfaceTarget) error { return nil }

type transientSurface struct{}

func (transientSurface) Name() string { return PolicyTransient }

func (transientSurface) Suspend(c *GraphicsContext) {
	if c.surface == nil {
		return
	}
	Logger().Info("sandbox: suspend, dropping surface")
	c.dropSurface()
}

func (transientSurface) Resume(c *GraphicsContext, target SurfaceTarget) error {
	if c.surface != nil {
		return nil
	}
	Logger().Info("sandbox: resume, recreating surface")
	return c.attachSurface(target)
}

// SurfaceLostOnSuspend reports whether the native window of this platform
// is destroyed when the application is backgrounded.
func SurfaceLostOnSuspend(goos string) bool {
	switch goos {
	case "android", "ios":
		return true
	default:
		return false
	}
}

// DefaultSurfacePolicy returns the policy matching the running platform.
func DefaultSurfacePolicy() SurfacePolicy {
	if SurfaceLostOnSuspend(runtime.GOOS) {
		return TransientSurface
	}
	return PersistentSurface
}

// SurfacePolicyByName resolves a configured policy name. "auto" and ""
// select DefaultSurfacePolicy.
func SurfacePolicyByName(name string) (SurfacePolicy, error) {
	switch name {
	case "", PolicyAuto:
		return DefaultSurfacePolicy(), nil
	case PolicyPersistent:
		return PersistentSurface, nil
	case PolicyTransient:
		return TransientSurface, nil
	default:
		return nil, fmt.Errorf("sandbox: unknown surface policy %q", name)
	}
}

package sandbox

import "testing"

// NewFakeInstance exposes the noop-backed fake instance to external tests.
func NewFakeInstance(t *testing.T) Instance { return newFakeInstance(t) }

// NewFakeTarget returns a window of the given framebuffer size.
func NewFakeTarget(w, h int) SurfaceTarget { return &fakeTarget{w: w, h: h} }

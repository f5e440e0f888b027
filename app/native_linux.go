// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && !wayland

package app

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// NativeHandles returns the X11 display and window.
func (w *glfwWindow) NativeHandles() (uintptr, uintptr) {
	display := unsafe.Pointer(glfw.GetX11Display())
	return uintptr(display), uintptr(w.win.GetX11Window())
}

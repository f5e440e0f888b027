// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin

package app

// NativeHandles returns the NSWindow. Cocoa has no display handle.
func (w *glfwWindow) NativeHandles() (uintptr, uintptr) {
	return 0, uintptr(w.win.GetCocoaWindow())
}

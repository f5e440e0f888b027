// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(linux && !wayland) && !windows && !darwin

package app

// NativeHandles is unsupported here; surface creation will fail.
func (w *glfwWindow) NativeHandles() (uintptr, uintptr) {
	return 0, 0
}

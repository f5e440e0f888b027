// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package app

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// NativeHandles returns the module instance and the HWND.
func (w *glfwWindow) NativeHandles() (uintptr, uintptr) {
	var module windows.Handle
	// A zero module handle makes surface creation fail with a clear error.
	_ = windows.GetModuleHandleEx(0, nil, &module)
	return uintptr(module), uintptr(unsafe.Pointer(w.win.GetWin32Window()))
}

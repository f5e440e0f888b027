// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import "github.com/gogpu/sandbox"

// Event is a window-system event delivered to App.Handle.
type Event interface {
	isEvent()
}

// ResumedEvent reports that the application may render again. Desktop
// shells deliver one at startup.
type ResumedEvent struct{}

// SuspendedEvent reports that the application moved to the background.
type SuspendedEvent struct{}

// ResizedEvent carries the new framebuffer size in physical pixels.
type ResizedEvent struct {
	W, H int
}

// CloseRequestedEvent is sent when the user closes the window.
type CloseRequestedEvent struct{}

// RedrawRequestedEvent asks for one frame.
type RedrawRequestedEvent struct{}

// KeyboardEvent wraps a key press, release or repeat.
type KeyboardEvent struct {
	sandbox.KeyEvent
}

// ScaleFactorChangedEvent carries the window's new content scale.
type ScaleFactorChangedEvent struct {
	Scale float64
}

func (ResumedEvent) isEvent()            {}
func (SuspendedEvent) isEvent()          {}
func (ResizedEvent) isEvent()            {}
func (CloseRequestedEvent) isEvent()     {}
func (RedrawRequestedEvent) isEvent()    {}
func (KeyboardEvent) isEvent()           {}
func (ScaleFactorChangedEvent) isEvent() {}

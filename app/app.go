// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package app is the windowing shell around a sandbox.GraphicsContext.
//
// App translates window-system events into context calls. Run binds App
// to a GLFW window and drives it until the window closes.
package app

import (
	"fmt"

	"github.com/gogpu/sandbox"
)

// Window is the native window the shell renders into.
type Window interface {
	sandbox.SurfaceTarget

	// RequestRedraw schedules a RedrawRequestedEvent.
	RequestRedraw()

	// SetShouldClose marks the window for closing.
	SetShouldClose(bool)
}

// Context is the part of *sandbox.GraphicsContext the shell drives.
type Context interface {
	Render() error
	Resize(width, height int) error
	Suspend()
	Resume(target sandbox.SurfaceTarget) error
	HandleInput(ev sandbox.KeyEvent)
	Update()
	Destroy()
}

var _ Context = (*sandbox.GraphicsContext)(nil)

// ContextFactory creates the context on the first resume.
type ContextFactory func(target sandbox.SurfaceTarget) (Context, error)

// App holds the shell state for one window.
type App struct {
	window  Window
	factory ContextFactory

	ctx     Context
	scale   float64
	exiting bool
}

// New returns an App for window. The context is created lazily by factory
// when the first ResumedEvent arrives.
func New(window Window, factory ContextFactory) *App {
	return &App{window: window, factory: factory, scale: 1}
}

// Handle applies one event. A non-nil error is fatal: the shell must stop
// and call Exit.
func (a *App) Handle(ev Event) error {
	log := sandbox.Logger()

	if _, ok := ev.(ResumedEvent); ok {
		return a.resumed()
	}
	if e, ok := ev.(ScaleFactorChangedEvent); ok {
		a.scale = e.Scale
		return nil
	}
	if _, ok := ev.(CloseRequestedEvent); ok {
		a.requestExit()
		return nil
	}

	if a.ctx == nil {
		log.Warn("app: event before context, dropped", "event", fmt.Sprintf("%T", ev))
		return nil
	}

	switch e := ev.(type) {
	case SuspendedEvent:
		log.Info("app: suspended")
		a.ctx.Suspend()
	case ResizedEvent:
		if err := a.ctx.Resize(e.W, e.H); err != nil {
			return err
		}
		a.window.RequestRedraw()
	case RedrawRequestedEvent:
		a.ctx.Update()
		if err := a.ctx.Render(); err != nil {
			return err
		}
	case KeyboardEvent:
		if e.Key == sandbox.KeyEscape && e.Action == sandbox.Press {
			a.requestExit()
			return nil
		}
		a.ctx.HandleInput(e.KeyEvent)
		a.window.RequestRedraw()
	}
	return nil
}

func (a *App) resumed() error {
	if a.ctx == nil {
		ctx, err := a.factory(a.window)
		if err != nil {
			return err
		}
		a.ctx = ctx
	}
	sandbox.Logger().Info("app: resumed")
	if err := a.ctx.Resume(a.window); err != nil {
		return err
	}
	a.window.RequestRedraw()
	return nil
}

func (a *App) requestExit() {
	a.exiting = true
	a.window.SetShouldClose(true)
}

// Exit releases the context. It is safe to call more than once.
func (a *App) Exit() {
	sandbox.Logger().Info("Exiting")
	if a.ctx != nil {
		a.ctx.Destroy()
		a.ctx = nil
	}
}

// Exiting reports whether a close or Escape was requested.
func (a *App) Exiting() bool { return a.exiting }

// ScaleFactor returns the last recorded content scale.
func (a *App) ScaleFactor() float64 { return a.scale }

// Context returns the context, or nil before the first resume.
func (a *App) Context() Context { return a.ctx }

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/sandbox"
)

// GLFW must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

// RunConfig describes the window Run opens.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	Factory ContextFactory
}

// Run opens a window and dispatches its events to an App until the window
// closes, Escape is pressed, a fatal error occurs or ctx is cancelled. It
// must be called from the main goroutine.
func Run(ctx context.Context, cfg RunConfig) error {
	if cfg.Factory == nil {
		return errors.New("app: nil context factory")
	}
	if cfg.Title == "" {
		cfg.Title = "learn wgpu"
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("app: init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("app: create window: %w", err)
	}
	defer win.Destroy()

	w := &glfwWindow{win: win}
	a := New(w, cfg.Factory)
	defer a.Exit()
	w.install()

	stop := context.AfterFunc(ctx, glfw.PostEmptyEvent)
	defer stop()

	w.push(ResumedEvent{})
	if x, y := win.GetContentScale(); x > 0 {
		w.push(ScaleFactorChangedEvent{Scale: float64(max(x, y))})
	}

	for {
		for _, ev := range w.drain() {
			if err := a.Handle(ev); err != nil {
				return err
			}
		}
		if a.Exiting() || win.ShouldClose() {
			return nil
		}
		if ctx.Err() != nil {
			sandbox.Logger().Debug("app: context cancelled")
			return nil
		}
		if w.redraw {
			w.redraw = false
			if err := a.Handle(RedrawRequestedEvent{}); err != nil {
				return err
			}
			glfw.PollEvents()
			continue
		}
		glfw.WaitEvents()
	}
}

// glfwWindow adapts a GLFW window to Window and queues its callbacks as
// events.
type glfwWindow struct {
	win    *glfw.Window
	queue  []Event
	redraw bool
}

func (w *glfwWindow) install() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(ResizedEvent{W: width, H: height})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		w.push(KeyboardEvent{KeyEvent: keyEvent(key, action, mods)})
	})
	w.win.SetCloseCallback(func(*glfw.Window) {
		w.push(CloseRequestedEvent{})
	})
	w.win.SetRefreshCallback(func(*glfw.Window) {
		w.redraw = true
	})
	w.win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			w.push(SuspendedEvent{})
		} else {
			w.push(ResumedEvent{})
		}
	})
	w.win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		w.push(ScaleFactorChangedEvent{Scale: float64(max(x, y))})
	})
}

func (w *glfwWindow) push(ev Event) { w.queue = append(w.queue, ev) }

func (w *glfwWindow) drain() []Event {
	evs := w.queue
	w.queue = nil
	return evs
}

func (w *glfwWindow) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *glfwWindow) RequestRedraw() { w.redraw = true }

func (w *glfwWindow) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

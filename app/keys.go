// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/sandbox"
)

var namedKeys = map[glfw.Key]sandbox.Key{
	glfw.KeyEscape: sandbox.KeyEscape,
	glfw.KeyEnter:  sandbox.KeyEnter,
	glfw.KeySpace:  sandbox.KeySpace,
	glfw.KeyLeft:   sandbox.KeyLeft,
	glfw.KeyRight:  sandbox.KeyRight,
	glfw.KeyUp:     sandbox.KeyUp,
	glfw.KeyDown:   sandbox.KeyDown,
}

func mapKey(k glfw.Key) sandbox.Key {
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return sandbox.KeyA + sandbox.Key(k-glfw.KeyA)
	}
	if key, ok := namedKeys[k]; ok {
		return key
	}
	return sandbox.KeyUnknown
}

func mapAction(a glfw.Action) sandbox.Action {
	switch a {
	case glfw.Release:
		return sandbox.Release
	case glfw.Repeat:
		return sandbox.Repeat
	default:
		return sandbox.Press
	}
}

func mapMods(m glfw.ModifierKey) sandbox.Modifiers {
	var mods sandbox.Modifiers
	if m&glfw.ModShift != 0 {
		mods |= sandbox.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= sandbox.ModControl
	}
	if m&glfw.ModAlt != 0 {
		mods |= sandbox.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= sandbox.ModSuper
	}
	return mods
}

func keyEvent(k glfw.Key, a glfw.Action, m glfw.ModifierKey) sandbox.KeyEvent {
	return sandbox.KeyEvent{Key: mapKey(k), Action: mapAction(a), Mods: mapMods(m)}
}

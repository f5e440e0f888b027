// Package vertex describes the per-vertex layouts used by the built-in
// scenes and packs vertex slices into GPU upload bytes.
//
// Every layout is tightly packed little-endian float32 data with a single
// vertex-stepped buffer at slot 0.
package vertex

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// Strides in bytes.
const (
	PosStride    = 8
	PosColStride = 20
	PosTexStride = 16
)

// Pos is a 2D clip-space position.
type Pos struct {
	X, Y float32
}

// PosCol is a 2D position with an RGB color.
type PosCol struct {
	X, Y    float32
	R, G, B float32
}

// PosTex is a 2D position with a texture coordinate.
type PosTex struct {
	X, Y float32
	U, V float32
}

// Layout returns the buffer layout for Pos: position at location 0.
func (Pos) Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: PosStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	}
}

// Layout returns the buffer layout for PosCol: position at location 0,
// color at location 1.
func (PosCol) Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: PosColStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 8, ShaderLocation: 1}, // color
		},
	}
}

// Layout returns the buffer layout for PosTex: position at location 0,
// texture coordinate at location 1.
func (PosTex) Layout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: PosTexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
		},
	}
}

// PosBytes packs vs for upload.
func PosBytes(vs []Pos) []byte {
	buf := make([]byte, len(vs)*PosStride)
	for i, v := range vs {
		putFloats(buf[i*PosStride:], v.X, v.Y)
	}
	return buf
}

// PosColBytes packs vs for upload.
func PosColBytes(vs []PosCol) []byte {
	buf := make([]byte, len(vs)*PosColStride)
	for i, v := range vs {
		putFloats(buf[i*PosColStride:], v.X, v.Y, v.R, v.G, v.B)
	}
	return buf
}

// PosTexBytes packs vs for upload.
func PosTexBytes(vs []PosTex) []byte {
	buf := make([]byte, len(vs)*PosTexStride)
	for i, v := range vs {
		putFloats(buf[i*PosTexStride:], v.X, v.Y, v.U, v.V)
	}
	return buf
}

// Indices16 packs 16-bit indices, zero-padding the result to a multiple of
// 4 bytes as buffer writes require.
func Indices16(idx []uint16) []byte {
	n := len(idx) * 2
	buf := make([]byte, (n+3)&^3)
	for i, v := range idx {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return buf
}

func putFloats(buf []byte, fs ...float32) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}

package vertex

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func readFloat(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestLayouts(t *testing.T) {
	tests := []struct {
		name      string
		layout    gputypes.VertexBufferLayout
		stride    uint64
		locations []uint32
		offsets   []uint64
		formats   []gputypes.VertexFormat
	}{
		{
			name:      "Pos",
			layout:    Pos{}.Layout(),
			stride:    PosStride,
			locations: []uint32{0},
			offsets:   []uint64{0},
			formats:   []gputypes.VertexFormat{gputypes.VertexFormatFloat32x2},
		},
		{
			name:      "PosCol",
			layout:    PosCol{}.Layout(),
			stride:    PosColStride,
			locations: []uint32{0, 1},
			offsets:   []uint64{0, 8},
			formats:   []gputypes.VertexFormat{gputypes.VertexFormatFloat32x2, gputypes.VertexFormatFloat32x3},
		},
		{
			name:      "PosTex",
			layout:    PosTex{}.Layout(),
			stride:    PosTexStride,
			locations: []uint32{0, 1},
			offsets:   []uint64{0, 8},
			formats:   []gputypes.VertexFormat{gputypes.VertexFormatFloat32x2, gputypes.VertexFormatFloat32x2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.layout
			if uint64(l.ArrayStride) != tt.stride {
				t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, tt.stride)
			}
			if l.StepMode != gputypes.VertexStepModeVertex {
				t.Errorf("StepMode = %v, want vertex", l.StepMode)
			}
			if len(l.Attributes) != len(tt.locations) {
				t.Fatalf("attributes = %d, want %d", len(l.Attributes), len(tt.locations))
			}
			for i, a := range l.Attributes {
				if uint32(a.ShaderLocation) != tt.locations[i] {
					t.Errorf("attr %d location = %d, want %d", i, a.ShaderLocation, tt.locations[i])
				}
				if uint64(a.Offset) != tt.offsets[i] {
					t.Errorf("attr %d offset = %d, want %d", i, a.Offset, tt.offsets[i])
				}
				if a.Format != tt.formats[i] {
					t.Errorf("attr %d format = %v, want %v", i, a.Format, tt.formats[i])
				}
			}
		})
	}
}

func TestPosColBytes(t *testing.T) {
	vs := []PosCol{
		{X: -0.7, Y: -0.7, R: 1, G: 0, B: 0},
		{X: 0.7, Y: 0.7, R: 0, G: 0, B: 1},
	}
	buf := PosColBytes(vs)
	if len(buf) != 2*PosColStride {
		t.Fatalf("len = %d, want %d", len(buf), 2*PosColStride)
	}
	want := []float32{-0.7, -0.7, 1, 0, 0, 0.7, 0.7, 0, 0, 1}
	for i, w := range want {
		if got := readFloat(buf, i*4); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestPosBytes(t *testing.T) {
	buf := PosBytes([]Pos{{0, 1}, {-1, -1}, {1, -1}})
	if len(buf) != 3*PosStride {
		t.Fatalf("len = %d, want %d", len(buf), 3*PosStride)
	}
	if got := readFloat(buf, 4); got != 1 {
		t.Errorf("y0 = %v, want 1", got)
	}
	if got := readFloat(buf, 8); got != -1 {
		t.Errorf("x1 = %v, want -1", got)
	}
}

func TestPosTexBytes(t *testing.T) {
	buf := PosTexBytes([]PosTex{{X: 1, Y: -1, U: 1, V: 1}})
	want := []float32{1, -1, 1, 1}
	for i, w := range want {
		if got := readFloat(buf, i*4); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestIndices16(t *testing.T) {
	tests := []struct {
		idx     []uint16
		wantLen int
	}{
		{nil, 0},
		{[]uint16{7}, 4},
		{[]uint16{0, 1}, 4},
		{[]uint16{0, 2, 1}, 8},
		{[]uint16{0, 2, 1, 1, 2, 3}, 12},
	}
	for _, tt := range tests {
		buf := Indices16(tt.idx)
		if len(buf) != tt.wantLen {
			t.Errorf("Indices16(%v) len = %d, want %d", tt.idx, len(buf), tt.wantLen)
		}
		for i, v := range tt.idx {
			if got := binary.LittleEndian.Uint16(buf[i*2:]); got != v {
				t.Errorf("Indices16(%v)[%d] = %d, want %d", tt.idx, i, got, v)
			}
		}
		for i := len(tt.idx) * 2; i < len(buf); i++ {
			if buf[i] != 0 {
				t.Errorf("Indices16(%v) padding byte %d = %d", tt.idx, i, buf[i])
			}
		}
	}
}

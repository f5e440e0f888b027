package scenes

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/sandbox/texture"
	"github.com/gogpu/wgpu/hal"
	"golang.org/x/image/font/gofont/goregular"
)

func init() {
	sandbox.RegisterScene("canvas", NewCanvas)
}

// canvasMaxSize caps the rasterized card so huge surfaces stay cheap; the
// sampler scales it to the surface.
const canvasMaxSize = 1024

// canvasAccents are cycled through with the space key.
var canvasAccents = []string{"#f38ba8", "#a6e3a1", "#89b4fa", "#f9e2af", "#cba6f7"}

// Canvas draws a 2D card with gg on the CPU and shows it as a texture.
type Canvas struct {
	quad   *texturedQuad
	font   *text.FontSource
	width  int
	height int
	accent int
}

// NewCanvas rasterizes the first card at the surface size and uploads it.
func NewCanvas(env sandbox.SceneEnv) (sandbox.Renderable, error) {
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load canvas font: %w", err)
	}
	s := &Canvas{
		font:   font,
		width:  min(max(int(env.Width), 1), canvasMaxSize),
		height: min(max(int(env.Height), 1), canvasMaxSize),
	}

	img, err := s.draw()
	if err != nil {
		_ = font.Close()
		return nil, err
	}
	tex, err := texture.Upload(env.Device, env.Queue, img, "canvas")
	if err != nil {
		_ = font.Close()
		return nil, err
	}
	s.quad, err = newTexturedQuad(env, "canvas", tex)
	if err != nil {
		_ = font.Close()
		return nil, err
	}
	return s, nil
}

// draw rasterizes the card in the current accent color.
func (s *Canvas) draw() (*image.RGBA, error) {
	dc := gg.NewContext(s.width, s.height)
	defer func() { _ = dc.Close() }()

	w, h := float64(s.width), float64(s.height)
	accent := canvasAccents[s.accent]

	dc.SetHexColor("#1e1e2e")
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("draw canvas background: %w", err)
	}

	margin := min(w, h) * 0.1
	dc.SetHexColor("#313244")
	dc.DrawRoundedRectangle(margin, margin, w-2*margin, h-2*margin, margin/2)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("draw canvas card: %w", err)
	}

	r := min(w, h) * 0.12
	dc.SetHexColor(accent)
	dc.DrawCircle(w/2, h/2-r/2, r)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("draw canvas accent: %w", err)
	}
	dc.SetLineWidth(max(1, r/10))
	dc.DrawCircle(w/2, h/2-r/2, r*1.4)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("draw canvas ring: %w", err)
	}

	dc.SetFont(s.font.Face(max(10, h/16)))
	dc.SetHexColor("#cdd6f4")
	dc.DrawStringAnchored("learn wgpu", w/2, h/2+r*1.8, 0.5, 0.5)

	return texture.RGBA(dc.Image()), nil
}

func (s *Canvas) Render(pass sandbox.RenderPass) { s.quad.render(pass) }

// HandleInput redraws the card with the next accent color on space.
func (s *Canvas) HandleInput(ev sandbox.KeyEvent, q hal.Queue) {
	if !ev.Pressed() || ev.Key != sandbox.KeySpace {
		return
	}
	s.accent = (s.accent + 1) % len(canvasAccents)
	img, err := s.draw()
	if err != nil {
		sandbox.Logger().Warn("scenes: canvas redraw failed", "error", err)
		return
	}
	if err := s.quad.tex.Write(q, img); err != nil {
		sandbox.Logger().Warn("scenes: canvas upload failed", "error", err)
	}
}

// Accent returns the current accent color.
func (s *Canvas) Accent() string { return canvasAccents[s.accent] }

func (s *Canvas) Destroy() {
	s.quad.destroy()
	_ = s.font.Close()
}

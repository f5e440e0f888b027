package sandbox_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sandbox"
	_ "github.com/gogpu/sandbox/scenes"
)

func writePNG(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "texture.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTexturedResizeRoundTrip(t *testing.T) {
	gc, err := sandbox.New(sandbox.NewFakeInstance(t), sandbox.NewFakeTarget(640, 480),
		sandbox.WithScene("textured"),
		sandbox.WithSceneConfig(sandbox.SceneConfig{TexturePath: writePNG(t)}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer gc.Destroy()

	want := gc.Config()
	if err := gc.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := gc.Resize(1, 1); err != nil {
		t.Fatalf("Resize(1, 1) error = %v", err)
	}
	if err := gc.Render(); err != nil {
		t.Fatalf("Render() at 1x1 error = %v", err)
	}
	if err := gc.Resize(640, 480); err != nil {
		t.Fatalf("Resize(640, 480) error = %v", err)
	}
	if got := gc.Config(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
	if err := gc.Render(); err != nil {
		t.Fatalf("Render() after restore error = %v", err)
	}
}

func TestEveryBuiltinSceneRenders(t *testing.T) {
	for _, name := range []string{"triangle", "quad", "uniform", "textured", "camera2d", "canvas"} {
		t.Run(name, func(t *testing.T) {
			gc, err := sandbox.New(sandbox.NewFakeInstance(t), sandbox.NewFakeTarget(320, 240),
				sandbox.WithScene(name),
				sandbox.WithSceneConfig(sandbox.SceneConfig{TexturePath: writePNG(t)}),
			)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer gc.Destroy()

			for _, k := range []sandbox.Key{sandbox.KeyRight, sandbox.KeySpace, sandbox.KeyZ} {
				gc.HandleInput(sandbox.KeyEvent{Key: k, Action: sandbox.Press})
			}
			gc.Update()
			if err := gc.Render(); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
		})
	}
}

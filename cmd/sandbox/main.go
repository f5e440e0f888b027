// Command sandbox opens a window and renders one of the registered scenes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sandbox"
	"github.com/gogpu/sandbox/app"
	"github.com/gogpu/sandbox/backend"
	"github.com/gogpu/sandbox/internal/config"
	_ "github.com/gogpu/sandbox/scenes"
	"golang.org/x/term"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	sandbox.Logger().Error("sandbox: fatal", "error", err)
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	tty := isTerminal(stderr)
	sandbox.SetLogger(newLogger(stderr, slog.LevelInfo, tty))

	cfg, list, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if list {
		for _, name := range sandbox.Scenes() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	level, _ := cfg.Level()
	sandbox.SetLogger(newLogger(stderr, level, tty))

	policy, err := sandbox.SurfacePolicyByName(cfg.SurfacePolicy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return app.Run(ctx, app.RunConfig{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Factory: contextFactory(cfg, policy),
	})
}

// parseFlags loads the config file named by -config and applies the flags
// the user set on top of it.
func parseFlags(args []string, stderr io.Writer) (config.Config, bool, error) {
	fs := flag.NewFlagSet("sandbox", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		path     = fs.String("config", "", "YAML config file")
		scene    = fs.String("scene", "", "scene to render")
		width    = fs.Int("width", 0, "window width")
		height   = fs.Int("height", 0, "window height")
		api      = fs.String("backend", "", "GPU backend (vulkan, metal, dx12, gles, noop)")
		texture  = fs.String("texture", "", "image for the textured scene")
		logLevel = fs.String("log-level", "", "debug, info, warn or error")
		list     = fs.Bool("list-scenes", false, "print registered scenes and exit")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return cfg, false, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *scene
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "backend":
			cfg.Backend = *api
		case "texture":
			cfg.Texture = *texture
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return cfg, false, err
	}
	return cfg, *list, nil
}

func contextFactory(cfg config.Config, policy sandbox.SurfacePolicy) app.ContextFactory {
	return func(target sandbox.SurfaceTarget) (app.Context, error) {
		instance, err := backend.Open(cfg.Backend)
		if err != nil {
			return nil, err
		}
		gc, err := sandbox.New(instance, target,
			sandbox.WithScene(cfg.Scene),
			sandbox.WithSceneConfig(sandbox.SceneConfig{
				TexturePath:       cfg.Texture,
				PrecompileShaders: cfg.Shaders == config.ShadersSPIRV,
			}),
			sandbox.WithSurfacePolicy(policy),
			sandbox.WithClearColor(clearColor(cfg.ClearColor)),
		)
		if err != nil {
			return nil, err
		}
		return gc, nil
	}
}

func clearColor(c [4]float64) gputypes.Color {
	return gputypes.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// newLogger returns a text handler for terminals and JSON otherwise.
func newLogger(w io.Writer, level slog.Level, tty bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if tty {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits int
}

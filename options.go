package sandbox

import "github.com/gogpu/gputypes"

// Option configures a GraphicsContext during creation.
//
// Example:
//
//	gc, err := sandbox.New(instance, window,
//	    sandbox.WithScene("textured"),
//	    sandbox.WithSceneConfig(sandbox.SceneConfig{TexturePath: "assets/texture.png"}),
//	)
type Option func(*options)

// options holds optional configuration for context creation.
type options struct {
	scene       string
	sceneConfig SceneConfig
	policy      SurfacePolicy
	clearColor  gputypes.Color
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		scene:      DefaultScene,
		policy:     nil, // resolved to DefaultSurfacePolicy in New
		clearColor: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
	}
}

// WithScene selects the registered scene the context renders.
func WithScene(name string) Option {
	return func(o *options) {
		o.scene = name
	}
}

// WithSceneConfig passes configuration through to the scene factory.
func WithSceneConfig(cfg SceneConfig) Option {
	return func(o *options) {
		o.sceneConfig = cfg
	}
}

// WithSurfacePolicy overrides the platform default suspend/resume behavior.
// Tests use it to exercise TransientSurface on desktop.
func WithSurfacePolicy(p SurfacePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithClearColor sets the color every frame is cleared to before the scene
// draws. The default is opaque black.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

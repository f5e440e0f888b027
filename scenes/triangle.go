package scenes

import "github.com/gogpu/sandbox"

func init() {
	sandbox.RegisterScene("triangle", NewTriangle)
}

// Triangle draws three vertices generated in the vertex shader.
type Triangle struct {
	pipe *pipeline
}

// NewTriangle builds the triangle scene.
func NewTriangle(env sandbox.SceneEnv) (sandbox.Renderable, error) {
	pipe, err := newPipeline(env, pipelineDesc{
		label:  "triangle",
		shader: "triangle.wgsl",
	})
	if err != nil {
		return nil, err
	}
	return &Triangle{pipe: pipe}, nil
}

func (s *Triangle) Render(pass sandbox.RenderPass) {
	pass.SetPipeline(s.pipe.pipeline)
	pass.Draw(3, 1, 0, 0)
}

func (s *Triangle) Destroy() {
	s.pipe.destroy()
}
